package router

import (
	"caterlink/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func Setup(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	SetupAuthRouter(e, authMiddleware)
	SetupOfferRouter(e, authMiddleware, adminMiddleware)
	SetupRequestRouter(e, authMiddleware, adminMiddleware)
	SetupProfileRouter(e, authMiddleware)
	SetupInboxRouter(e, authMiddleware)
	SetupPreferenceRouter(e, authMiddleware)
	SetupUserRouter(e, authMiddleware, adminMiddleware)
}
