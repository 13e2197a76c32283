package router

import (
	"caterlink/internal/adapter/api/handler"
	"caterlink/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

// SetupAuthRouter initializes auth routes
func SetupAuthRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	authHandler := handler.GetAuthHandler()

	// Public routes
	e.POST("/v1/auth/register", authHandler.Register)
	e.POST("/v1/auth/login", authHandler.Login)

	// Protected routes (require authentication)
	e.GET("/v1/users/me", authHandler.Me, authMiddleware.Authenticate)
}
