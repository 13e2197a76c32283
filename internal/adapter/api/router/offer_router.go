package router

import (
	"caterlink/internal/adapter/api/handler"
	"caterlink/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupOfferRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	offerHandler := handler.GetOfferHandler()

	// Public routes
	offers := e.Group("/v1/offers")
	offers.GET("", offerHandler.List)
	offers.GET("/:id", offerHandler.GetByID)

	// Protected routes (require authentication)
	authenticated := e.Group("/v1/offers")
	authenticated.Use(authMiddleware.Authenticate)

	authenticated.POST("", offerHandler.Create)
	authenticated.PATCH("/:id", offerHandler.Update)
	authenticated.PATCH("/:id/status", offerHandler.UpdateStatus)
	authenticated.DELETE("/:id", offerHandler.Delete)
}
