package router

import (
	"caterlink/internal/adapter/api/handler"
	"caterlink/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupRequestRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	requestHandler := handler.GetRequestHandler()

	// Public routes
	requests := e.Group("/v1/requests")
	requests.GET("", requestHandler.List)
	requests.GET("/:id", requestHandler.GetByID)

	// Protected routes (require authentication)
	authenticated := e.Group("/v1/requests")
	authenticated.Use(authMiddleware.Authenticate)

	authenticated.POST("", requestHandler.Create)
	authenticated.PATCH("/:id", requestHandler.Update)
	authenticated.PATCH("/:id/status", requestHandler.UpdateStatus)
	authenticated.DELETE("/:id", requestHandler.Delete)
}
