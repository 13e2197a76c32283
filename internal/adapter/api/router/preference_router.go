package router

import (
	"caterlink/internal/adapter/api/handler"
	"caterlink/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupPreferenceRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	preferenceHandler := handler.GetPreferenceHandler()

	preferences := e.Group("/v1/preferences")
	preferences.Use(authMiddleware.Authenticate)

	preferences.GET("", preferenceHandler.Get)
	preferences.POST("/offers/:id/toggle", preferenceHandler.ToggleOffer)
	preferences.POST("/requests/:id/toggle", preferenceHandler.ToggleRequest)
}
