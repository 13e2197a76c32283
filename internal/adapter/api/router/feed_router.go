package router

import (
	"github.com/labstack/echo/v4"

	"caterlink/internal/adapter/api/handler"
	"caterlink/internal/adapter/api/middleware"
)

// SetupFeedRouter sets up the live feed WebSocket route
func SetupFeedRouter(e *echo.Echo, feedHandler *handler.FeedHandler, authMiddleware *middleware.AuthMiddleware) {
	e.GET("/v1/feed", feedHandler.HandleFeed, authMiddleware.Authenticate)
}
