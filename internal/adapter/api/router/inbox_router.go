package router

import (
	"caterlink/internal/adapter/api/handler"
	"caterlink/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupInboxRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	inboxHandler := handler.GetInboxHandler()

	inbox := e.Group("/v1/inbox")
	inbox.Use(authMiddleware.Authenticate)

	inbox.GET("", inboxHandler.List)
	inbox.POST("/execution-requests", inboxHandler.SubmitExecutionRequest)
	inbox.POST("/status-changes", inboxHandler.NotifyStatusChange)
	inbox.POST("/:id/respond", inboxHandler.Respond)
}
