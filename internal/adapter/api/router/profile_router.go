package router

import (
	"caterlink/internal/adapter/api/handler"
	"caterlink/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupProfileRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	profileHandler := handler.GetProfileHandler()

	// Public routes
	profiles := e.Group("/v1/profiles")
	profiles.GET("", profileHandler.List)

	// Protected routes (require authentication)
	authenticated := e.Group("")
	authenticated.Use(authMiddleware.Authenticate)

	authenticated.GET("/v1/profiles/me", profileHandler.GetMe)
	authenticated.PATCH("/v1/profiles/me", profileHandler.UpdateDescription)
	authenticated.PUT("/v1/profiles/me/sync", profileHandler.SyncProfile)
	authenticated.POST("/v1/profiles/me/works", profileHandler.AddPreviousWork)
	authenticated.POST("/v1/profiles/:id/reviews", profileHandler.SubmitReview)
	authenticated.POST("/v1/reviews/final", profileHandler.SubmitFinalReviews)

	// Parameterized route registered after /me so the static path wins
	profiles.GET("/:id", profileHandler.GetByID)
}
