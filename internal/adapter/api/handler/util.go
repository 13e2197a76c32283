package handler

import (
	"github.com/labstack/echo/v4"

	"caterlink/internal/domain/entity"
	"caterlink/internal/domain/repository"
	"caterlink/pkg/errors"
)

// currentUser resolves the authenticated caller from the uid the auth
// middleware stored on the context.
func currentUser(c echo.Context, userRepo repository.UserRepository) (*entity.User, error) {
	uid, ok := c.Get("uid").(string)
	if !ok || uid == "" {
		return nil, errors.Unauthorized("Authentication required", nil)
	}

	user, err := userRepo.GetByID(c.Request().Context(), uid)
	if err != nil {
		return nil, errors.Unauthorized("Unknown user", err)
	}

	return user, nil
}
