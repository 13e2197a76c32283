package handler

import (
	"github.com/labstack/echo/v4"

	"caterlink/internal/domain/repository"
	"caterlink/internal/usecase"
	"caterlink/pkg/response"
)

type PreferenceHandler struct {
	preferenceUseCase *usecase.PreferenceUseCase
	userRepo          repository.UserRepository
}

func NewPreferenceHandler(preferenceUseCase *usecase.PreferenceUseCase, userRepo repository.UserRepository) *PreferenceHandler {
	return &PreferenceHandler{
		preferenceUseCase: preferenceUseCase,
		userRepo:          userRepo,
	}
}

func (h *PreferenceHandler) Get(c echo.Context) error {
	user, err := currentUser(c, h.userRepo)
	if err != nil {
		return response.Error(c, err)
	}

	prefs, err := h.preferenceUseCase.Get(c.Request().Context(), user.ID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, prefs)
}

func (h *PreferenceHandler) ToggleOffer(c echo.Context) error {
	user, err := currentUser(c, h.userRepo)
	if err != nil {
		return response.Error(c, err)
	}

	result, err := h.preferenceUseCase.ToggleOffer(c.Request().Context(), user, c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, result)
}

func (h *PreferenceHandler) ToggleRequest(c echo.Context) error {
	user, err := currentUser(c, h.userRepo)
	if err != nil {
		return response.Error(c, err)
	}

	result, err := h.preferenceUseCase.ToggleRequest(c.Request().Context(), user, c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, result)
}
