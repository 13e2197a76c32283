package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"caterlink/internal/usecase"
	"caterlink/pkg/response"
)

// UserHandler exposes the admin account editor.
type UserHandler struct {
	userUseCase *usecase.UserUseCase
}

func NewUserHandler(userUseCase *usecase.UserUseCase) *UserHandler {
	return &UserHandler{
		userUseCase: userUseCase,
	}
}

type adminUserRequest struct {
	Email       string `json:"email" validate:"required,email"`
	DisplayName string `json:"display_name"`
	Role        string `json:"role" validate:"required,oneof=CLIENT COMPANY ADMIN"`
	Affiliation string `json:"affiliation"`
	Address     string `json:"address"`
	Description string `json:"description"`
}

func (h *UserHandler) List(c echo.Context) error {
	users, err := h.userUseCase.ListUsers(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, users)
}

func (h *UserHandler) Save(c echo.Context) error {
	var req adminUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.userUseCase.SaveUser(c.Request().Context(), usecase.AdminUserInput{
		UserID:      c.Param("id"),
		Email:       req.Email,
		DisplayName: req.DisplayName,
		Role:        req.Role,
		Affiliation: req.Affiliation,
		Address:     req.Address,
		Description: req.Description,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, user)
}

func (h *UserHandler) Delete(c echo.Context) error {
	if err := h.userUseCase.DeleteUser(c.Request().Context(), c.Param("id")); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{"message": "User deleted"})
}
