package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"caterlink/internal/domain/repository"
	"caterlink/internal/usecase"
	"caterlink/pkg/response"
)

type ProfileHandler struct {
	profileUseCase *usecase.ProfileUseCase
	userRepo       repository.UserRepository
}

func NewProfileHandler(profileUseCase *usecase.ProfileUseCase, userRepo repository.UserRepository) *ProfileHandler {
	return &ProfileHandler{
		profileUseCase: profileUseCase,
		userRepo:       userRepo,
	}
}

func (h *ProfileHandler) List(c echo.Context) error {
	profiles, err := h.profileUseCase.ListProfiles(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, profiles)
}

func (h *ProfileHandler) GetByID(c echo.Context) error {
	profile, err := h.profileUseCase.GetProfile(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, profile)
}

func (h *ProfileHandler) GetMe(c echo.Context) error {
	user, err := currentUser(c, h.userRepo)
	if err != nil {
		return response.Error(c, err)
	}

	profile, err := h.profileUseCase.GetProfile(c.Request().Context(), user.ID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, profile)
}

func (h *ProfileHandler) UpdateDescription(c echo.Context) error {
	var req struct {
		Description string `json:"description" validate:"required"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := currentUser(c, h.userRepo)
	if err != nil {
		return response.Error(c, err)
	}

	if err := h.profileUseCase.UpdateDescription(c.Request().Context(), user, req.Description); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{"message": "Description updated"})
}

// SyncProfile re-publishes the caller's account fields into their public
// profile document.
func (h *ProfileHandler) SyncProfile(c echo.Context) error {
	user, err := currentUser(c, h.userRepo)
	if err != nil {
		return response.Error(c, err)
	}

	if err := h.profileUseCase.SyncProfile(c.Request().Context(), user); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{"message": "Profile synced"})
}

type reviewRequest struct {
	TargetName string `json:"target_name"`
	Rating     int    `json:"rating" validate:"required,min=1,max=5"`
	Comment    string `json:"comment"`
}

func (h *ProfileHandler) SubmitReview(c echo.Context) error {
	var req reviewRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	actor, err := currentUser(c, h.userRepo)
	if err != nil {
		return response.Error(c, err)
	}

	if err := h.profileUseCase.SubmitReview(c.Request().Context(), actor, usecase.ReviewInput{
		TargetID:   c.Param("id"),
		TargetName: req.TargetName,
		Rating:     req.Rating,
		Comment:    req.Comment,
	}); err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, map[string]string{"message": "Review submitted"})
}

type finalReviewsRequest struct {
	ClientID       string `json:"client_id" validate:"required"`
	ClientName     string `json:"client_name"`
	CompanyID      string `json:"company_id" validate:"required"`
	CompanyName    string `json:"company_name"`
	ClientRating   int    `json:"client_rating" validate:"required,min=1,max=5"`
	ClientComment  string `json:"client_comment"`
	CompanyRating  int    `json:"company_rating" validate:"required,min=1,max=5"`
	CompanyComment string `json:"company_comment"`
}

// SubmitFinalReviews records both sides of a finished job in one shot.
func (h *ProfileHandler) SubmitFinalReviews(c echo.Context) error {
	var req finalReviewsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	actor, err := currentUser(c, h.userRepo)
	if err != nil {
		return response.Error(c, err)
	}

	if err := h.profileUseCase.SubmitFinalReviews(c.Request().Context(), actor, usecase.FinalReviewsInput{
		ClientID:       req.ClientID,
		ClientName:     req.ClientName,
		CompanyID:      req.CompanyID,
		CompanyName:    req.CompanyName,
		ClientRating:   req.ClientRating,
		ClientComment:  req.ClientComment,
		CompanyRating:  req.CompanyRating,
		CompanyComment: req.CompanyComment,
	}); err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, map[string]string{"message": "Reviews submitted"})
}

// AddPreviousWork accepts a multipart form with title, description and an
// optional image file.
func (h *ProfileHandler) AddPreviousWork(c echo.Context) error {
	user, err := currentUser(c, h.userRepo)
	if err != nil {
		return response.Error(c, err)
	}

	title := c.FormValue("title")
	if title == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "title is required")
	}

	input := usecase.PreviousWorkInput{
		Title:       title,
		Description: c.FormValue("description"),
	}

	if fileHeader, err := c.FormFile("image"); err == nil {
		src, err := fileHeader.Open()
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "failed to open uploaded file")
		}
		defer src.Close()

		input.Image = src
		input.ContentType = fileHeader.Header.Get("Content-Type")
	}

	work, err := h.profileUseCase.AddPreviousWork(c.Request().Context(), user, input)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, work)
}
