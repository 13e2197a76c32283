package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"caterlink/internal/domain/repository"
	"caterlink/internal/usecase"
	"caterlink/pkg/response"
	"caterlink/pkg/utils"
)

type RequestHandler struct {
	publicationUseCase *usecase.PublicationUseCase
	userRepo           repository.UserRepository
}

func NewRequestHandler(publicationUseCase *usecase.PublicationUseCase, userRepo repository.UserRepository) *RequestHandler {
	return &RequestHandler{
		publicationUseCase: publicationUseCase,
		userRepo:           userRepo,
	}
}

type requestRequest struct {
	PriceRange   string   `json:"price_range" validate:"required"`
	PeopleCount  int      `json:"people_count" validate:"required,min=1"`
	Services     []string `json:"services"`
	CateringType string   `json:"catering_type"`
	Location     string   `json:"location" validate:"required"`
	EventDate    string   `json:"event_date"`
	Notes        string   `json:"notes"`
	AuthorID     string   `json:"author_id"`
}

func (h *RequestHandler) Create(c echo.Context) error {
	var req requestRequest
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

	request, err := h.publicationUseCase.CreateRequest(c.Request().Context(), actor, usecase.RequestInput{
		PriceRange:   req.PriceRange,
		PeopleCount:  req.PeopleCount,
		Services:     req.Services,
		CateringType: req.CateringType,
		Location:     req.Location,
		EventDate:    req.EventDate,
		Notes:        req.Notes,
		AuthorID:     req.AuthorID,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, request)
}

func (h *RequestHandler) List(c echo.Context) error {
	pagination := utils.GetPaginationParams(c)

	requests, total, err := h.publicationUseCase.ListRequests(c.Request().Context(), pagination.PageSize, pagination.Offset)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, requests, total, pagination.Page, pagination.PageSize)
}

func (h *RequestHandler) GetByID(c echo.Context) error {
	request, err := h.publicationUseCase.GetRequest(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, request)
}

type requestEditRequest struct {
	PriceRange   string   `json:"price_range"`
	PeopleCount  int      `json:"people_count"`
	Services     []string `json:"services"`
	CateringType string   `json:"catering_type"`
	Location     string   `json:"location"`
	EventDate    string   `json:"event_date"`
	Notes        string   `json:"notes"`
}

// Update merges the provided fields only; a field left out of the body is
// not touched.
func (h *RequestHandler) Update(c echo.Context) error {
	var req requestEditRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	actor, err := currentUser(c, h.userRepo)
	if err != nil {
		return response.Error(c, err)
	}

	if err := h.publicationUseCase.UpdateRequest(c.Request().Context(), actor, c.Param("id"), usecase.RequestEdit{
		PriceRange:   req.PriceRange,
		PeopleCount:  req.PeopleCount,
		Services:     req.Services,
		CateringType: req.CateringType,
		Location:     req.Location,
		EventDate:    req.EventDate,
		Notes:        req.Notes,
	}); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{"message": "Request updated"})
}

func (h *RequestHandler) UpdateStatus(c echo.Context) error {
	var req statusRequest
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

	prompt, err := h.publicationUseCase.UpdateRequestStatus(c.Request().Context(), actor, c.Param("id"), req.Status)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]interface{}{
		"status":        req.Status,
		"review_prompt": prompt,
	})
}

func (h *RequestHandler) Delete(c echo.Context) error {
	actor, err := currentUser(c, h.userRepo)
	if err != nil {
		return response.Error(c, err)
	}

	if err := h.publicationUseCase.DeleteRequest(c.Request().Context(), actor, c.Param("id")); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{"message": "Request deleted"})
}
