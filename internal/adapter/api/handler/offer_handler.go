package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"caterlink/internal/domain/repository"
	"caterlink/internal/usecase"
	"caterlink/pkg/response"
	"caterlink/pkg/utils"
)

type OfferHandler struct {
	publicationUseCase *usecase.PublicationUseCase
	userRepo           repository.UserRepository
}

func NewOfferHandler(publicationUseCase *usecase.PublicationUseCase, userRepo repository.UserRepository) *OfferHandler {
	return &OfferHandler{
		publicationUseCase: publicationUseCase,
		userRepo:           userRepo,
	}
}

type offerRequest struct {
	PriceRange    string `json:"price_range" validate:"required"`
	PeopleRange   string `json:"people_range" validate:"required"`
	LocationRange string `json:"location_range" validate:"required"`
	Description   string `json:"description"`
	CateringType  string `json:"catering_type"`
	AuthorID      string `json:"author_id"`
}

func (h *OfferHandler) Create(c echo.Context) error {
	var req offerRequest
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

	offer, err := h.publicationUseCase.CreateOffer(c.Request().Context(), actor, usecase.OfferInput{
		PriceRange:    req.PriceRange,
		PeopleRange:   req.PeopleRange,
		LocationRange: req.LocationRange,
		Description:   req.Description,
		CateringType:  req.CateringType,
		AuthorID:      req.AuthorID,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, offer)
}

func (h *OfferHandler) List(c echo.Context) error {
	pagination := utils.GetPaginationParams(c)

	offers, total, err := h.publicationUseCase.ListOffers(c.Request().Context(), pagination.PageSize, pagination.Offset)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, offers, total, pagination.Page, pagination.PageSize)
}

func (h *OfferHandler) GetByID(c echo.Context) error {
	offer, err := h.publicationUseCase.GetOffer(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, offer)
}

type offerEditRequest struct {
	PriceRange    string `json:"price_range"`
	PeopleRange   string `json:"people_range"`
	LocationRange string `json:"location_range"`
	Description   string `json:"description"`
	CateringType  string `json:"catering_type"`
}

// Update merges the provided fields only; a field left out of the body is
// not touched.
func (h *OfferHandler) Update(c echo.Context) error {
	var req offerEditRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	actor, err := currentUser(c, h.userRepo)
	if err != nil {
		return response.Error(c, err)
	}

	if err := h.publicationUseCase.UpdateOffer(c.Request().Context(), actor, c.Param("id"), usecase.OfferEdit{
		PriceRange:    req.PriceRange,
		PeopleRange:   req.PeopleRange,
		LocationRange: req.LocationRange,
		Description:   req.Description,
		CateringType:  req.CateringType,
	}); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{"message": "Offer updated"})
}

type statusRequest struct {
	Status string `json:"status" validate:"required"`
}

// UpdateStatus changes the offer status. When a non-author finishes the
// offer, the response carries a review prompt for the client UI.
func (h *OfferHandler) UpdateStatus(c echo.Context) error {
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

	prompt, err := h.publicationUseCase.UpdateOfferStatus(c.Request().Context(), actor, c.Param("id"), req.Status)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]interface{}{
		"status":        req.Status,
		"review_prompt": prompt,
	})
}

func (h *OfferHandler) Delete(c echo.Context) error {
	actor, err := currentUser(c, h.userRepo)
	if err != nil {
		return response.Error(c, err)
	}

	if err := h.publicationUseCase.DeleteOffer(c.Request().Context(), actor, c.Param("id")); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{"message": "Offer deleted"})
}
