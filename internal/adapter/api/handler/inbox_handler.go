package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"caterlink/internal/domain/repository"
	"caterlink/internal/usecase"
	"caterlink/pkg/response"
)

type InboxHandler struct {
	inboxUseCase *usecase.InboxUseCase
	userRepo     repository.UserRepository
}

func NewInboxHandler(inboxUseCase *usecase.InboxUseCase, userRepo repository.UserRepository) *InboxHandler {
	return &InboxHandler{
		inboxUseCase: inboxUseCase,
		userRepo:     userRepo,
	}
}

func (h *InboxHandler) List(c echo.Context) error {
	user, err := currentUser(c, h.userRepo)
	if err != nil {
		return response.Error(c, err)
	}

	entries, err := h.inboxUseCase.List(c.Request().Context(), user.ID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, entries)
}

type executionRequestRequest struct {
	PublicationID    string `json:"publication_id" validate:"required"`
	PublicationTitle string `json:"publication_title"`
	PublicationType  string `json:"publication_type" validate:"required,oneof=OFFER REQUEST"`
	RecipientID      string `json:"recipient_id" validate:"required"`
	RecipientName    string `json:"recipient_name"`
}

// SubmitExecutionRequest appends a pending execution request addressed to
// the publication's author. The requester is always the caller.
func (h *InboxHandler) SubmitExecutionRequest(c echo.Context) error {
	var req executionRequestRequest
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

	entry, err := h.inboxUseCase.SubmitExecutionRequest(c.Request().Context(), usecase.ExecutionRequestInput{
		PublicationID:    req.PublicationID,
		PublicationTitle: req.PublicationTitle,
		PublicationType:  req.PublicationType,
		RequesterID:      actor.ID,
		RequesterName:    actor.DisplayName,
		RecipientID:      req.RecipientID,
		RecipientName:    req.RecipientName,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, entry)
}

type statusChangeRequest struct {
	PublicationID    string `json:"publication_id" validate:"required"`
	PublicationTitle string `json:"publication_title"`
	PublicationType  string `json:"publication_type" validate:"required,oneof=OFFER REQUEST"`
	Status           string `json:"status" validate:"required"`
	RecipientID      string `json:"recipient_id" validate:"required"`
	RecipientName    string `json:"recipient_name"`
}

func (h *InboxHandler) NotifyStatusChange(c echo.Context) error {
	var req statusChangeRequest
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

	if err := h.inboxUseCase.NotifyStatusChange(c.Request().Context(), usecase.StatusChangeInput{
		PublicationID:    req.PublicationID,
		PublicationTitle: req.PublicationTitle,
		PublicationType:  req.PublicationType,
		Status:           req.Status,
		ActorID:          actor.ID,
		ActorName:        actor.DisplayName,
		RecipientID:      req.RecipientID,
		RecipientName:    req.RecipientName,
	}); err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, map[string]string{"message": "Status change delivered"})
}

type respondRequest struct {
	Decision string `json:"decision" validate:"required,oneof=ACCEPTED REJECTED"`
}

// Respond resolves a pending execution request. Only the entry's recipient
// may decide, and a request already decided stays decided.
func (h *InboxHandler) Respond(c echo.Context) error {
	var req respondRequest
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

	entry, err := h.inboxUseCase.Respond(c.Request().Context(), actor, c.Param("id"), req.Decision)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, entry)
}
