package usecase

import (
	"context"

	"caterlink/internal/domain/entity"
	"caterlink/internal/domain/repository"
	"caterlink/pkg/errors"
)

type InboxUseCase struct {
	inboxRepo repository.InboxRepository
}

func NewInboxUseCase(inboxRepo repository.InboxRepository) *InboxUseCase {
	return &InboxUseCase{inboxRepo: inboxRepo}
}

func (uc *InboxUseCase) List(ctx context.Context, userID string) ([]*entity.InboxEntry, error) {
	return uc.inboxRepo.ListByParticipant(ctx, userID)
}

type ExecutionRequestInput struct {
	PublicationID    string
	PublicationTitle string
	PublicationType  string
	RequesterID      string
	RequesterName    string
	RecipientID      string
	RecipientName    string
}

// SubmitExecutionRequest appends a fresh PENDING entry. Repeated submits
// for the same publication each create their own entry; resubmission after
// a rejection is exactly that.
func (uc *InboxUseCase) SubmitExecutionRequest(ctx context.Context, input ExecutionRequestInput) (*entity.InboxEntry, error) {
	if input.RequesterID == input.RecipientID {
		return nil, errors.BadRequest("Cannot request execution of your own publication", nil)
	}

	title := input.PublicationTitle
	if title == "" {
		if input.PublicationType == entity.PublicationOffer {
			title = "Proposal by " + input.RecipientName
		} else {
			title = "Request by " + input.RecipientName
		}
	}

	entry := &entity.InboxEntry{
		EntryType:        entity.EntryExecutionRequest,
		Title:            "Execution request",
		Body:             entity.ExecutionRequestBody(input.RequesterName, title),
		ActorID:          input.RequesterID,
		ActorName:        input.RequesterName,
		RecipientID:      input.RecipientID,
		RecipientName:    input.RecipientName,
		PublicationID:    input.PublicationID,
		PublicationTitle: title,
		PublicationType:  input.PublicationType,
		ExecutionStatus:  entity.ExecutionPending,
		Participants:     entity.ParticipantsOf(input.RequesterID, input.RecipientID),
	}

	if err := uc.inboxRepo.Append(ctx, entry); err != nil {
		return nil, err
	}

	return entry, nil
}

// Respond resolves a pending execution request. Only the entry's recipient
// may decide, and only while the entry is still PENDING; the repository
// transaction re-checks the state so a race can never resolve twice.
func (uc *InboxUseCase) Respond(ctx context.Context, actor *entity.User, entryID, decision string) (*entity.InboxEntry, error) {
	if decision != entity.ExecutionAccepted && decision != entity.ExecutionRejected {
		return nil, errors.BadRequest("Decision must be ACCEPTED or REJECTED", nil)
	}

	entry, err := uc.inboxRepo.GetByID(ctx, entryID)
	if err != nil {
		return nil, err
	}
	if entry.EntryType != entity.EntryExecutionRequest {
		return nil, errors.BadRequest("Entry is not an execution request", nil)
	}
	if entry.RecipientID != actor.ID {
		return nil, errors.Forbidden("Only the recipient can respond to this request", nil)
	}
	if entry.ExecutionStatus != entity.ExecutionPending {
		return nil, errors.Conflict("Execution request already resolved")
	}

	return uc.inboxRepo.Resolve(ctx, entryID, decision)
}

type StatusChangeInput struct {
	PublicationID    string
	PublicationTitle string
	PublicationType  string
	Status           string
	ActorID          string
	ActorName        string
	RecipientID      string
	RecipientName    string
}

// NotifyStatusChange appends a STATUS_CHANGE entry and touches nothing
// else.
func (uc *InboxUseCase) NotifyStatusChange(ctx context.Context, input StatusChangeInput) error {
	title := input.PublicationTitle
	if title == "" {
		if input.PublicationType == entity.PublicationOffer {
			title = "Proposal"
		} else {
			title = "Request"
		}
	}

	entry := &entity.InboxEntry{
		EntryType:         entity.EntryStatusChange,
		Title:             "Status change",
		Body:              entity.StatusChangeBody(input.ActorName, input.Status),
		ActorID:           input.ActorID,
		ActorName:         input.ActorName,
		RecipientID:       input.RecipientID,
		RecipientName:     input.RecipientName,
		PublicationID:     input.PublicationID,
		PublicationTitle:  title,
		PublicationType:   input.PublicationType,
		PublicationStatus: input.Status,
		Participants:      entity.ParticipantsOf(input.ActorID, input.RecipientID),
	}

	return uc.inboxRepo.Append(ctx, entry)
}
