package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"caterlink/internal/domain/entity"
	"caterlink/pkg/errors"
)

func pendingRequest(requesterID, recipientID string) *entity.InboxEntry {
	return &entity.InboxEntry{
		ID:               "entry-1",
		EntryType:        entity.EntryExecutionRequest,
		ActorID:          requesterID,
		ActorName:        "Requester",
		RecipientID:      recipientID,
		RecipientName:    "Recipient",
		PublicationID:    "offer-1",
		PublicationTitle: "Buffet",
		PublicationType:  entity.PublicationOffer,
		ExecutionStatus:  entity.ExecutionPending,
		Participants:     entity.ParticipantsOf(requesterID, recipientID),
	}
}

func TestSubmitExecutionRequest(t *testing.T) {
	inboxRepo := &fakeInboxRepo{}
	uc := NewInboxUseCase(inboxRepo)

	entry, err := uc.SubmitExecutionRequest(context.Background(), ExecutionRequestInput{
		PublicationID:    "offer-1",
		PublicationTitle: "Buffet",
		PublicationType:  entity.PublicationOffer,
		RequesterID:      "client-1",
		RequesterName:    "Alice",
		RecipientID:      "company-1",
		RecipientName:    "Acme",
	})

	require.NoError(t, err)
	assert.Equal(t, entity.EntryExecutionRequest, entry.EntryType)
	assert.Equal(t, entity.ExecutionPending, entry.ExecutionStatus)
	assert.Equal(t, `Alice requested to execute "Buffet"`, entry.Body)
	assert.ElementsMatch(t, []string{"client-1", "company-1"}, entry.Participants)
	assert.Len(t, inboxRepo.entries, 1)
}

func TestSubmitExecutionRequestToSelf(t *testing.T) {
	uc := NewInboxUseCase(&fakeInboxRepo{})

	_, err := uc.SubmitExecutionRequest(context.Background(), ExecutionRequestInput{
		RequesterID: "u1",
		RecipientID: "u1",
	})

	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}

func TestSubmitExecutionRequestTitleFallback(t *testing.T) {
	inboxRepo := &fakeInboxRepo{}
	uc := NewInboxUseCase(inboxRepo)

	entry, err := uc.SubmitExecutionRequest(context.Background(), ExecutionRequestInput{
		PublicationID:   "offer-1",
		PublicationType: entity.PublicationOffer,
		RequesterID:     "client-1",
		RequesterName:   "Alice",
		RecipientID:     "company-1",
		RecipientName:   "Acme",
	})

	require.NoError(t, err)
	assert.Equal(t, "Proposal by Acme", entry.PublicationTitle)
}

func TestRespondAccept(t *testing.T) {
	inboxRepo := &fakeInboxRepo{}
	inboxRepo.entries = append(inboxRepo.entries, pendingRequest("client-1", "company-1"))
	uc := NewInboxUseCase(inboxRepo)

	recipient := &entity.User{ID: "company-1", DisplayName: "Acme"}
	entry, err := uc.Respond(context.Background(), recipient, "entry-1", entity.ExecutionAccepted)

	require.NoError(t, err)
	assert.Equal(t, entity.ExecutionAccepted, entry.ExecutionStatus)

	// The resolution appends the mirrored response entry.
	response := inboxRepo.lastEntry()
	assert.Equal(t, entity.EntryExecutionResponse, response.EntryType)
	assert.Equal(t, "company-1", response.ActorID)
	assert.Equal(t, "client-1", response.RecipientID)
}

func TestRespondRejectsInvalidDecision(t *testing.T) {
	uc := NewInboxUseCase(&fakeInboxRepo{})

	_, err := uc.Respond(context.Background(), &entity.User{ID: "u1"}, "entry-1", "MAYBE")

	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}

func TestRespondOnlyRecipientMayDecide(t *testing.T) {
	inboxRepo := &fakeInboxRepo{}
	inboxRepo.entries = append(inboxRepo.entries, pendingRequest("client-1", "company-1"))
	uc := NewInboxUseCase(inboxRepo)

	intruder := &entity.User{ID: "someone-else"}
	_, err := uc.Respond(context.Background(), intruder, "entry-1", entity.ExecutionAccepted)

	assert.True(t, errors.Is(err, "FORBIDDEN"))
}

func TestRespondAlreadyResolved(t *testing.T) {
	inboxRepo := &fakeInboxRepo{}
	entry := pendingRequest("client-1", "company-1")
	entry.ExecutionStatus = entity.ExecutionRejected
	inboxRepo.entries = append(inboxRepo.entries, entry)
	uc := NewInboxUseCase(inboxRepo)

	recipient := &entity.User{ID: "company-1"}
	_, err := uc.Respond(context.Background(), recipient, "entry-1", entity.ExecutionAccepted)

	assert.True(t, errors.Is(err, "CONFLICT"))
}

func TestRespondRejectsNonExecutionEntry(t *testing.T) {
	inboxRepo := &fakeInboxRepo{}
	entry := pendingRequest("client-1", "company-1")
	entry.EntryType = entity.EntryStatusChange
	inboxRepo.entries = append(inboxRepo.entries, entry)
	uc := NewInboxUseCase(inboxRepo)

	recipient := &entity.User{ID: "company-1"}
	_, err := uc.Respond(context.Background(), recipient, "entry-1", entity.ExecutionAccepted)

	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}

func TestNotifyStatusChange(t *testing.T) {
	inboxRepo := &fakeInboxRepo{}
	uc := NewInboxUseCase(inboxRepo)

	err := uc.NotifyStatusChange(context.Background(), StatusChangeInput{
		PublicationID:    "offer-1",
		PublicationTitle: "Buffet",
		PublicationType:  entity.PublicationOffer,
		Status:           entity.StatusCancelled,
		ActorID:          "client-1",
		ActorName:        "Alice",
		RecipientID:      "company-1",
		RecipientName:    "Acme",
	})

	require.NoError(t, err)
	entry := inboxRepo.lastEntry()
	assert.Equal(t, entity.EntryStatusChange, entry.EntryType)
	assert.Equal(t, "Alice changed the status to CANCELLED", entry.Body)
	assert.Equal(t, entity.StatusCancelled, entry.PublicationStatus)
}
