package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"caterlink/internal/domain/entity"
)

func newPreferenceFixture(offers []*entity.Offer, requests []*entity.Request) (*PreferenceUseCase, *fakeInboxRepo) {
	inboxRepo := &fakeInboxRepo{}
	uc := NewPreferenceUseCase(
		newFakePreferenceRepo(),
		newFakeOfferRepo(offers...),
		newFakeRequestRepo(requests...),
		NewInboxUseCase(inboxRepo),
	)
	return uc, inboxRepo
}

func TestToggleOfferSendsExecutionRequest(t *testing.T) {
	offer := &entity.Offer{ID: "offer-1", AuthorID: "company-1", AuthorName: "Acme", CateringType: "Buffet"}
	uc, inboxRepo := newPreferenceFixture([]*entity.Offer{offer}, nil)

	client := &entity.User{ID: "client-1", DisplayName: "Alice"}
	result, err := uc.ToggleOffer(context.Background(), client, "offer-1")

	require.NoError(t, err)
	assert.True(t, result.Accepted)

	require.Len(t, inboxRepo.entries, 1)
	entry := inboxRepo.entries[0]
	assert.Equal(t, entity.EntryExecutionRequest, entry.EntryType)
	assert.Equal(t, "client-1", entry.ActorID)
	assert.Equal(t, "company-1", entry.RecipientID)
	assert.Equal(t, "Buffet", entry.PublicationTitle)
}

func TestToggleOwnOfferIsSilent(t *testing.T) {
	offer := &entity.Offer{ID: "offer-1", AuthorID: "company-1", AuthorName: "Acme"}
	uc, inboxRepo := newPreferenceFixture([]*entity.Offer{offer}, nil)

	author := &entity.User{ID: "company-1", DisplayName: "Acme"}
	result, err := uc.ToggleOffer(context.Background(), author, "offer-1")

	require.NoError(t, err)
	assert.True(t, result.Accepted)
	assert.Empty(t, inboxRepo.entries)
}

func TestToggleOffDoesNotNotify(t *testing.T) {
	offer := &entity.Offer{ID: "offer-1", AuthorID: "company-1", AuthorName: "Acme"}
	uc, inboxRepo := newPreferenceFixture([]*entity.Offer{offer}, nil)

	client := &entity.User{ID: "client-1"}
	_, err := uc.ToggleOffer(context.Background(), client, "offer-1")
	require.NoError(t, err)

	result, err := uc.ToggleOffer(context.Background(), client, "offer-1")
	require.NoError(t, err)
	assert.False(t, result.Accepted)

	// Only the first toggle-on produced an entry.
	assert.Len(t, inboxRepo.entries, 1)
}

func TestToggleMissingOfferStillToggles(t *testing.T) {
	uc, inboxRepo := newPreferenceFixture(nil, nil)

	client := &entity.User{ID: "client-1"}
	result, err := uc.ToggleOffer(context.Background(), client, "ghost")

	require.NoError(t, err)
	assert.True(t, result.Accepted)
	assert.Empty(t, inboxRepo.entries)
}

func TestToggleRequestSendsExecutionRequest(t *testing.T) {
	request := &entity.Request{ID: "request-1", AuthorID: "client-1", AuthorName: "Alice", CateringType: "Cocktail"}
	uc, inboxRepo := newPreferenceFixture(nil, []*entity.Request{request})

	company := &entity.User{ID: "company-1", DisplayName: "Acme"}
	result, err := uc.ToggleRequest(context.Background(), company, "request-1")

	require.NoError(t, err)
	assert.True(t, result.Accepted)

	require.Len(t, inboxRepo.entries, 1)
	entry := inboxRepo.entries[0]
	assert.Equal(t, entity.PublicationRequest, entry.PublicationType)
	assert.Equal(t, "company-1", entry.ActorID)
	assert.Equal(t, "client-1", entry.RecipientID)
}

func TestToggleTracksBothSetsIndependently(t *testing.T) {
	offer := &entity.Offer{ID: "p1", AuthorID: "company-1", AuthorName: "Acme"}
	request := &entity.Request{ID: "p1", AuthorID: "client-2", AuthorName: "Bob"}
	uc, _ := newPreferenceFixture([]*entity.Offer{offer}, []*entity.Request{request})

	user := &entity.User{ID: "client-1"}
	_, err := uc.ToggleOffer(context.Background(), user, "p1")
	require.NoError(t, err)
	_, err = uc.ToggleRequest(context.Background(), user, "p1")
	require.NoError(t, err)

	prefs, err := uc.Get(context.Background(), "client-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"p1"}, prefs.AcceptedOffers)
	assert.Equal(t, []string{"p1"}, prefs.AcceptedRequests)
}
