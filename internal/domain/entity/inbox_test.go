package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExecutionRequestBody(t *testing.T) {
	body := ExecutionRequestBody("Alice", "Wedding buffet")

	assert.Equal(t, `Alice requested to execute "Wedding buffet"`, body)
}

func TestExecutionResolutionBody(t *testing.T) {
	assert.Equal(t,
		`Bob accepted the execution of "Wedding buffet"`,
		ExecutionResolutionBody("Bob", "Wedding buffet", ExecutionAccepted))
	assert.Equal(t,
		`Bob rejected the execution of "Wedding buffet"`,
		ExecutionResolutionBody("Bob", "Wedding buffet", ExecutionRejected))
}

func TestPublicationStatusFor(t *testing.T) {
	assert.Equal(t, StatusInProgress, PublicationStatusFor(ExecutionAccepted))
	assert.Equal(t, StatusActive, PublicationStatusFor(ExecutionRejected))
	assert.Equal(t, "", PublicationStatusFor(ExecutionPending))
}

func TestParticipantsOf(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, ParticipantsOf("a", "b"))
	assert.Equal(t, []string{"a"}, ParticipantsOf("a", "a"))
}

func TestOfferTitleFallbacks(t *testing.T) {
	offer := &Offer{AuthorName: "Acme", CateringType: "Buffet", Description: "desc"}
	assert.Equal(t, "Buffet", offer.Title())

	offer.CateringType = ""
	assert.Equal(t, "desc", offer.Title())

	offer.Description = ""
	assert.Equal(t, "Proposal by Acme", offer.Title())
}

func TestRequestTitleFallbacks(t *testing.T) {
	request := &Request{AuthorName: "Alice", CateringType: "Cocktail"}
	assert.Equal(t, "Cocktail", request.Title())

	request.CateringType = ""
	assert.Equal(t, "Request by Alice", request.Title())
}
