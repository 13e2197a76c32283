package entity

import "fmt"

const (
	EntryStatusChange      = "STATUS_CHANGE"
	EntryExecutionRequest  = "EXECUTION_REQUEST"
	EntryExecutionResponse = "EXECUTION_RESPONSE"
)

const (
	ExecutionPending  = "PENDING"
	ExecutionAccepted = "ACCEPTED"
	ExecutionRejected = "REJECTED"
)

// InboxEntry is an append-only notification/message document. Entries of
// type EXECUTION_REQUEST carry the accept/reject state machine in
// ExecutionStatus; the other types are pure notifications.
type InboxEntry struct {
	ID                string   `json:"id" firestore:"id"`
	EntryType         string   `json:"entry_type" firestore:"entryType"`
	Title             string   `json:"title" firestore:"title"`
	Body              string   `json:"body" firestore:"body"`
	Timestamp         int64    `json:"timestamp" firestore:"timestamp"`
	ActorID           string   `json:"actor_id" firestore:"actorId"`
	ActorName         string   `json:"actor_name" firestore:"actorName"`
	RecipientID       string   `json:"recipient_id" firestore:"recipientId"`
	RecipientName     string   `json:"recipient_name" firestore:"recipientName"`
	PublicationID     string   `json:"publication_id" firestore:"publicationId"`
	PublicationTitle  string   `json:"publication_title" firestore:"publicationTitle"`
	PublicationType   string   `json:"publication_type" firestore:"publicationType"`
	ExecutionStatus   string   `json:"execution_status,omitempty" firestore:"executionStatus,omitempty"`
	PublicationStatus string   `json:"publication_status,omitempty" firestore:"publicationStatus,omitempty"`
	ResolvedAt        int64    `json:"resolved_at,omitempty" firestore:"resolvedAt,omitempty"`
	Participants      []string `json:"participants" firestore:"participants"`
}

// ExecutionRequestBody synthesizes the human-readable line shown for a new
// execution request.
func ExecutionRequestBody(requesterName, publicationTitle string) string {
	return fmt.Sprintf("%s requested to execute %q", requesterName, publicationTitle)
}

// ExecutionResolutionBody regenerates the entry body once the recipient has
// decided.
func ExecutionResolutionBody(recipientName, publicationTitle, decision string) string {
	switch decision {
	case ExecutionAccepted:
		return fmt.Sprintf("%s accepted the execution of %q", recipientName, publicationTitle)
	case ExecutionRejected:
		return fmt.Sprintf("%s rejected the execution of %q", recipientName, publicationTitle)
	}
	return fmt.Sprintf("%s updated the request", recipientName)
}

func StatusChangeBody(actorName, status string) string {
	return fmt.Sprintf("%s changed the status to %s", actorName, status)
}

// PublicationStatusFor maps an execution decision to the publication status
// the resolve transaction merges: accept puts the job in progress, reject
// returns it to the open pool.
func PublicationStatusFor(decision string) string {
	switch decision {
	case ExecutionAccepted:
		return StatusInProgress
	case ExecutionRejected:
		return StatusActive
	}
	return ""
}

// ParticipantsOf deduplicates the two sides of a thread; self-addressed
// entries collapse to a single participant.
func ParticipantsOf(a, b string) []string {
	if a == b {
		return []string{a}
	}
	return []string{a, b}
}
