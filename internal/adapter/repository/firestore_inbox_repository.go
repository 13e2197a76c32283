package repository

import (
	"context"
	stderrors "errors"
	"sort"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"caterlink/internal/domain/entity"
	"caterlink/internal/domain/repository"
	"caterlink/pkg/errors"
	"caterlink/pkg/logger"
)

type firestoreInboxRepository struct {
	client *firestore.Client
}

func NewFirestoreInboxRepository(client *firestore.Client) repository.InboxRepository {
	return &firestoreInboxRepository{client: client}
}

func (r *firestoreInboxRepository) Append(ctx context.Context, entry *entity.InboxEntry) error {
	docRef := r.client.Collection(collectionInbox).NewDoc()
	entry.ID = docRef.ID
	if entry.Timestamp == 0 {
		entry.Timestamp = time.Now().UnixMilli()
	}

	_, err := docRef.Set(ctx, inboxEntryToMap(entry))
	if err != nil {
		return errors.Internal("Failed to append inbox entry", err)
	}

	return nil
}

func (r *firestoreInboxRepository) GetByID(ctx context.Context, id string) (*entity.InboxEntry, error) {
	doc, err := r.client.Collection(collectionInbox).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Inbox entry", err)
		}
		return nil, errors.Internal("Failed to get inbox entry", err)
	}

	entry, ok := decodeInboxEntry(doc)
	if !ok {
		return nil, errors.NotFound("Inbox entry", nil)
	}

	return entry, nil
}

func (r *firestoreInboxRepository) ListByParticipant(ctx context.Context, userID string) ([]*entity.InboxEntry, error) {
	docs, err := r.client.Collection(collectionInbox).
		Where("participants", "array-contains", userID).
		Documents(ctx).GetAll()
	if err != nil {
		return nil, errors.Internal("Failed to list inbox entries", err)
	}

	entries := decodeInboxEntries(docs)
	return entries, nil
}

// Resolve commits the four effects of an execution-request decision in one
// transaction: the entry merge, the publication status merge, and the
// response append either all land or none do. The PENDING re-check inside
// the transaction keeps a racing duplicate resolve from moving the
// publication status twice.
func (r *firestoreInboxRepository) Resolve(ctx context.Context, entryID, decision string) (*entity.InboxEntry, error) {
	docRef := r.client.Collection(collectionInbox).Doc(entryID)
	var response *entity.InboxEntry

	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		doc, err := tx.Get(docRef)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return errors.NotFound("Inbox entry", err)
			}
			return err
		}

		entry, ok := decodeInboxEntry(doc)
		if !ok || entry.ActorID == "" || entry.RecipientID == "" || entry.PublicationID == "" {
			return errors.NotFound("Inbox entry", nil)
		}
		if entry.ExecutionStatus != entity.ExecutionPending {
			return errors.Conflict("Execution request already resolved")
		}

		now := time.Now().UnixMilli()
		body := entity.ExecutionResolutionBody(entry.RecipientName, entry.PublicationTitle, decision)

		if err := tx.Set(docRef, map[string]interface{}{
			"executionStatus": decision,
			"body":            body,
			"timestamp":       now,
			"resolvedAt":      now,
		}, firestore.MergeAll); err != nil {
			return err
		}

		publicationStatus := entity.PublicationStatusFor(decision)
		if publicationStatus != "" {
			publicationRef := r.publicationRef(entry.PublicationType, entry.PublicationID)
			if err := tx.Set(publicationRef, map[string]interface{}{
				"status": publicationStatus,
			}, firestore.MergeAll); err != nil {
				return err
			}
		}

		participants := entry.Participants
		if len(participants) == 0 {
			participants = entity.ParticipantsOf(entry.ActorID, entry.RecipientID)
		}

		responseRef := r.client.Collection(collectionInbox).NewDoc()
		response = &entity.InboxEntry{
			ID:               responseRef.ID,
			EntryType:        entity.EntryExecutionResponse,
			Title:            "Execution response",
			Body:             body,
			Timestamp:        now,
			ActorID:          entry.RecipientID,
			ActorName:        entry.RecipientName,
			RecipientID:      entry.ActorID,
			RecipientName:    entry.ActorName,
			PublicationID:    entry.PublicationID,
			PublicationTitle: entry.PublicationTitle,
			PublicationType:  entry.PublicationType,
			ExecutionStatus:  decision,
			Participants:     participants,
		}

		return tx.Set(responseRef, inboxEntryToMap(response))
	})
	if err != nil {
		var appErr *errors.AppError
		if stderrors.As(err, &appErr) {
			return nil, appErr
		}
		return nil, errors.Internal("Failed to resolve execution request", err)
	}

	return response, nil
}

func (r *firestoreInboxRepository) Watch(ctx context.Context, userID string) (<-chan []*entity.InboxEntry, error) {
	out := make(chan []*entity.InboxEntry, 1)
	snaps := r.client.Collection(collectionInbox).
		Where("participants", "array-contains", userID).
		Snapshots(ctx)

	go func() {
		defer close(out)
		defer snaps.Stop()
		for {
			snap, err := snaps.Next()
			if err != nil {
				if ctx.Err() == nil {
					logger.Warn("Inbox snapshot stream ended for %s: %v", userID, err)
				}
				return
			}
			docs, err := snap.Documents.GetAll()
			if err != nil {
				logger.Warn("Failed to read inbox snapshot: %v", err)
				continue
			}
			select {
			case out <- decodeInboxEntries(docs):
			case <-ctx.Done():
				return
			}
		}
	}()

	return out, nil
}

func (r *firestoreInboxRepository) publicationRef(publicationType, id string) *firestore.DocumentRef {
	if publicationType == entity.PublicationOffer {
		return r.client.Collection(collectionOffers).Doc(id)
	}
	return r.client.Collection(collectionRequests).Doc(id)
}

func decodeInboxEntries(docs []*firestore.DocumentSnapshot) []*entity.InboxEntry {
	entries := make([]*entity.InboxEntry, 0, len(docs))
	for _, doc := range docs {
		entry, ok := decodeInboxEntry(doc)
		if !ok {
			logger.Debug("Skipping malformed inbox document %s", doc.Ref.ID)
			continue
		}
		entries = append(entries, entry)
	}
	// Participant queries are unordered; newest first like the client shows them.
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Timestamp > entries[j].Timestamp
	})
	return entries
}

func inboxEntryToMap(entry *entity.InboxEntry) map[string]interface{} {
	payload := map[string]interface{}{
		"entryType":        entry.EntryType,
		"title":            entry.Title,
		"body":             entry.Body,
		"timestamp":        entry.Timestamp,
		"actorId":          entry.ActorID,
		"actorName":        entry.ActorName,
		"recipientId":      entry.RecipientID,
		"recipientName":    entry.RecipientName,
		"publicationId":    entry.PublicationID,
		"publicationTitle": entry.PublicationTitle,
		"publicationType":  entry.PublicationType,
		"participants":     entry.Participants,
	}
	if entry.ExecutionStatus != "" {
		payload["executionStatus"] = entry.ExecutionStatus
	}
	if entry.PublicationStatus != "" {
		payload["publicationStatus"] = entry.PublicationStatus
	}
	if entry.ResolvedAt != 0 {
		payload["resolvedAt"] = entry.ResolvedAt
	}
	return payload
}
