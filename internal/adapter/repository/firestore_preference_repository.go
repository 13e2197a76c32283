package repository

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"caterlink/internal/domain/entity"
	"caterlink/internal/domain/repository"
	"caterlink/pkg/errors"
	"caterlink/pkg/logger"
)

type firestorePreferenceRepository struct {
	client *firestore.Client
}

func NewFirestorePreferenceRepository(client *firestore.Client) repository.PreferenceRepository {
	return &firestorePreferenceRepository{client: client}
}

func (r *firestorePreferenceRepository) Get(ctx context.Context, userID string) (*entity.Preferences, error) {
	doc, err := r.client.Collection(collectionPreferences).Doc(userID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return &entity.Preferences{AcceptedOffers: []string{}, AcceptedRequests: []string{}}, nil
		}
		return nil, errors.Internal("Failed to get preferences", err)
	}

	return decodePreferences(doc), nil
}

// Toggle is the one true read-modify-write set update in the system. The
// whole flip runs inside a transaction so concurrent toggles from multiple
// devices of the same user serialize on Firestore's optimistic retry, and
// a missing preferences document is created with two empty sets in the same
// transaction to avoid a lost-create race.
func (r *firestorePreferenceRepository) Toggle(ctx context.Context, userID, field, publicationID string) (bool, error) {
	if field != repository.PreferenceOffers && field != repository.PreferenceRequests {
		return false, errors.BadRequest("Unknown preference set", nil)
	}

	docRef := r.client.Collection(collectionPreferences).Doc(userID)
	var added bool

	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		doc, err := tx.Get(docRef)
		exists := true
		if err != nil {
			if status.Code(err) != codes.NotFound {
				return err
			}
			exists = false
		}

		var current []string
		if exists {
			current = strSlice(doc.Data(), field)
		}
		updated, nowPresent := entity.ToggleMember(current, publicationID)
		added = nowPresent

		if !exists {
			if err := tx.Set(docRef, map[string]interface{}{
				repository.PreferenceOffers:   []string{},
				repository.PreferenceRequests: []string{},
			}, firestore.MergeAll); err != nil {
				return err
			}
		}

		return tx.Set(docRef, map[string]interface{}{field: updated}, firestore.MergeAll)
	})
	if err != nil {
		return false, errors.Internal("Failed to toggle preference", err)
	}

	return added, nil
}

func (r *firestorePreferenceRepository) Watch(ctx context.Context, userID string) (<-chan *entity.Preferences, error) {
	out := make(chan *entity.Preferences, 1)
	snaps := r.client.Collection(collectionPreferences).Doc(userID).Snapshots(ctx)

	go func() {
		defer close(out)
		defer snaps.Stop()
		for {
			doc, err := snaps.Next()
			if err != nil {
				if ctx.Err() == nil {
					logger.Warn("Preferences snapshot stream ended for %s: %v", userID, err)
				}
				return
			}
			prefs := &entity.Preferences{AcceptedOffers: []string{}, AcceptedRequests: []string{}}
			if doc.Exists() {
				prefs = decodePreferences(doc)
			}
			select {
			case out <- prefs:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out, nil
}

func decodePreferences(doc *firestore.DocumentSnapshot) *entity.Preferences {
	data := doc.Data()
	prefs := &entity.Preferences{
		AcceptedOffers:   strSlice(data, repository.PreferenceOffers),
		AcceptedRequests: strSlice(data, repository.PreferenceRequests),
	}
	if prefs.AcceptedOffers == nil {
		prefs.AcceptedOffers = []string{}
	}
	if prefs.AcceptedRequests == nil {
		prefs.AcceptedRequests = []string{}
	}
	return prefs
}
