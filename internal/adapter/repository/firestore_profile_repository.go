package repository

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"caterlink/internal/domain/entity"
	"caterlink/internal/domain/repository"
	"caterlink/pkg/errors"
	"caterlink/pkg/logger"
)

type firestoreProfileRepository struct {
	client *firestore.Client
}

func NewFirestoreProfileRepository(client *firestore.Client) repository.ProfileRepository {
	return &firestoreProfileRepository{client: client}
}

func (r *firestoreProfileRepository) GetByID(ctx context.Context, id string) (*entity.PublicProfile, error) {
	doc, err := r.client.Collection(collectionUsers).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Profile", err)
		}
		return nil, errors.Internal("Failed to get profile", err)
	}

	profile, ok := decodeProfile(doc)
	if !ok {
		return nil, errors.NotFound("Profile", nil)
	}

	return profile, nil
}

func (r *firestoreProfileRepository) List(ctx context.Context) ([]*entity.PublicProfile, error) {
	docs, err := r.client.Collection(collectionUsers).Documents(ctx).GetAll()
	if err != nil {
		return nil, errors.Internal("Failed to list profiles", err)
	}

	return decodeProfiles(docs), nil
}

func (r *firestoreProfileRepository) ApplyReview(ctx context.Context, review repository.ReviewTarget) error {
	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		state, err := r.readAggregate(tx, review.ToID)
		if err != nil {
			return err
		}
		return r.writeAggregate(tx, state, review)
	})
	if err != nil {
		return errors.Internal("Failed to apply review", err)
	}
	return nil
}

// ApplyReviewPair lands both directions of a finished job's reviews in one
// transaction. Firestore requires every read to happen before the first
// write, so both aggregates are read up front.
func (r *firestoreProfileRepository) ApplyReviewPair(ctx context.Context, first, second repository.ReviewTarget) error {
	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		firstState, err := r.readAggregate(tx, first.ToID)
		if err != nil {
			return err
		}
		secondState, err := r.readAggregate(tx, second.ToID)
		if err != nil {
			return err
		}
		if err := r.writeAggregate(tx, firstState, first); err != nil {
			return err
		}
		return r.writeAggregate(tx, secondState, second)
	})
	if err != nil {
		return errors.Internal("Failed to apply review pair", err)
	}
	return nil
}

type aggregateState struct {
	ref       *firestore.DocumentRef
	exists    bool
	aggregate entity.RatingAggregate
}

func (r *firestoreProfileRepository) readAggregate(tx *firestore.Transaction, userID string) (*aggregateState, error) {
	docRef := r.client.Collection(collectionUsers).Doc(userID)

	doc, err := tx.Get(docRef)
	if err != nil {
		if status.Code(err) != codes.NotFound {
			return nil, err
		}
		return &aggregateState{ref: docRef}, nil
	}

	data := doc.Data()
	return &aggregateState{
		ref:    docRef,
		exists: true,
		aggregate: entity.RatingAggregate{
			AverageRating: floatField(data, "averageRating"),
			ReviewCount:   intField(data, "reviewCount"),
			RecentReviews: decodeReviews(data, "recentReviews"),
		},
	}, nil
}

// writeAggregate folds the review in and merges the result back. A missing
// target document gets a minimal skeleton first so a review can land before
// the user ever signed in.
func (r *firestoreProfileRepository) writeAggregate(tx *firestore.Transaction, state *aggregateState, review repository.ReviewTarget) error {
	updated := state.aggregate.Apply(entity.Review{
		ID:         uuid.New().String(),
		AuthorID:   review.FromID,
		AuthorName: review.FromName,
		Rating:     review.Rating,
		Comment:    review.Comment,
	})

	if !state.exists {
		if err := tx.Set(state.ref, map[string]interface{}{
			"displayName": review.ToName,
			"role":        entity.RoleClient,
			"email":       "",
		}, firestore.MergeAll); err != nil {
			return err
		}
	}

	return tx.Set(state.ref, map[string]interface{}{
		"averageRating": updated.AverageRating,
		"reviewCount":   updated.ReviewCount,
		"recentReviews": reviewsToMaps(updated.RecentReviews),
	}, firestore.MergeAll)
}

func (r *firestoreProfileRepository) AppendPreviousWork(ctx context.Context, userID string, work entity.PreviousWork) error {
	docRef := r.client.Collection(collectionUsers).Doc(userID)
	_, err := docRef.Set(ctx, map[string]interface{}{
		"previousWorks": firestore.ArrayUnion(map[string]interface{}{
			"title":       work.Title,
			"description": work.Description,
			"imageUrl":    work.ImageURL,
		}),
	}, firestore.MergeAll)
	if err != nil {
		return errors.Internal("Failed to append previous work", err)
	}
	return nil
}

func (r *firestoreProfileRepository) Watch(ctx context.Context) (<-chan []*entity.PublicProfile, error) {
	out := make(chan []*entity.PublicProfile, 1)
	snaps := r.client.Collection(collectionUsers).Snapshots(ctx)

	go func() {
		defer close(out)
		defer snaps.Stop()
		for {
			snap, err := snaps.Next()
			if err != nil {
				if ctx.Err() == nil {
					logger.Warn("Profile snapshot stream ended: %v", err)
				}
				return
			}
			docs, err := snap.Documents.GetAll()
			if err != nil {
				logger.Warn("Failed to read profile snapshot: %v", err)
				continue
			}
			select {
			case out <- decodeProfiles(docs):
			case <-ctx.Done():
				return
			}
		}
	}()

	return out, nil
}

func decodeProfiles(docs []*firestore.DocumentSnapshot) []*entity.PublicProfile {
	profiles := make([]*entity.PublicProfile, 0, len(docs))
	for _, doc := range docs {
		profile, ok := decodeProfile(doc)
		if !ok {
			logger.Debug("Skipping malformed user document %s", doc.Ref.ID)
			continue
		}
		profiles = append(profiles, profile)
	}
	return profiles
}
