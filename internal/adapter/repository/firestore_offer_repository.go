package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"caterlink/internal/domain/entity"
	"caterlink/internal/domain/repository"
	"caterlink/pkg/errors"
	"caterlink/pkg/logger"
)

type firestoreOfferRepository struct {
	client *firestore.Client
}

func NewFirestoreOfferRepository(client *firestore.Client) repository.OfferRepository {
	return &firestoreOfferRepository{client: client}
}

func (r *firestoreOfferRepository) Create(ctx context.Context, offer *entity.Offer) error {
	docRef := r.client.Collection(collectionOffers).NewDoc()
	offer.ID = docRef.ID
	offer.Status = entity.StatusActive
	offer.CreatedAt = time.Now().UnixMilli()

	payload := map[string]interface{}{
		"authorId":      offer.AuthorID,
		"authorName":    offer.AuthorName,
		"priceRange":    offer.PriceRange,
		"peopleRange":   offer.PeopleRange,
		"locationRange": offer.LocationRange,
		"description":   offer.Description,
		"cateringType":  offer.CateringType,
		"status":        offer.Status,
		"createdAt":     offer.CreatedAt,
	}

	_, err := docRef.Set(ctx, payload)
	if err != nil {
		return errors.Internal("Failed to create offer", err)
	}

	return nil
}

func (r *firestoreOfferRepository) GetByID(ctx context.Context, id string) (*entity.Offer, error) {
	doc, err := r.client.Collection(collectionOffers).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Offer", err)
		}
		return nil, errors.Internal("Failed to get offer", err)
	}

	offer, ok := decodeOffer(doc)
	if !ok {
		return nil, errors.NotFound("Offer", nil)
	}

	return offer, nil
}

func (r *firestoreOfferRepository) List(ctx context.Context, limit, offset int) ([]*entity.Offer, int64, error) {
	docs, err := r.client.Collection(collectionOffers).Documents(ctx).GetAll()
	if err != nil {
		return nil, 0, errors.Internal("Failed to list offers", err)
	}

	all := make([]*entity.Offer, 0, len(docs))
	for _, doc := range docs {
		offer, ok := decodeOffer(doc)
		if !ok {
			logger.Debug("Skipping malformed offer document %s", doc.Ref.ID)
			continue
		}
		all = append(all, offer)
	}

	total := int64(len(all))
	if offset >= len(all) {
		return []*entity.Offer{}, total, nil
	}
	all = all[offset:]
	if limit > 0 && len(all) > limit {
		all = all[:limit]
	}

	return all, total, nil
}

func (r *firestoreOfferRepository) UpdateFields(ctx context.Context, id string, fields map[string]interface{}) error {
	_, err := r.client.Collection(collectionOffers).Doc(id).Set(ctx, fields, firestore.MergeAll)
	if err != nil {
		return errors.Internal("Failed to update offer", err)
	}
	return nil
}

func (r *firestoreOfferRepository) UpdateStatus(ctx context.Context, id string, newStatus string) error {
	_, err := r.client.Collection(collectionOffers).Doc(id).Set(ctx, map[string]interface{}{
		"status": newStatus,
	}, firestore.MergeAll)
	if err != nil {
		return errors.Internal("Failed to update offer status", err)
	}
	return nil
}

func (r *firestoreOfferRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection(collectionOffers).Doc(id).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete offer", err)
	}
	return nil
}

func (r *firestoreOfferRepository) Watch(ctx context.Context) (<-chan []*entity.Offer, error) {
	out := make(chan []*entity.Offer, 1)
	snaps := r.client.Collection(collectionOffers).Snapshots(ctx)

	go func() {
		defer close(out)
		defer snaps.Stop()
		for {
			snap, err := snaps.Next()
			if err != nil {
				if ctx.Err() == nil {
					logger.Warn("Offer snapshot stream ended: %v", err)
				}
				return
			}
			docs, err := snap.Documents.GetAll()
			if err != nil {
				logger.Warn("Failed to read offer snapshot: %v", err)
				continue
			}
			offers := make([]*entity.Offer, 0, len(docs))
			for _, doc := range docs {
				if offer, ok := decodeOffer(doc); ok {
					offers = append(offers, offer)
				}
			}
			select {
			case out <- offers:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out, nil
}
