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

type firestoreRequestRepository struct {
	client *firestore.Client
}

func NewFirestoreRequestRepository(client *firestore.Client) repository.RequestRepository {
	return &firestoreRequestRepository{client: client}
}

func (r *firestoreRequestRepository) Create(ctx context.Context, request *entity.Request) error {
	docRef := r.client.Collection(collectionRequests).NewDoc()
	request.ID = docRef.ID
	request.Status = entity.StatusActive
	request.CreatedAt = time.Now().UnixMilli()

	services := request.Services
	if services == nil {
		services = []string{}
	}

	payload := map[string]interface{}{
		"authorId":     request.AuthorID,
		"authorName":   request.AuthorName,
		"priceRange":   request.PriceRange,
		"peopleCount":  request.PeopleCount,
		"services":     services,
		"cateringType": request.CateringType,
		"location":     request.Location,
		"eventDate":    request.EventDate,
		"notes":        request.Notes,
		"status":       request.Status,
		"createdAt":    request.CreatedAt,
	}

	_, err := docRef.Set(ctx, payload)
	if err != nil {
		return errors.Internal("Failed to create request", err)
	}

	return nil
}

func (r *firestoreRequestRepository) GetByID(ctx context.Context, id string) (*entity.Request, error) {
	doc, err := r.client.Collection(collectionRequests).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Request", err)
		}
		return nil, errors.Internal("Failed to get request", err)
	}

	request, ok := decodeRequest(doc)
	if !ok {
		return nil, errors.NotFound("Request", nil)
	}

	return request, nil
}

func (r *firestoreRequestRepository) List(ctx context.Context, limit, offset int) ([]*entity.Request, int64, error) {
	docs, err := r.client.Collection(collectionRequests).Documents(ctx).GetAll()
	if err != nil {
		return nil, 0, errors.Internal("Failed to list requests", err)
	}

	all := make([]*entity.Request, 0, len(docs))
	for _, doc := range docs {
		request, ok := decodeRequest(doc)
		if !ok {
			logger.Debug("Skipping malformed request document %s", doc.Ref.ID)
			continue
		}
		all = append(all, request)
	}

	total := int64(len(all))
	if offset >= len(all) {
		return []*entity.Request{}, total, nil
	}
	all = all[offset:]
	if limit > 0 && len(all) > limit {
		all = all[:limit]
	}

	return all, total, nil
}

func (r *firestoreRequestRepository) UpdateFields(ctx context.Context, id string, fields map[string]interface{}) error {
	_, err := r.client.Collection(collectionRequests).Doc(id).Set(ctx, fields, firestore.MergeAll)
	if err != nil {
		return errors.Internal("Failed to update request", err)
	}
	return nil
}

func (r *firestoreRequestRepository) UpdateStatus(ctx context.Context, id string, newStatus string) error {
	_, err := r.client.Collection(collectionRequests).Doc(id).Set(ctx, map[string]interface{}{
		"status": newStatus,
	}, firestore.MergeAll)
	if err != nil {
		return errors.Internal("Failed to update request status", err)
	}
	return nil
}

func (r *firestoreRequestRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection(collectionRequests).Doc(id).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete request", err)
	}
	return nil
}

func (r *firestoreRequestRepository) Watch(ctx context.Context) (<-chan []*entity.Request, error) {
	out := make(chan []*entity.Request, 1)
	snaps := r.client.Collection(collectionRequests).Snapshots(ctx)

	go func() {
		defer close(out)
		defer snaps.Stop()
		for {
			snap, err := snaps.Next()
			if err != nil {
				if ctx.Err() == nil {
					logger.Warn("Request snapshot stream ended: %v", err)
				}
				return
			}
			docs, err := snap.Documents.GetAll()
			if err != nil {
				logger.Warn("Failed to read request snapshot: %v", err)
				continue
			}
			requests := make([]*entity.Request, 0, len(docs))
			for _, doc := range docs {
				if request, ok := decodeRequest(doc); ok {
					requests = append(requests, request)
				}
			}
			select {
			case out <- requests:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out, nil
}
