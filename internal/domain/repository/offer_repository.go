package repository

import (
	"context"

	"caterlink/internal/domain/entity"
)

type OfferRepository interface {
	Create(ctx context.Context, offer *entity.Offer) error
	GetByID(ctx context.Context, id string) (*entity.Offer, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Offer, int64, error)

	// UpdateFields merges the given fields into the document; omitted
	// fields are left untouched.
	UpdateFields(ctx context.Context, id string, fields map[string]interface{}) error
	UpdateStatus(ctx context.Context, id string, status string) error
	Delete(ctx context.Context, id string) error

	// Watch pushes the full offer collection on every snapshot until ctx
	// is cancelled.
	Watch(ctx context.Context) (<-chan []*entity.Offer, error)
}
