package repository

import (
	"context"

	"caterlink/internal/domain/entity"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)

	// Save merge-upserts the user document, backfilling joinedAt when the
	// caller left it unset.
	Save(ctx context.Context, user *entity.User) error
	UpdateDescription(ctx context.Context, id, description string) error
	Delete(ctx context.Context, id string) error
}
