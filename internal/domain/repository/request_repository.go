package repository

import (
	"context"

	"caterlink/internal/domain/entity"
)

type RequestRepository interface {
	Create(ctx context.Context, request *entity.Request) error
	GetByID(ctx context.Context, id string) (*entity.Request, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Request, int64, error)
	UpdateFields(ctx context.Context, id string, fields map[string]interface{}) error
	UpdateStatus(ctx context.Context, id string, status string) error
	Delete(ctx context.Context, id string) error
	Watch(ctx context.Context) (<-chan []*entity.Request, error)
}
