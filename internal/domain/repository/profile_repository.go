package repository

import (
	"context"

	"caterlink/internal/domain/entity"
)

// ReviewTarget carries one directed review: who wrote it and whose profile
// aggregate it lands on.
type ReviewTarget struct {
	FromID   string
	FromName string
	ToID     string
	ToName   string
	Rating   int
	Comment  string
}

// ProfileRepository reads the public projection of the users collection and
// owns the transactional rating aggregation.
type ProfileRepository interface {
	GetByID(ctx context.Context, id string) (*entity.PublicProfile, error)
	List(ctx context.Context) ([]*entity.PublicProfile, error)

	// ApplyReview runs the single-document rating transaction against the
	// target's document, creating a skeleton profile when it is missing.
	ApplyReview(ctx context.Context, review ReviewTarget) error

	// ApplyReviewPair applies both directions of a finished job's reviews
	// in one two-document transaction; both commit or neither does.
	ApplyReviewPair(ctx context.Context, first, second ReviewTarget) error

	AppendPreviousWork(ctx context.Context, userID string, work entity.PreviousWork) error

	Watch(ctx context.Context) (<-chan []*entity.PublicProfile, error)
}
