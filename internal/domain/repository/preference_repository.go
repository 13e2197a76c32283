package repository

import (
	"context"

	"caterlink/internal/domain/entity"
)

// Preference set selectors, naming the array field toggled on the
// userPreferences document.
const (
	PreferenceOffers   = "acceptedOffers"
	PreferenceRequests = "acceptedRequests"
)

type PreferenceRepository interface {
	Get(ctx context.Context, userID string) (*entity.Preferences, error)

	// Toggle flips membership of publicationID in the named set inside a
	// single-document transaction, creating the preferences document with
	// two empty sets first when it does not exist. Reports whether the id
	// ended up present.
	Toggle(ctx context.Context, userID, field, publicationID string) (bool, error)

	Watch(ctx context.Context, userID string) (<-chan *entity.Preferences, error)
}
