package repository

import (
	"context"

	"caterlink/internal/domain/entity"
)

type InboxRepository interface {
	// Append writes one new entry; entries are never edited outside of
	// Resolve.
	Append(ctx context.Context, entry *entity.InboxEntry) error
	GetByID(ctx context.Context, id string) (*entity.InboxEntry, error)
	ListByParticipant(ctx context.Context, userID string) ([]*entity.InboxEntry, error)

	// Resolve runs the execution-response transaction: it merges the
	// decision into the originating entry, moves the referenced
	// publication's status, and appends the EXECUTION_RESPONSE entry, all
	// atomically. Entries that are missing, incomplete, or no longer
	// PENDING abort with a conflict.
	Resolve(ctx context.Context, entryID, decision string) (*entity.InboxEntry, error)

	Watch(ctx context.Context, userID string) (<-chan []*entity.InboxEntry, error)
}
