package repository

import (
	"context"

	"speed/internal/domain/entity"
)

// RejectedEntryRepository persists DOIs of rejected submissions.
type RejectedEntryRepository interface {
	// List returns rejected entries, most recent first.
	List(ctx context.Context) ([]*entity.RejectedEntry, error)
	Create(ctx context.Context, entry *entity.RejectedEntry) error
	CountRejected(ctx context.Context) (int64, error)
	ExistsByDOIBatch(ctx context.Context, dois []string) (map[string]bool, error)
}
