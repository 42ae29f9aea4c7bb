package repository

import (
	"context"

	"speed/internal/domain/entity"
)

// QueueCounts holds the number of queued submissions per moderation state.
type QueueCounts struct {
	Unmoderated int64
	Moderated   int64
}

// QueuedArticleRepository persists submissions waiting for review.
type QueuedArticleRepository interface {
	// ListByModeration returns queued records with the given isModerated flag
	// in submission order.
	ListByModeration(ctx context.Context, moderated bool) ([]*entity.QueuedArticle, error)
	// Get returns (nil, nil) when the record does not exist.
	Get(ctx context.Context, id string) (*entity.QueuedArticle, error)
	Create(ctx context.Context, article *entity.QueuedArticle) error
	// Update overwrites every mutable field of the record.
	// It returns entity.ErrNotFound when no row matches.
	Update(ctx context.Context, article *entity.QueuedArticle) error
	// Delete returns entity.ErrNotFound when no row matches.
	Delete(ctx context.Context, id string) error
	CountByModeration(ctx context.Context) (QueueCounts, error)
}
