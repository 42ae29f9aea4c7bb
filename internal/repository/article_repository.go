package repository

import (
	"context"

	"speed/internal/domain/entity"
)

// ArticleRepository persists published articles.
// Get and GetByDOI return (nil, nil) when no article matches.
type ArticleRepository interface {
	// List returns every published article in insertion order.
	List(ctx context.Context) ([]*entity.Article, error)
	Get(ctx context.Context, id string) (*entity.Article, error)
	// GetByDOI returns the first article stored with the DOI.
	// DOI uniqueness is not enforced, so duplicates may exist.
	GetByDOI(ctx context.Context, doi string) (*entity.Article, error)
	Create(ctx context.Context, article *entity.Article) error
	// CountArticles returns the total number of published articles.
	CountArticles(ctx context.Context) (int64, error)
	// ExistsByDOIBatch checks several DOIs in one query.
	ExistsByDOIBatch(ctx context.Context, dois []string) (map[string]bool, error)
}
