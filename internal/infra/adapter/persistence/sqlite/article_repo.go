package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"speed/internal/domain/entity"
	"speed/internal/repository"
)

const articleColumns = `id, title, authors, published_date, journal, volume, issue,
       page_start, page_end, doi, keywords, abstract, created_at`

// ArticleRepo implements the ArticleRepository interface using SQLite.
type ArticleRepo struct{ db *sql.DB }

// NewArticleRepo creates a new SQLite-backed article repository.
func NewArticleRepo(db *sql.DB) repository.ArticleRepository {
	return &ArticleRepo{db: db}
}

func scanArticle(s rowScanner) (*entity.Article, error) {
	var (
		a                 entity.Article
		authors, keywords []byte
		createdAt         string
	)
	if err := s.Scan(&a.ID, &a.Title, &authors, &a.Date, &a.Journal,
		&a.Volume, &a.Issue, &a.PageRange[0], &a.PageRange[1],
		&a.DOI, &keywords, &a.Abstract, &createdAt); err != nil {
		return nil, err
	}
	if err := decodeLists(&a.Metadata, authors, keywords); err != nil {
		return nil, err
	}
	t, err := parseTime(createdAt)
	if err != nil {
		return nil, fmt.Errorf("parse created_at: %w", err)
	}
	a.CreatedAt = t
	return &a, nil
}

// List retrieves all articles in insertion order.
func (repo *ArticleRepo) List(ctx context.Context) ([]*entity.Article, error) {
	const query = `
SELECT ` + articleColumns + `
FROM articles
ORDER BY rowid`

	rows, err := repo.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("List: QueryContext: %w", err)
	}
	defer func() { _ = rows.Close() }()

	articles := make([]*entity.Article, 0, 100)
	for rows.Next() {
		a, err := scanArticle(rows)
		if err != nil {
			return nil, fmt.Errorf("List: Scan: %w", err)
		}
		articles = append(articles, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("List: rows.Err: %w", err)
	}
	return articles, nil
}

// Get retrieves a single article by ID. Returns nil if not found.
func (repo *ArticleRepo) Get(ctx context.Context, id string) (*entity.Article, error) {
	const query = `
SELECT ` + articleColumns + `
FROM articles
WHERE id = ?
LIMIT 1`
	a, err := scanArticle(repo.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	return a, nil
}

// GetByDOI retrieves the earliest article stored with the DOI. Returns nil if not found.
func (repo *ArticleRepo) GetByDOI(ctx context.Context, doi string) (*entity.Article, error) {
	const query = `
SELECT ` + articleColumns + `
FROM articles
WHERE doi = ?
ORDER BY rowid
LIMIT 1`
	a, err := scanArticle(repo.db.QueryRowContext(ctx, query, doi))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("GetByDOI: %w", err)
	}
	return a, nil
}

// Create inserts a new article.
func (repo *ArticleRepo) Create(ctx context.Context, a *entity.Article) error {
	authors, keywords, err := encodeLists(a.Metadata)
	if err != nil {
		return fmt.Errorf("Create: %w", err)
	}
	const query = `
INSERT INTO articles
       (id, title, authors, published_date, journal, volume, issue,
        page_start, page_end, doi, keywords, abstract, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err = execWithRetry(ctx, repo.db, query,
		a.ID, a.Title, authors, a.Date, a.Journal,
		a.Volume, a.Issue, a.PageRange.Start(), a.PageRange.End(),
		a.DOI, keywords, a.Abstract, formatTime(a.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("Create: ExecContext: %w", err)
	}
	return nil
}

// CountArticles returns the total number of articles.
func (repo *ArticleRepo) CountArticles(ctx context.Context) (int64, error) {
	var count int64
	if err := repo.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM articles`).Scan(&count); err != nil {
		return 0, fmt.Errorf("CountArticles: %w", err)
	}
	return count, nil
}

// ExistsByDOIBatch checks several DOIs in one query.
func (repo *ArticleRepo) ExistsByDOIBatch(ctx context.Context, dois []string) (map[string]bool, error) {
	return existsByDOIBatch(ctx, repo.db, "articles", dois)
}
