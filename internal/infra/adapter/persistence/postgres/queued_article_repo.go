package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"speed/internal/domain/entity"
	"speed/internal/infra/adapter/persistence/columns"
	"speed/internal/repository"
)

const queuedColumns = `id, title, authors, published_date, journal, volume, issue,
       page_start, page_end, doi, keywords, abstract, is_moderated, submitted_at, updated_at`

// QueuedArticleRepo stores submissions awaiting moderation and analysis.
type QueuedArticleRepo struct {
	db *sql.DB
}

func NewQueuedArticleRepo(db *sql.DB) repository.QueuedArticleRepository {
	return &QueuedArticleRepo{db: db}
}

func scanQueued(s rowScanner) (*entity.QueuedArticle, error) {
	var (
		q                 entity.QueuedArticle
		authors, keywords []byte
	)
	if err := s.Scan(&q.ID, &q.Title, &authors, &q.Date, &q.Journal,
		&q.Volume, &q.Issue, &q.PageRange[0], &q.PageRange[1],
		&q.DOI, &keywords, &q.Abstract, &q.IsModerated, &q.SubmittedAt, &q.UpdatedAt); err != nil {
		return nil, err
	}
	var err error
	if q.Authors, err = columns.DecodeList(authors); err != nil {
		return nil, err
	}
	if q.Keywords, err = columns.DecodeList(keywords); err != nil {
		return nil, err
	}
	return &q, nil
}

func (repo *QueuedArticleRepo) ListByModeration(ctx context.Context, moderated bool) ([]*entity.QueuedArticle, error) {
	const query = `
SELECT ` + queuedColumns + `
FROM queued_articles
WHERE is_moderated = $1
ORDER BY seq`
	rows, err := repo.db.QueryContext(ctx, query, moderated)
	if err != nil {
		return nil, fmt.Errorf("ListByModeration: %w", err)
	}
	defer func() { _ = rows.Close() }()

	out := make([]*entity.QueuedArticle, 0, 32)
	for rows.Next() {
		q, err := scanQueued(rows)
		if err != nil {
			return nil, fmt.Errorf("ListByModeration: Scan: %w", err)
		}
		out = append(out, q)
	}
	return out, rows.Err()
}

func (repo *QueuedArticleRepo) Get(ctx context.Context, id string) (*entity.QueuedArticle, error) {
	const query = `
SELECT ` + queuedColumns + `
FROM queued_articles
WHERE id = $1
LIMIT 1`
	q, err := scanQueued(repo.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	return q, nil
}

func (repo *QueuedArticleRepo) Create(ctx context.Context, q *entity.QueuedArticle) error {
	authors, keywords, err := encodeLists(q.Metadata)
	if err != nil {
		return fmt.Errorf("Create: %w", err)
	}

	const query = `
INSERT INTO queued_articles
       (id, title, authors, published_date, journal, volume, issue,
        page_start, page_end, doi, keywords, abstract, is_moderated, submitted_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err = repo.db.ExecContext(ctx, query,
		q.ID, q.Title, authors, q.Date, q.Journal,
		q.Volume, q.Issue, q.PageRange.Start(), q.PageRange.End(),
		q.DOI, keywords, q.Abstract, q.IsModerated, q.SubmittedAt, q.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("Create: %w", err)
	}
	return nil
}

func (repo *QueuedArticleRepo) Update(ctx context.Context, q *entity.QueuedArticle) error {
	authors, keywords, err := encodeLists(q.Metadata)
	if err != nil {
		return fmt.Errorf("Update: %w", err)
	}

	const query = `
UPDATE queued_articles SET
       title          = $1,
       authors        = $2,
       published_date = $3,
       journal        = $4,
       volume         = $5,
       issue          = $6,
       page_start     = $7,
       page_end       = $8,
       doi            = $9,
       keywords       = $10,
       abstract       = $11,
       is_moderated   = $12,
       updated_at     = $13
WHERE id = $14`
	res, err := repo.db.ExecContext(ctx, query,
		q.Title, authors, q.Date, q.Journal,
		q.Volume, q.Issue, q.PageRange.Start(), q.PageRange.End(),
		q.DOI, keywords, q.Abstract, q.IsModerated, q.UpdatedAt, q.ID,
	)
	if err != nil {
		return fmt.Errorf("Update: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("Update: %w", entity.ErrNotFound)
	}
	return nil
}

func (repo *QueuedArticleRepo) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM queued_articles WHERE id = $1`
	res, err := repo.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("Delete: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("Delete: %w", entity.ErrNotFound)
	}
	return nil
}

func (repo *QueuedArticleRepo) CountByModeration(ctx context.Context) (repository.QueueCounts, error) {
	const query = `
SELECT COUNT(*) FILTER (WHERE NOT is_moderated),
       COUNT(*) FILTER (WHERE is_moderated)
FROM queued_articles`
	var counts repository.QueueCounts
	if err := repo.db.QueryRowContext(ctx, query).Scan(&counts.Unmoderated, &counts.Moderated); err != nil {
		return repository.QueueCounts{}, fmt.Errorf("CountByModeration: %w", err)
	}
	return counts, nil
}

func encodeLists(m entity.Metadata) (authors, keywords string, err error) {
	if authors, err = columns.EncodeList(m.Authors); err != nil {
		return "", "", err
	}
	if keywords, err = columns.EncodeList(m.Keywords); err != nil {
		return "", "", err
	}
	return authors, keywords, nil
}
