package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"speed/internal/domain/entity"
	"speed/internal/repository"
)

const queuedColumns = `id, title, authors, published_date, journal, volume, issue,
       page_start, page_end, doi, keywords, abstract, is_moderated, submitted_at, updated_at`

// QueuedArticleRepo implements the QueuedArticleRepository interface using SQLite.
type QueuedArticleRepo struct{ db *sql.DB }

// NewQueuedArticleRepo creates a new SQLite-backed queue repository.
func NewQueuedArticleRepo(db *sql.DB) repository.QueuedArticleRepository {
	return &QueuedArticleRepo{db: db}
}

func scanQueued(s rowScanner) (*entity.QueuedArticle, error) {
	var (
		q                      entity.QueuedArticle
		authors, keywords      []byte
		submittedAt, updatedAt string
	)
	if err := s.Scan(&q.ID, &q.Title, &authors, &q.Date, &q.Journal,
		&q.Volume, &q.Issue, &q.PageRange[0], &q.PageRange[1],
		&q.DOI, &keywords, &q.Abstract, &q.IsModerated, &submittedAt, &updatedAt); err != nil {
		return nil, err
	}
	if err := decodeLists(&q.Metadata, authors, keywords); err != nil {
		return nil, err
	}
	var err error
	if q.SubmittedAt, err = parseTime(submittedAt); err != nil {
		return nil, fmt.Errorf("parse submitted_at: %w", err)
	}
	if q.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return nil, fmt.Errorf("parse updated_at: %w", err)
	}
	return &q, nil
}

// ListByModeration retrieves queued articles with the given moderation flag in submission order.
func (repo *QueuedArticleRepo) ListByModeration(ctx context.Context, moderated bool) ([]*entity.QueuedArticle, error) {
	const query = `
SELECT ` + queuedColumns + `
FROM queued_articles
WHERE is_moderated = ?
ORDER BY rowid`
	rows, err := repo.db.QueryContext(ctx, query, boolToInt(moderated))
	if err != nil {
		return nil, fmt.Errorf("ListByModeration: QueryContext: %w", err)
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
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListByModeration: rows.Err: %w", err)
	}
	return out, nil
}

// Get retrieves a queued article by ID. Returns nil if not found.
func (repo *QueuedArticleRepo) Get(ctx context.Context, id string) (*entity.QueuedArticle, error) {
	const query = `
SELECT ` + queuedColumns + `
FROM queued_articles
WHERE id = ?
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

// Create inserts a new queued article.
func (repo *QueuedArticleRepo) Create(ctx context.Context, q *entity.QueuedArticle) error {
	authors, keywords, err := encodeLists(q.Metadata)
	if err != nil {
		return fmt.Errorf("Create: %w", err)
	}
	const query = `
INSERT INTO queued_articles
       (id, title, authors, published_date, journal, volume, issue,
        page_start, page_end, doi, keywords, abstract, is_moderated, submitted_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err = execWithRetry(ctx, repo.db, query,
		q.ID, q.Title, authors, q.Date, q.Journal,
		q.Volume, q.Issue, q.PageRange.Start(), q.PageRange.End(),
		q.DOI, keywords, q.Abstract, boolToInt(q.IsModerated),
		formatTime(q.SubmittedAt), formatTime(q.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("Create: ExecContext: %w", err)
	}
	return nil
}

// Update overwrites a queued article. Returns entity.ErrNotFound if no row matches.
func (repo *QueuedArticleRepo) Update(ctx context.Context, q *entity.QueuedArticle) error {
	authors, keywords, err := encodeLists(q.Metadata)
	if err != nil {
		return fmt.Errorf("Update: %w", err)
	}
	const query = `
UPDATE queued_articles SET
       title = ?, authors = ?, published_date = ?, journal = ?,
       volume = ?, issue = ?, page_start = ?, page_end = ?,
       doi = ?, keywords = ?, abstract = ?, is_moderated = ?, updated_at = ?
WHERE id = ?`
	res, err := execWithRetry(ctx, repo.db, query,
		q.Title, authors, q.Date, q.Journal,
		q.Volume, q.Issue, q.PageRange.Start(), q.PageRange.End(),
		q.DOI, keywords, q.Abstract, boolToInt(q.IsModerated), formatTime(q.UpdatedAt),
		q.ID,
	)
	if err != nil {
		return fmt.Errorf("Update: ExecContext: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("Update: %w", entity.ErrNotFound)
	}
	return nil
}

// Delete removes a queued article. Returns entity.ErrNotFound if no row matches.
func (repo *QueuedArticleRepo) Delete(ctx context.Context, id string) error {
	res, err := execWithRetry(ctx, repo.db, `DELETE FROM queued_articles WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("Delete: ExecContext: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("Delete: %w", entity.ErrNotFound)
	}
	return nil
}

// CountByModeration counts queued articles per moderation state.
func (repo *QueuedArticleRepo) CountByModeration(ctx context.Context) (repository.QueueCounts, error) {
	const query = `
SELECT COALESCE(SUM(CASE WHEN is_moderated = 0 THEN 1 ELSE 0 END), 0),
       COALESCE(SUM(CASE WHEN is_moderated = 1 THEN 1 ELSE 0 END), 0)
FROM queued_articles`
	var counts repository.QueueCounts
	if err := repo.db.QueryRowContext(ctx, query).Scan(&counts.Unmoderated, &counts.Moderated); err != nil {
		return repository.QueueCounts{}, fmt.Errorf("CountByModeration: %w", err)
	}
	return counts, nil
}

func boolToInt(value bool) int {
	if value {
		return 1
	}
	return 0
}
