package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"speed/internal/domain/entity"
	"speed/internal/repository"
)

// RejectedEntryRepo implements the RejectedEntryRepository interface using SQLite.
type RejectedEntryRepo struct{ db *sql.DB }

// NewRejectedEntryRepo creates a new SQLite-backed rejected entry repository.
func NewRejectedEntryRepo(db *sql.DB) repository.RejectedEntryRepository {
	return &RejectedEntryRepo{db: db}
}

// List returns rejected entries, most recent first.
func (repo *RejectedEntryRepo) List(ctx context.Context) ([]*entity.RejectedEntry, error) {
	const query = `
SELECT id, doi, title, reason, stage, rejected_at
FROM rejected_entries
ORDER BY rowid DESC`
	rows, err := repo.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("List: QueryContext: %w", err)
	}
	defer func() { _ = rows.Close() }()

	out := make([]*entity.RejectedEntry, 0, 32)
	for rows.Next() {
		var (
			e                 entity.RejectedEntry
			stage, rejectedAt string
		)
		if err := rows.Scan(&e.ID, &e.DOI, &e.Title, &e.Reason, &stage, &rejectedAt); err != nil {
			return nil, fmt.Errorf("List: Scan: %w", err)
		}
		e.Stage = entity.RejectionStage(stage)
		if e.RejectedAt, err = parseTime(rejectedAt); err != nil {
			return nil, fmt.Errorf("List: parse rejected_at: %w", err)
		}
		out = append(out, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("List: rows.Err: %w", err)
	}
	return out, nil
}

// Create records a rejected submission.
func (repo *RejectedEntryRepo) Create(ctx context.Context, e *entity.RejectedEntry) error {
	const query = `
INSERT INTO rejected_entries (id, doi, title, reason, stage, rejected_at)
VALUES (?, ?, ?, ?, ?, ?)`
	_, err := execWithRetry(ctx, repo.db, query,
		e.ID, e.DOI, e.Title, e.Reason, string(e.Stage), formatTime(e.RejectedAt))
	if err != nil {
		return fmt.Errorf("Create: ExecContext: %w", err)
	}
	return nil
}

// CountRejected returns the number of rejected entries.
func (repo *RejectedEntryRepo) CountRejected(ctx context.Context) (int64, error) {
	var count int64
	if err := repo.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM rejected_entries`).Scan(&count); err != nil {
		return 0, fmt.Errorf("CountRejected: %w", err)
	}
	return count, nil
}

// ExistsByDOIBatch checks several DOIs in one query.
func (repo *RejectedEntryRepo) ExistsByDOIBatch(ctx context.Context, dois []string) (map[string]bool, error) {
	return existsByDOIBatch(ctx, repo.db, "rejected_entries", dois)
}
