package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"speed/internal/domain/entity"
	"speed/internal/repository"
)

// RejectedEntryRepo keeps the DOIs of rejected submissions.
type RejectedEntryRepo struct {
	db *sql.DB
}

func NewRejectedEntryRepo(db *sql.DB) repository.RejectedEntryRepository {
	return &RejectedEntryRepo{db: db}
}

func (repo *RejectedEntryRepo) List(ctx context.Context) ([]*entity.RejectedEntry, error) {
	const query = `
SELECT id, doi, title, reason, stage, rejected_at
FROM rejected_entries
ORDER BY seq DESC`
	rows, err := repo.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("List: %w", err)
	}
	defer func() { _ = rows.Close() }()

	out := make([]*entity.RejectedEntry, 0, 32)
	for rows.Next() {
		var (
			e     entity.RejectedEntry
			stage string
		)
		if err := rows.Scan(&e.ID, &e.DOI, &e.Title, &e.Reason, &stage, &e.RejectedAt); err != nil {
			return nil, fmt.Errorf("List: Scan: %w", err)
		}
		e.Stage = entity.RejectionStage(stage)
		out = append(out, &e)
	}
	return out, rows.Err()
}

func (repo *RejectedEntryRepo) Create(ctx context.Context, e *entity.RejectedEntry) error {
	const query = `
INSERT INTO rejected_entries (id, doi, title, reason, stage, rejected_at)
VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := repo.db.ExecContext(ctx, query,
		e.ID, e.DOI, e.Title, e.Reason, string(e.Stage), e.RejectedAt)
	if err != nil {
		return fmt.Errorf("Create: %w", err)
	}
	return nil
}

func (repo *RejectedEntryRepo) CountRejected(ctx context.Context) (int64, error) {
	const query = `SELECT COUNT(*) FROM rejected_entries`
	var count int64
	if err := repo.db.QueryRowContext(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("CountRejected: %w", err)
	}
	return count, nil
}

func (repo *RejectedEntryRepo) ExistsByDOIBatch(ctx context.Context, dois []string) (map[string]bool, error) {
	return existsByDOIBatch(ctx, repo.db, "rejected_entries", dois)
}
