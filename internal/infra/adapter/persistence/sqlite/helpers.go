// Package sqlite provides SQLite implementations of repository interfaces.
// Timestamps are stored as RFC3339Nano text and list columns as JSON text.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"speed/internal/domain/entity"
	"speed/internal/infra/adapter/persistence/columns"
)

const (
	sqliteBusyCode          = 5
	busyRetryAttempts       = 5
	busyRetryInitialBackoff = 10 * time.Millisecond
	busyRetryMaxBackoff     = 200 * time.Millisecond
)

type rowScanner interface {
	Scan(dest ...any) error
}

func isSQLiteBusy(err error) bool {
	if err == nil {
		return false
	}
	var coder interface{ Code() int }
	if errors.As(err, &coder) && coder.Code() == sqliteBusyCode {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "SQLITE_BUSY") || strings.Contains(msg, "database is locked")
}

// execWithRetry retries writes that hit a lock held by another process
// (the API and speedctl may share one database file).
func execWithRetry(ctx context.Context, db *sql.DB, query string, args ...any) (sql.Result, error) {
	delay := busyRetryInitialBackoff
	var (
		res sql.Result
		err error
	)
	for attempt := 0; attempt < busyRetryAttempts; attempt++ {
		res, err = db.ExecContext(ctx, query, args...)
		if err == nil {
			return res, nil
		}
		if !isSQLiteBusy(err) || attempt == busyRetryAttempts-1 {
			break
		}
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
		if next := delay * 2; next <= busyRetryMaxBackoff {
			delay = next
		}
	}
	return nil, err
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, errors.New("empty timestamp")
	}
	if t, err := time.Parse(time.RFC3339Nano, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02 15:04:05", value)
}

func makePlaceholders(count int) string {
	if count <= 0 {
		return ""
	}
	return strings.TrimSuffix(strings.Repeat("?,", count), ",")
}

// uniqueNonEmpty drops blanks and duplicates while keeping order.
func uniqueNonEmpty(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

func existsByDOIBatch(ctx context.Context, db *sql.DB, table string, dois []string) (map[string]bool, error) {
	result := make(map[string]bool)
	dois = uniqueNonEmpty(dois)
	if len(dois) == 0 {
		return result, nil
	}

	args := make([]any, len(dois))
	for i, d := range dois {
		args[i] = d
	}
	query := "SELECT DISTINCT doi FROM " + table + " WHERE doi IN (" + makePlaceholders(len(dois)) + ")"
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ExistsByDOIBatch: QueryContext: %w", err)
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var doi string
		if err := rows.Scan(&doi); err != nil {
			return nil, fmt.Errorf("ExistsByDOIBatch: Scan: %w", err)
		}
		result[doi] = true
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ExistsByDOIBatch: rows.Err: %w", err)
	}
	return result, nil
}

func decodeLists(m *entity.Metadata, authors, keywords []byte) error {
	var err error
	if m.Authors, err = columns.DecodeList(authors); err != nil {
		return err
	}
	if m.Keywords, err = columns.DecodeList(keywords); err != nil {
		return err
	}
	return nil
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
