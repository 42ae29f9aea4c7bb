package db

import (
	"database/sql"
	"fmt"
)

// postgresSchema creates the three article stores. seq preserves insertion order
// for list endpoints since ids are random UUIDs.
var postgresSchema = []string{
	`
CREATE TABLE IF NOT EXISTS articles (
    seq            BIGSERIAL,
    id             TEXT PRIMARY KEY,
    title          TEXT NOT NULL,
    authors        JSONB NOT NULL DEFAULT '[]',
    published_date TEXT NOT NULL,
    journal        TEXT NOT NULL,
    volume         INTEGER NOT NULL,
    issue          INTEGER NOT NULL,
    page_start     INTEGER NOT NULL,
    page_end       INTEGER NOT NULL,
    doi            TEXT NOT NULL,
    keywords       JSONB NOT NULL DEFAULT '[]',
    abstract       TEXT NOT NULL,
    created_at     TIMESTAMPTZ NOT NULL DEFAULT now()
)`,
	`
CREATE TABLE IF NOT EXISTS queued_articles (
    seq            BIGSERIAL,
    id             TEXT PRIMARY KEY,
    title          TEXT NOT NULL,
    authors        JSONB NOT NULL DEFAULT '[]',
    published_date TEXT NOT NULL,
    journal        TEXT NOT NULL,
    volume         INTEGER NOT NULL,
    issue          INTEGER NOT NULL,
    page_start     INTEGER NOT NULL,
    page_end       INTEGER NOT NULL,
    doi            TEXT NOT NULL,
    keywords       JSONB NOT NULL DEFAULT '[]',
    abstract       TEXT NOT NULL,
    is_moderated   BOOLEAN NOT NULL DEFAULT FALSE,
    submitted_at   TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at     TIMESTAMPTZ NOT NULL DEFAULT now()
)`,
	`
CREATE TABLE IF NOT EXISTS rejected_entries (
    seq         BIGSERIAL,
    id          TEXT PRIMARY KEY,
    doi         TEXT NOT NULL,
    title       TEXT NOT NULL,
    reason      TEXT NOT NULL DEFAULT '',
    stage       TEXT NOT NULL,
    rejected_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`,
	// DOI lookups back the duplicate checks and GET /articles/doi.
	`CREATE INDEX IF NOT EXISTS idx_articles_doi ON articles(doi)`,
	`CREATE INDEX IF NOT EXISTS idx_articles_seq ON articles(seq)`,
	`CREATE INDEX IF NOT EXISTS idx_queued_articles_moderated ON queued_articles(is_moderated, seq)`,
	`CREATE INDEX IF NOT EXISTS idx_rejected_entries_doi ON rejected_entries(doi)`,
}

// sqliteSchema mirrors postgresSchema. Lists are JSON text, timestamps are
// RFC3339Nano text and rowid gives insertion order.
var sqliteSchema = []string{
	`
CREATE TABLE IF NOT EXISTS articles (
    id             TEXT PRIMARY KEY,
    title          TEXT NOT NULL,
    authors        TEXT NOT NULL DEFAULT '[]',
    published_date TEXT NOT NULL,
    journal        TEXT NOT NULL,
    volume         INTEGER NOT NULL,
    issue          INTEGER NOT NULL,
    page_start     INTEGER NOT NULL,
    page_end       INTEGER NOT NULL,
    doi            TEXT NOT NULL,
    keywords       TEXT NOT NULL DEFAULT '[]',
    abstract       TEXT NOT NULL,
    created_at     TEXT NOT NULL
)`,
	`
CREATE TABLE IF NOT EXISTS queued_articles (
    id             TEXT PRIMARY KEY,
    title          TEXT NOT NULL,
    authors        TEXT NOT NULL DEFAULT '[]',
    published_date TEXT NOT NULL,
    journal        TEXT NOT NULL,
    volume         INTEGER NOT NULL,
    issue          INTEGER NOT NULL,
    page_start     INTEGER NOT NULL,
    page_end       INTEGER NOT NULL,
    doi            TEXT NOT NULL,
    keywords       TEXT NOT NULL DEFAULT '[]',
    abstract       TEXT NOT NULL,
    is_moderated   INTEGER NOT NULL DEFAULT 0,
    submitted_at   TEXT NOT NULL,
    updated_at     TEXT NOT NULL
)`,
	`
CREATE TABLE IF NOT EXISTS rejected_entries (
    id          TEXT PRIMARY KEY,
    doi         TEXT NOT NULL,
    title       TEXT NOT NULL,
    reason      TEXT NOT NULL DEFAULT '',
    stage       TEXT NOT NULL,
    rejected_at TEXT NOT NULL
)`,
	`CREATE INDEX IF NOT EXISTS idx_articles_doi ON articles(doi)`,
	`CREATE INDEX IF NOT EXISTS idx_queued_articles_moderated ON queued_articles(is_moderated)`,
	`CREATE INDEX IF NOT EXISTS idx_rejected_entries_doi ON rejected_entries(doi)`,
}

var dropStatements = []string{
	`DROP TABLE IF EXISTS rejected_entries`,
	`DROP TABLE IF EXISTS queued_articles`,
	`DROP TABLE IF EXISTS articles`,
}

// MigrateUp creates tables and indexes for the given driver. It is idempotent.
func MigrateUp(db *sql.DB, driver string) error {
	var stmts []string
	switch driver {
	case DriverPostgres:
		stmts = postgresSchema
	case DriverSQLite:
		stmts = sqliteSchema
	default:
		return fmt.Errorf("migrate: unsupported driver %q", driver)
	}
	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// MigrateDown drops every table.
// Use with caution: this will delete all data in the affected tables.
func MigrateDown(db *sql.DB) error {
	for _, stmt := range dropStatements {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}
