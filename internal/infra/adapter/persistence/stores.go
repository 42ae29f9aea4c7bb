// Package persistence selects the repository implementations for a driver.
package persistence

import (
	"database/sql"
	"fmt"

	"speed/internal/infra/adapter/persistence/postgres"
	"speed/internal/infra/adapter/persistence/sqlite"
	"speed/internal/infra/db"
	"speed/internal/repository"
)

// Stores groups the three article stores.
type Stores struct {
	Articles repository.ArticleRepository
	Queue    repository.QueuedArticleRepository
	Rejected repository.RejectedEntryRepository
}

// NewStores returns the repositories for driver (db.DriverPostgres or db.DriverSQLite).
func NewStores(conn *sql.DB, driver string) (Stores, error) {
	switch driver {
	case db.DriverPostgres:
		return Stores{
			Articles: postgres.NewArticleRepo(conn),
			Queue:    postgres.NewQueuedArticleRepo(conn),
			Rejected: postgres.NewRejectedEntryRepo(conn),
		}, nil
	case db.DriverSQLite:
		return Stores{
			Articles: sqlite.NewArticleRepo(conn),
			Queue:    sqlite.NewQueuedArticleRepo(conn),
			Rejected: sqlite.NewRejectedEntryRepo(conn),
		}, nil
	default:
		return Stores{}, fmt.Errorf("unsupported DB_DRIVER %q", driver)
	}
}
