package db

import (
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrateUp_Postgres(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS articles").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("CREATE TABLE IF NOT EXISTS queued_articles").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("CREATE TABLE IF NOT EXISTS rejected_entries").
		WillReturnResult(sqlmock.NewResult(0, 0))
	for range 4 {
		mock.ExpectExec("CREATE INDEX IF NOT EXISTS").
			WillReturnResult(sqlmock.NewResult(0, 0))
	}

	assert.NoError(t, MigrateUp(db, DriverPostgres))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMigrateUp_StopsOnError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS articles").
		WillReturnError(sql.ErrConnDone)

	err = MigrateUp(db, DriverPostgres)
	assert.Equal(t, sql.ErrConnDone, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMigrateUp_UnsupportedDriver(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	assert.Error(t, MigrateUp(db, "mysql"))
}

func TestMigrateUp_SQLiteIdempotent(t *testing.T) {
	db, err := OpenSQLite(":memory:")
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	require.NoError(t, MigrateUp(db, DriverSQLite))
	require.NoError(t, MigrateUp(db, DriverSQLite))

	for _, table := range []string{"articles", "queued_articles", "rejected_entries"} {
		var n int
		err := db.QueryRow(`SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = ?`, table).Scan(&n)
		require.NoError(t, err)
		assert.Equal(t, 1, n, table)
	}
}

func TestMigrateDown_SQLite(t *testing.T) {
	db, err := OpenSQLite(":memory:")
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	require.NoError(t, MigrateUp(db, DriverSQLite))
	require.NoError(t, MigrateDown(db))

	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM sqlite_master WHERE type = 'table'`).Scan(&n))
	assert.Zero(t, n)
}
