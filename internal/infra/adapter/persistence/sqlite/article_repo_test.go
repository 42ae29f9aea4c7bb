package sqlite_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"speed/internal/domain/entity"
	"speed/internal/infra/adapter/persistence/sqlite"
	"speed/internal/infra/db"
)

/* ────────────────────────────  ヘルパ  ──────────────────────────── */

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	conn, err := db.OpenSQLite(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	require.NoError(t, db.MigrateUp(conn, db.DriverSQLite))
	return conn
}

func newArticle(title, doi string, created time.Time) *entity.Article {
	return &entity.Article{
		ID: entity.NewID(),
		Metadata: entity.Metadata{
			Title:     title,
			Authors:   []string{"Alice", "Bob"},
			Date:      "2021-05-01",
			Journal:   "IEEE Software",
			Volume:    38,
			Issue:     3,
			PageRange: entity.PageRange{12, 19},
			DOI:       doi,
			Keywords:  []string{"tdd", "testing"},
			Abstract:  "An empirical study.",
		},
		CreatedAt: created,
	}
}

/* ──────────────────────────── 1. Create / Get ──────────────────────────── */

func TestArticleRepo_CreateAndGet(t *testing.T) {
	t.Parallel()

	conn := openTestDB(t)
	repo := sqlite.NewArticleRepo(conn)
	ctx := context.Background()

	now := time.Date(2025, 7, 19, 10, 30, 0, 123, time.UTC)
	want := newArticle("TDD in practice", "10.1/tdd", now)
	require.NoError(t, repo.Create(ctx, want))

	got, err := repo.Get(ctx, want.ID)
	require.NoError(t, err)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Get mismatch (-want +got):\n%s", diff)
	}

	missing, err := repo.Get(ctx, entity.NewID())
	require.NoError(t, err)
	assert.Nil(t, missing)
}

/* ──────────────────────────── 2. List order ──────────────────────────── */

func TestArticleRepo_List_InsertionOrder(t *testing.T) {
	t.Parallel()

	conn := openTestDB(t)
	repo := sqlite.NewArticleRepo(conn)
	ctx := context.Background()

	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	titles := []string{"Zeta", "Alpha", "Mu"}
	for i, title := range titles {
		require.NoError(t, repo.Create(ctx, newArticle(title, "10.1/"+title, base.Add(time.Duration(i)*time.Hour))))
	}

	got, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, got, 3)
	for i, a := range got {
		assert.Equal(t, titles[i], a.Title)
	}

	n, err := repo.CountArticles(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
}

func TestArticleRepo_List_Empty(t *testing.T) {
	t.Parallel()

	repo := sqlite.NewArticleRepo(openTestDB(t))
	got, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.NotNil(t, got)
}

/* ──────────────────────────── 3. DOI lookups ──────────────────────────── */

func TestArticleRepo_GetByDOI_FirstMatch(t *testing.T) {
	t.Parallel()

	conn := openTestDB(t)
	repo := sqlite.NewArticleRepo(conn)
	ctx := context.Background()

	first := newArticle("First", "10.1/dup", time.Now())
	second := newArticle("Second", "10.1/dup", time.Now())
	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, second))

	got, err := repo.GetByDOI(ctx, "10.1/dup")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, first.ID, got.ID)

	none, err := repo.GetByDOI(ctx, "10.1/none")
	require.NoError(t, err)
	assert.Nil(t, none)
}

func TestArticleRepo_ExistsByDOIBatch(t *testing.T) {
	t.Parallel()

	conn := openTestDB(t)
	repo := sqlite.NewArticleRepo(conn)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newArticle("A", "10.1/a", time.Now())))

	got, err := repo.ExistsByDOIBatch(ctx, []string{"10.1/a", "10.1/b", "", "10.1/a"})
	require.NoError(t, err)
	assert.Equal(t, map[string]bool{"10.1/a": true}, got)

	empty, err := repo.ExistsByDOIBatch(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
}
