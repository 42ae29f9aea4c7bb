package postgres_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/go-cmp/cmp"

	"speed/internal/domain/entity"
	pg "speed/internal/infra/adapter/persistence/postgres"
)

var queuedCols = []string{
	"id", "title", "authors", "published_date", "journal", "volume", "issue",
	"page_start", "page_end", "doi", "keywords", "abstract",
	"is_moderated", "submitted_at", "updated_at",
}

func sampleQueued(now time.Time, moderated bool) *entity.QueuedArticle {
	a := sampleArticle(now)
	return &entity.QueuedArticle{
		ID:          a.ID,
		Metadata:    a.Metadata,
		IsModerated: moderated,
		SubmittedAt: now,
		UpdatedAt:   now,
	}
}

func queuedRow(q *entity.QueuedArticle) *sqlmock.Rows {
	return sqlmock.NewRows(queuedCols).AddRow(
		q.ID, q.Title, `["Alice","Bob"]`, q.Date, q.Journal, q.Volume, q.Issue,
		q.PageRange[0], q.PageRange[1], q.DOI, `["tdd","testing"]`, q.Abstract,
		q.IsModerated, q.SubmittedAt, q.UpdatedAt,
	)
}

func TestQueuedArticleRepo_ListByModeration(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	now := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	want := sampleQueued(now, true)
	mock.ExpectQuery(regexp.QuoteMeta("WHERE is_moderated = $1")).
		WithArgs(true).
		WillReturnRows(queuedRow(want))

	repo := pg.NewQueuedArticleRepo(db)
	got, err := repo.ListByModeration(context.Background(), true)
	if err != nil {
		t.Fatalf("ListByModeration err=%v", err)
	}
	if diff := cmp.Diff([]*entity.QueuedArticle{want}, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func TestQueuedArticleRepo_Create(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	q := sampleQueued(time.Now(), false)
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO queued_articles")).
		WithArgs(q.ID, q.Title, `["Alice","Bob"]`, q.Date, q.Journal, 38, 3, 12, 19,
			q.DOI, `["tdd","testing"]`, q.Abstract, false, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	repo := pg.NewQueuedArticleRepo(db)
	if err := repo.Create(context.Background(), q); err != nil {
		t.Fatalf("Create err=%v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestQueuedArticleRepo_Update(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	q := sampleQueued(time.Now(), true)
	mock.ExpectExec("UPDATE queued_articles").
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := pg.NewQueuedArticleRepo(db)
	if err := repo.Update(context.Background(), q); err != nil {
		t.Fatalf("Update err=%v", err)
	}
}

func TestQueuedArticleRepo_Update_NotFound(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectExec("UPDATE queued_articles").
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := pg.NewQueuedArticleRepo(db)
	err := repo.Update(context.Background(), sampleQueued(time.Now(), false))
	if !errors.Is(err, entity.ErrNotFound) {
		t.Fatalf("err=%v, want ErrNotFound", err)
	}
}

func TestQueuedArticleRepo_Delete(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM queued_articles WHERE id = $1")).
		WithArgs(testID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM queued_articles WHERE id = $1")).
		WithArgs(testID).
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := pg.NewQueuedArticleRepo(db)
	if err := repo.Delete(context.Background(), testID); err != nil {
		t.Fatalf("Delete err=%v", err)
	}
	if err := repo.Delete(context.Background(), testID); !errors.Is(err, entity.ErrNotFound) {
		t.Fatalf("second Delete err=%v, want ErrNotFound", err)
	}
}

func TestQueuedArticleRepo_CountByModeration(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery(regexp.QuoteMeta("FROM queued_articles")).
		WillReturnRows(sqlmock.NewRows([]string{"u", "m"}).AddRow(int64(4), int64(2)))

	repo := pg.NewQueuedArticleRepo(db)
	got, err := repo.CountByModeration(context.Background())
	if err != nil {
		t.Fatalf("CountByModeration err=%v", err)
	}
	if got.Unmoderated != 4 || got.Moderated != 2 {
		t.Fatalf("got=%+v", got)
	}
}
