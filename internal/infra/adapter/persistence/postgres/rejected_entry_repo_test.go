package postgres_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/go-cmp/cmp"

	"speed/internal/domain/entity"
	pg "speed/internal/infra/adapter/persistence/postgres"
)

func TestRejectedEntryRepo_CreateAndList(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	now := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	e := &entity.RejectedEntry{
		ID: testID, DOI: "10.1/x", Title: "Off topic",
		Reason: "not SE evidence", Stage: entity.StageModerator, RejectedAt: now,
	}

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO rejected_entries")).
		WithArgs(e.ID, e.DOI, e.Title, e.Reason, "moderator", now).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY seq DESC")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "doi", "title", "reason", "stage", "rejected_at"}).
			AddRow(e.ID, e.DOI, e.Title, e.Reason, "moderator", now))

	repo := pg.NewRejectedEntryRepo(db)
	if err := repo.Create(context.Background(), e); err != nil {
		t.Fatalf("Create err=%v", err)
	}
	got, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("List err=%v", err)
	}
	if diff := cmp.Diff([]*entity.RejectedEntry{e}, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestRejectedEntryRepo_ExistsByDOIBatch(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT DISTINCT doi FROM rejected_entries WHERE doi IN ($1)")).
		WithArgs("10.1/x").
		WillReturnRows(sqlmock.NewRows([]string{"doi"}).AddRow("10.1/x"))

	repo := pg.NewRejectedEntryRepo(db)
	got, err := repo.ExistsByDOIBatch(context.Background(), []string{"10.1/x"})
	if err != nil || !got["10.1/x"] {
		t.Fatalf("got=%v err=%v", got, err)
	}
}
