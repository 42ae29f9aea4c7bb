// Package fixtures builds submissions and in-memory stores shared by the
// handler, workflow and CLI tests.
package fixtures

import (
	"database/sql"
	"fmt"
	"testing"
	"time"

	"speed/internal/domain/entity"
	"speed/internal/infra/adapter/persistence"
	"speed/internal/infra/db"
	"speed/internal/repository"
	artUC "speed/internal/usecase/article"
	"speed/internal/usecase/workflow"
)

// FixedNow is the clock used by services built from Stores.
var FixedNow = time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

// SubmissionOption customises a generated submission.
type SubmissionOption func(*entity.Submission)

// NewSubmission returns a valid submission. Options override single fields.
//
// Example:
//
//	s := NewSubmission(WithTitle("Pair programming"), WithDOI("10.1000/pp"))
func NewSubmission(opts ...SubmissionOption) entity.Submission {
	s := entity.Submission{
		Title:     "Test-driven development in practice",
		Authors:   []string{"Kent Beck", "Erich Gamma"},
		Date:      "2021-06-01",
		Journal:   "Empirical Software Engineering",
		Volume:    "26",
		Issue:     "4",
		PageRange: []int{101, 130},
		DOI:       "10.1007/s10664-021-09999-1",
		Keywords:  []string{"tdd", "agile"},
		Abstract:  "A multi-case study of TDD adoption in industry.",
	}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

func WithTitle(title string) SubmissionOption {
	return func(s *entity.Submission) { s.Title = title }
}

func WithDOI(doi string) SubmissionOption {
	return func(s *entity.Submission) { s.DOI = doi }
}

func WithKeywords(keywords ...string) SubmissionOption {
	return func(s *entity.Submission) { s.Keywords = keywords }
}

func WithAuthors(authors ...string) SubmissionOption {
	return func(s *entity.Submission) { s.Authors = authors }
}

func WithAbstract(abstract string) SubmissionOption {
	return func(s *entity.Submission) { s.Abstract = abstract }
}

func WithPageRange(start, end int) SubmissionOption {
	return func(s *entity.Submission) { s.PageRange = []int{start, end} }
}

// SubmissionJSON renders s the way the submission form posts it: volume and
// issue as JSON numbers.
func SubmissionJSON(s entity.Submission) string {
	return fmt.Sprintf(`{"title":%q,"authors":%s,"date":%q,"journal":%q,"volume":%s,"issue":%s,"pageRange":%s,"doi":%q,"keywords":%s,"abstract":%q}`,
		s.Title, jsonStrings(s.Authors), s.Date, s.Journal, s.Volume, s.Issue,
		jsonInts(s.PageRange), s.DOI, jsonStrings(s.Keywords), s.Abstract)
}

func jsonStrings(v []string) string {
	out := "["
	for i, s := range v {
		if i > 0 {
			out += ","
		}
		out += fmt.Sprintf("%q", s)
	}
	return out + "]"
}

func jsonInts(v []int) string {
	out := "["
	for i, n := range v {
		if i > 0 {
			out += ","
		}
		out += fmt.Sprint(n)
	}
	return out + "]"
}

// Stores is a migrated in-memory SQLite database with its three repositories.
type Stores struct {
	DB       *sql.DB
	Articles repository.ArticleRepository
	Queue    repository.QueuedArticleRepository
	Rejected repository.RejectedEntryRepository
}

// OpenStores opens a fresh in-memory database that is closed when tb ends.
func OpenStores(tb testing.TB) Stores {
	tb.Helper()
	conn, err := db.OpenSQLite(":memory:")
	if err != nil {
		tb.Fatalf("open sqlite: %v", err)
	}
	tb.Cleanup(func() { _ = conn.Close() })
	if err := db.MigrateUp(conn, db.DriverSQLite); err != nil {
		tb.Fatalf("migrate: %v", err)
	}
	stores, err := persistence.NewStores(conn, db.DriverSQLite)
	if err != nil {
		tb.Fatalf("stores: %v", err)
	}
	return Stores{
		DB:       conn,
		Articles: stores.Articles,
		Queue:    stores.Queue,
		Rejected: stores.Rejected,
	}
}

// Workflow returns a workflow service over the stores, clocked at FixedNow,
// without event publishing.
func (s Stores) Workflow() *workflow.Service {
	return &workflow.Service{
		Queue:    s.Queue,
		Articles: s.Articles,
		Rejected: s.Rejected,
		Now:      func() time.Time { return FixedNow },
	}
}

// Queries returns the read-side article service over the stores.
func (s Stores) Queries() *artUC.Service {
	return &artUC.Service{Repo: s.Articles}
}
