// Package entity defines the core domain entities and validation logic for the application.
// It contains the article records that move through the submission workflow
// (queued, published, rejected) along with their validation rules and domain-specific errors.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// PageRange is the first and last page of an article within its journal issue.
type PageRange [2]int

// Start returns the first page.
func (p PageRange) Start() int { return p[0] }

// End returns the last page.
func (p PageRange) End() int { return p[1] }

// Metadata holds the bibliographic fields shared by queued and published articles.
type Metadata struct {
	Title     string
	Authors   []string
	Date      string
	Journal   string
	Volume    int
	Issue     int
	PageRange PageRange
	DOI       string
	Keywords  []string
	Abstract  string
}

// Clone returns a deep copy so callers can mutate slices without aliasing.
func (m Metadata) Clone() Metadata {
	out := m
	out.Authors = append([]string(nil), m.Authors...)
	out.Keywords = append([]string(nil), m.Keywords...)
	return out
}

// Article represents a published article in the searchable database.
type Article struct {
	ID string
	Metadata
	CreatedAt time.Time
}

// QueuedArticle represents a submission waiting in the moderation queue.
// IsModerated is false until a moderator accepts the record.
type QueuedArticle struct {
	ID string
	Metadata
	IsModerated bool
	SubmittedAt time.Time
	UpdatedAt   time.Time
}

// ToArticle copies a queued submission into a published article, keeping its ID.
func (q *QueuedArticle) ToArticle(now time.Time) *Article {
	return &Article{
		ID:        q.ID,
		Metadata:  q.Metadata.Clone(),
		CreatedAt: now,
	}
}

// RejectionStage identifies which review step rejected a submission.
type RejectionStage string

const (
	StageModerator RejectionStage = "moderator"
	StageAnalyst   RejectionStage = "analyst"
)

// RejectedEntry records the DOI of a rejected submission for duplicate detection.
type RejectedEntry struct {
	ID         string
	DOI        string
	Title      string
	Reason     string
	Stage      RejectionStage
	RejectedAt time.Time
}

// NewID returns a new random identifier for stored records.
func NewID() string {
	return uuid.NewString()
}

// IsValidID reports whether s is a well-formed record identifier.
func IsValidID(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}
