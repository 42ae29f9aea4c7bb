// Package workflow moves article submissions through review: submission into
// the queue, moderator edits and acceptance, analyst promotion into the
// searchable database, and rejection into the rejected-DOI store.
package workflow

import "errors"

// Sentinel errors for workflow operations.
var (
	// ErrQueuedArticleNotFound indicates that no queued submission has the requested ID.
	ErrQueuedArticleNotFound = errors.New("queued article not found")

	// ErrInvalidQueuedArticleID indicates that the provided ID is not a valid identifier.
	ErrInvalidQueuedArticleID = errors.New("invalid queued article ID")

	// ErrInvalidStage indicates a rejection stage other than moderator or analyst.
	ErrInvalidStage = errors.New("invalid rejection stage")
)
