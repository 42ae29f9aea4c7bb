// Package article provides read-side use cases for published articles:
// listing, lookups by id or DOI, and keyword filtering.
package article

import "errors"

// Sentinel errors for article use case operations.
var (
	// ErrArticleNotFound indicates that the requested article was not found.
	ErrArticleNotFound = errors.New("article not found")

	// ErrInvalidArticleID indicates that the provided article ID is not a valid identifier.
	ErrInvalidArticleID = errors.New("invalid article ID")

	// ErrInvalidDOI indicates that an empty DOI was supplied.
	ErrInvalidDOI = errors.New("invalid DOI")
)
