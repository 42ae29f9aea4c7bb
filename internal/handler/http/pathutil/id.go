// Package pathutil parses identifiers out of request paths and normalizes
// paths for metric and span labels.
package pathutil

import (
	"errors"
	"strings"

	"speed/internal/domain/entity"
)

// ErrInvalidID is returned when a path segment is not a record identifier.
var ErrInvalidID = errors.New("invalid id")

// ErrInvalidDOI is returned when a DOI path value is empty.
var ErrInvalidDOI = errors.New("invalid doi")

// ParseID validates an {id} path value.
func ParseID(raw string) (string, error) {
	id := strings.TrimSpace(raw)
	if !entity.IsValidID(id) {
		return "", ErrInvalidID
	}
	return id, nil
}

// ParseDOI validates a {doi...} path value. ServeMux has already unescaped it,
// so "%2F" arrives as "/" and "%25" as "%"; it must not be decoded again.
func ParseDOI(raw string) (string, error) {
	doi := strings.TrimSpace(raw)
	if doi == "" {
		return "", ErrInvalidDOI
	}
	return doi, nil
}
