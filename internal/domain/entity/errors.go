package entity

import (
	"errors"
	"sort"
	"strings"
)

// Sentinel errors for domain layer operations.
var (
	// ErrNotFound indicates that a requested entity was not found
	ErrNotFound = errors.New("entity not found")

	// ErrValidationFailed indicates that validation checks have failed
	ErrValidationFailed = errors.New("validation failed")
)

// ValidationErrors collects per-field messages from a form submission.
type ValidationErrors map[string]string

// Error joins the field messages in field order.
func (e ValidationErrors) Error() string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, f+": "+e[f])
	}
	return "invalid submission: " + strings.Join(parts, "; ")
}

// Unwrap lets callers match any validation failure with errors.Is(err, ErrValidationFailed).
func (e ValidationErrors) Unwrap() error {
	return ErrValidationFailed
}
