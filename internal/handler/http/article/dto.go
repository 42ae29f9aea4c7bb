// Package article provides HTTP handlers for the public article endpoints:
// listing, keyword filtering, lookups by id and DOI, and new submissions.
// The DTOs here are shared by the moderator and analyst handlers.
package article

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"speed/internal/domain/entity"
)

// ArticleDTO is a published article as the frontend reads it.
type ArticleDTO struct {
	ID        string    `json:"_id" example:"0b8f3c2e-5a4d-4c1e-9f59-2d1f0b6f6a10"`
	Title     string    `json:"title" example:"Test-driven development in practice"`
	Authors   []string  `json:"authors"`
	Date      string    `json:"date" example:"2021-06-01"`
	Journal   string    `json:"journal" example:"Empirical Software Engineering"`
	Volume    int       `json:"volume" example:"26"`
	Issue     int       `json:"issue" example:"4"`
	PageRange [2]int    `json:"pageRange"`
	DOI       string    `json:"doi" example:"10.1007/s10664-021-09999-1"`
	Keywords  []string  `json:"keywords"`
	Abstract  string    `json:"abstract"`
	CreatedAt time.Time `json:"createdAt"`
}

// QueuedArticleDTO is a submission in the moderation queue.
type QueuedArticleDTO struct {
	ID          string    `json:"_id"`
	Title       string    `json:"title"`
	Authors     []string  `json:"authors"`
	Date        string    `json:"date"`
	Journal     string    `json:"journal"`
	Volume      int       `json:"volume"`
	Issue       int       `json:"issue"`
	PageRange   [2]int    `json:"pageRange"`
	DOI         string    `json:"doi"`
	Keywords    []string  `json:"keywords"`
	Abstract    string    `json:"abstract"`
	IsModerated bool      `json:"isModerated"`
	SubmittedAt time.Time `json:"submittedAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// RejectedDTO is a rejected submission kept for duplicate detection.
type RejectedDTO struct {
	ID         string    `json:"_id"`
	DOI        string    `json:"doi"`
	Title      string    `json:"title"`
	Reason     string    `json:"reason"`
	Stage      string    `json:"stage" example:"moderator"`
	RejectedAt time.Time `json:"rejectedAt"`
}

func NewArticleDTO(a *entity.Article) ArticleDTO {
	return ArticleDTO{
		ID:        a.ID,
		Title:     a.Title,
		Authors:   nonNil(a.Authors),
		Date:      a.Date,
		Journal:   a.Journal,
		Volume:    a.Volume,
		Issue:     a.Issue,
		PageRange: a.PageRange,
		DOI:       a.DOI,
		Keywords:  nonNil(a.Keywords),
		Abstract:  a.Abstract,
		CreatedAt: a.CreatedAt,
	}
}

func NewArticleDTOs(articles []*entity.Article) []ArticleDTO {
	out := make([]ArticleDTO, 0, len(articles))
	for _, a := range articles {
		out = append(out, NewArticleDTO(a))
	}
	return out
}

func NewQueuedArticleDTO(q *entity.QueuedArticle) QueuedArticleDTO {
	return QueuedArticleDTO{
		ID:          q.ID,
		Title:       q.Title,
		Authors:     nonNil(q.Authors),
		Date:        q.Date,
		Journal:     q.Journal,
		Volume:      q.Volume,
		Issue:       q.Issue,
		PageRange:   q.PageRange,
		DOI:         q.DOI,
		Keywords:    nonNil(q.Keywords),
		Abstract:    q.Abstract,
		IsModerated: q.IsModerated,
		SubmittedAt: q.SubmittedAt,
		UpdatedAt:   q.UpdatedAt,
	}
}

func NewQueuedArticleDTOs(queued []*entity.QueuedArticle) []QueuedArticleDTO {
	out := make([]QueuedArticleDTO, 0, len(queued))
	for _, q := range queued {
		out = append(out, NewQueuedArticleDTO(q))
	}
	return out
}

func NewRejectedDTO(e *entity.RejectedEntry) RejectedDTO {
	return RejectedDTO{
		ID:         e.ID,
		DOI:        e.DOI,
		Title:      e.Title,
		Reason:     e.Reason,
		Stage:      string(e.Stage),
		RejectedAt: e.RejectedAt,
	}
}

func NewRejectedDTOs(entries []*entity.RejectedEntry) []RejectedDTO {
	out := make([]RejectedDTO, 0, len(entries))
	for _, e := range entries {
		out = append(out, NewRejectedDTO(e))
	}
	return out
}

func nonNil(v []string) []string {
	if v == nil {
		return []string{}
	}
	return v
}

// SubmissionRequest is the submission form body. The form posts volume and
// issue as numbers while older clients send strings, and lists may arrive as
// a comma separated string.
type SubmissionRequest struct {
	Title     string       `json:"title"`
	Authors   StringList   `json:"authors" swaggertype:"array,string"`
	Date      string       `json:"date"`
	Journal   string       `json:"journal"`
	Volume    NumberString `json:"volume" swaggertype:"string" example:"26"`
	Issue     NumberString `json:"issue" swaggertype:"string" example:"4"`
	PageRange []int        `json:"pageRange"`
	DOI       string       `json:"doi"`
	Keywords  StringList   `json:"keywords" swaggertype:"array,string"`
	Abstract  string       `json:"abstract"`
}

// Submission converts the request into the form the validator checks.
func (r SubmissionRequest) Submission() entity.Submission {
	return entity.Submission{
		Title:     r.Title,
		Authors:   []string(r.Authors),
		Date:      r.Date,
		Journal:   r.Journal,
		Volume:    string(r.Volume),
		Issue:     string(r.Issue),
		PageRange: r.PageRange,
		DOI:       r.DOI,
		Keywords:  []string(r.Keywords),
		Abstract:  r.Abstract,
	}
}

var (
	errNotNumber = errors.New("must be a number or a numeric string")
	errNotList   = errors.New("must be a list of strings")
)

// NumberString accepts a JSON number or string and keeps its text.
type NumberString string

func (n *NumberString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case bytes.Equal(b, []byte("null")):
		*n = ""
		return nil
	case len(b) > 0 && b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*n = NumberString(s)
		return nil
	}
	var num json.Number
	if err := json.Unmarshal(b, &num); err != nil {
		return errNotNumber
	}
	*n = NumberString(num.String())
	return nil
}

// StringList accepts a JSON array of strings or one comma separated string.
type StringList []string

func (l *StringList) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case bytes.Equal(b, []byte("null")):
		*l = nil
		return nil
	case len(b) > 0 && b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*l = strings.Split(s, ",")
		return nil
	}
	var values []string
	if err := json.Unmarshal(b, &values); err != nil {
		return errNotList
	}
	*l = values
	return nil
}

// DecodeSubmission reads a SubmissionRequest body.
func DecodeSubmission(body []byte) (entity.Submission, error) {
	var req SubmissionRequest
	if err := DecodeJSON(body, &req); err != nil {
		return entity.Submission{}, err
	}
	return req.Submission(), nil
}

// DecodeJSON unmarshals body into dst. Errors are entity.ValidationErrors
// that describe the body, not the decoder internals, so they are safe to
// return to clients.
func DecodeJSON(body []byte, dst any) error {
	err := json.Unmarshal(body, dst)
	if err == nil {
		return nil
	}
	var typeErr *json.UnmarshalTypeError
	switch {
	case errors.As(err, &typeErr) && typeErr.Field != "":
		return entity.ValidationErrors{typeErr.Field: typeErr.Field + " has an invalid type"}
	case errors.Is(err, errNotNumber):
		return entity.ValidationErrors{"body": "volume and issue must be numbers"}
	case errors.Is(err, errNotList):
		return entity.ValidationErrors{"body": "authors and keywords must be lists of strings"}
	default:
		return entity.ValidationErrors{"body": "request body must be valid JSON"}
	}
}
