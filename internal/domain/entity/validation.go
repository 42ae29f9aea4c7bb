package entity

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// abstractLinkMarkers are stripped from abstracts; links are not allowed in the abstract text.
var abstractLinkMarkers = []string{"http", "www"}

// Submission is the raw article form as entered by a submitter.
// Volume and Issue stay as text until validation proves they are numeric.
type Submission struct {
	Title     string   `json:"title"`
	Authors   []string `json:"authors"`
	Date      string   `json:"date"`
	Journal   string   `json:"journal"`
	Volume    string   `json:"volume"`
	Issue     string   `json:"issue"`
	PageRange []int    `json:"pageRange"`
	DOI       string   `json:"doi"`
	Keywords  []string `json:"keywords"`
	Abstract  string   `json:"abstract"`
}

// SubmissionFromMetadata converts stored metadata back into form values so that
// edits to a queued record go through the same rules as a fresh submission.
func SubmissionFromMetadata(m Metadata) Submission {
	return Submission{
		Title:     m.Title,
		Authors:   append([]string(nil), m.Authors...),
		Date:      m.Date,
		Journal:   m.Journal,
		Volume:    strconv.Itoa(m.Volume),
		Issue:     strconv.Itoa(m.Issue),
		PageRange: []int{m.PageRange[0], m.PageRange[1]},
		DOI:       m.DOI,
		Keywords:  append([]string(nil), m.Keywords...),
		Abstract:  m.Abstract,
	}
}

// ValidateSubmission checks a submission and converts it into article metadata.
// Links in the abstract are stripped and reported as warnings instead of failing validation.
// Field failures are returned as ValidationErrors.
func ValidateSubmission(s Submission) (Metadata, []string, error) {
	s = normalizeSubmission(s)

	var warnings []string
	if cleaned, stripped := SanitizeAbstract(s.Abstract); stripped {
		s.Abstract = cleaned
		warnings = append(warnings, "abstract must not contain links; http/www text was removed")
	}

	err := validation.ValidateStruct(&s,
		validation.Field(&s.Title, validation.Required.Error("title must not be empty")),
		validation.Field(&s.Authors, validation.Required.Error("authors must not be empty")),
		validation.Field(&s.Date, validation.Required.Error("date must not be empty")),
		validation.Field(&s.Journal, validation.Required.Error("journal must not be empty")),
		validation.Field(&s.Volume,
			validation.Required.Error("volume must not be empty"),
			validation.By(numeric("Volume")),
		),
		validation.Field(&s.Issue,
			validation.Required.Error("issue must not be empty"),
			validation.By(numeric("Issue")),
		),
		validation.Field(&s.PageRange, validation.By(pageRange)),
		validation.Field(&s.DOI, validation.Required.Error("doi must not be empty")),
		validation.Field(&s.Keywords, validation.Required.Error("keywords must not be empty")),
		validation.Field(&s.Abstract, validation.Required.Error("abstract must not be empty")),
	)
	if err != nil {
		return Metadata{}, nil, toValidationErrors(err)
	}

	volume, _ := strconv.Atoi(s.Volume)
	issue, _ := strconv.Atoi(s.Issue)

	return Metadata{
		Title:     s.Title,
		Authors:   s.Authors,
		Date:      s.Date,
		Journal:   s.Journal,
		Volume:    volume,
		Issue:     issue,
		PageRange: PageRange{s.PageRange[0], s.PageRange[1]},
		DOI:       s.DOI,
		Keywords:  s.Keywords,
		Abstract:  s.Abstract,
	}, warnings, nil
}

// SanitizeAbstract removes every "http" and "www" occurrence from an abstract.
// The second return value reports whether anything was removed.
func SanitizeAbstract(abstract string) (string, bool) {
	cleaned := abstract
	for _, marker := range abstractLinkMarkers {
		cleaned = strings.ReplaceAll(cleaned, marker, "")
	}
	if cleaned == abstract {
		return abstract, false
	}
	return strings.TrimSpace(cleaned), true
}

func normalizeSubmission(s Submission) Submission {
	s.Title = strings.TrimSpace(s.Title)
	s.Date = strings.TrimSpace(s.Date)
	s.Journal = strings.TrimSpace(s.Journal)
	s.Volume = strings.TrimSpace(s.Volume)
	s.Issue = strings.TrimSpace(s.Issue)
	s.DOI = strings.TrimSpace(s.DOI)
	s.Abstract = strings.TrimSpace(s.Abstract)
	s.Authors = compact(s.Authors)
	s.Keywords = compact(s.Keywords)
	return s
}

// compact trims entries and drops blank ones (unfilled form inputs).
func compact(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func numeric(label string) validation.RuleFunc {
	return func(value interface{}) error {
		s, _ := value.(string)
		if s == "" {
			return nil
		}
		if _, err := strconv.Atoi(s); err != nil {
			return validation.NewError("validation_not_numeric", label+" must be a number")
		}
		return nil
	}
}

func pageRange(value interface{}) error {
	pages, _ := value.([]int)
	if len(pages) != 2 {
		return validation.NewError("validation_page_range_shape", "Page Range must be an array of two numbers")
	}
	if pages[0] == 0 || pages[1] == 0 {
		return validation.NewError("validation_page_range_zero", "pageRange must not be empty")
	}
	if pages[0] > pages[1] {
		return validation.NewError("validation_page_range_order", "pageRange start must be before end")
	}
	return nil
}

func toValidationErrors(err error) error {
	var fieldErrs validation.Errors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("validate submission: %w", err)
	}
	out := make(ValidationErrors, len(fieldErrs))
	for field, fe := range fieldErrs {
		if fe != nil {
			out[field] = fe.Error()
		}
	}
	return out
}
