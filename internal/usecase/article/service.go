package article

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"speed/internal/domain/entity"
	"speed/internal/repository"
)

// Service provides article query use cases.
// It delegates persistence to the repository and performs keyword filtering in memory.
type Service struct {
	Repo repository.ArticleRepository
}

// List retrieves all published articles in insertion order.
func (s *Service) List(ctx context.Context) ([]*entity.Article, error) {
	articles, err := s.Repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}
	return articles, nil
}

// Get retrieves a single article by its ID.
// Returns ErrInvalidArticleID for malformed IDs and ErrArticleNotFound when missing.
func (s *Service) Get(ctx context.Context, id string) (*entity.Article, error) {
	if !entity.IsValidID(id) {
		return nil, ErrInvalidArticleID
	}

	article, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get article: %w", err)
	}
	if article == nil {
		return nil, ErrArticleNotFound
	}
	return article, nil
}

// GetByDOI retrieves the first article published with the DOI.
func (s *Service) GetByDOI(ctx context.Context, doi string) (*entity.Article, error) {
	doi = strings.TrimSpace(doi)
	if doi == "" {
		return nil, ErrInvalidDOI
	}

	article, err := s.Repo.GetByDOI(ctx, doi)
	if err != nil {
		return nil, fmt.Errorf("get article by DOI: %w", err)
	}
	if article == nil {
		return nil, ErrArticleNotFound
	}
	return article, nil
}

// Exists reports whether a published article has the ID.
// A malformed ID is reported as absent rather than as an error.
func (s *Service) Exists(ctx context.Context, id string) (bool, error) {
	if !entity.IsValidID(id) {
		return false, nil
	}
	article, err := s.Repo.Get(ctx, id)
	if err != nil {
		return false, fmt.Errorf("check article exists: %w", err)
	}
	return article != nil, nil
}

// FilterByKeywords returns the articles whose serialized field values contain a keyword.
// Matching is case-sensitive. Keywords are processed in order and each one appends
// its matches, so an article matching two keywords appears twice.
func (s *Service) FilterByKeywords(ctx context.Context, keywords []string) ([]*entity.Article, error) {
	articles, err := s.Repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("filter articles: %w", err)
	}

	texts := make([]string, len(articles))
	for i, a := range articles {
		if texts[i], err = SearchText(a); err != nil {
			return nil, fmt.Errorf("filter articles: %w", err)
		}
	}

	out := make([]*entity.Article, 0)
	for _, kw := range keywords {
		if kw == "" {
			continue
		}
		for i, a := range articles {
			if strings.Contains(texts[i], kw) {
				out = append(out, a)
			}
		}
	}
	return out, nil
}

// ParseKeywords splits a comma-separated query value and drops empty entries.
// Entries are not trimmed; " tdd" and "tdd" are different keywords.
func ParseKeywords(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// SearchText serialises an article's field values as a JSON array in field order:
// id, title, authors, date, journal, volume, issue, pageRange, doi, keywords, abstract.
func SearchText(a *entity.Article) (string, error) {
	values := []any{
		a.ID, a.Title, a.Authors, a.Date, a.Journal,
		a.Volume, a.Issue, a.PageRange, a.DOI, a.Keywords, a.Abstract,
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(values); err != nil {
		return "", fmt.Errorf("serialize article %s: %w", a.ID, err)
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}
