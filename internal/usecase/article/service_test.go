package article_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"speed/internal/domain/entity"
	artUC "speed/internal/usecase/article"
)

/* ───────── スタブ実装 ───────── */

// 挿入順を保持する最小限のインメモリ ArticleRepository
type stubRepo struct {
	data []*entity.Article
	err  error // 強制的にエラーを返したいとき用
}

func (s *stubRepo) List(_ context.Context) ([]*entity.Article, error) {
	if s.err != nil {
		return nil, s.err
	}
	return append([]*entity.Article(nil), s.data...), nil
}
func (s *stubRepo) Get(_ context.Context, id string) (*entity.Article, error) {
	if s.err != nil {
		return nil, s.err
	}
	for _, a := range s.data {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, nil
}
func (s *stubRepo) GetByDOI(_ context.Context, doi string) (*entity.Article, error) {
	if s.err != nil {
		return nil, s.err
	}
	for _, a := range s.data {
		if a.DOI == doi {
			return a, nil
		}
	}
	return nil, nil
}
func (s *stubRepo) Create(_ context.Context, a *entity.Article) error {
	if s.err != nil {
		return s.err
	}
	s.data = append(s.data, a)
	return nil
}
func (s *stubRepo) CountArticles(_ context.Context) (int64, error) {
	return int64(len(s.data)), s.err
}
func (s *stubRepo) ExistsByDOIBatch(_ context.Context, dois []string) (map[string]bool, error) {
	out := map[string]bool{}
	for _, d := range dois {
		for _, a := range s.data {
			if a.DOI == d {
				out[d] = true
			}
		}
	}
	return out, s.err
}

func art(title, doi string, keywords ...string) *entity.Article {
	return &entity.Article{
		ID: entity.NewID(),
		Metadata: entity.Metadata{
			Title:     title,
			Authors:   []string{"Alice"},
			Date:      "2020",
			Journal:   "ESE",
			Volume:    1,
			Issue:     2,
			PageRange: entity.PageRange{1, 10},
			DOI:       doi,
			Keywords:  keywords,
			Abstract:  "abstract",
		},
	}
}

/* ───────── テストケース ───────── */

func TestService_List(t *testing.T) {
	a, b := art("A", "10/a"), art("B", "10/b")
	svc := artUC.Service{Repo: &stubRepo{data: []*entity.Article{a, b}}}

	got, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []*entity.Article{a, b}, got)
}

func TestService_List_Error(t *testing.T) {
	boom := errors.New("db down")
	svc := artUC.Service{Repo: &stubRepo{err: boom}}

	_, err := svc.List(context.Background())
	assert.ErrorIs(t, err, boom)
}

func TestService_Get(t *testing.T) {
	a := art("A", "10/a")
	svc := artUC.Service{Repo: &stubRepo{data: []*entity.Article{a}}}
	ctx := context.Background()

	got, err := svc.Get(ctx, a.ID)
	require.NoError(t, err)
	assert.Same(t, a, got)

	_, err = svc.Get(ctx, entity.NewID())
	assert.ErrorIs(t, err, artUC.ErrArticleNotFound)

	_, err = svc.Get(ctx, "not-a-uuid")
	assert.ErrorIs(t, err, artUC.ErrInvalidArticleID)
}

func TestService_GetByDOI(t *testing.T) {
	a := art("A", "10.1145/3368089")
	svc := artUC.Service{Repo: &stubRepo{data: []*entity.Article{a}}}
	ctx := context.Background()

	got, err := svc.GetByDOI(ctx, "10.1145/3368089")
	require.NoError(t, err)
	assert.Same(t, a, got)

	_, err = svc.GetByDOI(ctx, "10.1/none")
	assert.ErrorIs(t, err, artUC.ErrArticleNotFound)

	_, err = svc.GetByDOI(ctx, "  ")
	assert.ErrorIs(t, err, artUC.ErrInvalidDOI)
}

func TestService_Exists(t *testing.T) {
	a := art("A", "10/a")
	svc := artUC.Service{Repo: &stubRepo{data: []*entity.Article{a}}}
	ctx := context.Background()

	ok, err := svc.Exists(ctx, a.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = svc.Exists(ctx, entity.NewID())
	require.NoError(t, err)
	assert.False(t, ok)

	// 不正なIDはエラーではなく false
	ok, err = svc.Exists(ctx, "xyz")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestService_FilterByKeywords(t *testing.T) {
	tdd := art("Test-driven development", "10/tdd", "tdd")
	pair := art("Pair programming", "10/pair", "xp")
	both := art("TDD and pairing", "10/both", "tdd", "xp")
	svc := artUC.Service{Repo: &stubRepo{data: []*entity.Article{tdd, pair, both}}}
	ctx := context.Background()

	tests := []struct {
		name     string
		keywords []string
		want     []*entity.Article
	}{
		{
			name:     "single keyword",
			keywords: []string{"tdd"},
			want:     []*entity.Article{tdd, both},
		},
		{
			name:     "union keeps duplicates",
			keywords: []string{"tdd", "xp"},
			want:     []*entity.Article{tdd, both, pair, both},
		},
		{
			name:     "case sensitive",
			keywords: []string{"TDD"},
			want:     []*entity.Article{both},
		},
		{
			name:     "matches doi",
			keywords: []string{"10/pair"},
			want:     []*entity.Article{pair},
		},
		{
			name:     "empty keywords ignored",
			keywords: []string{"", ""},
			want:     []*entity.Article{},
		},
		{
			name:     "no match",
			keywords: []string{"waterfall"},
			want:     []*entity.Article{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.FilterByKeywords(ctx, tt.keywords)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestService_FilterByKeywords_MatchesNumbers(t *testing.T) {
	a := art("A", "10/a")
	a.Volume = 42
	svc := artUC.Service{Repo: &stubRepo{data: []*entity.Article{a}}}

	got, err := svc.FilterByKeywords(context.Background(), []string{"42"})
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestParseKeywords(t *testing.T) {
	assert.Equal(t, []string{"tdd", "xp"}, artUC.ParseKeywords("tdd,xp"))
	assert.Equal(t, []string{"tdd", " xp"}, artUC.ParseKeywords("tdd,,, xp,"))
	assert.Empty(t, artUC.ParseKeywords(""))
}

func TestSearchText(t *testing.T) {
	a := &entity.Article{
		ID: "id-1",
		Metadata: entity.Metadata{
			Title:     "A <b> & C",
			Authors:   []string{"Alice", "Bob"},
			Date:      "2020-01-01",
			Journal:   "J",
			Volume:    3,
			Issue:     4,
			PageRange: entity.PageRange{5, 9},
			DOI:       "10.1/x",
			Keywords:  []string{"k"},
			Abstract:  "abs",
		},
	}
	got, err := artUC.SearchText(a)
	require.NoError(t, err)
	assert.Equal(t, `["id-1","A <b> & C",["Alice","Bob"],"2020-01-01","J",3,4,[5,9],"10.1/x",["k"],"abs"]`, got)
}
