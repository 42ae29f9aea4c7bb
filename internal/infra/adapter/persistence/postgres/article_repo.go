package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"speed/internal/domain/entity"
	"speed/internal/infra/adapter/persistence/columns"
	"speed/internal/repository"
)

const articleColumns = `id, title, authors, published_date, journal, volume, issue,
       page_start, page_end, doi, keywords, abstract, created_at`

type rowScanner interface {
	Scan(dest ...any) error
}

type ArticleRepo struct {
	db *sql.DB
}

func NewArticleRepo(db *sql.DB) repository.ArticleRepository {
	return &ArticleRepo{db: db}
}

func scanArticle(s rowScanner) (*entity.Article, error) {
	var (
		article          entity.Article
		authors, keyword []byte
	)
	if err := s.Scan(&article.ID, &article.Title, &authors, &article.Date, &article.Journal,
		&article.Volume, &article.Issue, &article.PageRange[0], &article.PageRange[1],
		&article.DOI, &keyword, &article.Abstract, &article.CreatedAt); err != nil {
		return nil, err
	}
	var err error
	if article.Authors, err = columns.DecodeList(authors); err != nil {
		return nil, err
	}
	if article.Keywords, err = columns.DecodeList(keyword); err != nil {
		return nil, err
	}
	return &article, nil
}

func (repo *ArticleRepo) List(ctx context.Context) ([]*entity.Article, error) {
	const query = `
SELECT ` + articleColumns + `
FROM articles
ORDER BY seq`
	rows, err := repo.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("List: %w", err)
	}
	defer func() { _ = rows.Close() }()

	articles := make([]*entity.Article, 0, 100)
	for rows.Next() {
		article, err := scanArticle(rows)
		if err != nil {
			return nil, fmt.Errorf("List: Scan: %w", err)
		}
		articles = append(articles, article)
	}
	return articles, rows.Err()
}

func (repo *ArticleRepo) Get(ctx context.Context, id string) (*entity.Article, error) {
	const query = `
SELECT ` + articleColumns + `
FROM articles
WHERE id = $1
LIMIT 1`
	article, err := scanArticle(repo.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	return article, nil
}

func (repo *ArticleRepo) GetByDOI(ctx context.Context, doi string) (*entity.Article, error) {
	const query = `
SELECT ` + articleColumns + `
FROM articles
WHERE doi = $1
ORDER BY seq
LIMIT 1`
	article, err := scanArticle(repo.db.QueryRowContext(ctx, query, doi))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("GetByDOI: %w", err)
	}
	return article, nil
}

func (repo *ArticleRepo) Create(ctx context.Context, article *entity.Article) error {
	authors, err := columns.EncodeList(article.Authors)
	if err != nil {
		return fmt.Errorf("Create: %w", err)
	}
	keywords, err := columns.EncodeList(article.Keywords)
	if err != nil {
		return fmt.Errorf("Create: %w", err)
	}

	const query = `
INSERT INTO articles
       (id, title, authors, published_date, journal, volume, issue,
        page_start, page_end, doi, keywords, abstract, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err = repo.db.ExecContext(ctx, query,
		article.ID, article.Title, authors, article.Date, article.Journal,
		article.Volume, article.Issue, article.PageRange.Start(), article.PageRange.End(),
		article.DOI, keywords, article.Abstract, article.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("Create: %w", err)
	}
	return nil
}

// CountArticles returns the total number of articles in the database.
func (repo *ArticleRepo) CountArticles(ctx context.Context) (int64, error) {
	const query = `SELECT COUNT(*) FROM articles`
	var count int64
	if err := repo.db.QueryRowContext(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("CountArticles: %w", err)
	}
	return count, nil
}

// ExistsByDOIBatch はバッチでDOI存在チェックを行い、N+1問題を解消する
func (repo *ArticleRepo) ExistsByDOIBatch(ctx context.Context, dois []string) (map[string]bool, error) {
	return existsByDOIBatch(ctx, repo.db, "articles", dois)
}

func existsByDOIBatch(ctx context.Context, db *sql.DB, table string, dois []string) (map[string]bool, error) {
	result := make(map[string]bool)
	dois = uniqueNonEmpty(dois)
	if len(dois) == 0 {
		return result, nil
	}

	clause, args := BuildInClause("doi", dois, 1)
	query := "SELECT DISTINCT doi FROM " + table + " WHERE " + clause
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ExistsByDOIBatch: QueryContext: %w", err)
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var doi string
		if err := rows.Scan(&doi); err != nil {
			return nil, fmt.Errorf("ExistsByDOIBatch: Scan: %w", err)
		}
		result[doi] = true
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ExistsByDOIBatch: rows.Err: %w", err)
	}
	return result, nil
}
