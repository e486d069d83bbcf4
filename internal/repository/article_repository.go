package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"curateurs-backoffice/internal/domain"
)

const articleColumns = `id, slug, title, introduction, main, main_audio_url, url_to_main_illustration,
	published_at, created_at, updated_at, updated_by, author, author_email, urls, validated, shipped`

type rowScanner interface {
	Scan(dest ...any) error
}

// PostgresArticleRepository implements ArticleRepository using PostgreSQL.
type PostgresArticleRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresArticleRepository creates a new PostgresArticleRepository.
func NewPostgresArticleRepository(pool *pgxpool.Pool) *PostgresArticleRepository {
	return &PostgresArticleRepository{pool: pool}
}

// CreateWithSlug inserts the article and its slug row in one transaction.
// It returns false without error when an article with the same id already exists.
func (r *PostgresArticleRepository) CreateWithSlug(ctx context.Context, a *domain.Article, s *domain.Slug) (bool, error) {
	urls, err := encodeURLs(a.URLs)
	if err != nil {
		return false, fmt.Errorf("encode urls: %w: %v", domain.ErrValidation, err)
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return false, wrapErr("begin transaction", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var insertedID string
	err = tx.QueryRow(ctx, `
		INSERT INTO articles (`+articleColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		ON CONFLICT (id) DO NOTHING
		RETURNING id
	`, a.ID, a.Slug, a.Title, a.Introduction, a.Main, a.MainAudioURL, a.URLToMainIllustration,
		a.PublishedAt, a.CreatedAt, a.UpdatedAt, a.UpdatedBy, a.Author, a.AuthorEmail, urls,
		a.Validated, a.Shipped).Scan(&insertedID)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, wrapErr("insert article", err)
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO slugs (id, slug, created_at, article_id, validated)
		VALUES ($1, $2, $3, $4, $5)
	`, s.ID, s.Slug, s.CreatedAt, insertedID, s.Validated)
	if err != nil {
		return false, wrapErr("insert slug", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return false, wrapErr("commit transaction", err)
	}
	return true, nil
}

// UpdateWithSlug updates the slug row (matched by article id) then the article row,
// both inside one transaction. A missing slug row does not abort the article update.
func (r *PostgresArticleRepository) UpdateWithSlug(ctx context.Context, id string, p ArticlePatch) (UpdateOutcome, error) {
	var out UpdateOutcome

	query, args, err := buildArticleUpdate(id, p)
	if err != nil {
		return out, err
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return out, wrapErr("begin transaction", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if p.Slug != nil {
		tag, err := tx.Exec(ctx, `UPDATE slugs SET slug = $1 WHERE article_id = $2`, *p.Slug, id)
		if err != nil {
			return out, wrapErr("update slug", err)
		}
		out.SlugRows = tag.RowsAffected()
	}

	tag, err := tx.Exec(ctx, query, args...)
	if err != nil {
		return out, wrapErr("update article", err)
	}
	out.ArticleRows = tag.RowsAffected()

	if err := tx.Commit(ctx); err != nil {
		return UpdateOutcome{}, wrapErr("commit transaction", err)
	}
	return out, nil
}

func buildArticleUpdate(id string, p ArticlePatch) (string, []any, error) {
	var sets []string
	var args []any
	add := func(col string, v any) {
		args = append(args, v)
		sets = append(sets, fmt.Sprintf("%s = $%d", col, len(args)))
	}

	if p.Slug != nil {
		add("slug", *p.Slug)
	}
	if p.Title != nil {
		add("title", *p.Title)
	}
	if p.Introduction != nil {
		add("introduction", *p.Introduction)
	}
	if p.Main != nil {
		add("main", *p.Main)
	}
	if p.MainAudioURL != nil {
		add("main_audio_url", *p.MainAudioURL)
	}
	if p.URLToMainIllustration != nil {
		add("url_to_main_illustration", *p.URLToMainIllustration)
	}
	if p.URLs != nil {
		urls, err := encodeURLs(*p.URLs)
		if err != nil {
			return "", nil, fmt.Errorf("encode urls: %w: %v", domain.ErrValidation, err)
		}
		add("urls", urls)
	}
	add("updated_by", p.UpdatedBy)
	add("updated_at", p.UpdatedAt)

	args = append(args, id)
	query := fmt.Sprintf("UPDATE articles SET %s WHERE id = $%d", strings.Join(sets, ", "), len(args))
	return query, args, nil
}

// SetValidated sets the validated flag. Clearing it also clears shipped.
func (r *PostgresArticleRepository) SetValidated(ctx context.Context, id string, value bool, updatedBy string, at time.Time) (int64, error) {
	tag, err := r.pool.Exec(ctx, `
		UPDATE articles
		SET validated = $2, shipped = shipped AND $2, updated_by = $3, updated_at = $4
		WHERE id = $1
	`, id, value, updatedBy, at)
	if err != nil {
		return 0, wrapErr("update article validation", err)
	}
	return tag.RowsAffected(), nil
}

// SetShipped sets the shipped flag. Shipping only matches validated rows and
// stamps published_at the first time.
func (r *PostgresArticleRepository) SetShipped(ctx context.Context, id string, value bool, updatedBy string, at time.Time) (int64, error) {
	tag, err := r.pool.Exec(ctx, `
		UPDATE articles
		SET shipped = $2,
			published_at = CASE WHEN $2 AND published_at IS NULL THEN $4 ELSE published_at END,
			updated_by = $3,
			updated_at = $4
		WHERE id = $1 AND (validated OR NOT $2)
	`, id, value, updatedBy, at)
	if err != nil {
		return 0, wrapErr("update article shipping", err)
	}
	return tag.RowsAffected(), nil
}

// ReplaceID rewrites an article id; slug rows follow through ON UPDATE CASCADE.
func (r *PostgresArticleRepository) ReplaceID(ctx context.Context, from, to, updatedBy string, at time.Time) (int64, error) {
	tag, err := r.pool.Exec(ctx, `
		UPDATE articles SET id = $2, updated_by = $3, updated_at = $4 WHERE id = $1
	`, from, to, updatedBy, at)
	if err != nil {
		return 0, wrapErr("replace article id", err)
	}
	return tag.RowsAffected(), nil
}

// GetByID retrieves an article by id.
func (r *PostgresArticleRepository) GetByID(ctx context.Context, id string) (*domain.Article, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+articleColumns+` FROM articles WHERE id = $1`, id)
	a, err := scanArticle(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("article %s: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, wrapErr("get article", err)
	}
	return a, nil
}

// GetBySlug retrieves the most recent article carrying slug.
func (r *PostgresArticleRepository) GetBySlug(ctx context.Context, slug string) (*domain.Article, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+articleColumns+` FROM articles WHERE slug = $1 ORDER BY created_at DESC LIMIT 1
	`, slug)
	a, err := scanArticle(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("article with slug %s: %w", slug, domain.ErrNotFound)
	}
	if err != nil {
		return nil, wrapErr("get article by slug", err)
	}
	return a, nil
}

// ListAll returns every article, newest first, tombstoned ones included.
func (r *PostgresArticleRepository) ListAll(ctx context.Context) ([]domain.Article, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+articleColumns+` FROM articles ORDER BY created_at DESC`)
	if err != nil {
		return nil, wrapErr("list articles", err)
	}
	defer rows.Close()

	articles := make([]domain.Article, 0)
	for rows.Next() {
		a, err := scanArticle(rows)
		if err != nil {
			return nil, wrapErr("scan article", err)
		}
		articles = append(articles, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr("iterate articles", err)
	}
	return articles, nil
}

func scanArticle(row rowScanner) (*domain.Article, error) {
	var a domain.Article
	var urls []byte
	err := row.Scan(&a.ID, &a.Slug, &a.Title, &a.Introduction, &a.Main, &a.MainAudioURL,
		&a.URLToMainIllustration, &a.PublishedAt, &a.CreatedAt, &a.UpdatedAt, &a.UpdatedBy,
		&a.Author, &a.AuthorEmail, &urls, &a.Validated, &a.Shipped)
	if err != nil {
		return nil, err
	}
	if len(urls) > 0 {
		if err := json.Unmarshal(urls, &a.URLs); err != nil {
			return nil, fmt.Errorf("decode urls: %w", err)
		}
	}
	return &a, nil
}

// encodeURLs returns nil for an empty list so the column stays NULL.
func encodeURLs(items []domain.URLItem) ([]byte, error) {
	if len(items) == 0 {
		return nil, nil
	}
	return json.Marshal(items)
}
