package repository

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"curateurs-backoffice/internal/domain"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// PostgresSlugRepository implements SlugRepository using PostgreSQL.
type PostgresSlugRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresSlugRepository creates a new PostgresSlugRepository.
func NewPostgresSlugRepository(pool *pgxpool.Pool) *PostgresSlugRepository {
	return &PostgresSlugRepository{pool: pool}
}

// ListAll returns every slug row.
func (r *PostgresSlugRepository) ListAll(ctx context.Context) ([]domain.Slug, error) {
	return r.query(ctx, "list slugs", `
		SELECT id, slug, created_at, article_id, COALESCE(validated, FALSE)
		FROM slugs
		ORDER BY created_at DESC
	`)
}

// Search returns slugs containing term, case-insensitively. Wildcards in term match literally.
func (r *PostgresSlugRepository) Search(ctx context.Context, term string) ([]domain.Slug, error) {
	return r.query(ctx, "search slugs", `
		SELECT id, slug, created_at, article_id, COALESCE(validated, FALSE)
		FROM slugs
		WHERE slug ILIKE $1 ESCAPE '\'
		ORDER BY created_at DESC
	`, "%"+likeEscaper.Replace(term)+"%")
}

func (r *PostgresSlugRepository) query(ctx context.Context, op, sql string, args ...any) ([]domain.Slug, error) {
	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, wrapErr(op, err)
	}
	defer rows.Close()

	slugs := make([]domain.Slug, 0)
	for rows.Next() {
		var s domain.Slug
		if err := rows.Scan(&s.ID, &s.Slug, &s.CreatedAt, &s.ArticleID, &s.Validated); err != nil {
			return nil, wrapErr(op, err)
		}
		slugs = append(slugs, s)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr(op, err)
	}
	return slugs, nil
}
