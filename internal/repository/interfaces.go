package repository

import (
	"context"
	"time"

	"curateurs-backoffice/internal/domain"
)

// ArticlePatch holds the article columns an update writes. Nil fields are left untouched.
type ArticlePatch struct {
	Slug                  *string
	Title                 *string
	Introduction          *string
	Main                  *string
	MainAudioURL          *string
	URLToMainIllustration *string
	URLs                  *[]domain.URLItem
	UpdatedBy             string
	UpdatedAt             time.Time
}

// UpdateOutcome reports the rows touched by an article update.
type UpdateOutcome struct {
	SlugRows    int64
	ArticleRows int64
}

// ArticleRepository defines methods for article data access.
type ArticleRepository interface {
	CreateWithSlug(ctx context.Context, article *domain.Article, slug *domain.Slug) (bool, error)
	UpdateWithSlug(ctx context.Context, id string, patch ArticlePatch) (UpdateOutcome, error)
	SetValidated(ctx context.Context, id string, value bool, updatedBy string, at time.Time) (int64, error)
	SetShipped(ctx context.Context, id string, value bool, updatedBy string, at time.Time) (int64, error)
	ReplaceID(ctx context.Context, from, to, updatedBy string, at time.Time) (int64, error)
	GetByID(ctx context.Context, id string) (*domain.Article, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Article, error)
	ListAll(ctx context.Context) ([]domain.Article, error)
}

// SlugRepository defines methods for slug data access.
type SlugRepository interface {
	ListAll(ctx context.Context) ([]domain.Slug, error)
	Search(ctx context.Context, term string) ([]domain.Slug, error)
}

// UserRepository defines methods for user data access.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User, account *domain.Account, verification *domain.Verification) error
	Update(ctx context.Context, user *domain.User) (int64, error)
	Delete(ctx context.Context, id string) (int64, error)
	ListAll(ctx context.Context) ([]domain.User, error)
}
