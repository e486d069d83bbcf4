package service

import (
	"context"

	"curateurs-backoffice/internal/domain"
	"curateurs-backoffice/internal/tasks"
)

// ArticleServiceInterface defines the article lifecycle operations.
// Used for dependency injection and mocking in tests.
type ArticleServiceInterface interface {
	CreateArticle(ctx context.Context, session *domain.Session, req domain.CreateArticleRequest) domain.Result
	UpdateArticle(ctx context.Context, session *domain.Session, id string, req domain.UpdateArticleRequest) domain.Result
	ValidateArticle(ctx context.Context, id string, value bool, updatedBy string) domain.Result
	ShipArticle(ctx context.Context, id string, value bool, updatedBy string) domain.Result
	DeleteArticle(ctx context.Context, id string, flag bool, updatedBy string) domain.Result

	// Read helpers return errors instead of envelopes.
	FetchArticleByID(ctx context.Context, id string) (*domain.Article, error)
	FetchArticleBySlug(ctx context.Context, slug string) (*domain.Article, error)
	GetAllArticles(ctx context.Context) ([]domain.Article, error)
	GetAllSlugs(ctx context.Context) ([]domain.Slug, error)
}

// UserServiceInterface defines the user administration operations.
type UserServiceInterface interface {
	CreateUser(ctx context.Context, req domain.CreateUserRequest) domain.Result
	UpdateUser(ctx context.Context, req domain.UpdateUserRequest) domain.Result
	DeleteUser(ctx context.Context, id string) domain.Result
	GetAllUsers(ctx context.Context) ([]domain.User, error)
}

// SearchServiceInterface defines the picker lookups.
type SearchServiceInterface interface {
	SlugsTermSearch(ctx context.Context, term string) []domain.Slug
	SearchArticleByID(ctx context.Context, id string) *domain.Article
}

// TaskSubmitter hands work to the background runner without blocking.
type TaskSubmitter interface {
	Submit(kind string, fn tasks.Func) bool
}
