package service

import (
	"context"
	"errors"
	"log/slog"

	"curateurs-backoffice/internal/domain"
	"curateurs-backoffice/internal/logger"
	"curateurs-backoffice/internal/repository"
)

// SearchService backs the editor pickers.
type SearchService struct {
	slugs    repository.SlugRepository
	articles repository.ArticleRepository
}

// NewSearchService creates a new SearchService.
func NewSearchService(slugs repository.SlugRepository, articles repository.ArticleRepository) *SearchService {
	return &SearchService{slugs: slugs, articles: articles}
}

// SlugsTermSearch returns the slugs containing term. It returns nil when the
// store fails and an empty slice when nothing matches.
func (s *SearchService) SlugsTermSearch(ctx context.Context, term string) []domain.Slug {
	slugs, err := s.slugs.Search(ctx, term)
	if err != nil {
		logger.ErrorContext(ctx, "Slug search failed",
			slog.String("term", term),
			slog.String("error", err.Error()),
		)
		return nil
	}
	if slugs == nil {
		slugs = []domain.Slug{}
	}
	return slugs
}

// SearchArticleByID returns the article with id, or nil when absent or on error.
func (s *SearchService) SearchArticleByID(ctx context.Context, id string) *domain.Article {
	article, err := s.articles.GetByID(ctx, id)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			logger.ErrorContext(ctx, "Article search failed",
				slog.String("article_id", id),
				slog.String("error", err.Error()),
			)
		}
		return nil
	}
	return article
}
