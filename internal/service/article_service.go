package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"curateurs-backoffice/internal/domain"
	"curateurs-backoffice/internal/htmlsanitize"
	"curateurs-backoffice/internal/ids"
	"curateurs-backoffice/internal/logger"
	"curateurs-backoffice/internal/metrics"
	"curateurs-backoffice/internal/repository"
	"curateurs-backoffice/internal/slugify"
	"curateurs-backoffice/internal/validator"
)

const articleEntity = "article"

// ArticleService implements the article lifecycle: create, update, validate, ship and soft delete.
type ArticleService struct {
	articles  repository.ArticleRepository
	slugs     repository.SlugRepository
	validator *validator.Validator

	now   func() time.Time
	newID func() string
}

// NewArticleService creates a new ArticleService.
func NewArticleService(articles repository.ArticleRepository, slugs repository.SlugRepository, v *validator.Validator) *ArticleService {
	return &ArticleService{
		articles:  articles,
		slugs:     slugs,
		validator: v,
		now:       func() time.Time { return time.Now().UTC() },
		newID:     ids.New,
	}
}

func (s *ArticleService) observe(op string, timer *metrics.Timer, r domain.Result) domain.Result {
	metrics.ObserveOperation(articleEntity, op, r.IsSuccess, timer.Seconds())
	return r
}

// CreateArticle stores a new unvalidated, unshipped article and its slug row atomically.
func (s *ArticleService) CreateArticle(ctx context.Context, session *domain.Session, req domain.CreateArticleRequest) domain.Result {
	timer := metrics.NewTimer()
	const prefix = "Could not create article: "

	if session == nil || session.Email == "" {
		return s.observe("create", timer, domain.BadRequest(prefix+"session is required"))
	}

	// Validation applies to the values that get stored.
	req.Title = strings.TrimSpace(req.Title)
	req.Introduction = htmlsanitize.Sanitize(req.Introduction)
	req.Main = htmlsanitize.Sanitize(req.Main)
	if err := s.validator.ValidateCreateArticle(&req); err != nil {
		return s.observe("create", timer, domain.BadRequest(prefix+err.Error()))
	}

	slug := slugify.Make(req.Title)
	if slug == "" {
		return s.observe("create", timer, domain.BadRequest(prefix+"title yields an empty slug"))
	}

	now := s.now()
	article := &domain.Article{
		ID:                    s.newID(),
		Slug:                  slug,
		Title:                 req.Title,
		Introduction:          req.Introduction,
		Main:                  req.Main,
		MainAudioURL:          req.MainAudioURL,
		URLToMainIllustration: req.URLToMainIllustration,
		CreatedAt:             now,
		Author:                session.Name,
		AuthorEmail:           session.Email,
		URLs:                  req.URLs,
	}
	slugRow := &domain.Slug{
		ID:        s.newID(),
		Slug:      slug,
		CreatedAt: now,
		ArticleID: article.ID,
	}

	created, err := s.articles.CreateWithSlug(ctx, article, slugRow)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to create article",
			slog.String("article_id", article.ID),
			slog.String("error", err.Error()),
		)
		return s.observe("create", timer, domain.BadRequest(prefix+err.Error()))
	}
	if !created {
		return s.observe("create", timer, domain.BadRequest(prefix+fmt.Sprintf("article %s already exists", article.ID)))
	}

	logger.InfoContext(ctx, "Article created",
		slog.String("article_id", article.ID),
		slog.String("slug", slug),
		slog.String("author", session.Email),
	)
	return s.observe("create", timer, domain.OK(http.StatusOK, "Article created successfully"))
}

// UpdateArticle writes the fields present in req. A supplied slug is used as is;
// otherwise a new title derives a new slug.
func (s *ArticleService) UpdateArticle(ctx context.Context, session *domain.Session, id string, req domain.UpdateArticleRequest) domain.Result {
	timer := metrics.NewTimer()
	const prefix = "Could not update article: "

	if strings.TrimSpace(id) == "" {
		return s.observe("update", timer, domain.BadRequest(prefix+"id is required"))
	}
	if session == nil || session.Email == "" {
		return s.observe("update", timer, domain.BadRequest(prefix+"session is required"))
	}

	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		req.Title = &title
	}
	if req.Introduction != nil {
		intro := htmlsanitize.Sanitize(*req.Introduction)
		req.Introduction = &intro
	}
	if req.Main != nil {
		body := htmlsanitize.Sanitize(*req.Main)
		req.Main = &body
	}
	if err := s.validator.ValidateUpdateArticle(&req); err != nil {
		return s.observe("update", timer, domain.BadRequest(prefix+err.Error()))
	}

	patch := repository.ArticlePatch{
		Slug:                  req.Slug,
		Title:                 req.Title,
		Introduction:          req.Introduction,
		Main:                  req.Main,
		MainAudioURL:          req.MainAudioURL,
		URLToMainIllustration: req.URLToMainIllustration,
		UpdatedBy:             session.Email,
		UpdatedAt:             s.now(),
	}
	if req.URLs != nil {
		var urls []domain.URLItem
		if err := json.Unmarshal([]byte(*req.URLs), &urls); err != nil {
			return s.observe("update", timer, domain.BadRequest(prefix+"Invalid JSON for urls: "+err.Error()))
		}
		if err := s.validator.ValidateURLItems(urls); err != nil {
			return s.observe("update", timer, domain.BadRequest(prefix+err.Error()))
		}
		patch.URLs = &urls
	}
	if patch.Slug == nil && req.Title != nil {
		derived := slugify.Make(*req.Title)
		if derived == "" {
			return s.observe("update", timer, domain.BadRequest(prefix+"title yields an empty slug"))
		}
		patch.Slug = &derived
	}

	out, err := s.articles.UpdateWithSlug(ctx, id, patch)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to update article",
			slog.String("article_id", id),
			slog.String("error", err.Error()),
		)
		return s.observe("update", timer, domain.BadRequest(prefix+err.Error()))
	}

	var parts []string
	if patch.Slug != nil {
		if out.SlugRows > 0 {
			parts = append(parts, "Slug updated successfully")
		} else {
			logger.WarnContext(ctx, "No slug row for article", slog.String("article_id", id))
			parts = append(parts, "No slug row found for article "+id)
		}
	}

	if out.ArticleRows == 0 {
		parts = append(parts, prefix+"Could not find article with id "+id)
		return s.observe("update", timer, domain.Fail(http.StatusNotFound, strings.Join(parts, "; ")))
	}

	parts = append(parts, "Article updated successfully")
	logger.InfoContext(ctx, "Article updated",
		slog.String("article_id", id),
		slog.Int64("slug_rows", out.SlugRows),
		slog.String("updated_by", session.Email),
	)
	return s.observe("update", timer, domain.OK(http.StatusOK, strings.Join(parts, "; ")))
}

// ValidateArticle sets the validated flag without checking that the article exists.
// Clearing the flag also takes the article offline.
func (s *ArticleService) ValidateArticle(ctx context.Context, id string, value bool, updatedBy string) domain.Result {
	timer := metrics.NewTimer()
	const prefix = "Could not validate article: "

	if strings.TrimSpace(id) == "" {
		return s.observe("validate", timer, domain.BadRequest(prefix+"id is required"))
	}

	rows, err := s.articles.SetValidated(ctx, id, value, updatedBy, s.now())
	if err != nil {
		logger.ErrorContext(ctx, "Failed to validate article",
			slog.String("article_id", id),
			slog.String("error", err.Error()),
		)
		return s.observe("validate", timer, domain.BadRequest(prefix+err.Error()))
	}
	if rows == 0 {
		logger.WarnContext(ctx, "Validation matched no article", slog.String("article_id", id))
	}

	msg := "Article validated successfully"
	if !value {
		msg = "Article unvalidated successfully"
	}
	return s.observe("validate", timer, domain.OK(http.StatusOK, msg))
}

// ShipArticle publishes or unpublishes a validated article.
func (s *ArticleService) ShipArticle(ctx context.Context, id string, value bool, updatedBy string) domain.Result {
	timer := metrics.NewTimer()
	const prefix = "Could not ship article: "

	if strings.TrimSpace(id) == "" {
		return s.observe("ship", timer, domain.BadRequest(prefix+"id is required"))
	}

	article, err := s.articles.GetByID(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return s.observe("ship", timer, domain.Fail(http.StatusNotFound, prefix+"Could not find article with id "+id))
	}
	if err != nil {
		logger.ErrorContext(ctx, "Failed to load article for shipping",
			slog.String("article_id", id),
			slog.String("error", err.Error()),
		)
		return s.observe("ship", timer, domain.BadRequest(prefix+err.Error()))
	}
	if !article.Validated {
		return s.observe("ship", timer, domain.BadRequest("Article must be validated before shipping"))
	}
	if article.Shipped == value {
		return s.observe("ship", timer, domain.BadRequest("Article already has the same shipping status"))
	}

	rows, err := s.articles.SetShipped(ctx, id, value, updatedBy, s.now())
	if err != nil {
		logger.ErrorContext(ctx, "Failed to ship article",
			slog.String("article_id", id),
			slog.String("error", err.Error()),
		)
		return s.observe("ship", timer, domain.BadRequest(prefix+err.Error()))
	}
	if rows == 0 {
		// Validation was revoked or the id changed between the read and the write.
		return s.observe("ship", timer, domain.BadRequest(prefix+"article changed concurrently, please retry"))
	}

	msg := "Article shipped successfully"
	if !value {
		msg = "Article unshipped successfully"
	}
	logger.InfoContext(ctx, "Article shipping changed",
		slog.String("article_id", id),
		slog.Bool("shipped", value),
		slog.String("updated_by", updatedBy),
	)
	return s.observe("ship", timer, domain.OK(http.StatusOK, msg))
}

// DeleteArticle tombstones the article id when flag is true and restores it otherwise.
func (s *ArticleService) DeleteArticle(ctx context.Context, id string, flag bool, updatedBy string) domain.Result {
	timer := metrics.NewTimer()
	op, prefix := "delete", "Could not delete article: "
	if !flag {
		op, prefix = "restore", "Could not restore article: "
	}

	if strings.TrimSpace(id) == "" {
		return s.observe(op, timer, domain.BadRequest(prefix+"id is required"))
	}

	var target string
	switch {
	case flag && domain.IsTombstoned(id):
		return s.observe(op, timer, domain.BadRequest(prefix+"Article is already deleted"))
	case !flag && !domain.IsTombstoned(id):
		return s.observe(op, timer, domain.BadRequest(prefix+"Article is not deleted"))
	case flag:
		target = domain.TombstoneID(id)
	default:
		target = domain.RestoreID(id)
	}

	rows, err := s.articles.ReplaceID(ctx, id, target, updatedBy, s.now())
	if err != nil {
		logger.ErrorContext(ctx, "Failed to change article deletion state",
			slog.String("article_id", id),
			slog.Bool("delete", flag),
			slog.String("error", err.Error()),
		)
		return s.observe(op, timer, domain.BadRequest(prefix+err.Error()))
	}
	if rows == 0 {
		return s.observe(op, timer, domain.Fail(http.StatusNotFound, prefix+"Could not find article with id "+id))
	}

	msg := "Article deleted successfully"
	if !flag {
		msg = "Article restored successfully"
	}
	logger.InfoContext(ctx, "Article deletion state changed",
		slog.String("article_id", id),
		slog.String("new_id", target),
		slog.String("updated_by", updatedBy),
	)
	return s.observe(op, timer, domain.OK(http.StatusOK, msg))
}

// FetchArticleByID returns the article with id. Tombstoned articles are only
// reachable through their tombstoned id.
func (s *ArticleService) FetchArticleByID(ctx context.Context, id string) (*domain.Article, error) {
	article, err := s.articles.GetByID(ctx, id)
	if err != nil {
		return nil, s.readError(ctx, err, "Could not find article with id "+id)
	}
	return article, nil
}

// FetchArticleBySlug returns the article currently carrying slug.
func (s *ArticleService) FetchArticleBySlug(ctx context.Context, slug string) (*domain.Article, error) {
	article, err := s.articles.GetBySlug(ctx, slug)
	if err != nil {
		return nil, s.readError(ctx, err, "Could not find article with slug "+slug)
	}
	return article, nil
}

// GetAllArticles returns every article, tombstoned ones included.
func (s *ArticleService) GetAllArticles(ctx context.Context) ([]domain.Article, error) {
	articles, err := s.articles.ListAll(ctx)
	if err != nil {
		return nil, s.readError(ctx, err, "Could not find any articles!")
	}
	return articles, nil
}

// GetAllSlugs returns every slug row.
func (s *ArticleService) GetAllSlugs(ctx context.Context) ([]domain.Slug, error) {
	slugs, err := s.slugs.ListAll(ctx)
	if err != nil {
		return nil, s.readError(ctx, err, "Could not find any slugs!")
	}
	return slugs, nil
}

func (s *ArticleService) readError(ctx context.Context, err error, msg string) error {
	if errors.Is(err, domain.ErrNotFound) {
		return domain.Errorf(domain.ErrNotFound, "%s", msg)
	}
	logger.ErrorContext(ctx, "Article read failed", slog.String("error", err.Error()))
	return domain.Errorf(domain.ErrPersistence, "%s", msg)
}
