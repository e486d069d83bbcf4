package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"curateurs-backoffice/internal/domain"
	"curateurs-backoffice/internal/middleware"
	"curateurs-backoffice/internal/service"
)

// ArticleHandler exposes the article lifecycle.
type ArticleHandler struct {
	articles service.ArticleServiceInterface
}

// NewArticleHandler creates a new ArticleHandler.
func NewArticleHandler(articles service.ArticleServiceInterface) *ArticleHandler {
	return &ArticleHandler{articles: articles}
}

// ArticleResponse is an article together with the labels of its editorial toggles.
type ArticleResponse struct {
	domain.Article
	Actions domain.ArticleActions `json:"actions"`
}

func toArticleResponse(a *domain.Article) ArticleResponse {
	return ArticleResponse{Article: *a, Actions: domain.ActionsFor(a)}
}

// List handles GET /api/v1/articles
func (h *ArticleHandler) List(c *gin.Context) {
	articles, err := h.articles.GetAllArticles(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	out := make([]ArticleResponse, 0, len(articles))
	for i := range articles {
		out = append(out, toArticleResponse(&articles[i]))
	}
	c.JSON(http.StatusOK, out)
}

// Create handles POST /api/v1/articles
func (h *ArticleHandler) Create(c *gin.Context) {
	var req domain.CreateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond(c, domain.BadRequest("Could not create article: "+msgInvalidBody))
		return
	}
	respond(c, h.articles.CreateArticle(c.Request.Context(), middleware.SessionFrom(c), req))
}

// Get handles GET /api/v1/articles/:id
func (h *ArticleHandler) Get(c *gin.Context) {
	article, err := h.articles.FetchArticleByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toArticleResponse(article))
}

// Update handles PATCH /api/v1/articles/:id
func (h *ArticleHandler) Update(c *gin.Context) {
	var req domain.UpdateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond(c, domain.BadRequest("Could not update article: "+msgInvalidBody))
		return
	}
	if !req.HasChanges() {
		respond(c, domain.BadRequest("Could not update article: no fields to update"))
		return
	}
	respond(c, h.articles.UpdateArticle(c.Request.Context(), middleware.SessionFrom(c), c.Param("id"), req))
}

// SetValidation handles PUT /api/v1/articles/:id/validation
func (h *ArticleHandler) SetValidation(c *gin.Context) {
	req, ok := bindToggle(c, "Could not validate article: ")
	if !ok {
		return
	}
	respond(c, h.articles.ValidateArticle(c.Request.Context(), c.Param("id"), req.Value, updatedBy(c)))
}

// SetShipping handles PUT /api/v1/articles/:id/shipping
func (h *ArticleHandler) SetShipping(c *gin.Context) {
	req, ok := bindToggle(c, "Could not ship article: ")
	if !ok {
		return
	}
	respond(c, h.articles.ShipArticle(c.Request.Context(), c.Param("id"), req.Value, updatedBy(c)))
}

// SetDeletion handles PUT /api/v1/articles/:id/deletion
func (h *ArticleHandler) SetDeletion(c *gin.Context) {
	req, ok := bindToggle(c, "Could not delete article: ")
	if !ok {
		return
	}
	respond(c, h.articles.DeleteArticle(c.Request.Context(), c.Param("id"), req.Value, updatedBy(c)))
}

// ListSlugs handles GET /api/v1/slugs
func (h *ArticleHandler) ListSlugs(c *gin.Context) {
	slugs, err := h.articles.GetAllSlugs(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, slugs)
}

// GetBySlug handles GET /api/v1/slugs/:slug/article
func (h *ArticleHandler) GetBySlug(c *gin.Context) {
	article, err := h.articles.FetchArticleBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toArticleResponse(article))
}

// bindToggle requires an explicit boolean "value" field.
func bindToggle(c *gin.Context, prefix string) (domain.ToggleRequest, bool) {
	var body struct {
		Value *bool `json:"value"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.Value == nil {
		respond(c, domain.BadRequest(prefix+msgInvalidBody))
		return domain.ToggleRequest{}, false
	}
	return domain.ToggleRequest{Value: *body.Value}, true
}

func updatedBy(c *gin.Context) string {
	if s := middleware.SessionFrom(c); s != nil {
		return s.Email
	}
	return ""
}
