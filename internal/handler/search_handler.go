package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"curateurs-backoffice/internal/domain"
	"curateurs-backoffice/internal/service"
)

// SearchHandler backs the editor pickers.
type SearchHandler struct {
	search service.SearchServiceInterface
}

// NewSearchHandler creates a new SearchHandler.
func NewSearchHandler(search service.SearchServiceInterface) *SearchHandler {
	return &SearchHandler{search: search}
}

// Slugs handles GET /api/v1/search/slugs?term=
func (h *SearchHandler) Slugs(c *gin.Context) {
	term := strings.TrimSpace(c.Query("term"))
	if term == "" {
		respond(c, domain.BadRequest("search term is required"))
		return
	}

	slugs := h.search.SlugsTermSearch(c.Request.Context(), term)
	if slugs == nil {
		c.JSON(http.StatusInternalServerError, domain.Fail(http.StatusInternalServerError, "Could not search slugs"))
		return
	}
	c.JSON(http.StatusOK, slugs)
}

// Article handles GET /api/v1/search/articles/:id
func (h *SearchHandler) Article(c *gin.Context) {
	id := c.Param("id")
	article := h.search.SearchArticleByID(c.Request.Context(), id)
	if article == nil {
		c.JSON(http.StatusNotFound, domain.Fail(http.StatusNotFound, "Could not find article with id "+id))
		return
	}
	c.JSON(http.StatusOK, article)
}
