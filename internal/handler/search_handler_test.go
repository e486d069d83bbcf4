package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"curateurs-backoffice/internal/domain"
)

func TestSearchHandler_Slugs(t *testing.T) {
	api := newTestAPI(t)
	s := api.session(domain.RoleContributor)

	api.search.EXPECT().SlugsTermSearch(mock.Anything, "jazz").Return([]domain.Slug{{Slug: "free-jazz"}})
	api.search.EXPECT().SlugsTermSearch(mock.Anything, "nothing").Return([]domain.Slug{})
	api.search.EXPECT().SlugsTermSearch(mock.Anything, "down").Return(nil)

	w := api.do(t, &s, http.MethodGet, "/api/v1/search/slugs?term=jazz", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "free-jazz")

	w = api.do(t, &s, http.MethodGet, "/api/v1/search/slugs?term=nothing", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())

	w = api.do(t, &s, http.MethodGet, "/api/v1/search/slugs?term=down", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	w = api.do(t, &s, http.MethodGet, "/api/v1/search/slugs?term=%20%20", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, domain.BadRequest("search term is required"), decodeResult(t, w))
}

func TestSearchHandler_Article(t *testing.T) {
	api := newTestAPI(t)
	s := api.session(domain.RoleContributor)

	api.search.EXPECT().SearchArticleByID(mock.Anything, "a1").Return(&domain.Article{ID: "a1"})
	api.search.EXPECT().SearchArticleByID(mock.Anything, "ghost").Return(nil)

	w := api.do(t, &s, http.MethodGet, "/api/v1/search/articles/a1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"id":"a1"`)

	w = api.do(t, &s, http.MethodGet, "/api/v1/search/articles/ghost", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Could not find article with id ghost", decodeResult(t, w).Message)
}
