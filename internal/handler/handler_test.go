package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"curateurs-backoffice/internal/auth"
	"curateurs-backoffice/internal/domain"
	"curateurs-backoffice/internal/mocks"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakePinger struct{ err error }

func (p fakePinger) Ping(context.Context) error { return p.err }

type testAPI struct {
	router   *gin.Engine
	verifier *auth.TokenVerifier
	articles *mocks.MockArticleServiceInterface
	users    *mocks.MockUserServiceInterface
	search   *mocks.MockSearchServiceInterface
}

func newTestAPI(t *testing.T) *testAPI {
	api := &testAPI{
		verifier: auth.NewTokenVerifier("handler-test-secret", "curateurs"),
		articles: mocks.NewMockArticleServiceInterface(t),
		users:    mocks.NewMockUserServiceInterface(t),
		search:   mocks.NewMockSearchServiceInterface(t),
	}
	api.router = NewRouter(RouterDeps{
		Articles: api.articles,
		Users:    api.users,
		Search:   api.search,
		Sessions: api.verifier,
		Health:   NewHealthHandler(fakePinger{}, "test", false),
	})
	return api
}

func (a *testAPI) session(role domain.Role) domain.Session {
	return domain.Session{
		UserID:      "user-1",
		Name:        "Jane",
		Email:       "jane@example.com",
		Role:        role,
		Permissions: auth.PermissionsForRole(role),
	}
}

func (a *testAPI) do(t *testing.T, s *domain.Session, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var r io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		r = bytes.NewBufferString(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		r = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, r)
	if r != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if s != nil {
		token, err := a.verifier.Issue(*s, time.Hour)
		require.NoError(t, err)
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func decodeResult(t *testing.T, w *httptest.ResponseRecorder) domain.Result {
	t.Helper()
	var res domain.Result
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	return res
}

var errBoom = errors.New("boom")
