package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"curateurs-backoffice/internal/logger"
	"curateurs-backoffice/internal/metrics"
)

func TestMetricsMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("records request metrics per route template", func(t *testing.T) {
		router := gin.New()
		router.Use(Metrics())
		router.GET("/api/v1/articles/:id", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		counter := metrics.HTTPRequestsTotal.WithLabelValues("GET", "/api/v1/articles/:id", "200")
		initialTotal := testutil.ToFloat64(counter)
		initialInFlight := testutil.ToFloat64(metrics.HTTPRequestsInFlight)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/articles/a1", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, initialTotal+1, testutil.ToFloat64(counter))
		assert.Equal(t, initialInFlight, testutil.ToFloat64(metrics.HTTPRequestsInFlight))
	})

	t.Run("labels unmatched routes", func(t *testing.T) {
		router := gin.New()
		router.Use(Metrics())

		counter := metrics.HTTPRequestsTotal.WithLabelValues("GET", unmatchedRoute, "404")
		initialTotal := testutil.ToFloat64(counter)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nowhere", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, initialTotal+1, testutil.ToFloat64(counter))
	})

	t.Run("skips metrics endpoint", func(t *testing.T) {
		router := gin.New()
		router.Use(Metrics())
		router.GET("/metrics", func(c *gin.Context) {
			c.String(http.StatusOK, "metrics data")
		})

		counter := metrics.HTTPRequestsTotal.WithLabelValues("GET", "/metrics", "200")
		initialTotal := testutil.ToFloat64(counter)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, initialTotal, testutil.ToFloat64(counter))
	})
}

func TestAccessLog(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var buf bytes.Buffer
	prev := logger.GetLogger()
	logger.SetLogger(logger.New(&buf, slog.LevelInfo))
	t.Cleanup(func() { logger.SetLogger(prev) })

	router := gin.New()
	router.Use(RequestID(), AccessLog())
	router.POST("/api/v1/users", func(c *gin.Context) {
		c.JSON(http.StatusBadRequest, gin.H{"isSuccess": false})
	})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/users", nil)
	req.Header.Set(RequestIDHeader, "req-42")
	router.ServeHTTP(httptest.NewRecorder(), req)

	out := buf.String()
	assert.Contains(t, out, `"msg":"Request rejected"`)
	assert.Contains(t, out, `"status":400`)
	assert.Contains(t, out, `"request_id":"req-42"`)
	assert.Contains(t, out, `"path":"/api/v1/users"`)
}
