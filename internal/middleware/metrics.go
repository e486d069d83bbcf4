// Package middleware provides the gin middleware chain of the back office API.
package middleware

import (
	"log/slog"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"curateurs-backoffice/internal/logger"
	"curateurs-backoffice/internal/metrics"
)

const unmatchedRoute = "unmatched"

// Metrics records request count, latency and in-flight gauges per route template.
// Scrapes of /metrics are not counted.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.FullPath() == "/metrics" {
			c.Next()
			return
		}

		start := time.Now()
		metrics.HTTPRequestsInFlight.Inc()
		defer metrics.HTTPRequestsInFlight.Dec()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = unmatchedRoute
		}
		status := strconv.Itoa(c.Writer.Status())

		metrics.HTTPRequestsTotal.WithLabelValues(c.Request.Method, route, status).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}

// AccessLog writes one structured line per request once the handler chain returns.
func AccessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		attrs := []any{
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.Int("status", c.Writer.Status()),
			slog.Duration("latency", time.Since(start)),
		}
		if id := GetRequestID(c); id != "" {
			attrs = append(attrs, slog.String("request_id", id))
		}
		if s := SessionFrom(c); s != nil {
			attrs = append(attrs, slog.String("user_id", s.UserID))
		}

		switch status := c.Writer.Status(); {
		case status >= 500:
			logger.ErrorContext(c.Request.Context(), "Request failed", attrs...)
		case status >= 400:
			logger.WarnContext(c.Request.Context(), "Request rejected", attrs...)
		default:
			logger.InfoContext(c.Request.Context(), "Request served", attrs...)
		}
	}
}
