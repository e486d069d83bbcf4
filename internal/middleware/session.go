package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"curateurs-backoffice/internal/domain"
	"curateurs-backoffice/internal/logger"
)

// SessionKey is the gin context key holding the caller's *domain.Session.
const SessionKey = "session"

// SessionDecoder turns a bearer token into a session.
type SessionDecoder interface {
	Parse(token string) (*domain.Session, error)
}

// Session authenticates the request from its bearer token. The decoded
// session is trusted as is by every handler downstream.
func Session(decoder SessionDecoder) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, domain.Fail(http.StatusUnauthorized, "Unauthorized"))
			return
		}

		session, err := decoder.Parse(token)
		if err != nil {
			logger.WarnContext(c.Request.Context(), "Rejected session token",
				slog.String("request_id", GetRequestID(c)),
				slog.String("error", err.Error()),
			)
			c.AbortWithStatusJSON(http.StatusUnauthorized, domain.Fail(http.StatusUnauthorized, "Unauthorized"))
			return
		}

		logger.WithUserID(session.UserID).DebugContext(c.Request.Context(), "Session authenticated",
			slog.String("request_id", GetRequestID(c)),
		)
		c.Set(SessionKey, session)
		c.Next()
	}
}

// SessionFrom returns the session stored by Session, or nil.
func SessionFrom(c *gin.Context) *domain.Session {
	if v, ok := c.Get(SessionKey); ok {
		if s, ok := v.(*domain.Session); ok {
			return s
		}
	}
	return nil
}

// RequirePermission aborts with 403 unless the session holds perm.
func RequirePermission(perm string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !SessionFrom(c).HasPermission(perm) {
			c.AbortWithStatusJSON(http.StatusForbidden,
				domain.Fail(http.StatusForbidden, "Forbidden: missing permission "+perm))
			return
		}
		c.Next()
	}
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
