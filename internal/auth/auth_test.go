package auth_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"curateurs-backoffice/internal/auth"
	"curateurs-backoffice/internal/domain"
)

func TestPermissionsForRole(t *testing.T) {
	t.Run("contributor", func(t *testing.T) {
		assert.Equal(t, []string{
			"read:articles", "create:articles", "update:articles", "validate:articles",
		}, auth.PermissionsForRole(domain.RoleContributor))
	})

	t.Run("admin has ten pairs", func(t *testing.T) {
		perms := auth.PermissionsForRole(domain.RoleAdmin)
		assert.Len(t, perms, 10)
		assert.Contains(t, perms, "ship:articles")
		assert.Contains(t, perms, "delete:user")
		assert.Contains(t, perms, "enable:maintenance")
	})

	t.Run("unknown role falls back to contributor", func(t *testing.T) {
		assert.Equal(t, auth.PermissionsForRole(domain.RoleContributor), auth.PermissionsForRole("guest"))
	})

	t.Run("returns a copy", func(t *testing.T) {
		perms := auth.PermissionsForRole(domain.RoleAdmin)
		perms[0] = "mutated"
		assert.Equal(t, "read:articles", auth.PermissionsForRole(domain.RoleAdmin)[0])
	})
}

func TestTokenVerifier_RoundTrip(t *testing.T) {
	v := auth.NewTokenVerifier("test-secret", "curateurs")
	in := domain.Session{
		UserID:      "user-1",
		Name:        "Alice",
		Email:       "alice@example.com",
		Role:        domain.RoleAdmin,
		Permissions: []string{"read:articles", "ship:articles"},
	}

	token, err := v.Issue(in, time.Hour)
	require.NoError(t, err)

	got, err := v.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, in, *got)
}

func TestTokenVerifier_Rejects(t *testing.T) {
	v := auth.NewTokenVerifier("test-secret", "curateurs")
	session := domain.Session{UserID: "user-1", Role: domain.RoleContributor}

	t.Run("empty token", func(t *testing.T) {
		_, err := v.Parse("  ")
		assert.ErrorIs(t, err, auth.ErrInvalidToken)
	})

	t.Run("wrong secret", func(t *testing.T) {
		token, err := auth.NewTokenVerifier("other", "curateurs").Issue(session, time.Hour)
		require.NoError(t, err)
		_, err = v.Parse(token)
		assert.ErrorIs(t, err, auth.ErrInvalidToken)
	})

	t.Run("wrong issuer", func(t *testing.T) {
		token, err := auth.NewTokenVerifier("test-secret", "someone-else").Issue(session, time.Hour)
		require.NoError(t, err)
		_, err = v.Parse(token)
		assert.ErrorIs(t, err, auth.ErrInvalidToken)
	})

	t.Run("expired", func(t *testing.T) {
		claims := auth.Claims{
			RegisteredClaims: jwt.RegisteredClaims{
				Issuer:    "curateurs",
				Subject:   "user-1",
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
			},
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
		require.NoError(t, err)
		_, err = v.Parse(token)
		assert.ErrorIs(t, err, auth.ErrInvalidToken)
	})

	t.Run("missing expiry", func(t *testing.T) {
		claims := auth.Claims{
			RegisteredClaims: jwt.RegisteredClaims{Issuer: "curateurs", Subject: "user-1"},
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
		require.NoError(t, err)
		_, err = v.Parse(token)
		assert.ErrorIs(t, err, auth.ErrInvalidToken)
	})

	t.Run("issue requires user id", func(t *testing.T) {
		_, err := v.Issue(domain.Session{}, time.Hour)
		assert.Error(t, err)
	})
}

func TestPassword(t *testing.T) {
	hash, err := auth.HashPassword("correct horse")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse", hash)

	assert.NoError(t, auth.VerifyPassword(hash, "correct horse"))
	assert.Error(t, auth.VerifyPassword(hash, "wrong"))
	assert.Error(t, auth.VerifyPassword("", "correct horse"))

	_, err = auth.HashPassword("")
	assert.Error(t, err)
}
