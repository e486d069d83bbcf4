package domain

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestIsValidURLType(t *testing.T) {
	tests := []struct {
		urlType URLType
		valid   bool
	}{
		{"website", true},
		{"videos", true},
		{"audio", true},
		{"social", true},
		{"image", true},
		{"podcast", false},
		{"", false},
		{"WEBSITE", false},
	}

	for _, tt := range tests {
		t.Run(string(tt.urlType), func(t *testing.T) {
			if got := IsValidURLType(tt.urlType); got != tt.valid {
				t.Errorf("IsValidURLType(%q) = %v, want %v", tt.urlType, got, tt.valid)
			}
		})
	}
}

func TestIsValidRole(t *testing.T) {
	tests := []struct {
		role  Role
		valid bool
	}{
		{"admin", true},
		{"contributor", true},
		{"moderator", false},
		{"", false},
		{"ADMIN", false},
	}

	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			if got := IsValidRole(tt.role); got != tt.valid {
				t.Errorf("IsValidRole(%q) = %v, want %v", tt.role, got, tt.valid)
			}
		})
	}
}

func TestTombstone(t *testing.T) {
	id := "01HZX3A7"
	tomb := TombstoneID(id)

	if tomb != "markfordeletion|01HZX3A7" {
		t.Errorf("TombstoneID(%q) = %q", id, tomb)
	}
	if !IsTombstoned(tomb) {
		t.Errorf("IsTombstoned(%q) = false, want true", tomb)
	}
	if IsTombstoned(id) {
		t.Errorf("IsTombstoned(%q) = true, want false", id)
	}
	if TombstoneID(tomb) != tomb {
		t.Errorf("TombstoneID must not stack markers, got %q", TombstoneID(tomb))
	}
	if RestoreID(tomb) != id {
		t.Errorf("RestoreID(%q) = %q, want %q", tomb, RestoreID(tomb), id)
	}
	if RestoreID(id) != id {
		t.Errorf("RestoreID on a live id must be a no-op, got %q", RestoreID(id))
	}
}

func TestActionsFor(t *testing.T) {
	tests := []struct {
		name    string
		article *Article
		want    ArticleActions
	}{
		{"nil article", nil, ArticleActions{"Valider", "Déployer", "Supprimer"}},
		{"fresh article", &Article{ID: "a1"}, ArticleActions{"Valider", "Déployer", "Supprimer"}},
		{"validated and shipped", &Article{ID: "a1", Validated: true, Shipped: true}, ArticleActions{"Dé-valider", "Mettre offline", "Supprimer"}},
		{"tombstoned", &Article{ID: "markfordeletion|a1", Validated: true}, ArticleActions{"Dé-valider", "Déployer", "Restaurer"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ActionsFor(tt.article); got != tt.want {
				t.Errorf("ActionsFor() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestSessionHasPermission(t *testing.T) {
	s := &Session{Permissions: []string{"read:articles", "create:articles"}}

	if !s.HasPermission("create:articles") {
		t.Error("expected create:articles to be granted")
	}
	if s.HasPermission("ship:articles") {
		t.Error("expected ship:articles to be denied")
	}

	var nilSession *Session
	if nilSession.HasPermission("read:articles") {
		t.Error("nil session must not grant anything")
	}
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{nil, http.StatusOK},
		{fmt.Errorf("Could not find article with id 1: %w", ErrNotFound), http.StatusNotFound},
		{fmt.Errorf("bad: %w", ErrValidation), http.StatusBadRequest},
		{fmt.Errorf("same: %w", ErrConflict), http.StatusBadRequest},
		{fmt.Errorf("db: %w", ErrPersistence), http.StatusInternalServerError},
		{errors.New("unknown"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		if got := StatusFor(tt.err); got != tt.want {
			t.Errorf("StatusFor(%v) = %d, want %d", tt.err, got, tt.want)
		}
	}
}

func TestErrorf(t *testing.T) {
	err := Errorf(ErrNotFound, "Could not find article with id %s", "42")
	if err.Error() != "Could not find article with id 42" {
		t.Errorf("Error() = %q", err.Error())
	}
	if !errors.Is(err, ErrNotFound) {
		t.Error("expected errors.Is(err, ErrNotFound)")
	}
	if StatusFor(err) != 404 {
		t.Errorf("StatusFor() = %d, want 404", StatusFor(err))
	}
}

func TestUpdateArticleRequest_HasChanges(t *testing.T) {
	if (UpdateArticleRequest{}).HasChanges() {
		t.Error("empty request should report no changes")
	}
	title := "New title"
	if !(UpdateArticleRequest{Title: &title}).HasChanges() {
		t.Error("request with title should report changes")
	}
}
