package validator

import (
	"strings"
	"testing"

	"curateurs-backoffice/internal/domain"
)

func strPtr(s string) *string { return &s }

func validCreateArticle() *domain.CreateArticleRequest {
	return &domain.CreateArticleRequest{
		Title:                 "Hello, World! (Draft)",
		Introduction:          "A short introduction to the piece.",
		Main:                  strings.Repeat("Lorem ipsum dolor sit amet. ", 10),
		MainAudioURL:          "https://cdn.example.com/audio.mp3",
		URLToMainIllustration: "https://cdn.example.com/cover.jpg",
		URLs: []domain.URLItem{
			{Type: domain.URLTypeWebsite, URL: "https://example.com"},
			{Type: domain.URLTypeImage, URL: "https://example.com/a.png", Credits: strPtr("Photo: Jane")},
		},
	}
}

func TestValidateCreateArticle(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name    string
		mutate  func(r *domain.CreateArticleRequest)
		wantErr bool
		errMsg  string
	}{
		{
			name:    "valid article",
			mutate:  func(r *domain.CreateArticleRequest) {},
			wantErr: false,
		},
		{
			name:    "title too short",
			mutate:  func(r *domain.CreateArticleRequest) { r.Title = "Short" },
			wantErr: true,
			errMsg:  "Title must be at least 10 characters",
		},
		{
			name:    "title too long",
			mutate:  func(r *domain.CreateArticleRequest) { r.Title = strings.Repeat("a", 101) },
			wantErr: true,
			errMsg:  "Title must be at most 100 characters",
		},
		{
			name:    "accented title counts runes",
			mutate:  func(r *domain.CreateArticleRequest) { r.Title = strings.Repeat("é", 100) },
			wantErr: false,
		},
		{
			name:    "missing title",
			mutate:  func(r *domain.CreateArticleRequest) { r.Title = "" },
			wantErr: true,
			errMsg:  "title",
		},
		{
			name:    "introduction too long",
			mutate:  func(r *domain.CreateArticleRequest) { r.Introduction = strings.Repeat("a", 501) },
			wantErr: true,
			errMsg:  "Introduction must be at most 500 characters",
		},
		{
			name:    "main too short",
			mutate:  func(r *domain.CreateArticleRequest) { r.Main = "too short" },
			wantErr: true,
			errMsg:  "Main content must be at least 200 characters",
		},
		{
			name:    "audio url without scheme",
			mutate:  func(r *domain.CreateArticleRequest) { r.MainAudioURL = "cdn.example.com/audio.mp3" },
			wantErr: true,
			errMsg:  "main_audio_url",
		},
		{
			name:    "illustration url garbage",
			mutate:  func(r *domain.CreateArticleRequest) { r.URLToMainIllustration = "not a url" },
			wantErr: true,
			errMsg:  "url_to_main_illustration",
		},
		{
			name: "unknown url item type",
			mutate: func(r *domain.CreateArticleRequest) {
				r.URLs = []domain.URLItem{{Type: "podcast", URL: "https://example.com"}}
			},
			wantErr: true,
			errMsg:  "Invalid url type",
		},
		{
			name: "credits too long",
			mutate: func(r *domain.CreateArticleRequest) {
				r.URLs = []domain.URLItem{{Type: domain.URLTypeAudio, URL: "https://example.com", Credits: strPtr(strings.Repeat("c", 101))}}
			},
			wantErr: true,
			errMsg:  "Credits must be at most 100 characters",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := validCreateArticle()
			tt.mutate(r)
			err := v.ValidateCreateArticle(r)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateCreateArticle() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && tt.errMsg != "" && !strings.Contains(err.Error(), tt.errMsg) {
				t.Errorf("ValidateCreateArticle() error = %v, want to contain %q", err, tt.errMsg)
			}
		})
	}
}

func TestValidateUpdateArticle(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name    string
		req     domain.UpdateArticleRequest
		wantErr bool
		errMsg  string
	}{
		{
			name:    "empty update is valid",
			req:     domain.UpdateArticleRequest{},
			wantErr: false,
		},
		{
			name:    "new title",
			req:     domain.UpdateArticleRequest{Title: strPtr("A brand new title")},
			wantErr: false,
		},
		{
			name:    "empty title",
			req:     domain.UpdateArticleRequest{Title: strPtr("")},
			wantErr: true,
			errMsg:  "Title cannot be empty",
		},
		{
			name:    "short title",
			req:     domain.UpdateArticleRequest{Title: strPtr("Tiny")},
			wantErr: true,
			errMsg:  "Title must be at least 10 characters",
		},
		{
			name:    "malformed slug",
			req:     domain.UpdateArticleRequest{Slug: strPtr("Not A Slug")},
			wantErr: true,
			errMsg:  "slug",
		},
		{
			name:    "valid slug",
			req:     domain.UpdateArticleRequest{Slug: strPtr("hello-world-draft")},
			wantErr: false,
		},
		{
			name:    "bad audio url",
			req:     domain.UpdateArticleRequest{MainAudioURL: strPtr("ftp//nope")},
			wantErr: true,
			errMsg:  "main_audio_url",
		},
		{
			name:    "raw urls are not checked here",
			req:     domain.UpdateArticleRequest{URLs: strPtr("{not json")},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := tt.req
			err := v.ValidateUpdateArticle(&req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateUpdateArticle() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && !strings.Contains(err.Error(), tt.errMsg) {
				t.Errorf("ValidateUpdateArticle() error = %v, want to contain %q", err, tt.errMsg)
			}
		})
	}
}

func TestValidateURLItems(t *testing.T) {
	v := NewValidator()

	if err := v.ValidateURLItems(nil); err != nil {
		t.Errorf("ValidateURLItems(nil) error = %v", err)
	}
	if err := v.ValidateURLItems([]domain.URLItem{{Type: domain.URLTypeSocial, URL: "https://mastodon.social/@x"}}); err != nil {
		t.Errorf("ValidateURLItems() error = %v", err)
	}
	if err := v.ValidateURLItems([]domain.URLItem{{Type: domain.URLTypeSocial, URL: ""}}); err == nil {
		t.Error("ValidateURLItems() expected error for missing url")
	}
}

func TestValidateCreateUser(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name    string
		req     domain.CreateUserRequest
		wantErr bool
		errMsg  string
	}{
		{
			name:    "valid contributor",
			req:     domain.CreateUserRequest{Name: "Jane", Email: "jane@example.com", Role: domain.RoleContributor},
			wantErr: false,
		},
		{
			name:    "role may be omitted",
			req:     domain.CreateUserRequest{Name: "Jane", Email: "jane@example.com"},
			wantErr: false,
		},
		{
			name:    "missing name",
			req:     domain.CreateUserRequest{Email: "jane@example.com"},
			wantErr: true,
			errMsg:  "name_required",
		},
		{
			name:    "invalid email",
			req:     domain.CreateUserRequest{Name: "Jane", Email: "jane"},
			wantErr: true,
			errMsg:  "invalid_email_format",
		},
		{
			name:    "unknown role",
			req:     domain.CreateUserRequest{Name: "Jane", Email: "jane@example.com", Role: "editor"},
			wantErr: true,
			errMsg:  "invalid_role",
		},
		{
			name:    "malformed permission",
			req:     domain.CreateUserRequest{Name: "Jane", Email: "jane@example.com", Permissions: []string{"read articles"}},
			wantErr: true,
			errMsg:  "invalid_permission",
		},
		{
			name:    "short password",
			req:     domain.CreateUserRequest{Name: "Jane", Email: "jane@example.com", Password: "abc"},
			wantErr: true,
			errMsg:  "password_length",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := tt.req
			err := v.ValidateCreateUser(&req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateCreateUser() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && !strings.Contains(err.Error(), tt.errMsg) {
				t.Errorf("ValidateCreateUser() error = %v, want to contain %q", err, tt.errMsg)
			}
		})
	}
}

func TestValidateUpdateUser(t *testing.T) {
	v := NewValidator()

	valid := domain.UpdateUserRequest{
		ID:          "01HZX",
		Name:        "Jane",
		Email:       "jane@example.com",
		Role:        domain.RoleAdmin,
		Permissions: []string{"read:articles"},
	}
	if err := v.ValidateUpdateUser(&valid); err != nil {
		t.Fatalf("ValidateUpdateUser() error = %v", err)
	}

	missingID := valid
	missingID.ID = ""
	if err := v.ValidateUpdateUser(&missingID); err == nil || !strings.Contains(err.Error(), "id_required") {
		t.Errorf("ValidateUpdateUser() error = %v, want id_required", err)
	}

	missingRole := valid
	missingRole.Role = ""
	if err := v.ValidateUpdateUser(&missingRole); err == nil || !strings.Contains(err.Error(), "role_required") {
		t.Errorf("ValidateUpdateUser() error = %v, want role_required", err)
	}
}
