package domain

// CreateArticleRequest is the editor form payload for a new article.
type CreateArticleRequest struct {
	Title                 string    `json:"title"`
	Introduction          string    `json:"introduction"`
	Main                  string    `json:"main"`
	MainAudioURL          string    `json:"main_audio_url"`
	URLToMainIllustration string    `json:"url_to_main_illustration"`
	URLs                  []URLItem `json:"urls"`
}

// UpdateArticleRequest carries only the fields the editor changed.
// URLs is the serialized JSON array produced by the url list widget.
type UpdateArticleRequest struct {
	Slug                  *string `json:"slug,omitempty"`
	Title                 *string `json:"title,omitempty"`
	Introduction          *string `json:"introduction,omitempty"`
	Main                  *string `json:"main,omitempty"`
	MainAudioURL          *string `json:"main_audio_url,omitempty"`
	URLToMainIllustration *string `json:"url_to_main_illustration,omitempty"`
	URLs                  *string `json:"urls,omitempty"`
}

// HasChanges reports whether any field is present.
func (r UpdateArticleRequest) HasChanges() bool {
	return r.Slug != nil || r.Title != nil || r.Introduction != nil || r.Main != nil ||
		r.MainAudioURL != nil || r.URLToMainIllustration != nil || r.URLs != nil
}

// ToggleRequest flips one editorial flag (validated, shipped or deleted).
type ToggleRequest struct {
	Value bool `json:"value"`
}

// CreateUserRequest is the admin form payload for a new user.
type CreateUserRequest struct {
	Name        string   `json:"name"`
	Email       string   `json:"email"`
	Role        Role     `json:"role"`
	Permissions []string `json:"permissions"`
	Password    string   `json:"password,omitempty"`
	Image       *string  `json:"image,omitempty"`
}

// UpdateUserRequest replaces the four mutable user fields.
type UpdateUserRequest struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Email       string   `json:"email"`
	Role        Role     `json:"role"`
	Permissions []string `json:"permissions"`
}
