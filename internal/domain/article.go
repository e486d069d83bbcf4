package domain

import (
	"strings"
	"time"
)

// TombstonePrefix marks a soft-deleted article id.
const TombstonePrefix = "markfordeletion|"

// URLType is the kind of resource an article link points to.
type URLType string

const (
	URLTypeWebsite URLType = "website"
	URLTypeVideos  URLType = "videos"
	URLTypeAudio   URLType = "audio"
	URLTypeSocial  URLType = "social"
	URLTypeImage   URLType = "image"
)

// ValidURLTypes contains all valid url item types.
var ValidURLTypes = []URLType{URLTypeWebsite, URLTypeVideos, URLTypeAudio, URLTypeSocial, URLTypeImage}

// IsValidURLType checks if a url type is valid.
func IsValidURLType(t URLType) bool {
	for _, v := range ValidURLTypes {
		if v == t {
			return true
		}
	}
	return false
}

// URLItem is one external link attached to an article.
type URLItem struct {
	Type    URLType `json:"type"`
	URL     string  `json:"url"`
	Credits *string `json:"credits,omitempty"`
}

// Article represents an article entity in the system.
type Article struct {
	ID                    string     `json:"id"`
	Slug                  string     `json:"slug"`
	Title                 string     `json:"title"`
	Introduction          string     `json:"introduction"`
	Main                  string     `json:"main"`
	MainAudioURL          string     `json:"main_audio_url"`
	URLToMainIllustration string     `json:"url_to_main_illustration"`
	PublishedAt           *time.Time `json:"published_at"`
	CreatedAt             time.Time  `json:"created_at"`
	UpdatedAt             *time.Time `json:"updated_at"`
	UpdatedBy             *string    `json:"updated_by"`
	Author                string     `json:"author"`
	AuthorEmail           string     `json:"author_email"`
	URLs                  []URLItem  `json:"urls"`
	Validated             bool       `json:"validated"`
	Shipped               bool       `json:"shipped"`
}

// IsTombstoned reports whether id carries the soft-delete marker.
func IsTombstoned(id string) bool {
	return strings.HasPrefix(id, TombstonePrefix)
}

// TombstoneID returns the soft-deleted form of id.
func TombstoneID(id string) string {
	if IsTombstoned(id) {
		return id
	}
	return TombstonePrefix + id
}

// RestoreID strips the soft-delete marker from id.
func RestoreID(id string) string {
	return strings.TrimPrefix(id, TombstonePrefix)
}

// ArticleActions holds the labels of the three editorial toggles shown for an article.
type ArticleActions struct {
	Validation string `json:"validation"`
	Shipping   string `json:"shipping"`
	Deletion   string `json:"deletion"`
}

// ActionsFor derives the toggle labels from the current article state.
func ActionsFor(a *Article) ArticleActions {
	actions := ArticleActions{
		Validation: "Valider",
		Shipping:   "Déployer",
		Deletion:   "Supprimer",
	}
	if a == nil {
		return actions
	}
	if a.Validated {
		actions.Validation = "Dé-valider"
	}
	if a.Shipped {
		actions.Shipping = "Mettre offline"
	}
	if IsTombstoned(a.ID) {
		actions.Deletion = "Restaurer"
	}
	return actions
}
