package domain

import "time"

// Slug tracks the current public slug of one article.
type Slug struct {
	ID        string    `json:"id"`
	Slug      string    `json:"slug"`
	CreatedAt time.Time `json:"createdAt"`
	ArticleID string    `json:"articleId"`
	Validated bool      `json:"validated"`
}
