package domain

import "time"

// Category groups articles
type Category struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Slug         string    `json:"slug"`
	Description  string    `json:"description"`
	CreatedAt    time.Time `json:"created_at"`
	ArticleCount *int      `json:"article_count,omitempty"`
}

// CategoryUpdate lists the mutable category fields
type CategoryUpdate struct {
	Name        *string `json:"name"`
	Slug        *string `json:"slug"`
	Description *string `json:"description"`
}

// Tag is a free-form article label
type Tag struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	CreatedAt time.Time `json:"created_at"`
}
