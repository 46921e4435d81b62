package domain

import (
	"strings"
	"time"
)

// pagination defaults for article listings
const (
	DefaultPage    = 1
	DefaultPerPage = 10
	MaxPerPage     = 100
)

// Article represents a news article with its related entities loaded one level deep
type Article struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Content     string    `json:"content"`
	Excerpt     string    `json:"excerpt"`
	ImageURL    string    `json:"image_url"`
	ImageAlt    string    `json:"image_alt"`
	ReadingTime int       `json:"reading_time"`
	IsPublished bool      `json:"is_published"`
	Views       int64     `json:"views"`
	PublishedAt time.Time `json:"published_at"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	AuthorID   int64  `json:"author_id"`
	CategoryID *int64 `json:"category_id"`

	Author   *Author   `json:"author,omitempty"`
	Category *Category `json:"category,omitempty"`
	Tags     []Tag     `json:"tags"`
}

// ArticleUpdate lists the mutable article fields, nil means unchanged.
// TagIDs replaces the tag set when not nil.
type ArticleUpdate struct {
	Title       *string    `json:"title"`
	Slug        *string    `json:"slug"`
	Content     *string    `json:"content"`
	Excerpt     *string    `json:"excerpt"`
	ImageURL    *string    `json:"image_url"`
	ImageAlt    *string    `json:"image_alt"`
	IsPublished *bool      `json:"is_published"`
	PublishedAt *time.Time `json:"published_at"`
	AuthorID    *int64     `json:"author_id"`
	CategoryID  *int64     `json:"category_id"`
	TagIDs      *[]int64   `json:"tag_ids"`

	ReadingTime *int `json:"-"` // derived from content on write
}

// Validate checks the fields required to store a new article
func (a *Article) Validate() error {
	switch {
	case strings.TrimSpace(a.Title) == "":
		return Invalid("title", "is required")
	case strings.TrimSpace(a.Slug) == "":
		return Invalid("slug", "is required")
	case strings.TrimSpace(a.Content) == "":
		return Invalid("content", "is required")
	case a.AuthorID <= 0:
		return Invalid("author_id", "is required")
	}
	return nil
}

// ArticleFilter selects and orders a page of articles
type ArticleFilter struct {
	Page          int
	PerPage       int
	PublishedOnly bool
	CategorySlug  string
	AuthorName    string // case-insensitive substring of author name
	Search        string // case-insensitive substring of title or content, forces published only
}

// Normalize coerces out-of-range pagination to defaults
func (f ArticleFilter) Normalize() ArticleFilter {
	f.Page, f.PerPage = NormalizePaging(f.Page, f.PerPage)
	return f
}

// Offset returns the row offset for the filter's page
func (f ArticleFilter) Offset() int {
	return (f.Page - 1) * f.PerPage
}

// ArticlePage is a page of articles with pagination metadata
type ArticlePage struct {
	Articles    []Article `json:"articles"`
	Total       int       `json:"total"`
	TotalPages  int       `json:"pages"`
	CurrentPage int       `json:"current_page"`
	PerPage     int       `json:"per_page"`
	HasNext     bool      `json:"has_next"`
	HasPrev     bool      `json:"has_prev"`
}

// NewArticlePage fills pagination metadata for a normalized filter and total count
func NewArticlePage(articles []Article, total int, f ArticleFilter) *ArticlePage {
	if articles == nil {
		articles = []Article{}
	}
	totalPages := TotalPages(total, f.PerPage)
	return &ArticlePage{
		Articles:    articles,
		Total:       total,
		TotalPages:  totalPages,
		CurrentPage: f.Page,
		PerPage:     f.PerPage,
		HasNext:     f.Page < totalPages,
		HasPrev:     f.Page > 1,
	}
}
