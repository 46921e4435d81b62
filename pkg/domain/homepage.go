package domain

import "time"

// Homepage aggregates the sections shown on the front page
type Homepage struct {
	Trending      []Article  `json:"trending_articles"`
	Recent        []Article  `json:"recent_articles"`
	Featured      []Article  `json:"featured_articles"`
	Categories    []Category `json:"categories"`
	TotalArticles int        `json:"total_articles"`
	Locale        string     `json:"locale"`
}

// SiteStats holds counters used for SEO metadata
type SiteStats struct {
	Articles      int        `json:"article_count"`
	Categories    int        `json:"category_count"`
	LastPublished *time.Time `json:"last_updated"`
	LastImageURL  string     `json:"-"`
}
