package server

import (
	"log"
	"net/http"

	"github.com/umputun/newsdesk/pkg/domain"
)

// rssHandler serves RSS feed of recent published articles
// Supports both /rss and /rss/{category} patterns
func (s *Server) rssHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var category *domain.Category
	if slug := r.PathValue("category"); slug != "" {
		c, err := s.stores.Categories.GetBySlug(ctx, slug)
		if err != nil {
			renderErr(w, r, err)
			return
		}
		category = c
	}

	var articles []domain.Article
	var err error
	if category != nil {
		articles, err = s.stores.Articles.RecentByCategory(ctx, category.Slug, s.opts.RSSItems)
	} else {
		articles, err = s.stores.Articles.Recent(ctx, s.opts.RSSItems)
	}
	if err != nil {
		log.Printf("[ERROR] failed to get articles for RSS: %v", err)
		http.Error(w, "Failed to generate RSS feed", http.StatusInternalServerError)
		return
	}

	rss, err := s.rss.GenerateRSS(articles, category)
	if err != nil {
		log.Printf("[ERROR] failed to generate RSS feed: %v", err)
		http.Error(w, "Failed to generate RSS feed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/rss+xml; charset=utf-8")
	if _, err := w.Write([]byte(rss)); err != nil {
		log.Printf("[ERROR] failed to write RSS response: %v", err)
	}
}
