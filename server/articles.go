package server

import (
	"net/http"
	"strings"
	"time"

	"github.com/umputun/newsdesk/pkg/domain"
)

// defaults of the article listing endpoints
const (
	defaultTrendingDays  = 7
	defaultListingLimit  = 10
	maxListingLimit      = 100
	defaultSearchPerPage = 10
)

// articleRequest is the body of article creation
type articleRequest struct {
	Title       string     `json:"title"`
	Slug        string     `json:"slug"`
	Content     string     `json:"content"`
	Excerpt     string     `json:"excerpt"`
	ImageURL    string     `json:"image_url"`
	ImageAlt    string     `json:"image_alt"`
	IsPublished bool       `json:"is_published"`
	PublishedAt *time.Time `json:"published_at"`
	AuthorID    int64      `json:"author_id"`
	CategoryID  *int64     `json:"category_id"`
	TagIDs      []int64    `json:"tag_ids"`
}

// listArticlesHandler returns a page of articles filtered by category, author and publication state
func (s *Server) listArticlesHandler(w http.ResponseWriter, r *http.Request) {
	filter := domain.ArticleFilter{
		Page:          queryInt(r, "page", domain.DefaultPage),
		PerPage:       queryInt(r, "per_page", domain.DefaultPerPage),
		PublishedOnly: queryBool(r, "published", true),
		CategorySlug:  strings.TrimSpace(r.URL.Query().Get("category")),
		AuthorName:    strings.TrimSpace(r.URL.Query().Get("author")),
	}
	page, err := s.stores.Articles.Query(r.Context(), filter)
	if err != nil {
		renderErr(w, r, err)
		return
	}
	renderJSON(w, r, http.StatusOK, page)
}

// trendingArticlesHandler returns the most viewed articles published within the last days
func (s *Server) trendingArticlesHandler(w http.ResponseWriter, r *http.Request) {
	days := queryInt(r, "days", defaultTrendingDays)
	if days < 1 {
		days = defaultTrendingDays
	}
	articles, err := s.stores.Articles.Trending(r.Context(), days, listingLimit(r))
	if err != nil {
		renderErr(w, r, err)
		return
	}
	renderJSON(w, r, http.StatusOK, nonNil(articles))
}

// recentArticlesHandler returns the latest published articles
func (s *Server) recentArticlesHandler(w http.ResponseWriter, r *http.Request) {
	articles, err := s.stores.Articles.Recent(r.Context(), listingLimit(r))
	if err != nil {
		renderErr(w, r, err)
		return
	}
	renderJSON(w, r, http.StatusOK, nonNil(articles))
}

// searchArticlesHandler finds published articles by title or content
func (s *Server) searchArticlesHandler(w http.ResponseWriter, r *http.Request) {
	q := strings.TrimSpace(r.URL.Query().Get("q"))
	if q == "" {
		renderErr(w, r, domain.Invalid("", "Search query is required"))
		return
	}
	page, err := s.stores.Articles.Search(r.Context(), q, queryInt(r, "page", domain.DefaultPage),
		queryInt(r, "per_page", defaultSearchPerPage))
	if err != nil {
		renderErr(w, r, err)
		return
	}
	renderJSON(w, r, http.StatusOK, page)
}

// getArticleHandler returns a single article and counts the view
func (s *Server) getArticleHandler(w http.ResponseWriter, r *http.Request) {
	article, err := s.stores.Articles.GetBySlug(r.Context(), r.PathValue("slug"), true)
	if err != nil {
		renderErr(w, r, err)
		return
	}
	renderJSON(w, r, http.StatusOK, article)
}

// createArticleHandler stores a new article, html content is sanitized and excerpt filled in
func (s *Server) createArticleHandler(w http.ResponseWriter, r *http.Request) {
	var req articleRequest
	if err := decodeJSON(r, &req); err != nil {
		renderErr(w, r, err)
		return
	}

	a := domain.Article{
		Title:       strings.TrimSpace(req.Title),
		Slug:        req.Slug,
		Content:     req.Content,
		Excerpt:     req.Excerpt,
		ImageURL:    req.ImageURL,
		ImageAlt:    req.ImageAlt,
		IsPublished: req.IsPublished,
		AuthorID:    req.AuthorID,
		CategoryID:  req.CategoryID,
	}
	if req.PublishedAt != nil {
		a.PublishedAt = *req.PublishedAt
	}
	s.processor.PrepareArticle(&a)

	created, err := s.stores.Articles.Create(r.Context(), &a, req.TagIDs)
	if err != nil {
		renderErr(w, r, err)
		return
	}
	renderJSON(w, r, http.StatusCreated, created)
}

// updateArticleHandler changes the supplied article fields
func (s *Server) updateArticleHandler(w http.ResponseWriter, r *http.Request) {
	var upd domain.ArticleUpdate
	if err := decodeJSON(r, &upd); err != nil {
		renderErr(w, r, err)
		return
	}
	s.processor.PrepareUpdate(&upd)

	updated, err := s.stores.Articles.Update(r.Context(), r.PathValue("slug"), upd)
	if err != nil {
		renderErr(w, r, err)
		return
	}
	renderJSON(w, r, http.StatusOK, updated)
}

// deleteArticleHandler removes an article
func (s *Server) deleteArticleHandler(w http.ResponseWriter, r *http.Request) {
	if err := s.stores.Articles.Delete(r.Context(), r.PathValue("slug")); err != nil {
		renderErr(w, r, err)
		return
	}
	renderJSON(w, r, http.StatusOK, message{Message: "Article deleted successfully"})
}

// listingLimit reads the limit parameter of unpaginated listings
func listingLimit(r *http.Request) int {
	limit := queryInt(r, "limit", defaultListingLimit)
	if limit < 1 {
		return defaultListingLimit
	}
	return min(limit, maxListingLimit)
}

// nonNil makes empty listings render as [] instead of null
func nonNil[T any](v []T) []T {
	if v == nil {
		return []T{}
	}
	return v
}
