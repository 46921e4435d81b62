package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/umputun/newsdesk/pkg/domain"
)

// homepage section sizes
const (
	homeTrending   = 5
	homeRecent     = 6
	homeFeatured   = 3
	homeCategories = 6
)

const defaultOGImage = "/images/default-og.jpg"

// homepageMetadata is the SEO metadata of the front page
type homepageMetadata struct {
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	Keywords      string     `json:"keywords"`
	Locale        string     `json:"locale"`
	LastUpdated   *time.Time `json:"last_updated"`
	ArticleCount  int        `json:"article_count"`
	CategoryCount int        `json:"category_count"`
	OGImage       string     `json:"og_image"`
	Canonical     string     `json:"canonical"`
}

// homepageHandler aggregates the front page sections, queries run concurrently
func (s *Server) homepageHandler(w http.ResponseWriter, r *http.Request) {
	res := domain.Homepage{Locale: locale(r)}

	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() (err error) {
		res.Trending, err = s.stores.Articles.MostViewed(ctx, homeTrending)
		return err
	})
	g.Go(func() (err error) {
		res.Recent, err = s.stores.Articles.Recent(ctx, homeRecent)
		return err
	})
	g.Go(func() (err error) {
		res.Categories, err = s.stores.Categories.Popular(ctx, homeCategories)
		return err
	})
	g.Go(func() (err error) {
		res.TotalArticles, err = s.stores.Articles.CountPublished(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		renderErr(w, r, fmt.Errorf("load homepage: %w", err))
		return
	}

	res.Trending, res.Recent, res.Categories = nonNil(res.Trending), nonNil(res.Recent), nonNil(res.Categories)
	res.Featured = res.Recent[:min(homeFeatured, len(res.Recent))]
	renderJSON(w, r, http.StatusOK, res)
}

// homepageMetadataHandler returns SEO metadata built from site settings and article stats
func (s *Server) homepageMetadataHandler(w http.ResponseWriter, r *http.Request) {
	loc := locale(r)
	var (
		stats                        domain.SiteStats
		title, description, keywords string
	)

	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() (err error) {
		stats, err = s.stores.Articles.Stats(ctx)
		return err
	})
	g.Go(func() (err error) {
		title, err = s.textSetting(ctx, "site_title", s.opts.SiteName+" - Latest News and Updates")
		return err
	})
	g.Go(func() (err error) {
		description, err = s.textSetting(ctx, "site_description", "")
		return err
	})
	g.Go(func() (err error) {
		keywords, err = s.textSetting(ctx, "site_keywords", "news, business, technology, markets")
		return err
	})
	if err := g.Wait(); err != nil {
		renderErr(w, r, fmt.Errorf("load homepage metadata: %w", err))
		return
	}

	if description == "" {
		description = fmt.Sprintf("Stay updated with the latest news and analysis. Read from %d articles across %d categories.",
			stats.Articles, stats.Categories)
	}
	ogImage := stats.LastImageURL
	if ogImage == "" {
		ogImage = defaultOGImage
	}
	canonical := strings.TrimRight(s.opts.BaseURL, "/")
	if loc != "en" {
		canonical += "/" + loc
	}

	renderJSON(w, r, http.StatusOK, homepageMetadata{
		Title:         title,
		Description:   description,
		Keywords:      keywords,
		Locale:        loc,
		LastUpdated:   stats.LastPublished,
		ArticleCount:  stats.Articles,
		CategoryCount: stats.Categories,
		OGImage:       ogImage,
		Canonical:     canonical,
	})
}

// textSetting returns a text setting value, def when the key is missing or empty
func (s *Server) textSetting(ctx context.Context, key, def string) (string, error) {
	setting, err := s.stores.Settings.Get(ctx, key)
	if errors.Is(err, domain.ErrNotFound) {
		return def, nil
	}
	if err != nil {
		return "", err
	}
	if v, ok := setting.Value.Any().(string); ok && strings.TrimSpace(v) != "" {
		return v, nil
	}
	return def, nil
}

// locale reads the locale parameter, en by default
func locale(r *http.Request) string {
	if loc := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("locale"))); loc != "" {
		return loc
	}
	return "en"
}
