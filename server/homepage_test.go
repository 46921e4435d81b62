package server

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/newsdesk/pkg/domain"
	"github.com/umputun/newsdesk/server/mocks"
)

func TestServer_Homepage(t *testing.T) {
	srv, _ := testServer(t, true)

	w := request(t, srv, http.MethodGet, "/api/homepage?locale=DE", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	res := decode[domain.Homepage](t, w)

	assert.Equal(t, "de", res.Locale)
	assert.Equal(t, 9, res.TotalArticles)
	assert.Equal(t, []string{"Underdogs Win the Championship Final", "Central Bank Holds Rates Steady",
		"Telescope Captures Image of Distant Galaxy", "New Web Framework Release Speeds Up Builds",
		"Interview: The Founder Behind the Fintech Boom"}, articleTitles(res.Trending))
	require.Len(t, res.Recent, 6)
	assert.Equal(t, articleTitles(res.Recent[:3]), articleTitles(res.Featured))

	names := make([]string, 0, len(res.Categories))
	for _, c := range res.Categories {
		names = append(names, c.Name)
	}
	assert.Equal(t, []string{"Business", "Politics", "Environment", "Health", "Science", "Sports"}, names)
	require.NotNil(t, res.Categories[0].ArticleCount)
	assert.Equal(t, 2, *res.Categories[0].ArticleCount)
}

func TestServer_HomepageEmpty(t *testing.T) {
	srv, _ := testServer(t, false)

	w := request(t, srv, http.MethodGet, "/api/homepage", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"trending_articles":[],"recent_articles":[],"featured_articles":[],"categories":[],
		"total_articles":0,"locale":"en"}`, w.Body.String())
}

func TestServer_HomepageFailure(t *testing.T) {
	articles := &mocks.ArticleStoreMock{
		MostViewedFunc: func(ctx context.Context, limit int) ([]domain.Article, error) {
			return nil, errors.New("no such table: articles")
		},
		RecentFunc: func(ctx context.Context, limit int) ([]domain.Article, error) {
			return []domain.Article{}, nil
		},
		CountPublishedFunc: func(ctx context.Context) (int, error) { return 0, nil },
	}
	categories := &mocks.CategoryStoreMock{
		PopularFunc: func(ctx context.Context, limit int) ([]domain.Category, error) {
			return []domain.Category{}, nil
		},
	}
	srv := New(testConfig(), Stores{Articles: articles, Categories: categories}, Services{}, testOpts())

	w := request(t, srv, http.MethodGet, "/api/homepage", nil, "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "internal error", errorMessage(t, w))
	require.Len(t, articles.MostViewedCalls(), 1)
	assert.Equal(t, 5, articles.MostViewedCalls()[0].Limit)
}

func TestServer_HomepageMetadata(t *testing.T) {
	t.Run("from settings", func(t *testing.T) {
		srv, _ := testServer(t, true)

		w := request(t, srv, http.MethodGet, "/api/homepage/metadata?locale=fr", nil, "")
		require.Equal(t, http.StatusOK, w.Code)
		res := decode[homepageMetadata](t, w)
		assert.Equal(t, "Newsdesk", res.Title)
		assert.Equal(t, "Your trusted source for breaking news and analysis", res.Description)
		assert.Equal(t, "news, breaking news, analysis, technology, business", res.Keywords)
		assert.Equal(t, "fr", res.Locale)
		assert.Equal(t, 9, res.ArticleCount)
		assert.Equal(t, 7, res.CategoryCount)
		assert.Equal(t, "https://images.unsplash.com/photo-1555066931-4365d14bab8c?w=800", res.OGImage)
		assert.Equal(t, "http://example.com/fr", res.Canonical)
		require.NotNil(t, res.LastUpdated)
	})

	t.Run("defaults", func(t *testing.T) {
		published := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
		articles := &mocks.ArticleStoreMock{
			StatsFunc: func(ctx context.Context) (domain.SiteStats, error) {
				return domain.SiteStats{Articles: 12, Categories: 3, LastPublished: &published}, nil
			},
		}
		settings := &mocks.SettingStoreMock{
			GetFunc: func(ctx context.Context, key string) (*domain.Setting, error) {
				if key == "site_title" {
					return &domain.Setting{Key: key, Type: domain.SettingText, Value: domain.TextValue("  ")}, nil
				}
				return nil, domain.NotFound("Setting")
			},
		}
		srv := New(testConfig(), Stores{Articles: articles, Settings: settings}, Services{}, testOpts())

		w := request(t, srv, http.MethodGet, "/api/homepage/metadata", nil, "")
		require.Equal(t, http.StatusOK, w.Code)
		res := decode[homepageMetadata](t, w)
		assert.Equal(t, "Newsdesk - Latest News and Updates", res.Title)
		assert.Equal(t, "Stay updated with the latest news and analysis. Read from 12 articles across 3 categories.",
			res.Description)
		assert.Equal(t, "news, business, technology, markets", res.Keywords)
		assert.Equal(t, defaultOGImage, res.OGImage)
		assert.Equal(t, "http://example.com", res.Canonical)
		require.NotNil(t, res.LastUpdated)
		assert.True(t, published.Equal(*res.LastUpdated))
		assert.Len(t, settings.GetCalls(), 3)
	})

	t.Run("settings failure", func(t *testing.T) {
		articles := &mocks.ArticleStoreMock{
			StatsFunc: func(ctx context.Context) (domain.SiteStats, error) { return domain.SiteStats{}, nil },
		}
		settings := &mocks.SettingStoreMock{
			GetFunc: func(ctx context.Context, key string) (*domain.Setting, error) {
				return nil, errors.New("database is locked")
			},
		}
		srv := New(testConfig(), Stores{Articles: articles, Settings: settings}, Services{}, testOpts())

		w := request(t, srv, http.MethodGet, "/api/homepage/metadata", nil, "")
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
