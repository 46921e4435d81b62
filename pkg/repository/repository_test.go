package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/newsdesk/pkg/domain"
)

// setupTestDB creates repositories over a fresh in-memory database
func setupTestDB(t *testing.T) (repos *Repositories, cleanup func()) {
	t.Helper()
	cfg := Config{
		DSN:             ":memory:",
		MaxOpenConns:    1,
		MaxIdleConns:    1,
		ConnMaxLifetime: 30 * time.Second,
	}
	repos, err := NewRepositories(context.Background(), cfg)
	require.NoError(t, err)
	return repos, func() { assert.NoError(t, repos.Close()) }
}

func createTestAuthor(t *testing.T, repos *Repositories, name string) *domain.Author {
	t.Helper()
	a, err := repos.Author.Create(context.Background(), &domain.Author{Name: name, Email: name + "@example.com"})
	require.NoError(t, err)
	return a
}

func createTestCategory(t *testing.T, repos *Repositories, slug string) *domain.Category {
	t.Helper()
	c, err := repos.Category.Create(context.Background(), &domain.Category{Name: "Category " + slug, Slug: slug})
	require.NoError(t, err)
	return c
}

// createTestArticles creates n articles published an hour apart, newest first by index
func createTestArticles(t *testing.T, repos *Repositories, prefix string, n int, published bool, authorID int64, categoryID *int64) []*domain.Article {
	t.Helper()
	base := time.Now().UTC().Add(-48 * time.Hour)
	res := make([]*domain.Article, 0, n)
	for i := range n {
		a, err := repos.Article.Create(context.Background(), &domain.Article{
			Title:       fmt.Sprintf("%s article %d", prefix, i),
			Slug:        fmt.Sprintf("%s-%d", prefix, i),
			Content:     fmt.Sprintf("content of %s article %d", prefix, i),
			IsPublished: published,
			PublishedAt: base.Add(time.Duration(n-i) * time.Hour),
			AuthorID:    authorID,
			CategoryID:  categoryID,
		}, nil)
		require.NoError(t, err)
		res = append(res, a)
	}
	return res
}

func TestRepositories_Integration(t *testing.T) {
	repos, cleanup := setupTestDB(t)
	defer cleanup()

	require.NoError(t, repos.Ping(context.Background()))

	// all tables created
	tables, err := repos.Inspect.Tables(context.Background())
	require.NoError(t, err)
	names := make([]string, 0, len(tables))
	for _, tbl := range tables {
		names = append(names, tbl.Name)
	}
	for _, want := range []string{"articles", "article_tags", "authors", "categories", "tags", "users",
		"quizzes", "questions", "answers", "pages", "menu_items", "stock_quotes", "site_settings"} {
		assert.Contains(t, names, want)
	}
}

func TestNewRepositories_InvalidDSN(t *testing.T) {
	cfg := Config{
		DSN: "invalid://database/url",
	}

	_, err := NewRepositories(context.Background(), cfg)
	assert.Error(t, err)
}

func TestRepositories_Close(t *testing.T) {
	cfg := Config{
		DSN:             ":memory:",
		MaxOpenConns:    1,
		MaxIdleConns:    1,
		ConnMaxLifetime: 30 * time.Second,
	}

	repos, err := NewRepositories(context.Background(), cfg)
	require.NoError(t, err)

	// close should not error
	assert.NoError(t, repos.Close())

	// second close should not error
	assert.NoError(t, repos.Close())
}

func TestRunMigrations_AddArticleColumns(t *testing.T) {
	db, err := sqlx.Open("sqlite", ":memory:")
	require.NoError(t, err)
	defer db.Close()
	db.SetMaxOpenConns(1)

	ctx := context.Background()

	// articles table from before reading_time and image_alt were added
	_, err = db.ExecContext(ctx, `
		CREATE TABLE articles (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			title TEXT NOT NULL,
			slug TEXT NOT NULL UNIQUE,
			content TEXT NOT NULL,
			excerpt TEXT NOT NULL DEFAULT '',
			image_url TEXT NOT NULL DEFAULT '',
			is_published BOOLEAN NOT NULL DEFAULT 0,
			views INTEGER NOT NULL DEFAULT 0,
			published_at DATETIME NOT NULL,
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL,
			author_id INTEGER NOT NULL,
			category_id INTEGER
		);
		INSERT INTO articles (title, slug, content, published_at, created_at, updated_at, author_id)
		VALUES ('old', 'old', 'old content', '2024-01-01', '2024-01-01', '2024-01-01', 1);`)
	require.NoError(t, err)

	require.NoError(t, runMigrations(ctx, db))

	var readingTime int
	var imageAlt string
	require.NoError(t, db.GetContext(ctx, &readingTime, "SELECT reading_time FROM articles WHERE slug = 'old'"))
	require.NoError(t, db.GetContext(ctx, &imageAlt, "SELECT image_alt FROM articles WHERE slug = 'old'"))
	assert.Equal(t, 0, readingTime)
	assert.Empty(t, imageAlt)
}

func TestRunMigrations_Idempotent(t *testing.T) {
	db, err := sqlx.Open("sqlite", ":memory:")
	require.NoError(t, err)
	defer db.Close()
	db.SetMaxOpenConns(1)

	ctx := context.Background()
	require.NoError(t, initSchema(ctx, db))

	// run migrations twice - should be idempotent
	require.NoError(t, runMigrations(ctx, db))
	require.NoError(t, runMigrations(ctx, db), "migrations should be idempotent")

	// schema itself can be applied again
	require.NoError(t, initSchema(ctx, db))

	var indexCount int
	err = db.GetContext(ctx, &indexCount,
		`SELECT COUNT(*) FROM sqlite_master WHERE type = 'index' AND name LIKE 'idx_articles_%'`)
	require.NoError(t, err)
	assert.Equal(t, 4, indexCount)
}

func TestLikeEscape(t *testing.T) {
	tests := []struct {
		in, out string
	}{
		{"nav_", `nav\_`},
		{"100%", `100\%`},
		{`a\b`, `a\\b`},
		{"plain", "plain"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.out, likeEscape(tt.in))
	}
}

func TestWithRetry(t *testing.T) {
	ctx := context.Background()

	t.Run("retries lock errors", func(t *testing.T) {
		calls := 0
		err := withRetry(ctx, func() error {
			calls++
			if calls < 3 {
				return fmt.Errorf("database is locked")
			}
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("stops on other errors", func(t *testing.T) {
		calls := 0
		err := withRetry(ctx, func() error {
			calls++
			return domain.NotFound("Article")
		})
		require.Error(t, err)
		assert.Equal(t, 1, calls)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}
