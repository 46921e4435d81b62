package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/newsdesk/pkg/domain"
)

func TestAuthorRepository(t *testing.T) {
	repos, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	bob, err := repos.Author.Create(ctx, &domain.Author{Name: "Bob", Email: "bob@example.com", Bio: "writer"})
	require.NoError(t, err)
	assert.NotZero(t, bob.ID)
	alice := createTestAuthor(t, repos, "Alice")

	list, err := repos.Author.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Alice", list[0].Name)

	got, err := repos.Author.Get(ctx, bob.ID)
	require.NoError(t, err)
	assert.Equal(t, "writer", got.Bio)

	byEmail, err := repos.Author.GetByEmail(ctx, "Alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, alice.ID, byEmail.ID)

	_, err = repos.Author.Create(ctx, &domain.Author{Name: "Other Bob", Email: "bob@example.com"})
	require.ErrorIs(t, err, domain.ErrConflict)
	_, err = repos.Author.Create(ctx, &domain.Author{Name: "No email"})
	require.ErrorIs(t, err, domain.ErrValidation)

	bio := "editor"
	upd, err := repos.Author.Update(ctx, bob.ID, domain.AuthorUpdate{Bio: &bio})
	require.NoError(t, err)
	assert.Equal(t, "editor", upd.Bio)
	assert.Equal(t, "Bob", upd.Name)

	_, err = repos.Author.Update(ctx, 999, domain.AuthorUpdate{Bio: &bio})
	require.ErrorIs(t, err, domain.ErrNotFound)
	_, err = repos.Author.Update(ctx, 999, domain.AuthorUpdate{})
	require.ErrorIs(t, err, domain.ErrNotFound)

	require.NoError(t, repos.Author.Delete(ctx, bob.ID))
	_, err = repos.Author.Get(ctx, bob.ID)
	require.ErrorIs(t, err, domain.ErrNotFound)
	assert.Contains(t, err.Error(), "Author not found")
	require.ErrorIs(t, repos.Author.Delete(ctx, bob.ID), domain.ErrNotFound)
}

func TestCategoryRepository(t *testing.T) {
	repos, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	author := createTestAuthor(t, repos, "jane")
	tech := createTestCategory(t, repos, "tech")
	sport := createTestCategory(t, repos, "sport")
	createTestCategory(t, repos, "empty")
	createTestArticles(t, repos, "tech", 3, true, author.ID, &tech.ID)
	createTestArticles(t, repos, "tech-draft", 2, false, author.ID, &tech.ID)
	createTestArticles(t, repos, "sport", 1, true, author.ID, &sport.ID)

	list, err := repos.Category.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	counts := map[string]int{}
	for _, c := range list {
		require.NotNil(t, c.ArticleCount)
		counts[c.Slug] = *c.ArticleCount
	}
	assert.Equal(t, map[string]int{"tech": 3, "sport": 1, "empty": 0}, counts, "published articles only")

	popular, err := repos.Category.Popular(ctx, 6)
	require.NoError(t, err)
	require.Len(t, popular, 2, "categories without published articles skipped")
	assert.Equal(t, "tech", popular[0].Slug)
	assert.Equal(t, 3, *popular[0].ArticleCount)

	got, err := repos.Category.GetBySlug(ctx, "tech")
	require.NoError(t, err)
	assert.Equal(t, tech.ID, got.ID)
	assert.Nil(t, got.ArticleCount)

	_, err = repos.Category.Create(ctx, &domain.Category{Name: "Other", Slug: "tech"})
	require.ErrorIs(t, err, domain.ErrConflict)

	newSlug, desc := "technology", "all about tech"
	upd, err := repos.Category.Update(ctx, "tech", domain.CategoryUpdate{Slug: &newSlug, Description: &desc})
	require.NoError(t, err)
	assert.Equal(t, "technology", upd.Slug)
	assert.Equal(t, "all about tech", upd.Description)
	_, err = repos.Category.GetBySlug(ctx, "tech")
	require.ErrorIs(t, err, domain.ErrNotFound)

	// deleting a category keeps its articles uncategorized
	require.NoError(t, repos.Category.Delete(ctx, "technology"))
	a, err := repos.Article.GetBySlug(ctx, "tech-0", false)
	require.NoError(t, err)
	assert.Nil(t, a.CategoryID)
	assert.Nil(t, a.Category)
	require.ErrorIs(t, repos.Category.Delete(ctx, "technology"), domain.ErrNotFound)
}

func TestTagRepository(t *testing.T) {
	repos, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	_, err := repos.Tag.Create(ctx, &domain.Tag{Name: "markets", Slug: "markets"})
	require.NoError(t, err)
	_, err = repos.Tag.Create(ctx, &domain.Tag{Name: "economy", Slug: "economy"})
	require.NoError(t, err)
	_, err = repos.Tag.Create(ctx, &domain.Tag{Name: "economy", Slug: "economy-2"})
	require.ErrorIs(t, err, domain.ErrConflict)
	_, err = repos.Tag.Create(ctx, &domain.Tag{Name: "no slug"})
	require.ErrorIs(t, err, domain.ErrValidation)

	tags, err := repos.Tag.List(ctx)
	require.NoError(t, err)
	require.Len(t, tags, 2)
	assert.Equal(t, "economy", tags[0].Name)

	tag, err := repos.Tag.GetBySlug(ctx, "markets")
	require.NoError(t, err)
	assert.Equal(t, "markets", tag.Name)

	require.NoError(t, repos.Tag.Delete(ctx, "markets"))
	_, err = repos.Tag.GetBySlug(ctx, "markets")
	require.ErrorIs(t, err, domain.ErrNotFound)
	require.ErrorIs(t, repos.Tag.Delete(ctx, "markets"), domain.ErrNotFound)
}
