package server

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/newsdesk/pkg/domain"
)

func TestServer_Pages(t *testing.T) {
	srv, _ := testServer(t, true)

	t.Run("list", func(t *testing.T) {
		w := request(t, srv, http.MethodGet, "/api/pages?per_page=3", nil, "")
		require.Equal(t, http.StatusOK, w.Code)
		res := decode[pagesResponse](t, w)
		assert.Equal(t, 4, res.Total)
		assert.Equal(t, 2, res.TotalPages)
		assert.Equal(t, 3, res.PerPage)
		require.Len(t, res.Pages, 3)
		assert.Equal(t, "About Us", res.Pages[0].Title) // ordered by title
	})

	t.Run("create draft and lookups", func(t *testing.T) {
		w := request(t, srv, http.MethodPost, "/api/pages", map[string]any{
			"title":        "Careers",
			"content":      `<p>Join us</p><iframe src="http://evil.example.com"></iframe>`,
			"is_published": false,
		}, "")
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		created := decode[domain.Page](t, w)
		assert.Equal(t, "careers", created.Slug)
		assert.False(t, created.IsPublished)
		assert.NotContains(t, created.Content, "iframe")

		w = request(t, srv, http.MethodGet, "/api/pages/slug/careers", nil, "")
		assert.Equal(t, http.StatusNotFound, w.Code, "drafts are hidden by slug")

		w = request(t, srv, http.MethodGet, "/api/pages?published=false", nil, "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 5, decode[pagesResponse](t, w).Total)

		w = request(t, srv, http.MethodPut, "/api/pages/5", map[string]any{"is_published": true, "slug": "Jobs Here"}, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		assert.Equal(t, "jobs-here", decode[domain.Page](t, w).Slug)

		w = request(t, srv, http.MethodGet, "/api/pages/slug/jobs-here", nil, "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Careers", decode[domain.Page](t, w).Title)

		w = request(t, srv, http.MethodGet, "/api/pages/5", nil, "")
		require.Equal(t, http.StatusOK, w.Code)

		w = request(t, srv, http.MethodDelete, "/api/pages/5", nil, "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Page deleted successfully", decode[message](t, w).Message)

		w = request(t, srv, http.MethodGet, "/api/pages/5", nil, "")
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "Page not found", errorMessage(t, w))
	})

	t.Run("duplicate slug", func(t *testing.T) {
		w := request(t, srv, http.MethodPost, "/api/pages", map[string]any{"title": "About us"}, "")
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("title required", func(t *testing.T) {
		w := request(t, srv, http.MethodPost, "/api/pages", map[string]any{"slug": "x"}, "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "title: is required", errorMessage(t, w))
	})
}

func TestServer_Menu(t *testing.T) {
	srv, _ := testServer(t, true)

	t.Run("header by default", func(t *testing.T) {
		w := request(t, srv, http.MethodGet, "/api/menu", nil, "")
		require.Equal(t, http.StatusOK, w.Code)
		res := decode[menuResponse](t, w)
		assert.Equal(t, domain.MenuHeader, res.MenuType)
		require.Len(t, res.Items, 5)
		assert.Equal(t, "Home", res.Items[0].Title)
	})

	t.Run("footer by type", func(t *testing.T) {
		w := request(t, srv, http.MethodGet, "/api/menu?type=FOOTER", nil, "")
		require.Equal(t, http.StatusOK, w.Code)
		res := decode[menuResponse](t, w)
		assert.Equal(t, domain.MenuFooter, res.MenuType)
		assert.Len(t, res.Items, 4)

		w = request(t, srv, http.MethodGet, "/api/menu/footer", nil, "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Len(t, decode[[]domain.MenuItem](t, w), 4)
	})

	t.Run("unknown type", func(t *testing.T) {
		w := request(t, srv, http.MethodGet, "/api/menu?type=sidebar", nil, "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, `type: unknown menu type "sidebar"`, errorMessage(t, w))
	})

	t.Run("inactive items hidden", func(t *testing.T) {
		w := request(t, srv, http.MethodPost, "/api/menu",
			map[string]any{"title": "Archive", "url": "/archive", "menu_order": 9, "is_active": false, "menu_type": "header"}, "")
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		created := decode[domain.MenuItem](t, w)
		assert.False(t, created.IsActive)

		w = request(t, srv, http.MethodGet, "/api/menu/header", nil, "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Len(t, decode[[]domain.MenuItem](t, w), 5)

		w = request(t, srv, http.MethodGet, "/api/menu?active=false", nil, "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Len(t, decode[menuResponse](t, w).Items, 6)

		w = request(t, srv, http.MethodPut, "/api/menu/10", map[string]any{"is_active": true, "title": "Old News"}, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		assert.Equal(t, "Old News", decode[domain.MenuItem](t, w).Title)

		w = request(t, srv, http.MethodGet, "/api/menu/10", nil, "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.True(t, decode[domain.MenuItem](t, w).IsActive)

		w = request(t, srv, http.MethodDelete, "/api/menu/10", nil, "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Menu item deleted successfully", decode[message](t, w).Message)

		w = request(t, srv, http.MethodGet, "/api/menu/10", nil, "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("bad menu type on create", func(t *testing.T) {
		w := request(t, srv, http.MethodPost, "/api/menu", map[string]any{"title": "X", "menu_type": "side"}, "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
