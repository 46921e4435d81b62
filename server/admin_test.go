package server

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/newsdesk/pkg/domain"
)

func TestServer_AdminAccess(t *testing.T) {
	srv, _ := testServer(t, true)
	adminToken := registerAndLogin(t, srv, "chief")
	userToken := registerAndLogin(t, srv, "intern")

	paths := []string{"/api/admin/db", "/api/admin/db/stats", "/api/admin/db/tables", "/api/admin/db/tables/articles"}
	for _, path := range paths {
		t.Run(path, func(t *testing.T) {
			w := request(t, srv, http.MethodGet, path, nil, "")
			assert.Equal(t, http.StatusUnauthorized, w.Code)

			w = request(t, srv, http.MethodGet, path, nil, userToken)
			assert.Equal(t, http.StatusForbidden, w.Code)
			assert.Equal(t, "admin access required", errorMessage(t, w))

			w = request(t, srv, http.MethodGet, path, nil, adminToken)
			assert.Equal(t, http.StatusOK, w.Code)
		})
	}
}

func TestServer_AdminInspect(t *testing.T) {
	srv, _ := testServer(t, true)
	token := registerAndLogin(t, srv, "chief")

	t.Run("stats", func(t *testing.T) {
		w := request(t, srv, http.MethodGet, "/api/admin/db/stats", nil, token)
		require.Equal(t, http.StatusOK, w.Code)
		stats := decode[domain.DBStats](t, w)
		assert.Positive(t, stats.SizeBytes)
		counts := map[string]int64{}
		for _, tbl := range stats.Tables {
			counts[tbl.Name] = tbl.Rows
		}
		assert.Equal(t, int64(10), counts["articles"])
		assert.Equal(t, int64(6), counts["stock_quotes"])
		assert.Equal(t, int64(1), counts["users"])
	})

	t.Run("tables", func(t *testing.T) {
		w := request(t, srv, http.MethodGet, "/api/admin/db/tables", nil, token)
		require.Equal(t, http.StatusOK, w.Code)
		res := decode[map[string][]domain.TableInfo](t, w)
		names := []string{}
		for _, tbl := range res["tables"] {
			names = append(names, tbl.Name)
		}
		assert.Contains(t, names, "site_settings")
		assert.Contains(t, names, "menu_items")
	})

	t.Run("rows paged", func(t *testing.T) {
		w := request(t, srv, http.MethodGet, "/api/admin/db/tables/authors?page=2&per_page=2", nil, token)
		require.Equal(t, http.StatusOK, w.Code)
		data := decode[domain.TableData](t, w)
		assert.Equal(t, "authors", data.Table)
		assert.Equal(t, 5, data.Total)
		assert.Equal(t, 3, data.TotalPages)
		assert.Len(t, data.Rows, 2)
		assert.NotEmpty(t, data.Columns)
	})

	t.Run("password hash redacted", func(t *testing.T) {
		w := request(t, srv, http.MethodGet, "/api/admin/db/tables/users", nil, token)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"***"`)
		assert.NotContains(t, w.Body.String(), "$2a$")
	})

	t.Run("unknown table", func(t *testing.T) {
		w := request(t, srv, http.MethodGet, "/api/admin/db/tables/sqlite_master", nil, token)
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "Table not found", errorMessage(t, w))
	})

	t.Run("html page", func(t *testing.T) {
		w := request(t, srv, http.MethodGet, "/api/admin/db?table=stock_quotes", nil, token)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))
		body := w.Body.String()
		assert.Contains(t, body, "<h1>Database</h1>")
		assert.Contains(t, body, `<a href="?table=articles">articles</a>`)
		assert.Contains(t, body, "<h2>stock_quotes</h2>")
		assert.Contains(t, body, "TSLA")
	})

	t.Run("html page unknown table", func(t *testing.T) {
		w := request(t, srv, http.MethodGet, "/api/admin/db?table=nope", nil, token)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
