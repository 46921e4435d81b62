package repository

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/newsdesk/pkg/domain"
)

func strPtr(s string) *string { return &s }

func TestSettingRepository_SetGet(t *testing.T) {
	repos, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	tests := []struct {
		name  string
		upd   domain.SettingUpdate
		want  any
		store string
	}{
		{name: "number from string", upd: domain.SettingUpdate{Key: "max_articles_per_page", Type: domain.SettingNumber, Value: "10"},
			want: 10.0, store: "10"},
		{name: "number fraction", upd: domain.SettingUpdate{Key: "ratio", Type: domain.SettingNumber, Value: 0.25},
			want: 0.25, store: "0.25"},
		{name: "boolean true", upd: domain.SettingUpdate{Key: "comments_enabled", Type: domain.SettingBoolean, Value: true},
			want: true, store: "true"},
		{name: "boolean false string", upd: domain.SettingUpdate{Key: "maintenance", Type: domain.SettingBoolean, Value: "false"},
			want: false, store: "false"},
		{name: "json object", upd: domain.SettingUpdate{Key: "social", Type: domain.SettingJSON,
			Value: map[string]any{"twitter": "@news", "ids": []any{1.0, 2.0}}},
			want: map[string]any{"twitter": "@news", "ids": []any{1.0, 2.0}}, store: `{"ids":[1,2],"twitter":"@news"}`},
		{name: "text default type", upd: domain.SettingUpdate{Key: "site_name", Value: "Daily News"},
			want: "Daily News", store: "Daily News"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := repos.Setting.Set(ctx, tt.upd)
			require.NoError(t, err)
			assert.Equal(t, tt.upd.Key, s.Key)
			assert.Equal(t, tt.want, s.Value.Any())

			got, err := repos.Setting.Get(ctx, tt.upd.Key)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Value.Any())

			var stored string
			require.NoError(t, repos.DB.GetContext(ctx, &stored,
				"SELECT setting_value FROM site_settings WHERE setting_key = ?", tt.upd.Key))
			assert.Equal(t, tt.store, stored)
		})
	}
}

func TestSettingRepository_SetUpsertsInPlace(t *testing.T) {
	repos, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	_, err := repos.Setting.Set(ctx, domain.SettingUpdate{Key: "site_name", Value: "first", Description: strPtr("site title")})
	require.NoError(t, err)
	_, err = repos.Setting.Set(ctx, domain.SettingUpdate{Key: "other", Value: "x"})
	require.NoError(t, err)

	countBefore := countSettings(t, repos)

	// second set without description keeps the old description
	s, err := repos.Setting.Set(ctx, domain.SettingUpdate{Key: "site_name", Value: "second"})
	require.NoError(t, err)
	assert.Equal(t, "second", s.Value.Any())
	require.NotNil(t, s.Description)
	assert.Equal(t, "site title", *s.Description)

	assert.Equal(t, countBefore, countSettings(t, repos))

	got, err := repos.Setting.Get(ctx, "site_name")
	require.NoError(t, err)
	assert.Equal(t, "second", got.Value.Any())

	// type can be changed by set
	s, err = repos.Setting.Set(ctx, domain.SettingUpdate{Key: "site_name", Type: domain.SettingBoolean, Value: "true",
		Description: strPtr("now a flag")})
	require.NoError(t, err)
	assert.Equal(t, domain.SettingBoolean, s.Type)
	assert.Equal(t, true, s.Value.Any())
	assert.Equal(t, "now a flag", *s.Description)
}

func TestSettingRepository_SetConcurrent(t *testing.T) {
	repos, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := range 10 {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := repos.Setting.Set(ctx, domain.SettingUpdate{Key: "counter", Type: domain.SettingNumber, Value: i})
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()
	assert.Equal(t, 1, countSettings(t, repos))
}

func TestSettingRepository_SetInvalid(t *testing.T) {
	repos, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	_, err := repos.Setting.Set(ctx, domain.SettingUpdate{Key: "", Value: "x"})
	require.ErrorIs(t, err, domain.ErrValidation)

	_, err = repos.Setting.Set(ctx, domain.SettingUpdate{Key: "n", Type: domain.SettingNumber, Value: "abc"})
	require.ErrorIs(t, err, domain.ErrValidation)
	assert.Equal(t, 0, countSettings(t, repos))
}

func TestSettingRepository_GetDegradesBadValues(t *testing.T) {
	repos, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	_, err := repos.DB.ExecContext(ctx, `INSERT INTO site_settings (setting_key, setting_value, setting_type, updated_at) VALUES
		('bad_number', 'not-a-number', 'number', CURRENT_TIMESTAMP),
		('bad_json', 'garbage', 'json', CURRENT_TIMESTAMP),
		('null_text', NULL, 'text', CURRENT_TIMESTAMP),
		('yes_bool', 'TRUE', 'boolean', CURRENT_TIMESTAMP)`)
	require.NoError(t, err)

	s, err := repos.Setting.Get(ctx, "bad_number")
	require.NoError(t, err)
	assert.Equal(t, 0.0, s.Value.Any())

	s, err = repos.Setting.Get(ctx, "bad_json")
	require.NoError(t, err)
	assert.Equal(t, map[string]any{}, s.Value.Any())

	s, err = repos.Setting.Get(ctx, "null_text")
	require.NoError(t, err)
	assert.Nil(t, s.Value.Any())

	s, err = repos.Setting.Get(ctx, "yes_bool")
	require.NoError(t, err)
	assert.Equal(t, true, s.Value.Any())
}

func TestSettingRepository_GetNotFound(t *testing.T) {
	repos, cleanup := setupTestDB(t)
	defer cleanup()

	_, err := repos.Setting.Get(context.Background(), "missing")
	require.ErrorIs(t, err, domain.ErrNotFound)
	assert.Contains(t, err.Error(), "Setting not found")
}

func TestSettingRepository_Update(t *testing.T) {
	repos, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	_, err := repos.Setting.Set(ctx, domain.SettingUpdate{Key: "max_articles_per_page", Type: domain.SettingNumber,
		Value: 10, Description: strPtr("page size")})
	require.NoError(t, err)

	// value encoded with the stored type
	s, err := repos.Setting.Update(ctx, "max_articles_per_page", domain.SettingPatch{Value: "25", SetValue: true})
	require.NoError(t, err)
	assert.Equal(t, domain.SettingNumber, s.Type)
	assert.Equal(t, 25.0, s.Value.Any())
	assert.Equal(t, "page size", *s.Description)

	// description only
	s, err = repos.Setting.Update(ctx, "max_articles_per_page", domain.SettingPatch{Description: strPtr("articles per page")})
	require.NoError(t, err)
	assert.Equal(t, 25.0, s.Value.Any())
	assert.Equal(t, "articles per page", *s.Description)

	// bad value for the stored type
	_, err = repos.Setting.Update(ctx, "max_articles_per_page", domain.SettingPatch{Value: "many", SetValue: true})
	require.ErrorIs(t, err, domain.ErrValidation)

	_, err = repos.Setting.Update(ctx, "missing", domain.SettingPatch{Value: "x", SetValue: true})
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSettingRepository_List(t *testing.T) {
	repos, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	values, records, err := repos.Setting.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, values)
	assert.Empty(t, records)

	for _, upd := range []domain.SettingUpdate{
		{Key: "site_name", Value: "News"},
		{Key: "nav_home", Value: "/"},
		{Key: "nav_about", Value: "/about"},
		{Key: "navy", Value: "blue"},
		{Key: "seo_enabled", Type: domain.SettingBoolean, Value: true},
	} {
		_, err = repos.Setting.Set(ctx, upd)
		require.NoError(t, err)
	}

	values, records, err = repos.Setting.List(ctx)
	require.NoError(t, err)
	assert.Len(t, records, 5)
	assert.Equal(t, "nav_about", records[0].Key, "sorted by key")
	assert.Equal(t, map[string]any{"site_name": "News", "nav_home": "/", "nav_about": "/about", "navy": "blue",
		"seo_enabled": true}, values)

	// underscore in prefix is literal, navy doesn't match nav_
	nav, err := repos.Setting.ListByPrefix(ctx, "nav_")
	require.NoError(t, err)
	require.Len(t, nav, 2)
	assert.Equal(t, "nav_about", nav[0].Key)
	assert.Equal(t, "nav_home", nav[1].Key)
	require.NotNil(t, nav[1].Value)
	assert.Equal(t, "/", *nav[1].Value)

	none, err := repos.Setting.ListByPrefix(ctx, "footer_")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestSettingRepository_Delete(t *testing.T) {
	repos, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	_, err := repos.Setting.Set(ctx, domain.SettingUpdate{Key: "site_name", Value: "News"})
	require.NoError(t, err)

	require.NoError(t, repos.Setting.Delete(ctx, "site_name"))
	_, err = repos.Setting.Get(ctx, "site_name")
	require.ErrorIs(t, err, domain.ErrNotFound)

	err = repos.Setting.Delete(ctx, "site_name")
	require.ErrorIs(t, err, domain.ErrNotFound)
	var nf *domain.NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "Setting", nf.Entity)
}

func countSettings(t *testing.T, repos *Repositories) int {
	t.Helper()
	var count int
	require.NoError(t, repos.DB.GetContext(context.Background(), &count, "SELECT COUNT(*) FROM site_settings"))
	return count
}
