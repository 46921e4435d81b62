package server

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewStores(t *testing.T) {
	repos := setupRepos(t, false)
	stores := NewStores(repos)
	assert.Equal(t, repos.Article, stores.Articles)
	assert.Equal(t, repos.Category, stores.Categories)
	assert.Equal(t, repos.Author, stores.Authors)
	assert.Equal(t, repos.Tag, stores.Tags)
	assert.Equal(t, repos.Setting, stores.Settings)
	assert.Equal(t, repos.Page, stores.Pages)
	assert.Equal(t, repos.Menu, stores.Menus)
	assert.Equal(t, repos.Quiz, stores.Quizzes)
	assert.Equal(t, repos.Stock, stores.Stocks)
	assert.Equal(t, repos.User, stores.Users)
	assert.Equal(t, repos.Inspect, stores.Inspector)
	assert.Equal(t, repos, stores.Health)
}
