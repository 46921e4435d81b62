package server

import (
	"github.com/umputun/newsdesk/pkg/repository"
)

// NewStores wires the sqlite repositories into the server's store interfaces
func NewStores(repos *repository.Repositories) Stores {
	return Stores{
		Health:     repos,
		Articles:   repos.Article,
		Categories: repos.Category,
		Authors:    repos.Author,
		Tags:       repos.Tag,
		Settings:   repos.Setting,
		Pages:      repos.Page,
		Menus:      repos.Menu,
		Quizzes:    repos.Quiz,
		Stocks:     repos.Stock,
		Users:      repos.User,
		Inspector:  repos.Inspect,
	}
}
