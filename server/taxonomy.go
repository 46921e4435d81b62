package server

import (
	"net/http"
	"strings"

	"github.com/umputun/newsdesk/pkg/content"
	"github.com/umputun/newsdesk/pkg/domain"
)

// categoryArticles is a page of a category's published articles
type categoryArticles struct {
	Category *domain.Category `json:"category"`
	Articles []domain.Article `json:"articles"`
	paged
}

func (s *Server) listCategoriesHandler(w http.ResponseWriter, r *http.Request) {
	categories, err := s.stores.Categories.List(r.Context())
	if err != nil {
		renderErr(w, r, err)
		return
	}
	renderJSON(w, r, http.StatusOK, nonNil(categories))
}

func (s *Server) getCategoryHandler(w http.ResponseWriter, r *http.Request) {
	category, err := s.stores.Categories.GetBySlug(r.Context(), r.PathValue("slug"))
	if err != nil {
		renderErr(w, r, err)
		return
	}
	renderJSON(w, r, http.StatusOK, category)
}

// categoryArticlesHandler returns the category with a page of its published articles
func (s *Server) categoryArticlesHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	category, err := s.stores.Categories.GetBySlug(ctx, r.PathValue("slug"))
	if err != nil {
		renderErr(w, r, err)
		return
	}
	page, err := s.stores.Articles.Query(ctx, domain.ArticleFilter{
		Page:          queryInt(r, "page", domain.DefaultPage),
		PerPage:       queryInt(r, "per_page", domain.DefaultPerPage),
		PublishedOnly: true,
		CategorySlug:  category.Slug,
	})
	if err != nil {
		renderErr(w, r, err)
		return
	}
	renderJSON(w, r, http.StatusOK, categoryArticles{
		Category: category,
		Articles: page.Articles,
		paged:    newPaged(page.Total, page.CurrentPage, page.PerPage),
	})
}

func (s *Server) createCategoryHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name        string `json:"name"`
		Slug        string `json:"slug"`
		Description string `json:"description"`
	}
	if err := decodeJSON(r, &req); err != nil {
		renderErr(w, r, err)
		return
	}
	c := domain.Category{Name: strings.TrimSpace(req.Name), Slug: slugOrName(req.Slug, req.Name), Description: req.Description}
	created, err := s.stores.Categories.Create(r.Context(), &c)
	if err != nil {
		renderErr(w, r, err)
		return
	}
	renderJSON(w, r, http.StatusCreated, created)
}

func (s *Server) updateCategoryHandler(w http.ResponseWriter, r *http.Request) {
	var upd domain.CategoryUpdate
	if err := decodeJSON(r, &upd); err != nil {
		renderErr(w, r, err)
		return
	}
	if upd.Slug != nil {
		slug := content.Slugify(*upd.Slug)
		upd.Slug = &slug
	}
	updated, err := s.stores.Categories.Update(r.Context(), r.PathValue("slug"), upd)
	if err != nil {
		renderErr(w, r, err)
		return
	}
	renderJSON(w, r, http.StatusOK, updated)
}

func (s *Server) deleteCategoryHandler(w http.ResponseWriter, r *http.Request) {
	if err := s.stores.Categories.Delete(r.Context(), r.PathValue("slug")); err != nil {
		renderErr(w, r, err)
		return
	}
	renderJSON(w, r, http.StatusOK, message{Message: "Category deleted successfully"})
}

func (s *Server) listAuthorsHandler(w http.ResponseWriter, r *http.Request) {
	authors, err := s.stores.Authors.List(r.Context())
	if err != nil {
		renderErr(w, r, err)
		return
	}
	renderJSON(w, r, http.StatusOK, nonNil(authors))
}

func (s *Server) getAuthorHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		renderErr(w, r, err)
		return
	}
	author, err := s.stores.Authors.Get(r.Context(), id)
	if err != nil {
		renderErr(w, r, err)
		return
	}
	renderJSON(w, r, http.StatusOK, author)
}

func (s *Server) createAuthorHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name      string `json:"name"`
		Email     string `json:"email"`
		Bio       string `json:"bio"`
		AvatarURL string `json:"avatar_url"`
	}
	if err := decodeJSON(r, &req); err != nil {
		renderErr(w, r, err)
		return
	}
	a := domain.Author{
		Name:      strings.TrimSpace(req.Name),
		Email:     strings.TrimSpace(req.Email),
		Bio:       req.Bio,
		AvatarURL: req.AvatarURL,
	}
	created, err := s.stores.Authors.Create(r.Context(), &a)
	if err != nil {
		renderErr(w, r, err)
		return
	}
	renderJSON(w, r, http.StatusCreated, created)
}

func (s *Server) updateAuthorHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		renderErr(w, r, err)
		return
	}
	var upd domain.AuthorUpdate
	if err = decodeJSON(r, &upd); err != nil {
		renderErr(w, r, err)
		return
	}
	updated, err := s.stores.Authors.Update(r.Context(), id, upd)
	if err != nil {
		renderErr(w, r, err)
		return
	}
	renderJSON(w, r, http.StatusOK, updated)
}

func (s *Server) deleteAuthorHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		renderErr(w, r, err)
		return
	}
	if err = s.stores.Authors.Delete(r.Context(), id); err != nil {
		renderErr(w, r, err)
		return
	}
	renderJSON(w, r, http.StatusOK, message{Message: "Author deleted successfully"})
}

func (s *Server) listTagsHandler(w http.ResponseWriter, r *http.Request) {
	tags, err := s.stores.Tags.List(r.Context())
	if err != nil {
		renderErr(w, r, err)
		return
	}
	renderJSON(w, r, http.StatusOK, nonNil(tags))
}

func (s *Server) createTagHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name string `json:"name"`
		Slug string `json:"slug"`
	}
	if err := decodeJSON(r, &req); err != nil {
		renderErr(w, r, err)
		return
	}
	t := domain.Tag{Name: strings.TrimSpace(req.Name), Slug: slugOrName(req.Slug, req.Name)}
	created, err := s.stores.Tags.Create(r.Context(), &t)
	if err != nil {
		renderErr(w, r, err)
		return
	}
	renderJSON(w, r, http.StatusCreated, created)
}

func (s *Server) deleteTagHandler(w http.ResponseWriter, r *http.Request) {
	if err := s.stores.Tags.Delete(r.Context(), r.PathValue("slug")); err != nil {
		renderErr(w, r, err)
		return
	}
	renderJSON(w, r, http.StatusOK, message{Message: "Tag deleted successfully"})
}

// slugOrName normalizes the given slug, or derives one from name when empty
func slugOrName(slug, name string) string {
	if strings.TrimSpace(slug) != "" {
		return content.Slugify(slug)
	}
	return content.Slugify(name)
}
