package server

import (
	"net/http"
	"strings"

	"github.com/umputun/newsdesk/pkg/content"
	"github.com/umputun/newsdesk/pkg/domain"
)

// pagesResponse is a page of static pages, total_pages replaces pages taken by the list
type pagesResponse struct {
	Pages       []domain.Page `json:"pages"`
	Total       int           `json:"total"`
	TotalPages  int           `json:"total_pages"`
	CurrentPage int           `json:"current_page"`
	PerPage     int           `json:"per_page"`
}

// menuResponse is a menu with its items
type menuResponse struct {
	MenuType domain.MenuType   `json:"menu_type"`
	Items    []domain.MenuItem `json:"items"`
}

func (s *Server) listPagesHandler(w http.ResponseWriter, r *http.Request) {
	page, perPage := domain.NormalizePaging(queryInt(r, "page", domain.DefaultPage), queryInt(r, "per_page", domain.DefaultPerPage))
	pages, total, err := s.stores.Pages.List(r.Context(), queryBool(r, "published", true), page, perPage)
	if err != nil {
		renderErr(w, r, err)
		return
	}
	p := newPaged(total, page, perPage)
	renderJSON(w, r, http.StatusOK, pagesResponse{Pages: nonNil(pages), Total: p.Total, TotalPages: p.TotalPages,
		CurrentPage: p.CurrentPage, PerPage: p.PerPage})
}

func (s *Server) getPageHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		renderErr(w, r, err)
		return
	}
	page, err := s.stores.Pages.Get(r.Context(), id)
	if err != nil {
		renderErr(w, r, err)
		return
	}
	renderJSON(w, r, http.StatusOK, page)
}

// getPageBySlugHandler returns a published page, drafts are not found
func (s *Server) getPageBySlugHandler(w http.ResponseWriter, r *http.Request) {
	page, err := s.stores.Pages.GetPublishedBySlug(r.Context(), r.PathValue("slug"))
	if err != nil {
		renderErr(w, r, err)
		return
	}
	renderJSON(w, r, http.StatusOK, page)
}

func (s *Server) createPageHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Title           string `json:"title"`
		Slug            string `json:"slug"`
		Content         string `json:"content"`
		MetaTitle       string `json:"meta_title"`
		MetaDescription string `json:"meta_description"`
		IsPublished     *bool  `json:"is_published"`
	}
	if err := decodeJSON(r, &req); err != nil {
		renderErr(w, r, err)
		return
	}
	p := domain.Page{
		Title:           strings.TrimSpace(req.Title),
		Slug:            req.Slug,
		Content:         req.Content,
		MetaTitle:       req.MetaTitle,
		MetaDescription: req.MetaDescription,
		IsPublished:     req.IsPublished == nil || *req.IsPublished,
	}
	if p.Slug != "" {
		p.Slug = content.Slugify(p.Slug)
	}
	s.processor.PreparePage(&p)

	created, err := s.stores.Pages.Create(r.Context(), &p)
	if err != nil {
		renderErr(w, r, err)
		return
	}
	renderJSON(w, r, http.StatusCreated, created)
}

func (s *Server) updatePageHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		renderErr(w, r, err)
		return
	}
	var upd domain.PageUpdate
	if err = decodeJSON(r, &upd); err != nil {
		renderErr(w, r, err)
		return
	}
	if upd.Slug != nil {
		slug := content.Slugify(*upd.Slug)
		upd.Slug = &slug
	}
	if upd.Content != nil {
		body := s.processor.SanitizeHTML(*upd.Content)
		upd.Content = &body
	}
	updated, err := s.stores.Pages.Update(r.Context(), id, upd)
	if err != nil {
		renderErr(w, r, err)
		return
	}
	renderJSON(w, r, http.StatusOK, updated)
}

func (s *Server) deletePageHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		renderErr(w, r, err)
		return
	}
	if err = s.stores.Pages.Delete(r.Context(), id); err != nil {
		renderErr(w, r, err)
		return
	}
	renderJSON(w, r, http.StatusOK, message{Message: "Page deleted successfully"})
}

// listMenuHandler returns a menu selected by the type parameter, header by default
func (s *Server) listMenuHandler(w http.ResponseWriter, r *http.Request) {
	menuType := domain.MenuType(strings.ToLower(strings.TrimSpace(r.URL.Query().Get("type"))))
	if menuType == "" {
		menuType = domain.MenuHeader
	}
	items, err := s.stores.Menus.List(r.Context(), menuType, queryBool(r, "active", true))
	if err != nil {
		renderErr(w, r, err)
		return
	}
	renderJSON(w, r, http.StatusOK, menuResponse{MenuType: menuType, Items: nonNil(items)})
}

// menuByTypeHandler returns active items of a fixed menu
func (s *Server) menuByTypeHandler(menuType domain.MenuType) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := s.stores.Menus.List(r.Context(), menuType, true)
		if err != nil {
			renderErr(w, r, err)
			return
		}
		renderJSON(w, r, http.StatusOK, nonNil(items))
	}
}

func (s *Server) getMenuItemHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		renderErr(w, r, err)
		return
	}
	item, err := s.stores.Menus.Get(r.Context(), id)
	if err != nil {
		renderErr(w, r, err)
		return
	}
	renderJSON(w, r, http.StatusOK, item)
}

func (s *Server) createMenuItemHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Title    string          `json:"title"`
		URL      string          `json:"url"`
		Order    int             `json:"menu_order"`
		IsActive *bool           `json:"is_active"`
		MenuType domain.MenuType `json:"menu_type"`
	}
	if err := decodeJSON(r, &req); err != nil {
		renderErr(w, r, err)
		return
	}
	m := domain.MenuItem{
		Title:    strings.TrimSpace(req.Title),
		URL:      strings.TrimSpace(req.URL),
		Order:    req.Order,
		IsActive: req.IsActive == nil || *req.IsActive,
		MenuType: req.MenuType,
	}
	created, err := s.stores.Menus.Create(r.Context(), &m)
	if err != nil {
		renderErr(w, r, err)
		return
	}
	renderJSON(w, r, http.StatusCreated, created)
}

func (s *Server) updateMenuItemHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		renderErr(w, r, err)
		return
	}
	var upd domain.MenuItemUpdate
	if err = decodeJSON(r, &upd); err != nil {
		renderErr(w, r, err)
		return
	}
	updated, err := s.stores.Menus.Update(r.Context(), id, upd)
	if err != nil {
		renderErr(w, r, err)
		return
	}
	renderJSON(w, r, http.StatusOK, updated)
}

func (s *Server) deleteMenuItemHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		renderErr(w, r, err)
		return
	}
	if err = s.stores.Menus.Delete(r.Context(), id); err != nil {
		renderErr(w, r, err)
		return
	}
	renderJSON(w, r, http.StatusOK, message{Message: "Menu item deleted successfully"})
}
