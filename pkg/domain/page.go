package domain

import "time"

// Page is a static site page
type Page struct {
	ID              int64     `json:"id"`
	Title           string    `json:"title"`
	Slug            string    `json:"slug"`
	Content         string    `json:"content"`
	MetaTitle       string    `json:"meta_title"`
	MetaDescription string    `json:"meta_description"`
	IsPublished     bool      `json:"is_published"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// PageUpdate lists the mutable page fields
type PageUpdate struct {
	Title           *string `json:"title"`
	Slug            *string `json:"slug"`
	Content         *string `json:"content"`
	MetaTitle       *string `json:"meta_title"`
	MetaDescription *string `json:"meta_description"`
	IsPublished     *bool   `json:"is_published"`
}

// MenuType selects header or footer navigation
type MenuType string

// menu types
const (
	MenuHeader MenuType = "header"
	MenuFooter MenuType = "footer"
)

// Valid reports whether the menu type is known
func (m MenuType) Valid() bool {
	return m == MenuHeader || m == MenuFooter
}

// MenuItem is a single navigation link
type MenuItem struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	URL       string    `json:"url"`
	Order     int       `json:"menu_order"`
	IsActive  bool      `json:"is_active"`
	MenuType  MenuType  `json:"menu_type"`
	CreatedAt time.Time `json:"created_at"`
}

// MenuItemUpdate lists the mutable menu item fields
type MenuItemUpdate struct {
	Title    *string   `json:"title"`
	URL      *string   `json:"url"`
	Order    *int      `json:"menu_order"`
	IsActive *bool     `json:"is_active"`
	MenuType *MenuType `json:"menu_type"`
}
