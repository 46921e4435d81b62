package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/umputun/newsdesk/pkg/domain"
)

// MenuRepository handles navigation menu database operations
type MenuRepository struct {
	db *sqlx.DB
}

// menuItemSQL represents a menu item row
type menuItemSQL struct {
	ID        int64     `db:"id"`
	Title     string    `db:"title"`
	URL       string    `db:"url"`
	Order     int       `db:"menu_order"`
	IsActive  bool      `db:"is_active"`
	MenuType  string    `db:"menu_type"`
	CreatedAt time.Time `db:"created_at"`
}

const menuColumns = "id, title, url, menu_order, is_active, menu_type, created_at"

// NewMenuRepository creates a new menu repository
func NewMenuRepository(db *sqlx.DB) *MenuRepository {
	return &MenuRepository{db: db}
}

// List returns the items of a menu in display order
func (r *MenuRepository) List(ctx context.Context, menuType domain.MenuType, activeOnly bool) ([]domain.MenuItem, error) {
	if !menuType.Valid() {
		return nil, domain.Invalid("type", fmt.Sprintf("unknown menu type %q", menuType))
	}
	query := "SELECT " + menuColumns + " FROM menu_items WHERE menu_type = ?"
	if activeOnly {
		query += " AND is_active = 1"
	}
	query += " ORDER BY menu_order, id"

	var rows []menuItemSQL
	if err := r.db.SelectContext(ctx, &rows, query, string(menuType)); err != nil {
		return nil, fmt.Errorf("list %s menu: %w", menuType, err)
	}
	res := make([]domain.MenuItem, len(rows))
	for i, row := range rows {
		res[i] = row.toDomain()
	}
	return res, nil
}

// Get retrieves a menu item by id
func (r *MenuRepository) Get(ctx context.Context, id int64) (*domain.MenuItem, error) {
	var row menuItemSQL
	if err := r.db.GetContext(ctx, &row, "SELECT "+menuColumns+" FROM menu_items WHERE id = ?", id); err != nil {
		return nil, mapReadError("get menu item", "Menu item", err)
	}
	res := row.toDomain()
	return &res, nil
}

// Create inserts a new menu item, empty menu type means header
func (r *MenuRepository) Create(ctx context.Context, m *domain.MenuItem) (*domain.MenuItem, error) {
	if strings.TrimSpace(m.Title) == "" {
		return nil, domain.Invalid("title", "is required")
	}
	if m.MenuType == "" {
		m.MenuType = domain.MenuHeader
	}
	if !m.MenuType.Valid() {
		return nil, domain.Invalid("menu_type", fmt.Sprintf("unknown menu type %q", m.MenuType))
	}

	row := menuItemSQL{
		Title:     m.Title,
		URL:       m.URL,
		Order:     m.Order,
		IsActive:  m.IsActive,
		MenuType:  string(m.MenuType),
		CreatedAt: now(),
	}
	res, err := r.db.NamedExecContext(ctx, `
		INSERT INTO menu_items (title, url, menu_order, is_active, menu_type, created_at)
		VALUES (:title, :url, :menu_order, :is_active, :menu_type, :created_at)`, &row)
	if err != nil {
		return nil, mapWriteError("create menu item", "Menu item", err)
	}
	if row.ID, err = res.LastInsertId(); err != nil {
		return nil, fmt.Errorf("get insert id: %w", err)
	}
	item := row.toDomain()
	return &item, nil
}

// Update changes the supplied menu item fields
func (r *MenuRepository) Update(ctx context.Context, id int64, upd domain.MenuItemUpdate) (*domain.MenuItem, error) {
	set := setClause{}
	if upd.Title != nil {
		set.add("title", *upd.Title)
	}
	if upd.URL != nil {
		set.add("url", *upd.URL)
	}
	if upd.Order != nil {
		set.add("menu_order", *upd.Order)
	}
	if upd.IsActive != nil {
		set.add("is_active", *upd.IsActive)
	}
	if upd.MenuType != nil {
		if !upd.MenuType.Valid() {
			return nil, domain.Invalid("menu_type", fmt.Sprintf("unknown menu type %q", *upd.MenuType))
		}
		set.add("menu_type", string(*upd.MenuType))
	}
	if set.empty() {
		return r.Get(ctx, id)
	}

	res, err := r.db.ExecContext(ctx, "UPDATE menu_items SET "+set.String()+" WHERE id = ?", append(set.args, id)...)
	if err != nil {
		return nil, fmt.Errorf("update menu item: %w", err)
	}
	if err = checkAffected("update menu item", "Menu item", res); err != nil {
		return nil, err
	}
	return r.Get(ctx, id)
}

// Delete removes a menu item by id
func (r *MenuRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM menu_items WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete menu item: %w", err)
	}
	return checkAffected("delete menu item", "Menu item", res)
}

func (m menuItemSQL) toDomain() domain.MenuItem {
	return domain.MenuItem{
		ID:        m.ID,
		Title:     m.Title,
		URL:       m.URL,
		Order:     m.Order,
		IsActive:  m.IsActive,
		MenuType:  domain.MenuType(m.MenuType),
		CreatedAt: m.CreatedAt,
	}
}
