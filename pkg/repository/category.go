package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/umputun/newsdesk/pkg/domain"
)

// CategoryRepository handles category-related database operations
type CategoryRepository struct {
	db *sqlx.DB
}

// categorySQL represents a category row, article_count is filled by listing queries only
type categorySQL struct {
	ID           int64         `db:"id"`
	Name         string        `db:"name"`
	Slug         string        `db:"slug"`
	Description  string        `db:"description"`
	CreatedAt    time.Time     `db:"created_at"`
	ArticleCount sql.NullInt64 `db:"article_count"`
}

const categoryColumns = "id, name, slug, description, created_at"

// NewCategoryRepository creates a new category repository
func NewCategoryRepository(db *sqlx.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

// List returns all categories with the number of published articles in each
func (r *CategoryRepository) List(ctx context.Context) ([]domain.Category, error) {
	query := `
		SELECT c.id, c.name, c.slug, c.description, c.created_at,
			(SELECT COUNT(*) FROM articles a WHERE a.category_id = c.id AND a.is_published = 1) AS article_count
		FROM categories c
		ORDER BY c.name, c.id`
	return r.selectCategories(ctx, "list categories", query)
}

// Popular returns categories having published articles, most populated first
func (r *CategoryRepository) Popular(ctx context.Context, limit int) ([]domain.Category, error) {
	if limit < 1 {
		limit = domain.DefaultPerPage
	}
	query := `
		SELECT c.id, c.name, c.slug, c.description, c.created_at, COUNT(a.id) AS article_count
		FROM categories c
		JOIN articles a ON a.category_id = c.id AND a.is_published = 1
		GROUP BY c.id
		ORDER BY article_count DESC, c.name
		LIMIT ?`
	return r.selectCategories(ctx, "list popular categories", query, limit)
}

// GetBySlug retrieves a category by slug
func (r *CategoryRepository) GetBySlug(ctx context.Context, slug string) (*domain.Category, error) {
	var row categorySQL
	err := r.db.GetContext(ctx, &row, "SELECT "+categoryColumns+" FROM categories WHERE slug = ?", slug)
	if err != nil {
		return nil, mapReadError("get category", "Category", err)
	}
	res := row.toDomain()
	return &res, nil
}

// Create inserts a new category
func (r *CategoryRepository) Create(ctx context.Context, c *domain.Category) (*domain.Category, error) {
	if strings.TrimSpace(c.Name) == "" {
		return nil, domain.Invalid("name", "is required")
	}
	if strings.TrimSpace(c.Slug) == "" {
		return nil, domain.Invalid("slug", "is required")
	}

	row := categorySQL{Name: c.Name, Slug: c.Slug, Description: c.Description, CreatedAt: now()}
	res, err := r.db.NamedExecContext(ctx, `
		INSERT INTO categories (name, slug, description, created_at)
		VALUES (:name, :slug, :description, :created_at)`, &row)
	if err != nil {
		return nil, mapWriteError("create category", "Category", err)
	}
	if row.ID, err = res.LastInsertId(); err != nil {
		return nil, fmt.Errorf("get insert id: %w", err)
	}
	category := row.toDomain()
	return &category, nil
}

// Update changes the supplied fields of a category found by slug
func (r *CategoryRepository) Update(ctx context.Context, slug string, upd domain.CategoryUpdate) (*domain.Category, error) {
	set := setClause{}
	if upd.Name != nil {
		set.add("name", *upd.Name)
	}
	if upd.Slug != nil {
		if strings.TrimSpace(*upd.Slug) == "" {
			return nil, domain.Invalid("slug", "can't be empty")
		}
		set.add("slug", *upd.Slug)
	}
	if upd.Description != nil {
		set.add("description", *upd.Description)
	}
	if set.empty() {
		return r.GetBySlug(ctx, slug)
	}

	res, err := r.db.ExecContext(ctx, "UPDATE categories SET "+set.String()+" WHERE slug = ?", append(set.args, slug)...)
	if err != nil {
		return nil, mapWriteError("update category", "Category", err)
	}
	if err = checkAffected("update category", "Category", res); err != nil {
		return nil, err
	}
	if upd.Slug != nil {
		slug = *upd.Slug
	}
	return r.GetBySlug(ctx, slug)
}

// Delete removes a category by slug, its articles become uncategorized
func (r *CategoryRepository) Delete(ctx context.Context, slug string) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM categories WHERE slug = ?", slug)
	if err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	return checkAffected("delete category", "Category", res)
}

func (r *CategoryRepository) selectCategories(ctx context.Context, op, query string, args ...any) ([]domain.Category, error) {
	var rows []categorySQL
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	res := make([]domain.Category, len(rows))
	for i, row := range rows {
		res[i] = row.toDomain()
	}
	return res, nil
}

func (c categorySQL) toDomain() domain.Category {
	res := domain.Category{
		ID:          c.ID,
		Name:        c.Name,
		Slug:        c.Slug,
		Description: c.Description,
		CreatedAt:   c.CreatedAt,
	}
	if c.ArticleCount.Valid {
		count := int(c.ArticleCount.Int64)
		res.ArticleCount = &count
	}
	return res
}
