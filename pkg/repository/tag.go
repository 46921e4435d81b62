package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/umputun/newsdesk/pkg/domain"
)

// TagRepository handles tag-related database operations
type TagRepository struct {
	db *sqlx.DB
}

// tagSQL represents a tag row
type tagSQL struct {
	ID        int64     `db:"id"`
	Name      string    `db:"name"`
	Slug      string    `db:"slug"`
	CreatedAt time.Time `db:"created_at"`
}

// NewTagRepository creates a new tag repository
func NewTagRepository(db *sqlx.DB) *TagRepository {
	return &TagRepository{db: db}
}

// List returns all tags ordered by name
func (r *TagRepository) List(ctx context.Context) ([]domain.Tag, error) {
	var rows []tagSQL
	if err := r.db.SelectContext(ctx, &rows, "SELECT id, name, slug, created_at FROM tags ORDER BY name, id"); err != nil {
		return nil, fmt.Errorf("list tags: %w", err)
	}
	res := make([]domain.Tag, len(rows))
	for i, row := range rows {
		res[i] = row.toDomain()
	}
	return res, nil
}

// GetBySlug retrieves a tag by slug
func (r *TagRepository) GetBySlug(ctx context.Context, slug string) (*domain.Tag, error) {
	var row tagSQL
	if err := r.db.GetContext(ctx, &row, "SELECT id, name, slug, created_at FROM tags WHERE slug = ?", slug); err != nil {
		return nil, mapReadError("get tag", "Tag", err)
	}
	res := row.toDomain()
	return &res, nil
}

// Create inserts a new tag
func (r *TagRepository) Create(ctx context.Context, t *domain.Tag) (*domain.Tag, error) {
	if strings.TrimSpace(t.Name) == "" {
		return nil, domain.Invalid("name", "is required")
	}
	if strings.TrimSpace(t.Slug) == "" {
		return nil, domain.Invalid("slug", "is required")
	}

	row := tagSQL{Name: t.Name, Slug: t.Slug, CreatedAt: now()}
	res, err := r.db.NamedExecContext(ctx, "INSERT INTO tags (name, slug, created_at) VALUES (:name, :slug, :created_at)", &row)
	if err != nil {
		return nil, mapWriteError("create tag", "Tag", err)
	}
	if row.ID, err = res.LastInsertId(); err != nil {
		return nil, fmt.Errorf("get insert id: %w", err)
	}
	tag := row.toDomain()
	return &tag, nil
}

// Delete removes a tag by slug and unlinks it from articles
func (r *TagRepository) Delete(ctx context.Context, slug string) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM tags WHERE slug = ?", slug)
	if err != nil {
		return fmt.Errorf("delete tag: %w", err)
	}
	return checkAffected("delete tag", "Tag", res)
}

func (t tagSQL) toDomain() domain.Tag {
	return domain.Tag{ID: t.ID, Name: t.Name, Slug: t.Slug, CreatedAt: t.CreatedAt}
}
