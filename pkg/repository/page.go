package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/umputun/newsdesk/pkg/domain"
)

// PageRepository handles static page database operations
type PageRepository struct {
	db *sqlx.DB
}

// pageSQL represents a page row
type pageSQL struct {
	ID              int64     `db:"id"`
	Title           string    `db:"title"`
	Slug            string    `db:"slug"`
	Content         string    `db:"content"`
	MetaTitle       string    `db:"meta_title"`
	MetaDescription string    `db:"meta_description"`
	IsPublished     bool      `db:"is_published"`
	CreatedAt       time.Time `db:"created_at"`
	UpdatedAt       time.Time `db:"updated_at"`
}

const pageColumns = "id, title, slug, content, meta_title, meta_description, is_published, created_at, updated_at"

// NewPageRepository creates a new page repository
func NewPageRepository(db *sqlx.DB) *PageRepository {
	return &PageRepository{db: db}
}

// List returns a page of static pages ordered by title and the total count
func (r *PageRepository) List(ctx context.Context, publishedOnly bool, page, perPage int) ([]domain.Page, int, error) {
	page, perPage = domain.NormalizePaging(page, perPage)
	where := ""
	if publishedOnly {
		where = " WHERE is_published = 1"
	}

	var total int
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM pages"+where); err != nil {
		return nil, 0, fmt.Errorf("count pages: %w", err)
	}

	var rows []pageSQL
	query := "SELECT " + pageColumns + " FROM pages" + where + " ORDER BY title, id LIMIT ? OFFSET ?"
	if err := r.db.SelectContext(ctx, &rows, query, perPage, (page-1)*perPage); err != nil {
		return nil, 0, fmt.Errorf("list pages: %w", err)
	}
	res := make([]domain.Page, len(rows))
	for i, row := range rows {
		res[i] = row.toDomain()
	}
	return res, total, nil
}

// Get retrieves a page by id
func (r *PageRepository) Get(ctx context.Context, id int64) (*domain.Page, error) {
	var row pageSQL
	if err := r.db.GetContext(ctx, &row, "SELECT "+pageColumns+" FROM pages WHERE id = ?", id); err != nil {
		return nil, mapReadError("get page", "Page", err)
	}
	res := row.toDomain()
	return &res, nil
}

// GetPublishedBySlug retrieves a published page by slug
func (r *PageRepository) GetPublishedBySlug(ctx context.Context, slug string) (*domain.Page, error) {
	var row pageSQL
	err := r.db.GetContext(ctx, &row, "SELECT "+pageColumns+" FROM pages WHERE slug = ? AND is_published = 1", slug)
	if err != nil {
		return nil, mapReadError("get page by slug", "Page", err)
	}
	res := row.toDomain()
	return &res, nil
}

// Create inserts a new page
func (r *PageRepository) Create(ctx context.Context, p *domain.Page) (*domain.Page, error) {
	if strings.TrimSpace(p.Title) == "" {
		return nil, domain.Invalid("title", "is required")
	}
	if strings.TrimSpace(p.Slug) == "" {
		return nil, domain.Invalid("slug", "is required")
	}

	ts := now()
	row := pageSQL{
		Title:           p.Title,
		Slug:            p.Slug,
		Content:         p.Content,
		MetaTitle:       p.MetaTitle,
		MetaDescription: p.MetaDescription,
		IsPublished:     p.IsPublished,
		CreatedAt:       ts,
		UpdatedAt:       ts,
	}
	res, err := r.db.NamedExecContext(ctx, `
		INSERT INTO pages (title, slug, content, meta_title, meta_description, is_published, created_at, updated_at)
		VALUES (:title, :slug, :content, :meta_title, :meta_description, :is_published, :created_at, :updated_at)`, &row)
	if err != nil {
		return nil, mapWriteError("create page", "Page", err)
	}
	if row.ID, err = res.LastInsertId(); err != nil {
		return nil, fmt.Errorf("get insert id: %w", err)
	}
	page := row.toDomain()
	return &page, nil
}

// Update changes the supplied page fields
func (r *PageRepository) Update(ctx context.Context, id int64, upd domain.PageUpdate) (*domain.Page, error) {
	set := setClause{}
	if upd.Title != nil {
		set.add("title", *upd.Title)
	}
	if upd.Slug != nil {
		if strings.TrimSpace(*upd.Slug) == "" {
			return nil, domain.Invalid("slug", "can't be empty")
		}
		set.add("slug", *upd.Slug)
	}
	if upd.Content != nil {
		set.add("content", *upd.Content)
	}
	if upd.MetaTitle != nil {
		set.add("meta_title", *upd.MetaTitle)
	}
	if upd.MetaDescription != nil {
		set.add("meta_description", *upd.MetaDescription)
	}
	if upd.IsPublished != nil {
		set.add("is_published", *upd.IsPublished)
	}
	set.add("updated_at", now())

	res, err := r.db.ExecContext(ctx, "UPDATE pages SET "+set.String()+" WHERE id = ?", append(set.args, id)...)
	if err != nil {
		return nil, mapWriteError("update page", "Page", err)
	}
	if err = checkAffected("update page", "Page", res); err != nil {
		return nil, err
	}
	return r.Get(ctx, id)
}

// Delete removes a page by id
func (r *PageRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM pages WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete page: %w", err)
	}
	return checkAffected("delete page", "Page", res)
}

func (p pageSQL) toDomain() domain.Page {
	return domain.Page{
		ID:              p.ID,
		Title:           p.Title,
		Slug:            p.Slug,
		Content:         p.Content,
		MetaTitle:       p.MetaTitle,
		MetaDescription: p.MetaDescription,
		IsPublished:     p.IsPublished,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}
