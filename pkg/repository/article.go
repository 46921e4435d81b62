package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/umputun/newsdesk/pkg/domain"
)

// trending and recent defaults
const (
	defaultTrendingDays  = 7
	defaultTrendingLimit = 10
	defaultRecentLimit   = 10
)

// ArticleRepository is the article query engine and article storage
type ArticleRepository struct {
	db *sqlx.DB
}

// articleSQL represents an article row
type articleSQL struct {
	ID          int64         `db:"id"`
	Title       string        `db:"title"`
	Slug        string        `db:"slug"`
	Content     string        `db:"content"`
	Excerpt     string        `db:"excerpt"`
	ImageURL    string        `db:"image_url"`
	ImageAlt    string        `db:"image_alt"`
	ReadingTime int           `db:"reading_time"`
	IsPublished bool          `db:"is_published"`
	Views       int64         `db:"views"`
	PublishedAt time.Time     `db:"published_at"`
	CreatedAt   time.Time     `db:"created_at"`
	UpdatedAt   time.Time     `db:"updated_at"`
	AuthorID    int64         `db:"author_id"`
	CategoryID  sql.NullInt64 `db:"category_id"`
}

const articleColumns = `a.id, a.title, a.slug, a.content, a.excerpt, a.image_url, a.image_alt, a.reading_time,
	a.is_published, a.views, a.published_at, a.created_at, a.updated_at, a.author_id, a.category_id`

// NewArticleRepository creates a new article repository
func NewArticleRepository(db *sqlx.DB) *ArticleRepository {
	return &ArticleRepository{db: db}
}

// articleQuery accumulates joins and WHERE conditions shared by the count and page queries
type articleQuery struct {
	joins []string
	conds []string
	args  []any
}

func newArticleQuery(f domain.ArticleFilter) *articleQuery {
	q := &articleQuery{}
	if f.PublishedOnly || f.Search != "" {
		q.conds = append(q.conds, "a.is_published = 1")
	}
	if f.CategorySlug != "" {
		q.joins = append(q.joins, "JOIN categories c ON c.id = a.category_id")
		q.conds = append(q.conds, "c.slug = ?")
		q.args = append(q.args, f.CategorySlug)
	}
	if f.AuthorName != "" {
		q.joins = append(q.joins, "JOIN authors au ON au.id = a.author_id")
		q.conds = append(q.conds, `LOWER(au.name) LIKE LOWER(?) ESCAPE '\'`)
		q.args = append(q.args, "%"+likeEscape(f.AuthorName)+"%")
	}
	if f.Search != "" {
		pattern := "%" + likeEscape(f.Search) + "%"
		q.conds = append(q.conds, `(LOWER(a.title) LIKE LOWER(?) ESCAPE '\' OR LOWER(a.content) LIKE LOWER(?) ESCAPE '\')`)
		q.args = append(q.args, pattern, pattern)
	}
	return q
}

func (q *articleQuery) from() string {
	res := "FROM articles a"
	if len(q.joins) > 0 {
		res += " " + strings.Join(q.joins, " ")
	}
	if len(q.conds) > 0 {
		res += " WHERE " + strings.Join(q.conds, " AND ")
	}
	return res
}

// Query returns a page of articles matching the filter, ordered by publication time (newest first)
// with insertion order as tie-break. Out-of-range pagination is coerced to defaults.
func (r *ArticleRepository) Query(ctx context.Context, filter domain.ArticleFilter) (*domain.ArticlePage, error) {
	f := filter.Normalize()
	q := newArticleQuery(f)

	var total int
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) "+q.from(), q.args...); err != nil {
		return nil, fmt.Errorf("count articles: %w", err)
	}

	if total == 0 {
		return domain.NewArticlePage(nil, 0, f), nil
	}

	query := "SELECT " + articleColumns + " " + q.from() + " ORDER BY a.published_at DESC, a.id ASC LIMIT ? OFFSET ?"
	args := append(append([]any{}, q.args...), f.PerPage, f.Offset())
	articles, err := r.selectArticles(ctx, r.db, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query articles: %w", err)
	}
	return domain.NewArticlePage(articles, total, f), nil
}

// Search returns published articles with text in title or content, case-insensitive
func (r *ArticleRepository) Search(ctx context.Context, text string, page, perPage int) (*domain.ArticlePage, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, domain.Invalid("q", "search query is required")
	}
	return r.Query(ctx, domain.ArticleFilter{Page: page, PerPage: perPage, PublishedOnly: true, Search: text})
}

// Trending returns published articles from the last days ordered by views
func (r *ArticleRepository) Trending(ctx context.Context, days, limit int) ([]domain.Article, error) {
	if days < 1 {
		days = defaultTrendingDays
	}
	if limit < 1 {
		limit = defaultTrendingLimit
	}
	limit = min(limit, domain.MaxPerPage)
	since := now().Add(-time.Duration(days) * 24 * time.Hour)

	query := "SELECT " + articleColumns + ` FROM articles a
		WHERE a.is_published = 1 AND a.published_at >= ?
		ORDER BY a.views DESC, a.published_at DESC, a.id ASC
		LIMIT ?`
	res, err := r.selectArticles(ctx, r.db, query, since, limit)
	if err != nil {
		return nil, fmt.Errorf("get trending articles: %w", err)
	}
	return res, nil
}

// MostViewed returns published articles with the most views regardless of age
func (r *ArticleRepository) MostViewed(ctx context.Context, limit int) ([]domain.Article, error) {
	if limit < 1 {
		limit = defaultTrendingLimit
	}
	query := "SELECT " + articleColumns + ` FROM articles a
		WHERE a.is_published = 1
		ORDER BY a.views DESC, a.published_at DESC, a.id ASC
		LIMIT ?`
	res, err := r.selectArticles(ctx, r.db, query, min(limit, domain.MaxPerPage))
	if err != nil {
		return nil, fmt.Errorf("get most viewed articles: %w", err)
	}
	return res, nil
}

// Recent returns the latest published articles
func (r *ArticleRepository) Recent(ctx context.Context, limit int) ([]domain.Article, error) {
	if limit < 1 {
		limit = defaultRecentLimit
	}
	query := "SELECT " + articleColumns + ` FROM articles a
		WHERE a.is_published = 1
		ORDER BY a.published_at DESC, a.id ASC
		LIMIT ?`
	res, err := r.selectArticles(ctx, r.db, query, limit)
	if err != nil {
		return nil, fmt.Errorf("get recent articles: %w", err)
	}
	return res, nil
}

// RecentByCategory returns the latest published articles of a category
func (r *ArticleRepository) RecentByCategory(ctx context.Context, categorySlug string, limit int) ([]domain.Article, error) {
	page, err := r.Query(ctx, domain.ArticleFilter{Page: 1, PerPage: limit, PublishedOnly: true, CategorySlug: categorySlug})
	if err != nil {
		return nil, fmt.Errorf("get recent articles for %s: %w", categorySlug, err)
	}
	return page.Articles, nil
}

// GetBySlug retrieves an article by slug. With countView set the view counter is
// incremented atomically in the same transaction and the returned article reflects it.
func (r *ArticleRepository) GetBySlug(ctx context.Context, slug string, countView bool) (*domain.Article, error) {
	if !countView {
		return r.getOne(ctx, r.db, "a.slug = ?", slug)
	}

	var res *domain.Article
	err := withRetry(ctx, func() error {
		tx, err := r.db.BeginTxx(ctx, nil)
		if err != nil {
			return fmt.Errorf("begin transaction: %w", err)
		}
		defer tx.Rollback() //nolint:errcheck // rollback after commit is a no-op

		upd, err := tx.ExecContext(ctx, "UPDATE articles SET views = views + 1 WHERE slug = ?", slug)
		if err != nil {
			return fmt.Errorf("increment views: %w", err)
		}
		if err = checkAffected("get article", "Article", upd); err != nil {
			return err
		}
		if res, err = r.getOne(ctx, tx, "a.slug = ?", slug); err != nil {
			return err
		}
		return tx.Commit()
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// GetByID retrieves an article by id
func (r *ArticleRepository) GetByID(ctx context.Context, id int64) (*domain.Article, error) {
	return r.getOne(ctx, r.db, "a.id = ?", id)
}

// Create inserts a new article with its tags and returns it with relations loaded
func (r *ArticleRepository) Create(ctx context.Context, a *domain.Article, tagIDs []int64) (*domain.Article, error) {
	if err := a.Validate(); err != nil {
		return nil, err
	}

	ts := now()
	row := articleSQL{
		Title:       a.Title,
		Slug:        a.Slug,
		Content:     a.Content,
		Excerpt:     a.Excerpt,
		ImageURL:    a.ImageURL,
		ImageAlt:    a.ImageAlt,
		ReadingTime: a.ReadingTime,
		IsPublished: a.IsPublished,
		PublishedAt: a.PublishedAt.UTC(),
		CreatedAt:   ts,
		UpdatedAt:   ts,
		AuthorID:    a.AuthorID,
	}
	if row.PublishedAt.IsZero() {
		row.PublishedAt = ts
	}
	if a.CategoryID != nil {
		row.CategoryID = sql.NullInt64{Int64: *a.CategoryID, Valid: true}
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // rollback after commit is a no-op

	res, err := tx.NamedExecContext(ctx, `
		INSERT INTO articles (
			title, slug, content, excerpt, image_url, image_alt, reading_time,
			is_published, views, published_at, created_at, updated_at, author_id, category_id
		) VALUES (
			:title, :slug, :content, :excerpt, :image_url, :image_alt, :reading_time,
			:is_published, 0, :published_at, :created_at, :updated_at, :author_id, :category_id
		)`, &row)
	if err != nil {
		return nil, mapWriteError("create article", "Article", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("get insert id: %w", err)
	}

	if err = replaceTags(ctx, tx, id, tagIDs); err != nil {
		return nil, err
	}
	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit article: %w", err)
	}
	return r.GetByID(ctx, id)
}

// Update changes the supplied fields of an article found by slug, tags are replaced when upd.TagIDs is set
func (r *ArticleRepository) Update(ctx context.Context, slug string, upd domain.ArticleUpdate) (*domain.Article, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // rollback after commit is a no-op

	var id int64
	if err = tx.GetContext(ctx, &id, "SELECT id FROM articles WHERE slug = ?", slug); err != nil {
		return nil, mapReadError("update article", "Article", err)
	}

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
	if upd.Excerpt != nil {
		set.add("excerpt", *upd.Excerpt)
	}
	if upd.ImageURL != nil {
		set.add("image_url", *upd.ImageURL)
	}
	if upd.ImageAlt != nil {
		set.add("image_alt", *upd.ImageAlt)
	}
	if upd.ReadingTime != nil {
		set.add("reading_time", *upd.ReadingTime)
	}
	if upd.IsPublished != nil {
		set.add("is_published", *upd.IsPublished)
	}
	if upd.PublishedAt != nil {
		set.add("published_at", upd.PublishedAt.UTC())
	}
	if upd.AuthorID != nil {
		set.add("author_id", *upd.AuthorID)
	}
	if upd.CategoryID != nil {
		set.add("category_id", *upd.CategoryID)
	}
	set.add("updated_at", now())

	query := "UPDATE articles SET " + set.String() + " WHERE id = ?"
	if _, err = tx.ExecContext(ctx, query, append(set.args, id)...); err != nil {
		return nil, mapWriteError("update article", "Article", err)
	}

	if upd.TagIDs != nil {
		if err = replaceTags(ctx, tx, id, *upd.TagIDs); err != nil {
			return nil, err
		}
	}
	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit article update: %w", err)
	}
	return r.GetByID(ctx, id)
}

// Delete removes an article by slug, tag links are removed by cascade
func (r *ArticleRepository) Delete(ctx context.Context, slug string) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM articles WHERE slug = ?", slug)
	if err != nil {
		return fmt.Errorf("delete article: %w", err)
	}
	return checkAffected("delete article", "Article", res)
}

// SetViews overwrites the view counter, used when loading demo or imported data
func (r *ArticleRepository) SetViews(ctx context.Context, slug string, views int64) error {
	if views < 0 {
		return domain.Invalid("views", "must not be negative")
	}
	res, err := r.db.ExecContext(ctx, "UPDATE articles SET views = ? WHERE slug = ?", views, slug)
	if err != nil {
		return fmt.Errorf("set article views: %w", err)
	}
	return checkAffected("set article views", "Article", res)
}

// Stats returns counters of published articles and categories plus the latest publication
func (r *ArticleRepository) Stats(ctx context.Context) (domain.SiteStats, error) {
	var res domain.SiteStats
	if err := r.db.GetContext(ctx, &res.Articles, "SELECT COUNT(*) FROM articles WHERE is_published = 1"); err != nil {
		return res, fmt.Errorf("count published articles: %w", err)
	}
	if err := r.db.GetContext(ctx, &res.Categories, "SELECT COUNT(*) FROM categories"); err != nil {
		return res, fmt.Errorf("count categories: %w", err)
	}

	var latest struct {
		PublishedAt time.Time `db:"published_at"`
		ImageURL    string    `db:"image_url"`
	}
	err := r.db.GetContext(ctx, &latest, `SELECT published_at, image_url FROM articles
		WHERE is_published = 1 ORDER BY published_at DESC, id ASC LIMIT 1`)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return res, nil
	case err != nil:
		return res, fmt.Errorf("get latest article: %w", err)
	}
	res.LastPublished = &latest.PublishedAt
	res.LastImageURL = latest.ImageURL
	return res, nil
}

// CountPublished returns the number of published articles
func (r *ArticleRepository) CountPublished(ctx context.Context) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM articles WHERE is_published = 1"); err != nil {
		return 0, fmt.Errorf("count published articles: %w", err)
	}
	return count, nil
}

// SlugExists reports whether an article with the slug is stored
func (r *ArticleRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM articles WHERE slug = ?", slug); err != nil {
		return false, fmt.Errorf("check article slug: %w", err)
	}
	return count > 0, nil
}

func (r *ArticleRepository) getOne(ctx context.Context, q sqlx.QueryerContext, cond string, arg any) (*domain.Article, error) {
	res, err := r.selectArticles(ctx, q, "SELECT "+articleColumns+" FROM articles a WHERE "+cond, arg)
	if err != nil {
		return nil, fmt.Errorf("get article: %w", err)
	}
	if len(res) == 0 {
		return nil, fmt.Errorf("get article: %w", domain.NotFound("Article"))
	}
	return &res[0], nil
}

// selectArticles runs an article query and loads author, category and tags for each result
func (r *ArticleRepository) selectArticles(ctx context.Context, q sqlx.QueryerContext, query string, args ...any) ([]domain.Article, error) {
	var rows []articleSQL
	if err := sqlx.SelectContext(ctx, q, &rows, query, args...); err != nil {
		return nil, err
	}
	articles := make([]domain.Article, len(rows))
	for i := range rows {
		articles[i] = rows[i].toDomain()
	}
	if err := loadRelations(ctx, q, articles); err != nil {
		return nil, err
	}
	return articles, nil
}

// loadRelations fills Author, Category and Tags one level deep with a query per relation
func loadRelations(ctx context.Context, q sqlx.QueryerContext, articles []domain.Article) error {
	if len(articles) == 0 {
		return nil
	}

	articleIDs := make([]int64, 0, len(articles))
	authorIDs := make([]int64, 0, len(articles))
	categoryIDs := make([]int64, 0, len(articles))
	for _, a := range articles {
		articleIDs = append(articleIDs, a.ID)
		authorIDs = append(authorIDs, a.AuthorID)
		if a.CategoryID != nil {
			categoryIDs = append(categoryIDs, *a.CategoryID)
		}
	}

	authors := map[int64]*domain.Author{}
	query, args, err := sqlx.In("SELECT "+authorColumns+" FROM authors WHERE id IN (?)", authorIDs)
	if err != nil {
		return fmt.Errorf("build authors query: %w", err)
	}
	var authorRows []authorSQL
	if err = sqlx.SelectContext(ctx, q, &authorRows, query, args...); err != nil {
		return fmt.Errorf("load authors: %w", err)
	}
	for _, row := range authorRows {
		a := row.toDomain()
		authors[a.ID] = &a
	}

	categories := map[int64]*domain.Category{}
	if len(categoryIDs) > 0 {
		query, args, err = sqlx.In("SELECT "+categoryColumns+" FROM categories WHERE id IN (?)", categoryIDs)
		if err != nil {
			return fmt.Errorf("build categories query: %w", err)
		}
		var categoryRows []categorySQL
		if err = sqlx.SelectContext(ctx, q, &categoryRows, query, args...); err != nil {
			return fmt.Errorf("load categories: %w", err)
		}
		for _, row := range categoryRows {
			c := row.toDomain()
			categories[c.ID] = &c
		}
	}

	query, args, err = sqlx.In(`SELECT x.article_id, t.id, t.name, t.slug, t.created_at
		FROM article_tags x JOIN tags t ON t.id = x.tag_id
		WHERE x.article_id IN (?) ORDER BY t.name`, articleIDs)
	if err != nil {
		return fmt.Errorf("build tags query: %w", err)
	}
	var tagRows []articleTagSQL
	if err = sqlx.SelectContext(ctx, q, &tagRows, query, args...); err != nil {
		return fmt.Errorf("load tags: %w", err)
	}
	tags := map[int64][]domain.Tag{}
	for _, row := range tagRows {
		tags[row.ArticleID] = append(tags[row.ArticleID], domain.Tag{ID: row.ID, Name: row.Name, Slug: row.Slug, CreatedAt: row.CreatedAt})
	}

	for i := range articles {
		articles[i].Author = authors[articles[i].AuthorID]
		if articles[i].CategoryID != nil {
			articles[i].Category = categories[*articles[i].CategoryID]
		}
		articles[i].Tags = tags[articles[i].ID]
		if articles[i].Tags == nil {
			articles[i].Tags = []domain.Tag{}
		}
	}
	return nil
}

// articleTagSQL is a tag row joined with the linked article id
type articleTagSQL struct {
	ArticleID int64     `db:"article_id"`
	ID        int64     `db:"id"`
	Name      string    `db:"name"`
	Slug      string    `db:"slug"`
	CreatedAt time.Time `db:"created_at"`
}

// replaceTags sets the tag links of an article to exactly tagIDs
func replaceTags(ctx context.Context, tx *sqlx.Tx, articleID int64, tagIDs []int64) error {
	if _, err := tx.ExecContext(ctx, "DELETE FROM article_tags WHERE article_id = ?", articleID); err != nil {
		return fmt.Errorf("clear article tags: %w", err)
	}
	for _, tagID := range tagIDs {
		_, err := tx.ExecContext(ctx, "INSERT OR IGNORE INTO article_tags (article_id, tag_id) VALUES (?, ?)", articleID, tagID)
		if err != nil {
			if isForeignKeyError(err) {
				return domain.Invalid("tag_ids", fmt.Sprintf("tag %d not found", tagID))
			}
			return fmt.Errorf("link tag %d: %w", tagID, err)
		}
	}
	return nil
}

func (a articleSQL) toDomain() domain.Article {
	res := domain.Article{
		ID:          a.ID,
		Title:       a.Title,
		Slug:        a.Slug,
		Content:     a.Content,
		Excerpt:     a.Excerpt,
		ImageURL:    a.ImageURL,
		ImageAlt:    a.ImageAlt,
		ReadingTime: a.ReadingTime,
		IsPublished: a.IsPublished,
		Views:       a.Views,
		PublishedAt: a.PublishedAt,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
		AuthorID:    a.AuthorID,
	}
	if a.CategoryID.Valid {
		id := a.CategoryID.Int64
		res.CategoryID = &id
	}
	return res
}
