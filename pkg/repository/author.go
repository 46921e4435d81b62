package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/umputun/newsdesk/pkg/domain"
)

// AuthorRepository handles author-related database operations
type AuthorRepository struct {
	db *sqlx.DB
}

// authorSQL represents an author row
type authorSQL struct {
	ID        int64     `db:"id"`
	Name      string    `db:"name"`
	Email     string    `db:"email"`
	Bio       string    `db:"bio"`
	AvatarURL string    `db:"avatar_url"`
	CreatedAt time.Time `db:"created_at"`
}

const authorColumns = "id, name, email, bio, avatar_url, created_at"

// NewAuthorRepository creates a new author repository
func NewAuthorRepository(db *sqlx.DB) *AuthorRepository {
	return &AuthorRepository{db: db}
}

// List returns all authors ordered by name
func (r *AuthorRepository) List(ctx context.Context) ([]domain.Author, error) {
	var rows []authorSQL
	if err := r.db.SelectContext(ctx, &rows, "SELECT "+authorColumns+" FROM authors ORDER BY name, id"); err != nil {
		return nil, fmt.Errorf("list authors: %w", err)
	}
	res := make([]domain.Author, len(rows))
	for i, row := range rows {
		res[i] = row.toDomain()
	}
	return res, nil
}

// Get retrieves an author by id
func (r *AuthorRepository) Get(ctx context.Context, id int64) (*domain.Author, error) {
	var row authorSQL
	if err := r.db.GetContext(ctx, &row, "SELECT "+authorColumns+" FROM authors WHERE id = ?", id); err != nil {
		return nil, mapReadError("get author", "Author", err)
	}
	res := row.toDomain()
	return &res, nil
}

// GetByEmail retrieves an author by email
func (r *AuthorRepository) GetByEmail(ctx context.Context, email string) (*domain.Author, error) {
	var row authorSQL
	if err := r.db.GetContext(ctx, &row, "SELECT "+authorColumns+" FROM authors WHERE email = ?", email); err != nil {
		return nil, mapReadError("get author by email", "Author", err)
	}
	res := row.toDomain()
	return &res, nil
}

// Create inserts a new author
func (r *AuthorRepository) Create(ctx context.Context, a *domain.Author) (*domain.Author, error) {
	if strings.TrimSpace(a.Name) == "" {
		return nil, domain.Invalid("name", "is required")
	}
	if strings.TrimSpace(a.Email) == "" {
		return nil, domain.Invalid("email", "is required")
	}

	row := authorSQL{Name: a.Name, Email: a.Email, Bio: a.Bio, AvatarURL: a.AvatarURL, CreatedAt: now()}
	res, err := r.db.NamedExecContext(ctx, `
		INSERT INTO authors (name, email, bio, avatar_url, created_at)
		VALUES (:name, :email, :bio, :avatar_url, :created_at)`, &row)
	if err != nil {
		return nil, mapWriteError("create author", "Author", err)
	}
	if row.ID, err = res.LastInsertId(); err != nil {
		return nil, fmt.Errorf("get insert id: %w", err)
	}
	author := row.toDomain()
	return &author, nil
}

// Update changes the supplied author fields
func (r *AuthorRepository) Update(ctx context.Context, id int64, upd domain.AuthorUpdate) (*domain.Author, error) {
	set := setClause{}
	if upd.Name != nil {
		set.add("name", *upd.Name)
	}
	if upd.Email != nil {
		set.add("email", *upd.Email)
	}
	if upd.Bio != nil {
		set.add("bio", *upd.Bio)
	}
	if upd.AvatarURL != nil {
		set.add("avatar_url", *upd.AvatarURL)
	}
	if set.empty() {
		return r.Get(ctx, id)
	}

	res, err := r.db.ExecContext(ctx, "UPDATE authors SET "+set.String()+" WHERE id = ?", append(set.args, id)...)
	if err != nil {
		return nil, mapWriteError("update author", "Author", err)
	}
	if err = checkAffected("update author", "Author", res); err != nil {
		return nil, err
	}
	return r.Get(ctx, id)
}

// Delete removes an author, fails with conflict while the author has articles
func (r *AuthorRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM authors WHERE id = ?", id)
	if err != nil {
		if isForeignKeyError(err) {
			return fmt.Errorf("delete author: %w", domain.Conflict("Author has articles"))
		}
		return fmt.Errorf("delete author: %w", err)
	}
	return checkAffected("delete author", "Author", res)
}

func (a authorSQL) toDomain() domain.Author {
	return domain.Author{
		ID:        a.ID,
		Name:      a.Name,
		Email:     a.Email,
		Bio:       a.Bio,
		AvatarURL: a.AvatarURL,
		CreatedAt: a.CreatedAt,
	}
}
