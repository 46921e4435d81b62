package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/umputun/newsdesk/pkg/domain"
)

// UserRepository handles user accounts
type UserRepository struct {
	db *sqlx.DB
}

type userSQL struct {
	ID           int64     `db:"id"`
	Username     string    `db:"username"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	IsAdmin      bool      `db:"is_admin"`
	CreatedAt    time.Time `db:"created_at"`
}

const userColumns = "id, username, email, password_hash, is_admin, created_at"

// NewUserRepository creates a new user repository
func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create inserts a new user with an already hashed password.
// The very first registered user becomes an admin.
func (r *UserRepository) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	switch {
	case strings.TrimSpace(u.Username) == "":
		return nil, domain.Invalid("username", "is required")
	case strings.TrimSpace(u.Email) == "":
		return nil, domain.Invalid("email", "is required")
	case u.PasswordHash == "":
		return nil, domain.Invalid("password", "is required")
	}

	var id int64
	err := withRetry(ctx, func() error {
		return r.db.GetContext(ctx, &id, `
			INSERT INTO users (username, email, password_hash, is_admin, created_at)
			SELECT ?, ?, ?, ? OR NOT EXISTS (SELECT 1 FROM users), ?
			RETURNING id`, u.Username, u.Email, u.PasswordHash, u.IsAdmin, now())
	})
	if err != nil {
		if isUniqueError(err) {
			field := "Username"
			if strings.Contains(err.Error(), "users.email") {
				field = "Email"
			}
			return nil, fmt.Errorf("create user: %w", domain.Conflict("%s already exists", field))
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return r.Get(ctx, id)
}

// Get retrieves a user by id
func (r *UserRepository) Get(ctx context.Context, id int64) (*domain.User, error) {
	return r.getOne(ctx, "id = ?", id)
}

// GetByUsername retrieves a user by username, used for login
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.getOne(ctx, "username = ?", username)
}

// Update changes the user's username and email, the only fields a user may edit
func (r *UserRepository) Update(ctx context.Context, id int64, upd domain.UserUpdate) (*domain.User, error) {
	set := setClause{}
	if upd.Username != nil {
		if strings.TrimSpace(*upd.Username) == "" {
			return nil, domain.Invalid("username", "can't be empty")
		}
		set.add("username", *upd.Username)
	}
	if upd.Email != nil {
		if strings.TrimSpace(*upd.Email) == "" {
			return nil, domain.Invalid("email", "can't be empty")
		}
		set.add("email", *upd.Email)
	}
	if set.empty() {
		return r.Get(ctx, id)
	}

	res, err := r.db.ExecContext(ctx, "UPDATE users SET "+set.String()+" WHERE id = ?", append(set.args, id)...)
	if err != nil {
		return nil, mapWriteError("update user", "User", err)
	}
	if err = checkAffected("update user", "User", res); err != nil {
		return nil, err
	}
	return r.Get(ctx, id)
}

func (r *UserRepository) getOne(ctx context.Context, cond string, arg any) (*domain.User, error) {
	var row userSQL
	if err := r.db.GetContext(ctx, &row, "SELECT "+userColumns+" FROM users WHERE "+cond, arg); err != nil {
		return nil, mapReadError("get user", "User", err)
	}
	return &domain.User{
		ID:           row.ID,
		Username:     row.Username,
		Email:        row.Email,
		PasswordHash: row.PasswordHash,
		IsAdmin:      row.IsAdmin,
		CreatedAt:    row.CreatedAt,
	}, nil
}
