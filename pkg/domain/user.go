package domain

import "time"

// User is an account able to log in. PasswordHash is never serialized.
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	IsAdmin      bool      `json:"is_admin"`
	CreatedAt    time.Time `json:"created_at"`
}

// UserUpdate lists the fields a user may change on their profile
type UserUpdate struct {
	Username *string `json:"username"`
	Email    *string `json:"email"`
}
