package domain

import "time"

// Author represents an article author
type Author struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Bio       string    `json:"bio"`
	AvatarURL string    `json:"avatar_url"`
	CreatedAt time.Time `json:"created_at"`
}

// AuthorUpdate lists the mutable author fields
type AuthorUpdate struct {
	Name      *string `json:"name"`
	Email     *string `json:"email"`
	Bio       *string `json:"bio"`
	AvatarURL *string `json:"avatar_url"`
}
