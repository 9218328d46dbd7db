package models

import "time"

// RefreshToken represents a refresh token stored in the database.
// At most one row exists per user; the token string itself is opaque
// and unique across the table.
type RefreshToken struct {
	ID        string    `db:"id"`
	Token     string    `db:"token"`
	UserID    string    `db:"user_id"`
	ExpiresAt time.Time `db:"expires_at"`
	CreatedAt time.Time `db:"created_at"`
}
