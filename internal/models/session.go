package models

import "time"

// UserSession represents a row in the user_sessions table.
// token_hash is the SHA256 of the signed token, never the token itself.
type UserSession struct {
	SessionID string    `db:"session_id"`
	UserID    string    `db:"user_id"`
	TokenHash string    `db:"token_hash"`
	ExpiresAt time.Time `db:"expires_at"`
	IsActive  bool      `db:"is_active"`
	CreatedAt time.Time `db:"created_at"`
}
