package models

import "time"

// User represents a row in the users table.
type User struct {
	UserID       string     `db:"user_id"`
	Email        string     `db:"email"`
	PasswordHash string     `db:"password_hash"`
	FullName     string     `db:"full_name"`
	IsVerified   bool       `db:"is_verified"`
	IsAdmin      bool       `db:"is_admin"`
	LastLoginAt  *time.Time `db:"last_login_at"`
	CreatedAt    time.Time  `db:"created_at"`
	UpdatedAt    time.Time  `db:"updated_at"`
	DeletedAt    *time.Time `db:"deleted_at"`
}
