package domain

import "time"

// User represents a registered account in the domain.
type User struct {
	UserID       string     `json:"userID"` // Primary Key (UUID)
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"`
	FullName     string     `json:"fullName"`
	IsVerified   bool       `json:"isVerified"`
	IsAdmin      bool       `json:"isAdmin"`
	LastLoginAt  *time.Time `json:"lastLoginAt,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
	DeletedAt    *time.Time `json:"deletedAt,omitempty"` // Used for soft delete
}
