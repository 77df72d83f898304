package domain

import "time"

// UserSession is a server-side session record. TokenHash is the SHA256 hash
// of the signed token; the raw token is never persisted.
type UserSession struct {
	SessionID string    `json:"sessionID"`
	UserID    string    `json:"userID"`
	TokenHash string    `json:"-"`
	ExpiresAt time.Time `json:"expiresAt"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
}

// IsValidAt reports whether the session can authenticate requests at t.
func (s UserSession) IsValidAt(t time.Time) bool {
	return s.IsActive && t.Before(s.ExpiresAt)
}
