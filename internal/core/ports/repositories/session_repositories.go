package repositories

import (
	"context"
	"time"

	"github.com/SafeHavenApp/safehaven_backend/internal/core/domain"
)

// SessionRepository defines persistence operations for user sessions.
type SessionRepository interface {
	// SaveSession inserts a new session row.
	SaveSession(ctx context.Context, session domain.UserSession) error

	// FindActiveSessionByTokenHash returns the session matching the token hash
	// that is still active and unexpired at `now`, or apperrors.ErrNotFound.
	FindActiveSessionByTokenHash(ctx context.Context, tokenHash string, now time.Time) (*domain.UserSession, error)

	// DeactivateSessionByTokenHash marks the matching session inactive.
	// Missing sessions are not an error; logout is idempotent.
	DeactivateSessionByTokenHash(ctx context.Context, tokenHash string) error
}
