package repositories

import (
	"context"
	"time"

	"github.com/SafeHavenApp/safehaven_backend/internal/core/domain"
)

// UserRepository defines persistence operations for users.
type UserRepository interface {
	// SaveUser inserts a new user. Returns apperrors.ErrDuplicate when the
	// email is already taken.
	SaveUser(ctx context.Context, user domain.User) error

	// FindUserByID retrieves a non-deleted user by ID.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindUserByEmail retrieves a non-deleted user by email.
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)

	// UpdateLastLogin stamps the user's last successful login.
	UpdateLastLogin(ctx context.Context, userID string, loginAt time.Time) error

	// SearchUsers finds users whose full name or email contains the query substring.
	SearchUsers(ctx context.Context, query string, limit int) ([]domain.User, error)
}
