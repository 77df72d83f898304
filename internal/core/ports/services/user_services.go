package services

import (
	"context"

	"github.com/SafeHavenApp/safehaven_backend/internal/core/domain"
)

// UserReaderSvc defines read operations for user data
type UserReaderSvc interface {
	// GetUserByID retrieves a user by ID.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)

	// GetUserByEmail retrieves a user by email.
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)

	// SearchUsers finds users by a full-name/email substring (min 2 chars).
	SearchUsers(ctx context.Context, query string) ([]domain.User, error)
}

// UserWriterSvc defines write operations for user data
type UserWriterSvc interface {
	// CreateUser validates credentials and creates a new user.
	// Returns apperrors.ErrValidation for policy failures and
	// apperrors.ErrDuplicate when the email is taken.
	CreateUser(ctx context.Context, email, password, fullName string) (*domain.User, error)
}

// UserSvcFacade combines all user-related service interfaces
type UserSvcFacade interface {
	UserReaderSvc
	UserWriterSvc
}
