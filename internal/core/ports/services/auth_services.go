package services

import (
	"context"

	"github.com/SafeHavenApp/safehaven_backend/internal/core/domain"
)

// SessionVerifierSvc resolves a session token to its live user. Used by the
// auth middleware and the /auth/me handler.
type SessionVerifierSvc interface {
	// CurrentUser verifies the token signature and expiry, re-hashes the
	// token and requires an active unexpired session row, then re-fetches the
	// live user so revocation and edits propagate. Every failure mode maps to
	// apperrors.ErrUnauthorized.
	CurrentUser(ctx context.Context, token string) (*domain.User, error)
}

// AuthSvcFacade defines the credential and session operations.
type AuthSvcFacade interface {
	SessionVerifierSvc

	// Login verifies the credentials and issues a session. All credential
	// failures return apperrors.ErrUnauthorized so account existence is not
	// leaked.
	Login(ctx context.Context, email, password string) (*domain.User, string, error)

	// IssueSession signs a token and stores its session row for an already
	// authenticated user (used by the registration flow).
	IssueSession(ctx context.Context, user *domain.User) (string, error)

	// Logout invalidates the session matching the token. An empty token is a no-op.
	Logout(ctx context.Context, token string) error
}
