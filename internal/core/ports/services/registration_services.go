package services

import (
	"context"

	"github.com/SafeHavenApp/safehaven_backend/internal/core/domain"
	"github.com/SafeHavenApp/safehaven_backend/internal/dto"
)

// RegistrationSvcFacade orchestrates the multi-step registration flow.
type RegistrationSvcFacade interface {
	// Register validates step1, creates (or re-fetches on duplicate email)
	// the user, promotes staged files, best-effort persists steps 2-5 and
	// synthesizes a login. Returns the user plus a session token.
	Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, string, error)
}
