package repositories

import (
	"context"

	"github.com/SafeHavenApp/safehaven_backend/internal/core/domain"
)

// ProfileRepository defines persistence operations for the optional profile
// extension and emergency contacts.
type ProfileRepository interface {
	// SaveProfile inserts the profile row, or updates it when one already
	// exists for the user (the registration flow may run twice for the same
	// email on duplicate submissions).
	SaveProfile(ctx context.Context, profile domain.UserProfile) error

	// FindProfileByUserID returns the user's profile or apperrors.ErrNotFound.
	FindProfileByUserID(ctx context.Context, userID string) (*domain.UserProfile, error)

	// SaveEmergencyContact inserts one emergency contact row.
	SaveEmergencyContact(ctx context.Context, contact domain.EmergencyContact) error

	// FindEmergencyContactsByUserID lists the user's emergency contacts.
	FindEmergencyContactsByUserID(ctx context.Context, userID string) ([]domain.EmergencyContact, error)
}
