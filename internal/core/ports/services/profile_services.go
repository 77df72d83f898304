package services

import (
	"context"

	"github.com/SafeHavenApp/safehaven_backend/internal/core/domain"
)

// ProfileOverview aggregates the optional data collected during registration:
// the profile extension, emergency contacts and past experiences.
type ProfileOverview struct {
	Profile           *domain.UserProfile
	EmergencyContacts []domain.EmergencyContact
	Experiences       []domain.HarassmentExperience
}

// ProfileSvcFacade defines the read side of the registration-time data.
type ProfileSvcFacade interface {
	// GetProfile returns the user's profile overview. A user who skipped the
	// optional steps still gets an overview, with a nil Profile and empty
	// lists.
	GetProfile(ctx context.Context, userID string) (*ProfileOverview, error)
}
