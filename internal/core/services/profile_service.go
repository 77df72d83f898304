package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/SafeHavenApp/safehaven_backend/internal/apperrors"
	portsrepo "github.com/SafeHavenApp/safehaven_backend/internal/core/ports/repositories"
	portssvc "github.com/SafeHavenApp/safehaven_backend/internal/core/ports/services"
)

type profileService struct {
	profileRepo    portsrepo.ProfileRepository
	experienceRepo portsrepo.ExperienceRepository
}

// NewProfileService creates the profile read service.
func NewProfileService(profileRepo portsrepo.ProfileRepository, experienceRepo portsrepo.ExperienceRepository) *profileService {
	return &profileService{
		profileRepo:    profileRepo,
		experienceRepo: experienceRepo,
	}
}

// GetProfile assembles the profile overview. A missing profile row is not an
// error: the optional steps may all have been skipped.
func (s *profileService) GetProfile(ctx context.Context, userID string) (*portssvc.ProfileOverview, error) {
	profile, err := s.profileRepo.FindProfileByUserID(ctx, userID)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}

	contacts, err := s.profileRepo.FindEmergencyContactsByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load emergency contacts: %w", err)
	}

	experiences, err := s.experienceRepo.FindExperiencesByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load experiences: %w", err)
	}

	return &portssvc.ProfileOverview{
		Profile:           profile,
		EmergencyContacts: contacts,
		Experiences:       experiences,
	}, nil
}
