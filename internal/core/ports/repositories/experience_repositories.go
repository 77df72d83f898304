package repositories

import (
	"context"

	"github.com/SafeHavenApp/safehaven_backend/internal/core/domain"
)

// ExperienceRepository defines persistence operations for registration-time
// harassment experiences and their evidence files.
type ExperienceRepository interface {
	// SaveExperience inserts the experience row together with its evidence files.
	SaveExperience(ctx context.Context, experience domain.HarassmentExperience) error

	// FindExperiencesByUserID lists the user's experiences including evidence files.
	FindExperiencesByUserID(ctx context.Context, userID string) ([]domain.HarassmentExperience, error)
}
