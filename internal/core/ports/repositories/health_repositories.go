package repositories

import (
	"context"

	"github.com/SafeHavenApp/safehaven_backend/internal/core/domain"
)

// HealthRepository defines persistence operations for the optional health
// extensions and medications.
type HealthRepository interface {
	// SavePhysicalHealth inserts or updates the user's physical health row.
	SavePhysicalHealth(ctx context.Context, record domain.PhysicalHealth) error

	// SaveMentalHealth inserts or updates the user's mental health row.
	SaveMentalHealth(ctx context.Context, record domain.MentalHealth) error

	// SaveMedication inserts one medication row.
	SaveMedication(ctx context.Context, medication domain.Medication) error
}
