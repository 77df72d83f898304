package pgsql

import (
	"context"
	"fmt"

	"github.com/SafeHavenApp/safehaven_backend/internal/core/domain"
	portsrepo "github.com/SafeHavenApp/safehaven_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxHealthRepository struct {
	db *pgxpool.Pool
}

func newPgxHealthRepository(db *pgxpool.Pool) portsrepo.HealthRepository {
	return &PgxHealthRepository{db: db}
}

var _ portsrepo.HealthRepository = (*PgxHealthRepository)(nil)

// SavePhysicalHealth upserts on user_id; one physical health row per user.
func (r *PgxHealthRepository) SavePhysicalHealth(ctx context.Context, record domain.PhysicalHealth) error {
	query := `
        INSERT INTO physical_health (record_id, user_id, blood_group, height_cm, weight_kg, allergies, chronic_conditions, disabilities, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
        ON CONFLICT (user_id) DO UPDATE SET
            blood_group = EXCLUDED.blood_group,
            height_cm = EXCLUDED.height_cm,
            weight_kg = EXCLUDED.weight_kg,
            allergies = EXCLUDED.allergies,
            chronic_conditions = EXCLUDED.chronic_conditions,
            disabilities = EXCLUDED.disabilities,
            updated_at = EXCLUDED.updated_at;
    `
	_, err := r.db.Exec(ctx, query,
		record.RecordID,
		record.UserID,
		record.BloodGroup,
		record.HeightCM,
		record.WeightKG,
		record.Allergies,
		record.ChronicConditions,
		record.Disabilities,
		record.CreatedAt,
		record.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save physical health record: %w", err)
	}
	return nil
}

// SaveMentalHealth upserts on user_id; one mental health row per user.
func (r *PgxHealthRepository) SaveMentalHealth(ctx context.Context, record domain.MentalHealth) error {
	query := `
        INSERT INTO mental_health (record_id, user_id, conditions, therapy_history, current_treatment, notes, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        ON CONFLICT (user_id) DO UPDATE SET
            conditions = EXCLUDED.conditions,
            therapy_history = EXCLUDED.therapy_history,
            current_treatment = EXCLUDED.current_treatment,
            notes = EXCLUDED.notes,
            updated_at = EXCLUDED.updated_at;
    `
	_, err := r.db.Exec(ctx, query,
		record.RecordID,
		record.UserID,
		record.Conditions,
		record.TherapyHistory,
		record.CurrentTreatment,
		record.Notes,
		record.CreatedAt,
		record.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save mental health record: %w", err)
	}
	return nil
}

func (r *PgxHealthRepository) SaveMedication(ctx context.Context, medication domain.Medication) error {
	query := `
        INSERT INTO medications (medication_id, user_id, name, dosage, frequency, kind, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7);
    `
	_, err := r.db.Exec(ctx, query,
		medication.MedicationID,
		medication.UserID,
		medication.Name,
		medication.Dosage,
		medication.Frequency,
		string(medication.Kind),
		medication.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save medication: %w", err)
	}
	return nil
}
