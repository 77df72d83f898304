package models

import "time"

// PhysicalHealth represents a row in the physical_health table.
type PhysicalHealth struct {
	RecordID          string    `db:"record_id"`
	UserID            string    `db:"user_id"`
	BloodGroup        string    `db:"blood_group"`
	HeightCM          string    `db:"height_cm"`
	WeightKG          string    `db:"weight_kg"`
	Allergies         string    `db:"allergies"`
	ChronicConditions string    `db:"chronic_conditions"`
	Disabilities      string    `db:"disabilities"`
	CreatedAt         time.Time `db:"created_at"`
	UpdatedAt         time.Time `db:"updated_at"`
}

// MentalHealth represents a row in the mental_health table.
type MentalHealth struct {
	RecordID         string    `db:"record_id"`
	UserID           string    `db:"user_id"`
	Conditions       string    `db:"conditions"`
	TherapyHistory   string    `db:"therapy_history"`
	CurrentTreatment string    `db:"current_treatment"`
	Notes            string    `db:"notes"`
	CreatedAt        time.Time `db:"created_at"`
	UpdatedAt        time.Time `db:"updated_at"`
}

// Medication represents a row in the medications table.
// Kind is either 'general' or 'psychiatric'.
type Medication struct {
	MedicationID string    `db:"medication_id"`
	UserID       string    `db:"user_id"`
	Name         string    `db:"name"`
	Dosage       string    `db:"dosage"`
	Frequency    string    `db:"frequency"`
	Kind         string    `db:"kind"`
	CreatedAt    time.Time `db:"created_at"`
}
