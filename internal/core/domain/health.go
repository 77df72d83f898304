package domain

import "time"

// PhysicalHealth is the optional 1:1 physical-health extension of a user.
type PhysicalHealth struct {
	RecordID          string    `json:"recordID"`
	UserID            string    `json:"userID"`
	BloodGroup        string    `json:"bloodGroup,omitempty"`
	HeightCM          string    `json:"heightCm,omitempty"`
	WeightKG          string    `json:"weightKg,omitempty"`
	Allergies         string    `json:"allergies,omitempty"`
	ChronicConditions string    `json:"chronicConditions,omitempty"`
	Disabilities      string    `json:"disabilities,omitempty"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

// MentalHealth is the optional 1:1 mental-health extension of a user.
type MentalHealth struct {
	RecordID         string    `json:"recordID"`
	UserID           string    `json:"userID"`
	Conditions       string    `json:"conditions,omitempty"`
	TherapyHistory   string    `json:"therapyHistory,omitempty"`
	CurrentTreatment string    `json:"currentTreatment,omitempty"`
	Notes            string    `json:"notes,omitempty"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// MedicationKind distinguishes general from psychiatric medications.
type MedicationKind string

const (
	MedicationGeneral     MedicationKind = "general"
	MedicationPsychiatric MedicationKind = "psychiatric"
)

// Medication is a 1:N medication record; name is required.
type Medication struct {
	MedicationID string         `json:"medicationID"`
	UserID       string         `json:"userID"`
	Name         string         `json:"name"`
	Dosage       string         `json:"dosage,omitempty"`
	Frequency    string         `json:"frequency,omitempty"`
	Kind         MedicationKind `json:"kind"`
	CreatedAt    time.Time      `json:"createdAt"`
}
