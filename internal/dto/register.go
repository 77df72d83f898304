package dto

// RegisterRequest is the nested multi-step registration payload.
// Only step1 is mandatory; steps 2-5 are persisted best-effort and only when
// they carry at least one meaningful field.
type RegisterRequest struct {
	Step1 *RegisterStepOne   `json:"step1" binding:"required"`
	Step2 *RegisterStepTwo   `json:"step2"`
	Step3 *RegisterStepThree `json:"step3"`
	Step4 *RegisterStepFour  `json:"step4"`
	Step5 *RegisterStepFive  `json:"step5"`
}

// TempFileRef points at a previously staged upload, tagged with its purpose
// ("profile" or "identity") so it can be promoted into the user's namespace.
type TempFileRef struct {
	TempID  string `json:"tempId"`
	Purpose string `json:"purpose"`
}

// RegisterStepOne holds the mandatory account credentials.
type RegisterStepOne struct {
	FullName        string        `json:"fullName"`
	Email           string        `json:"email"`
	Password        string        `json:"password"`
	ConfirmPassword string        `json:"confirmPassword"`
	TempFiles       []TempFileRef `json:"tempFiles"`
}

// RegisterStepTwo holds demographics and emergency contacts.
type RegisterStepTwo struct {
	Profile           *ProfilePayload           `json:"profile"`
	EmergencyContacts []EmergencyContactPayload `json:"emergencyContacts"`
}

// RegisterStepThree holds physical health data and general medications.
type RegisterStepThree struct {
	PhysicalHealth *PhysicalHealthPayload `json:"physicalHealth"`
	Medications    []MedicationPayload    `json:"medications"`
}

// RegisterStepFour holds mental health data and psychiatric medications.
type RegisterStepFour struct {
	MentalHealth *MentalHealthPayload `json:"mentalHealth"`
	Medications  []MedicationPayload  `json:"medications"`
}

// RegisterStepFive holds past harassment experiences.
type RegisterStepFive struct {
	Experiences []ExperiencePayload `json:"experiences"`
}

// ProfilePayload mirrors the optional user_profiles columns.
type ProfilePayload struct {
	DateOfBirth string `json:"dateOfBirth"`
	Gender      string `json:"gender"`
	Address     string `json:"address"`
	City        string `json:"city"`
	State       string `json:"state"`
	Pincode     string `json:"pincode"`
	Occupation  string `json:"occupation"`
}

// HasData reports whether any profile field is meaningfully populated.
func (p *ProfilePayload) HasData() bool {
	if p == nil {
		return false
	}
	return p.DateOfBirth != "" || p.Gender != "" || p.Address != "" ||
		p.City != "" || p.State != "" || p.Pincode != "" || p.Occupation != ""
}

// EmergencyContactPayload is one emergency contact entry.
type EmergencyContactPayload struct {
	Name         string `json:"name"`
	Relationship string `json:"relationship"`
	Phone        string `json:"phone"`
	IsPrimary    bool   `json:"isPrimary"`
}

// IsComplete reports whether the contact has all required fields.
func (p EmergencyContactPayload) IsComplete() bool {
	return p.Name != "" && p.Relationship != "" && p.Phone != ""
}

// PhysicalHealthPayload mirrors the optional physical_health columns.
type PhysicalHealthPayload struct {
	BloodGroup        string `json:"bloodGroup"`
	HeightCM          string `json:"heightCm"`
	WeightKG          string `json:"weightKg"`
	Allergies         string `json:"allergies"`
	ChronicConditions string `json:"chronicConditions"`
	Disabilities      string `json:"disabilities"`
}

// HasData reports whether any physical-health field is populated.
func (p *PhysicalHealthPayload) HasData() bool {
	if p == nil {
		return false
	}
	return p.BloodGroup != "" || p.HeightCM != "" || p.WeightKG != "" ||
		p.Allergies != "" || p.ChronicConditions != "" || p.Disabilities != ""
}

// MentalHealthPayload mirrors the optional mental_health columns.
type MentalHealthPayload struct {
	Conditions       string `json:"conditions"`
	TherapyHistory   string `json:"therapyHistory"`
	CurrentTreatment string `json:"currentTreatment"`
	Notes            string `json:"notes"`
}

// HasData reports whether any mental-health field is populated.
func (p *MentalHealthPayload) HasData() bool {
	if p == nil {
		return false
	}
	return p.Conditions != "" || p.TherapyHistory != "" ||
		p.CurrentTreatment != "" || p.Notes != ""
}

// MedicationPayload is one medication entry; name is required.
type MedicationPayload struct {
	Name      string `json:"name"`
	Dosage    string `json:"dosage"`
	Frequency string `json:"frequency"`
}

// ExperiencePayload is one past harassment experience with its evidence files.
type ExperiencePayload struct {
	Category         string                `json:"category"`
	Description      string                `json:"description"`
	Location         string                `json:"location"`
	OccurredAt       string                `json:"occurredAt"`
	ReportedToPolice bool                  `json:"reportedToPolice"`
	SupportReceived  string                `json:"supportReceived"`
	EvidenceFiles    []EvidenceFilePayload `json:"evidenceFiles"`
}

// IsComplete reports whether the experience has its required fields.
func (p ExperiencePayload) IsComplete() bool {
	return p.Category != "" && p.Description != ""
}

// EvidenceFilePayload references an already uploaded evidence file.
type EvidenceFilePayload struct {
	URL      string `json:"url"`
	FileName string `json:"fileName"`
	FileType string `json:"fileType"`
	FileSize int64  `json:"fileSize"`
}
