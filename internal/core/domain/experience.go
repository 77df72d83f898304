package domain

import "time"

// HarassmentExperience is a past incident captured during registration.
// Category and description are required.
type HarassmentExperience struct {
	ExperienceID     string         `json:"experienceID"`
	UserID           string         `json:"userID"`
	Category         string         `json:"category"`
	Description      string         `json:"description"`
	Location         string         `json:"location,omitempty"`
	OccurredAt       string         `json:"occurredAt,omitempty"`
	ReportedToPolice bool           `json:"reportedToPolice"`
	SupportReceived  string         `json:"supportReceived,omitempty"`
	EvidenceFiles    []EvidenceFile `json:"evidenceFiles,omitempty"`
	CreatedAt        time.Time      `json:"createdAt"`
}

// EvidenceFile is an uploaded attachment belonging to an experience.
type EvidenceFile struct {
	FileID       string    `json:"fileID"`
	ExperienceID string    `json:"experienceID"`
	URL          string    `json:"url"`
	FileName     string    `json:"fileName"`
	FileType     string    `json:"fileType"`
	FileSize     int64     `json:"fileSize"`
	CreatedAt    time.Time `json:"createdAt"`
}
