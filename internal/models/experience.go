package models

import "time"

// HarassmentExperience represents a row in the harassment_experiences table.
type HarassmentExperience struct {
	ExperienceID     string    `db:"experience_id"`
	UserID           string    `db:"user_id"`
	Category         string    `db:"category"`
	Description      string    `db:"description"`
	Location         string    `db:"location"`
	OccurredAt       string    `db:"occurred_at"`
	ReportedToPolice bool      `db:"reported_to_police"`
	SupportReceived  string    `db:"support_received"`
	CreatedAt        time.Time `db:"created_at"`
}

// EvidenceFile represents a row in the evidence_files table.
type EvidenceFile struct {
	FileID       string    `db:"file_id"`
	ExperienceID string    `db:"experience_id"`
	URL          string    `db:"url"`
	FileName     string    `db:"file_name"`
	FileType     string    `db:"file_type"`
	FileSize     int64     `db:"file_size"`
	CreatedAt    time.Time `db:"created_at"`
}
