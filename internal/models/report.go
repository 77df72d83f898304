package models

import "time"

// HarassmentReport represents a row in the harassment_reports table.
// EvidenceURLs maps to a text[] column.
type HarassmentReport struct {
	ReportID       string    `db:"report_id"`
	UserID         string    `db:"user_id"`
	Category       string    `db:"category"`
	Description    string    `db:"description"`
	Location       string    `db:"location"`
	IncidentDate   string    `db:"incident_date"`
	ReportedUserID *string   `db:"reported_user_id"`
	IsPublic       bool      `db:"is_public"`
	Status         string    `db:"status"`
	EvidenceURLs   []string  `db:"evidence_urls"`
	CreatedAt      time.Time `db:"created_at"`
	UpdatedAt      time.Time `db:"updated_at"`
}
