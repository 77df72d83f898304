package domain

import "time"

// ReportStatus is the review state of a harassment report.
type ReportStatus string

const (
	ReportStatusPending   ReportStatus = "pending"
	ReportStatusReviewed  ReportStatus = "reviewed"
	ReportStatusResolved  ReportStatus = "resolved"
	ReportStatusDismissed ReportStatus = "dismissed"
)

// IsValid reports whether s is one of the known report statuses.
// Any authorized admin may set any valid value; there is no transition ordering.
func (s ReportStatus) IsValid() bool {
	switch s {
	case ReportStatusPending, ReportStatusReviewed, ReportStatusResolved, ReportStatusDismissed:
		return true
	}
	return false
}

// HarassmentReport is a separately reportable incident, independent of the
// registration-time experience records.
type HarassmentReport struct {
	ReportID       string       `json:"reportID"`
	UserID         string       `json:"userID"`
	Category       string       `json:"category"`
	Description    string       `json:"description"`
	Location       string       `json:"location,omitempty"`
	IncidentDate   string       `json:"incidentDate,omitempty"`
	ReportedUserID *string      `json:"reportedUserID,omitempty"`
	IsPublic       bool         `json:"isPublic"`
	Status         ReportStatus `json:"status"`
	EvidenceURLs   []string     `json:"evidenceUrls,omitempty"`
	CreatedAt      time.Time    `json:"createdAt"`
	UpdatedAt      time.Time    `json:"updatedAt"`
}
