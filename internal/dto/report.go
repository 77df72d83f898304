package dto

import (
	"github.com/SafeHavenApp/safehaven_backend/internal/core/domain"
)

// CreateReportRequest is the body of POST /api/reports.
// Description must be at least 50 characters; the min tag keeps the limit
// visible at the binding layer, the service re-checks it.
type CreateReportRequest struct {
	Category       string   `json:"category" binding:"required"`
	Description    string   `json:"description" binding:"required,min=50"`
	Location       string   `json:"location"`
	IncidentDate   string   `json:"incidentDate"`
	ReportedUserID *string  `json:"reportedUserID"`
	IsPublic       bool     `json:"isPublic"`
	EvidenceURLs   []string `json:"evidenceUrls"`
}

// UpdateReportStatusRequest is the body of PATCH /api/reports/:id.
type UpdateReportStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ReportResponse is the public representation of a harassment report.
type ReportResponse struct {
	ReportID       string   `json:"reportID"`
	UserID         string   `json:"userID"`
	Category       string   `json:"category"`
	Description    string   `json:"description"`
	Location       string   `json:"location,omitempty"`
	IncidentDate   string   `json:"incidentDate,omitempty"`
	ReportedUserID *string  `json:"reportedUserID,omitempty"`
	IsPublic       bool     `json:"isPublic"`
	Status         string   `json:"status"`
	EvidenceURLs   []string `json:"evidenceUrls,omitempty"`
	CreatedAt      string   `json:"createdAt"`
	UpdatedAt      string   `json:"updatedAt"`
}

// ToReportResponse converts a domain report to its response DTO.
func ToReportResponse(r *domain.HarassmentReport) ReportResponse {
	return ReportResponse{
		ReportID:       r.ReportID,
		UserID:         r.UserID,
		Category:       r.Category,
		Description:    r.Description,
		Location:       r.Location,
		IncidentDate:   r.IncidentDate,
		ReportedUserID: r.ReportedUserID,
		IsPublic:       r.IsPublic,
		Status:         string(r.Status),
		EvidenceURLs:   r.EvidenceURLs,
		CreatedAt:      r.CreatedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:      r.UpdatedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
	}
}

// ToReportListResponse converts a slice of domain reports.
func ToReportListResponse(reports []domain.HarassmentReport) []ReportResponse {
	out := make([]ReportResponse, len(reports))
	for i := range reports {
		out[i] = ToReportResponse(&reports[i])
	}
	return out
}
