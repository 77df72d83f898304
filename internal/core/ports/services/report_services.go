package services

import (
	"context"

	"github.com/SafeHavenApp/safehaven_backend/internal/core/domain"
	"github.com/SafeHavenApp/safehaven_backend/internal/dto"
)

// ReportSvcFacade defines harassment report operations.
type ReportSvcFacade interface {
	// CreateReport validates and stores a new report for the user.
	CreateReport(ctx context.Context, userID string, req dto.CreateReportRequest) (*domain.HarassmentReport, error)

	// ListReports returns all reports for admins, otherwise the user's own
	// plus public ones.
	ListReports(ctx context.Context, userID string, isAdmin bool, limit, offset int) ([]domain.HarassmentReport, error)

	// GetReport returns the report when the caller is the owner, an admin, or
	// the report is public; otherwise apperrors.ErrNotFound (not ErrForbidden,
	// to avoid leaking existence).
	GetReport(ctx context.Context, reportID, userID string, isAdmin bool) (*domain.HarassmentReport, error)

	// UpdateStatus sets the report status; admin only, status must be one of
	// the known values.
	UpdateStatus(ctx context.Context, reportID, status, userID string, isAdmin bool) (*domain.HarassmentReport, error)
}
