package repositories

import (
	"context"

	"github.com/SafeHavenApp/safehaven_backend/internal/core/domain"
)

// ReportRepository defines persistence operations for harassment reports.
type ReportRepository interface {
	// SaveReport inserts a new report row.
	SaveReport(ctx context.Context, report domain.HarassmentReport) error

	// FindReportByID returns the report or apperrors.ErrNotFound.
	// Visibility rules are applied by the service, not here.
	FindReportByID(ctx context.Context, reportID string) (*domain.HarassmentReport, error)

	// FindAllReports lists every report, newest first.
	FindAllReports(ctx context.Context, limit, offset int) ([]domain.HarassmentReport, error)

	// FindVisibleReports lists the user's own reports plus public ones, newest first.
	FindVisibleReports(ctx context.Context, userID string, limit, offset int) ([]domain.HarassmentReport, error)

	// UpdateReportStatus sets the report status. Returns apperrors.ErrNotFound
	// when no row matched.
	UpdateReportStatus(ctx context.Context, reportID string, status domain.ReportStatus) (*domain.HarassmentReport, error)
}
