package services

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/SafeHavenApp/safehaven_backend/internal/apperrors"
	"github.com/SafeHavenApp/safehaven_backend/internal/core/domain"
	portsrepo "github.com/SafeHavenApp/safehaven_backend/internal/core/ports/repositories"
	"github.com/SafeHavenApp/safehaven_backend/internal/dto"
	"github.com/google/uuid"
)

const (
	minReportDescriptionLen = 50
	defaultReportPageSize   = 50
	maxReportPageSize       = 100
)

type reportService struct {
	reportRepo portsrepo.ReportRepository
}

// NewReportService creates the report service.
func NewReportService(reportRepo portsrepo.ReportRepository) *reportService {
	return &reportService{reportRepo: reportRepo}
}

// CreateReport validates and stores a new report. New reports always start in
// the pending status regardless of the request body.
func (s *reportService) CreateReport(ctx context.Context, userID string, req dto.CreateReportRequest) (*domain.HarassmentReport, error) {
	category := strings.TrimSpace(req.Category)
	description := strings.TrimSpace(req.Description)

	if category == "" {
		return nil, apperrors.NewAppError(http.StatusBadRequest, "Category is required", apperrors.ErrValidation)
	}
	if len(description) < minReportDescriptionLen {
		return nil, apperrors.NewAppError(http.StatusBadRequest,
			fmt.Sprintf("Description must be at least %d characters", minReportDescriptionLen), apperrors.ErrValidation)
	}

	now := time.Now()
	report := domain.HarassmentReport{
		ReportID:       uuid.NewString(),
		UserID:         userID,
		Category:       category,
		Description:    description,
		Location:       strings.TrimSpace(req.Location),
		IncidentDate:   req.IncidentDate,
		ReportedUserID: req.ReportedUserID,
		IsPublic:       req.IsPublic,
		Status:         domain.ReportStatusPending,
		EvidenceURLs:   req.EvidenceURLs,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.reportRepo.SaveReport(ctx, report); err != nil {
		return nil, fmt.Errorf("failed to save report: %w", err)
	}

	return &report, nil
}

// ListReports returns every report for admins, otherwise the caller's own
// reports plus public ones.
func (s *reportService) ListReports(ctx context.Context, userID string, isAdmin bool, limit, offset int) ([]domain.HarassmentReport, error) {
	if limit <= 0 {
		limit = defaultReportPageSize
	}
	if limit > maxReportPageSize {
		limit = maxReportPageSize
	}
	if offset < 0 {
		offset = 0
	}

	var (
		reports []domain.HarassmentReport
		err     error
	)
	if isAdmin {
		reports, err = s.reportRepo.FindAllReports(ctx, limit, offset)
	} else {
		reports, err = s.reportRepo.FindVisibleReports(ctx, userID, limit, offset)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}
	return reports, nil
}

// GetReport applies the visibility rule: owner, admin, or public. A report the
// caller may not see resolves to apperrors.ErrNotFound so its existence does
// not leak.
func (s *reportService) GetReport(ctx context.Context, reportID, userID string, isAdmin bool) (*domain.HarassmentReport, error) {
	report, err := s.reportRepo.FindReportByID(ctx, reportID)
	if err != nil {
		return nil, err
	}

	if !isAdmin && report.UserID != userID && !report.IsPublic {
		return nil, apperrors.ErrNotFound
	}

	return report, nil
}

// UpdateStatus sets a report's status. Admin only.
func (s *reportService) UpdateStatus(ctx context.Context, reportID, status, userID string, isAdmin bool) (*domain.HarassmentReport, error) {
	if !isAdmin {
		return nil, apperrors.ErrForbidden
	}

	newStatus := domain.ReportStatus(status)
	if !newStatus.IsValid() {
		return nil, apperrors.NewAppError(http.StatusBadRequest, "Invalid status", apperrors.ErrValidation)
	}

	report, err := s.reportRepo.UpdateReportStatus(ctx, reportID, newStatus)
	if err != nil {
		return nil, err
	}
	return report, nil
}
