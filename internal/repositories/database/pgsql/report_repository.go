package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SafeHavenApp/safehaven_backend/internal/apperrors"
	"github.com/SafeHavenApp/safehaven_backend/internal/core/domain"
	portsrepo "github.com/SafeHavenApp/safehaven_backend/internal/core/ports/repositories"
	"github.com/SafeHavenApp/safehaven_backend/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxReportRepository struct {
	db *pgxpool.Pool
}

func newPgxReportRepository(db *pgxpool.Pool) portsrepo.ReportRepository {
	return &PgxReportRepository{db: db}
}

var _ portsrepo.ReportRepository = (*PgxReportRepository)(nil)

func toDomainReport(m models.HarassmentReport) domain.HarassmentReport {
	return domain.HarassmentReport{
		ReportID:       m.ReportID,
		UserID:         m.UserID,
		Category:       m.Category,
		Description:    m.Description,
		Location:       m.Location,
		IncidentDate:   m.IncidentDate,
		ReportedUserID: m.ReportedUserID,
		IsPublic:       m.IsPublic,
		Status:         domain.ReportStatus(m.Status),
		EvidenceURLs:   m.EvidenceURLs,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

const reportColumns = `report_id, user_id, category, description, location, incident_date, reported_user_id, is_public, status, evidence_urls, created_at, updated_at`

func scanReport(row pgx.Row) (models.HarassmentReport, error) {
	var m models.HarassmentReport
	err := row.Scan(
		&m.ReportID,
		&m.UserID,
		&m.Category,
		&m.Description,
		&m.Location,
		&m.IncidentDate,
		&m.ReportedUserID,
		&m.IsPublic,
		&m.Status,
		&m.EvidenceURLs,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	return m, err
}

func (r *PgxReportRepository) SaveReport(ctx context.Context, report domain.HarassmentReport) error {
	query := `
        INSERT INTO harassment_reports (report_id, user_id, category, description, location, incident_date, reported_user_id, is_public, status, evidence_urls, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
    `
	_, err := r.db.Exec(ctx, query,
		report.ReportID,
		report.UserID,
		report.Category,
		report.Description,
		report.Location,
		report.IncidentDate,
		report.ReportedUserID,
		report.IsPublic,
		string(report.Status),
		report.EvidenceURLs,
		report.CreatedAt,
		report.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save report: %w", err)
	}
	return nil
}

func (r *PgxReportRepository) FindReportByID(ctx context.Context, reportID string) (*domain.HarassmentReport, error) {
	query := `
		SELECT ` + reportColumns + `
		FROM harassment_reports
		WHERE report_id = $1;
	`
	m, err := scanReport(r.db.QueryRow(ctx, query, reportID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find report by ID %s: %w", reportID, err)
	}

	report := toDomainReport(m)
	return &report, nil
}

func (r *PgxReportRepository) FindAllReports(ctx context.Context, limit, offset int) ([]domain.HarassmentReport, error) {
	query := `
        SELECT ` + reportColumns + `
        FROM harassment_reports
        ORDER BY created_at DESC
        LIMIT $1 OFFSET $2;
    `
	return r.queryReports(ctx, query, limit, offset)
}

func (r *PgxReportRepository) FindVisibleReports(ctx context.Context, userID string, limit, offset int) ([]domain.HarassmentReport, error) {
	query := `
        SELECT ` + reportColumns + `
        FROM harassment_reports
        WHERE user_id = $1 OR is_public = TRUE
        ORDER BY created_at DESC
        LIMIT $2 OFFSET $3;
    `
	return r.queryReports(ctx, query, userID, limit, offset)
}

func (r *PgxReportRepository) queryReports(ctx context.Context, query string, args ...any) ([]domain.HarassmentReport, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query reports: %w", err)
	}
	defer rows.Close()

	reports := []domain.HarassmentReport{}
	for rows.Next() {
		m, err := scanReport(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan report row: %w", err)
		}
		reports = append(reports, toDomainReport(m))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating report rows: %w", rows.Err())
	}

	return reports, nil
}

func (r *PgxReportRepository) UpdateReportStatus(ctx context.Context, reportID string, status domain.ReportStatus) (*domain.HarassmentReport, error) {
	query := `
        UPDATE harassment_reports
        SET status = $1, updated_at = $2
        WHERE report_id = $3
        RETURNING ` + reportColumns + `;
    `
	m, err := scanReport(r.db.QueryRow(ctx, query, string(status), time.Now(), reportID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to update report status: %w", err)
	}

	report := toDomainReport(m)
	return &report, nil
}
