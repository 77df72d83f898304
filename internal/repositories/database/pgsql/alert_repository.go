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

type PgxAlertRepository struct {
	db *pgxpool.Pool
}

func newPgxAlertRepository(db *pgxpool.Pool) portsrepo.AlertRepository {
	return &PgxAlertRepository{db: db}
}

var _ portsrepo.AlertRepository = (*PgxAlertRepository)(nil)

func toDomainAlert(m models.EmergencyAlert) domain.EmergencyAlert {
	return domain.EmergencyAlert{
		AlertID:    m.AlertID,
		UserID:     m.UserID,
		Latitude:   m.Latitude,
		Longitude:  m.Longitude,
		Message:    m.Message,
		Status:     domain.AlertStatus(m.Status),
		CreatedAt:  m.CreatedAt,
		ResolvedAt: m.ResolvedAt,
	}
}

const alertColumns = `alert_id, user_id, latitude, longitude, message, status, created_at, resolved_at`

func scanAlert(row pgx.Row) (models.EmergencyAlert, error) {
	var m models.EmergencyAlert
	err := row.Scan(
		&m.AlertID,
		&m.UserID,
		&m.Latitude,
		&m.Longitude,
		&m.Message,
		&m.Status,
		&m.CreatedAt,
		&m.ResolvedAt,
	)
	return m, err
}

func (r *PgxAlertRepository) SaveAlert(ctx context.Context, alert domain.EmergencyAlert) error {
	query := `
        INSERT INTO emergency_alerts (alert_id, user_id, latitude, longitude, message, status, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7);
    `
	_, err := r.db.Exec(ctx, query,
		alert.AlertID,
		alert.UserID,
		alert.Latitude,
		alert.Longitude,
		alert.Message,
		string(alert.Status),
		alert.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save alert: %w", err)
	}
	return nil
}

func (r *PgxAlertRepository) FindAlertsByUserID(ctx context.Context, userID string) ([]domain.EmergencyAlert, error) {
	query := `
        SELECT ` + alertColumns + `
        FROM emergency_alerts
        WHERE user_id = $1
        ORDER BY created_at DESC;
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query alerts: %w", err)
	}
	defer rows.Close()

	alerts := []domain.EmergencyAlert{}
	for rows.Next() {
		m, err := scanAlert(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan alert row: %w", err)
		}
		alerts = append(alerts, toDomainAlert(m))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating alert rows: %w", rows.Err())
	}

	return alerts, nil
}

// ResolveAlert flips the caller's own active alert to resolved. The user_id
// predicate makes someone else's alert indistinguishable from a missing one.
func (r *PgxAlertRepository) ResolveAlert(ctx context.Context, alertID, userID string, resolvedAt time.Time) (*domain.EmergencyAlert, error) {
	query := `
        UPDATE emergency_alerts
        SET status = 'resolved', resolved_at = $1
        WHERE alert_id = $2 AND user_id = $3 AND status = 'active'
        RETURNING ` + alertColumns + `;
    `
	m, err := scanAlert(r.db.QueryRow(ctx, query, resolvedAt, alertID, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to resolve alert: %w", err)
	}

	alert := toDomainAlert(m)
	return &alert, nil
}
