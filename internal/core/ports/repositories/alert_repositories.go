package repositories

import (
	"context"
	"time"

	"github.com/SafeHavenApp/safehaven_backend/internal/core/domain"
)

// AlertRepository defines persistence operations for emergency alerts.
type AlertRepository interface {
	// SaveAlert inserts a new alert row.
	SaveAlert(ctx context.Context, alert domain.EmergencyAlert) error

	// FindAlertsByUserID lists the user's alerts, newest first.
	FindAlertsByUserID(ctx context.Context, userID string) ([]domain.EmergencyAlert, error)

	// ResolveAlert marks the user's active alert resolved. Returns
	// apperrors.ErrNotFound when no matching active alert exists.
	ResolveAlert(ctx context.Context, alertID, userID string, resolvedAt time.Time) (*domain.EmergencyAlert, error)
}
