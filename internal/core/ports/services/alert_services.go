package services

import (
	"context"

	"github.com/SafeHavenApp/safehaven_backend/internal/core/domain"
	"github.com/SafeHavenApp/safehaven_backend/internal/dto"
)

// AlertSvcFacade defines emergency alert operations.
type AlertSvcFacade interface {
	// TriggerAlert creates an active alert for the user.
	TriggerAlert(ctx context.Context, userID string, req dto.CreateAlertRequest) (*domain.EmergencyAlert, error)

	// ListAlerts returns the user's alerts, newest first.
	ListAlerts(ctx context.Context, userID string) ([]domain.EmergencyAlert, error)

	// ResolveAlert marks the user's own active alert resolved.
	ResolveAlert(ctx context.Context, alertID, userID string) (*domain.EmergencyAlert, error)
}
