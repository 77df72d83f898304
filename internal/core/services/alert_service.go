package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/SafeHavenApp/safehaven_backend/internal/core/domain"
	portsrepo "github.com/SafeHavenApp/safehaven_backend/internal/core/ports/repositories"
	"github.com/SafeHavenApp/safehaven_backend/internal/dto"
	"github.com/google/uuid"
)

type alertService struct {
	alertRepo portsrepo.AlertRepository
}

// NewAlertService creates the alert service.
func NewAlertService(alertRepo portsrepo.AlertRepository) *alertService {
	return &alertService{alertRepo: alertRepo}
}

// TriggerAlert records an active alert. Location and message are optional so
// the panic path never blocks on validation.
func (s *alertService) TriggerAlert(ctx context.Context, userID string, req dto.CreateAlertRequest) (*domain.EmergencyAlert, error) {
	alert := domain.EmergencyAlert{
		AlertID:   uuid.NewString(),
		UserID:    userID,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		Message:   strings.TrimSpace(req.Message),
		Status:    domain.AlertStatusActive,
		CreatedAt: time.Now(),
	}

	if err := s.alertRepo.SaveAlert(ctx, alert); err != nil {
		return nil, fmt.Errorf("failed to save alert: %w", err)
	}

	return &alert, nil
}

func (s *alertService) ListAlerts(ctx context.Context, userID string) ([]domain.EmergencyAlert, error) {
	alerts, err := s.alertRepo.FindAlertsByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list alerts: %w", err)
	}
	return alerts, nil
}

// ResolveAlert marks the caller's own active alert resolved. The repository
// filters by user id, so resolving someone else's alert looks like a miss.
func (s *alertService) ResolveAlert(ctx context.Context, alertID, userID string) (*domain.EmergencyAlert, error) {
	alert, err := s.alertRepo.ResolveAlert(ctx, alertID, userID, time.Now())
	if err != nil {
		return nil, err
	}
	return alert, nil
}
