package dto

import (
	"github.com/SafeHavenApp/safehaven_backend/internal/core/domain"
)

// CreateAlertRequest is the body of POST /api/emergency/alerts.
type CreateAlertRequest struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	Message   string   `json:"message"`
}

// AlertResponse is the public representation of an emergency alert.
type AlertResponse struct {
	AlertID    string   `json:"alertID"`
	UserID     string   `json:"userID"`
	Latitude   *float64 `json:"latitude,omitempty"`
	Longitude  *float64 `json:"longitude,omitempty"`
	Message    string   `json:"message,omitempty"`
	Status     string   `json:"status"`
	CreatedAt  string   `json:"createdAt"`
	ResolvedAt string   `json:"resolvedAt,omitempty"`
}

// ToAlertResponse converts a domain alert to its response DTO.
func ToAlertResponse(a *domain.EmergencyAlert) AlertResponse {
	resp := AlertResponse{
		AlertID:   a.AlertID,
		UserID:    a.UserID,
		Latitude:  a.Latitude,
		Longitude: a.Longitude,
		Message:   a.Message,
		Status:    string(a.Status),
		CreatedAt: a.CreatedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
	}
	if a.ResolvedAt != nil {
		resp.ResolvedAt = a.ResolvedAt.UTC().Format("2006-01-02T15:04:05Z07:00")
	}
	return resp
}

// ToAlertListResponse converts a slice of domain alerts.
func ToAlertListResponse(alerts []domain.EmergencyAlert) []AlertResponse {
	out := make([]AlertResponse, len(alerts))
	for i := range alerts {
		out[i] = ToAlertResponse(&alerts[i])
	}
	return out
}
