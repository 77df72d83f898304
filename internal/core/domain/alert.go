package domain

import "time"

// AlertStatus is the lifecycle state of an emergency alert.
type AlertStatus string

const (
	AlertStatusActive   AlertStatus = "active"
	AlertStatusResolved AlertStatus = "resolved"
)

// EmergencyAlert is a triggered personal-emergency event with the user's
// last known position.
type EmergencyAlert struct {
	AlertID    string      `json:"alertID"`
	UserID     string      `json:"userID"`
	Latitude   *float64    `json:"latitude,omitempty"`
	Longitude  *float64    `json:"longitude,omitempty"`
	Message    string      `json:"message,omitempty"`
	Status     AlertStatus `json:"status"`
	CreatedAt  time.Time   `json:"createdAt"`
	ResolvedAt *time.Time  `json:"resolvedAt,omitempty"`
}
