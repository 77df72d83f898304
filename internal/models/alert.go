package models

import "time"

// EmergencyAlert represents a row in the emergency_alerts table.
type EmergencyAlert struct {
	AlertID    string     `db:"alert_id"`
	UserID     string     `db:"user_id"`
	Latitude   *float64   `db:"latitude"`
	Longitude  *float64   `db:"longitude"`
	Message    string     `db:"message"`
	Status     string     `db:"status"`
	CreatedAt  time.Time  `db:"created_at"`
	ResolvedAt *time.Time `db:"resolved_at"`
}
