package models

import "time"

// UserProfile represents a row in the user_profiles table.
type UserProfile struct {
	ProfileID           string    `db:"profile_id"`
	UserID              string    `db:"user_id"`
	DateOfBirth         string    `db:"date_of_birth"`
	Gender              string    `db:"gender"`
	Address             string    `db:"address"`
	City                string    `db:"city"`
	State               string    `db:"state"`
	Pincode             string    `db:"pincode"`
	Occupation          string    `db:"occupation"`
	ProfilePhotoURL     string    `db:"profile_photo_url"`
	IdentityDocumentURL string    `db:"identity_document_url"`
	CreatedAt           time.Time `db:"created_at"`
	UpdatedAt           time.Time `db:"updated_at"`
}

// EmergencyContact represents a row in the emergency_contacts table.
type EmergencyContact struct {
	ContactID    string    `db:"contact_id"`
	UserID       string    `db:"user_id"`
	Name         string    `db:"name"`
	Relationship string    `db:"relationship"`
	Phone        string    `db:"phone"`
	IsPrimary    bool      `db:"is_primary"`
	CreatedAt    time.Time `db:"created_at"`
}
