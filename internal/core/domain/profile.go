package domain

import "time"

// UserProfile is the optional 1:1 demographic extension of a user.
// It is created lazily, only when at least one field is populated.
type UserProfile struct {
	ProfileID           string    `json:"profileID"`
	UserID              string    `json:"userID"`
	DateOfBirth         string    `json:"dateOfBirth,omitempty"`
	Gender              string    `json:"gender,omitempty"`
	Address             string    `json:"address,omitempty"`
	City                string    `json:"city,omitempty"`
	State               string    `json:"state,omitempty"`
	Pincode             string    `json:"pincode,omitempty"`
	Occupation          string    `json:"occupation,omitempty"`
	ProfilePhotoURL     string    `json:"profilePhotoUrl,omitempty"`
	IdentityDocumentURL string    `json:"identityDocumentUrl,omitempty"`
	CreatedAt           time.Time `json:"createdAt"`
	UpdatedAt           time.Time `json:"updatedAt"`
}

// EmergencyContact is a person to notify during an emergency alert.
// Name, relationship and phone must all be non-empty for the row to exist.
type EmergencyContact struct {
	ContactID    string    `json:"contactID"`
	UserID       string    `json:"userID"`
	Name         string    `json:"name"`
	Relationship string    `json:"relationship"`
	Phone        string    `json:"phone"`
	IsPrimary    bool      `json:"isPrimary"`
	CreatedAt    time.Time `json:"createdAt"`
}
