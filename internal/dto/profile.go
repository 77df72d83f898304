package dto

import (
	"github.com/SafeHavenApp/safehaven_backend/internal/core/domain"
)

// ProfileDetail is the profile extension part of the overview.
type ProfileDetail struct {
	DateOfBirth         string `json:"dateOfBirth,omitempty"`
	Gender              string `json:"gender,omitempty"`
	Address             string `json:"address,omitempty"`
	City                string `json:"city,omitempty"`
	State               string `json:"state,omitempty"`
	Pincode             string `json:"pincode,omitempty"`
	Occupation          string `json:"occupation,omitempty"`
	ProfilePhotoURL     string `json:"profilePhotoUrl,omitempty"`
	IdentityDocumentURL string `json:"identityDocumentUrl,omitempty"`
}

// EmergencyContactResponse is one emergency contact entry.
type EmergencyContactResponse struct {
	ContactID    string `json:"contactID"`
	Name         string `json:"name"`
	Relationship string `json:"relationship"`
	Phone        string `json:"phone"`
	IsPrimary    bool   `json:"isPrimary"`
}

// EvidenceFileResponse is one attachment of a past experience.
type EvidenceFileResponse struct {
	FileID   string `json:"fileID"`
	URL      string `json:"url"`
	FileName string `json:"fileName"`
	FileType string `json:"fileType"`
	FileSize int64  `json:"fileSize"`
}

// ExperienceResponse is one past experience captured during registration.
type ExperienceResponse struct {
	ExperienceID     string                 `json:"experienceID"`
	Category         string                 `json:"category"`
	Description      string                 `json:"description"`
	Location         string                 `json:"location,omitempty"`
	OccurredAt       string                 `json:"occurredAt,omitempty"`
	ReportedToPolice bool                   `json:"reportedToPolice"`
	SupportReceived  string                 `json:"supportReceived,omitempty"`
	EvidenceFiles    []EvidenceFileResponse `json:"evidenceFiles,omitempty"`
}

// ProfileOverviewResponse is the body of GET /api/profile. Profile is null for
// users who skipped every optional registration step.
type ProfileOverviewResponse struct {
	Profile           *ProfileDetail             `json:"profile"`
	EmergencyContacts []EmergencyContactResponse `json:"emergencyContacts"`
	Experiences       []ExperienceResponse       `json:"experiences"`
}

// ToProfileOverviewResponse converts the aggregated domain data to its
// response DTO.
func ToProfileOverviewResponse(profile *domain.UserProfile, contacts []domain.EmergencyContact, experiences []domain.HarassmentExperience) ProfileOverviewResponse {
	resp := ProfileOverviewResponse{
		EmergencyContacts: make([]EmergencyContactResponse, len(contacts)),
		Experiences:       make([]ExperienceResponse, len(experiences)),
	}

	if p := profile; p != nil {
		resp.Profile = &ProfileDetail{
			DateOfBirth:         p.DateOfBirth,
			Gender:              p.Gender,
			Address:             p.Address,
			City:                p.City,
			State:               p.State,
			Pincode:             p.Pincode,
			Occupation:          p.Occupation,
			ProfilePhotoURL:     p.ProfilePhotoURL,
			IdentityDocumentURL: p.IdentityDocumentURL,
		}
	}

	for i, c := range contacts {
		resp.EmergencyContacts[i] = EmergencyContactResponse{
			ContactID:    c.ContactID,
			Name:         c.Name,
			Relationship: c.Relationship,
			Phone:        c.Phone,
			IsPrimary:    c.IsPrimary,
		}
	}

	for i := range experiences {
		resp.Experiences[i] = toExperienceResponse(&experiences[i])
	}
	return resp
}

func toExperienceResponse(e *domain.HarassmentExperience) ExperienceResponse {
	resp := ExperienceResponse{
		ExperienceID:     e.ExperienceID,
		Category:         e.Category,
		Description:      e.Description,
		Location:         e.Location,
		OccurredAt:       e.OccurredAt,
		ReportedToPolice: e.ReportedToPolice,
		SupportReceived:  e.SupportReceived,
	}
	for _, f := range e.EvidenceFiles {
		resp.EvidenceFiles = append(resp.EvidenceFiles, EvidenceFileResponse{
			FileID:   f.FileID,
			URL:      f.URL,
			FileName: f.FileName,
			FileType: f.FileType,
			FileSize: f.FileSize,
		})
	}
	return resp
}
