package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SafeHavenApp/safehaven_backend/internal/apperrors"
	"github.com/SafeHavenApp/safehaven_backend/internal/core/domain"
	portsrepo "github.com/SafeHavenApp/safehaven_backend/internal/core/ports/repositories"
	"github.com/SafeHavenApp/safehaven_backend/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxProfileRepository struct {
	db *pgxpool.Pool
}

func newPgxProfileRepository(db *pgxpool.Pool) portsrepo.ProfileRepository {
	return &PgxProfileRepository{db: db}
}

var _ portsrepo.ProfileRepository = (*PgxProfileRepository)(nil)

func toModelProfile(d domain.UserProfile) models.UserProfile {
	return models.UserProfile{
		ProfileID:           d.ProfileID,
		UserID:              d.UserID,
		DateOfBirth:         d.DateOfBirth,
		Gender:              d.Gender,
		Address:             d.Address,
		City:                d.City,
		State:               d.State,
		Pincode:             d.Pincode,
		Occupation:          d.Occupation,
		ProfilePhotoURL:     d.ProfilePhotoURL,
		IdentityDocumentURL: d.IdentityDocumentURL,
		CreatedAt:           d.CreatedAt,
		UpdatedAt:           d.UpdatedAt,
	}
}

func toDomainProfile(m models.UserProfile) domain.UserProfile {
	return domain.UserProfile{
		ProfileID:           m.ProfileID,
		UserID:              m.UserID,
		DateOfBirth:         m.DateOfBirth,
		Gender:              m.Gender,
		Address:             m.Address,
		City:                m.City,
		State:               m.State,
		Pincode:             m.Pincode,
		Occupation:          m.Occupation,
		ProfilePhotoURL:     m.ProfilePhotoURL,
		IdentityDocumentURL: m.IdentityDocumentURL,
		CreatedAt:           m.CreatedAt,
		UpdatedAt:           m.UpdatedAt,
	}
}

// SaveProfile upserts on user_id so a duplicate registration submit updates
// the existing row instead of failing. Promoted file URLs only overwrite when
// the new value is non-empty.
func (r *PgxProfileRepository) SaveProfile(ctx context.Context, profile domain.UserProfile) error {
	m := toModelProfile(profile)
	query := `
        INSERT INTO user_profiles (profile_id, user_id, date_of_birth, gender, address, city, state, pincode, occupation, profile_photo_url, identity_document_url, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
        ON CONFLICT (user_id) DO UPDATE SET
            date_of_birth = EXCLUDED.date_of_birth,
            gender = EXCLUDED.gender,
            address = EXCLUDED.address,
            city = EXCLUDED.city,
            state = EXCLUDED.state,
            pincode = EXCLUDED.pincode,
            occupation = EXCLUDED.occupation,
            profile_photo_url = CASE WHEN EXCLUDED.profile_photo_url <> '' THEN EXCLUDED.profile_photo_url ELSE user_profiles.profile_photo_url END,
            identity_document_url = CASE WHEN EXCLUDED.identity_document_url <> '' THEN EXCLUDED.identity_document_url ELSE user_profiles.identity_document_url END,
            updated_at = EXCLUDED.updated_at;
    `
	_, err := r.db.Exec(ctx, query,
		m.ProfileID,
		m.UserID,
		m.DateOfBirth,
		m.Gender,
		m.Address,
		m.City,
		m.State,
		m.Pincode,
		m.Occupation,
		m.ProfilePhotoURL,
		m.IdentityDocumentURL,
		m.CreatedAt,
		m.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}
	return nil
}

func (r *PgxProfileRepository) FindProfileByUserID(ctx context.Context, userID string) (*domain.UserProfile, error) {
	query := `
		SELECT profile_id, user_id, date_of_birth, gender, address, city, state, pincode, occupation, profile_photo_url, identity_document_url, created_at, updated_at
		FROM user_profiles
		WHERE user_id = $1;
	`
	var m models.UserProfile
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&m.ProfileID,
		&m.UserID,
		&m.DateOfBirth,
		&m.Gender,
		&m.Address,
		&m.City,
		&m.State,
		&m.Pincode,
		&m.Occupation,
		&m.ProfilePhotoURL,
		&m.IdentityDocumentURL,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find profile for user %s: %w", userID, err)
	}

	profile := toDomainProfile(m)
	return &profile, nil
}

func (r *PgxProfileRepository) SaveEmergencyContact(ctx context.Context, contact domain.EmergencyContact) error {
	query := `
        INSERT INTO emergency_contacts (contact_id, user_id, name, relationship, phone, is_primary, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7);
    `
	_, err := r.db.Exec(ctx, query,
		contact.ContactID,
		contact.UserID,
		contact.Name,
		contact.Relationship,
		contact.Phone,
		contact.IsPrimary,
		contact.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save emergency contact: %w", err)
	}
	return nil
}

func (r *PgxProfileRepository) FindEmergencyContactsByUserID(ctx context.Context, userID string) ([]domain.EmergencyContact, error) {
	query := `
        SELECT contact_id, user_id, name, relationship, phone, is_primary, created_at
        FROM emergency_contacts
        WHERE user_id = $1
        ORDER BY is_primary DESC, created_at ASC;
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query emergency contacts: %w", err)
	}
	defer rows.Close()

	contacts := []domain.EmergencyContact{}
	for rows.Next() {
		var m models.EmergencyContact
		err := rows.Scan(
			&m.ContactID,
			&m.UserID,
			&m.Name,
			&m.Relationship,
			&m.Phone,
			&m.IsPrimary,
			&m.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan emergency contact row: %w", err)
		}
		contacts = append(contacts, domain.EmergencyContact{
			ContactID:    m.ContactID,
			UserID:       m.UserID,
			Name:         m.Name,
			Relationship: m.Relationship,
			Phone:        m.Phone,
			IsPrimary:    m.IsPrimary,
			CreatedAt:    m.CreatedAt,
		})
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating emergency contact rows: %w", rows.Err())
	}

	return contacts, nil
}
