package pgsql

import (
	"context"
	"fmt"

	"github.com/SafeHavenApp/safehaven_backend/internal/core/domain"
	portsrepo "github.com/SafeHavenApp/safehaven_backend/internal/core/ports/repositories"
	"github.com/SafeHavenApp/safehaven_backend/internal/models"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxExperienceRepository struct {
	BaseRepository
}

func newPgxExperienceRepository(db *pgxpool.Pool) portsrepo.ExperienceRepository {
	return &PgxExperienceRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.ExperienceRepository = (*PgxExperienceRepository)(nil)

// SaveExperience writes the experience and its evidence files in one
// transaction so an experience never appears with half its evidence.
func (r *PgxExperienceRepository) SaveExperience(ctx context.Context, experience domain.HarassmentExperience) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = r.Rollback(ctx, tx)
	}()

	expQuery := `
        INSERT INTO harassment_experiences (experience_id, user_id, category, description, location, occurred_at, reported_to_police, support_received, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
    `
	_, err = tx.Exec(ctx, expQuery,
		experience.ExperienceID,
		experience.UserID,
		experience.Category,
		experience.Description,
		experience.Location,
		experience.OccurredAt,
		experience.ReportedToPolice,
		experience.SupportReceived,
		experience.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save experience: %w", err)
	}

	fileQuery := `
        INSERT INTO evidence_files (file_id, experience_id, url, file_name, file_type, file_size, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7);
    `
	for _, f := range experience.EvidenceFiles {
		_, err = tx.Exec(ctx, fileQuery,
			f.FileID,
			f.ExperienceID,
			f.URL,
			f.FileName,
			f.FileType,
			f.FileSize,
			f.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to save evidence file: %w", err)
		}
	}

	return r.Commit(ctx, tx)
}

func (r *PgxExperienceRepository) FindExperiencesByUserID(ctx context.Context, userID string) ([]domain.HarassmentExperience, error) {
	expQuery := `
        SELECT experience_id, user_id, category, description, location, occurred_at, reported_to_police, support_received, created_at
        FROM harassment_experiences
        WHERE user_id = $1
        ORDER BY created_at DESC;
    `
	rows, err := r.Pool.Query(ctx, expQuery, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query experiences: %w", err)
	}
	defer rows.Close()

	experiences := []domain.HarassmentExperience{}
	for rows.Next() {
		var m models.HarassmentExperience
		err := rows.Scan(
			&m.ExperienceID,
			&m.UserID,
			&m.Category,
			&m.Description,
			&m.Location,
			&m.OccurredAt,
			&m.ReportedToPolice,
			&m.SupportReceived,
			&m.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan experience row: %w", err)
		}
		experiences = append(experiences, domain.HarassmentExperience{
			ExperienceID:     m.ExperienceID,
			UserID:           m.UserID,
			Category:         m.Category,
			Description:      m.Description,
			Location:         m.Location,
			OccurredAt:       m.OccurredAt,
			ReportedToPolice: m.ReportedToPolice,
			SupportReceived:  m.SupportReceived,
			CreatedAt:        m.CreatedAt,
		})
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating experience rows: %w", rows.Err())
	}

	if len(experiences) == 0 {
		return experiences, nil
	}

	byID := make(map[string]*domain.HarassmentExperience, len(experiences))
	for i := range experiences {
		byID[experiences[i].ExperienceID] = &experiences[i]
	}

	fileQuery := `
        SELECT f.file_id, f.experience_id, f.url, f.file_name, f.file_type, f.file_size, f.created_at
        FROM evidence_files f
        JOIN harassment_experiences e ON e.experience_id = f.experience_id
        WHERE e.user_id = $1
        ORDER BY f.created_at ASC;
    `
	fileRows, err := r.Pool.Query(ctx, fileQuery, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query evidence files: %w", err)
	}
	defer fileRows.Close()

	for fileRows.Next() {
		var m models.EvidenceFile
		err := fileRows.Scan(
			&m.FileID,
			&m.ExperienceID,
			&m.URL,
			&m.FileName,
			&m.FileType,
			&m.FileSize,
			&m.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan evidence file row: %w", err)
		}
		if exp, ok := byID[m.ExperienceID]; ok {
			exp.EvidenceFiles = append(exp.EvidenceFiles, domain.EvidenceFile{
				FileID:       m.FileID,
				ExperienceID: m.ExperienceID,
				URL:          m.URL,
				FileName:     m.FileName,
				FileType:     m.FileType,
				FileSize:     m.FileSize,
				CreatedAt:    m.CreatedAt,
			})
		}
	}
	if fileRows.Err() != nil {
		return nil, fmt.Errorf("error iterating evidence file rows: %w", fileRows.Err())
	}

	return experiences, nil
}
