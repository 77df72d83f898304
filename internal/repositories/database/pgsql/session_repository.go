package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SafeHavenApp/safehaven_backend/internal/apperrors"
	"github.com/SafeHavenApp/safehaven_backend/internal/core/domain"
	portsrepo "github.com/SafeHavenApp/safehaven_backend/internal/core/ports/repositories"
	"github.com/SafeHavenApp/safehaven_backend/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxSessionRepository struct {
	db *pgxpool.Pool
}

func newPgxSessionRepository(db *pgxpool.Pool) portsrepo.SessionRepository {
	return &PgxSessionRepository{db: db}
}

var _ portsrepo.SessionRepository = (*PgxSessionRepository)(nil)

func (r *PgxSessionRepository) SaveSession(ctx context.Context, session domain.UserSession) error {
	query := `
        INSERT INTO user_sessions (session_id, user_id, token_hash, expires_at, is_active, created_at)
        VALUES ($1, $2, $3, $4, $5, $6);
    `
	_, err := r.db.Exec(ctx, query,
		session.SessionID,
		session.UserID,
		session.TokenHash,
		session.ExpiresAt,
		session.IsActive,
		session.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

func (r *PgxSessionRepository) FindActiveSessionByTokenHash(ctx context.Context, tokenHash string, now time.Time) (*domain.UserSession, error) {
	query := `
        SELECT session_id, user_id, token_hash, expires_at, is_active, created_at
        FROM user_sessions
        WHERE token_hash = $1 AND is_active = TRUE AND expires_at > $2;
    `
	var m models.UserSession
	err := r.db.QueryRow(ctx, query, tokenHash, now).Scan(
		&m.SessionID,
		&m.UserID,
		&m.TokenHash,
		&m.ExpiresAt,
		&m.IsActive,
		&m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find session: %w", err)
	}

	return &domain.UserSession{
		SessionID: m.SessionID,
		UserID:    m.UserID,
		TokenHash: m.TokenHash,
		ExpiresAt: m.ExpiresAt,
		IsActive:  m.IsActive,
		CreatedAt: m.CreatedAt,
	}, nil
}

// DeactivateSessionByTokenHash is idempotent; zero affected rows is fine.
func (r *PgxSessionRepository) DeactivateSessionByTokenHash(ctx context.Context, tokenHash string) error {
	query := `
        UPDATE user_sessions
        SET is_active = FALSE
        WHERE token_hash = $1 AND is_active = TRUE;
    `
	if _, err := r.db.Exec(ctx, query, tokenHash); err != nil {
		return fmt.Errorf("failed to deactivate session: %w", err)
	}
	return nil
}
