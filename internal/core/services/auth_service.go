package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SafeHavenApp/safehaven_backend/internal/apperrors"
	"github.com/SafeHavenApp/safehaven_backend/internal/core/domain"
	portsrepo "github.com/SafeHavenApp/safehaven_backend/internal/core/ports/repositories"
	"github.com/SafeHavenApp/safehaven_backend/internal/middleware"
	"github.com/SafeHavenApp/safehaven_backend/internal/platform/config"
	"github.com/SafeHavenApp/safehaven_backend/internal/utils"
	"github.com/google/uuid"
)

// authService implements credential verification and hashed-token sessions.
type authService struct {
	cfg         *config.Config
	userRepo    portsrepo.UserRepository
	sessionRepo portsrepo.SessionRepository
}

// NewAuthService creates the auth service.
func NewAuthService(cfg *config.Config, userRepo portsrepo.UserRepository, sessionRepo portsrepo.SessionRepository) *authService {
	return &authService{
		cfg:         cfg,
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
	}
}

// Login verifies credentials and issues a session. Every credential failure
// resolves to apperrors.ErrUnauthorized so the handler can answer with the
// same generic "invalid email or password" regardless of which check failed.
func (s *authService) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, "", apperrors.ErrUnauthorized
		}
		return nil, "", fmt.Errorf("failed to look up user for login: %w", err)
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, "", apperrors.ErrUnauthorized
	}

	now := time.Now()
	if err := s.userRepo.UpdateLastLogin(ctx, user.UserID, now); err != nil {
		// Not worth failing the login over.
		middleware.GetLoggerFromCtx(ctx).Warn("Failed to update last login", slog.String("user_id", user.UserID), slog.String("error", err.Error()))
	} else {
		user.LastLoginAt = &now
	}

	token, err := s.IssueSession(ctx, user)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}

// IssueSession signs a token for the user and persists a session row keyed by
// the token's SHA256 hash.
func (s *authService) IssueSession(ctx context.Context, user *domain.User) (string, error) {
	token, err := utils.GenerateSessionToken(user.UserID, user.Email, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}

	session := domain.UserSession{
		SessionID: uuid.NewString(),
		UserID:    user.UserID,
		TokenHash: utils.HashSessionToken(token),
		ExpiresAt: time.Now().Add(s.cfg.JWTExpiryDuration),
		IsActive:  true,
		CreatedAt: time.Now(),
	}
	if err := s.sessionRepo.SaveSession(ctx, session); err != nil {
		return "", fmt.Errorf("failed to save session: %w", err)
	}

	return token, nil
}

// CurrentUser resolves a token to its live user row. Signature problems,
// expired tokens, missing or revoked sessions and deleted users all resolve
// to apperrors.ErrUnauthorized: "unauthenticated" is a state, not a fault.
func (s *authService) CurrentUser(ctx context.Context, token string) (*domain.User, error) {
	if token == "" {
		return nil, apperrors.ErrUnauthorized
	}

	claims, err := utils.ParseSessionToken(token, s.cfg.JWTSecret)
	if err != nil {
		return nil, apperrors.ErrUnauthorized
	}

	session, err := s.sessionRepo.FindActiveSessionByTokenHash(ctx, utils.HashSessionToken(token), time.Now())
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		return nil, fmt.Errorf("failed to look up session: %w", err)
	}

	// Re-fetch the live user row so revocation and edits propagate.
	user, err := s.userRepo.FindUserByID(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		return nil, fmt.Errorf("failed to fetch session user: %w", err)
	}

	if claims.Subject != user.UserID {
		return nil, apperrors.ErrUnauthorized
	}

	return user, nil
}

// Logout deactivates the session matching the token. Logging out with no
// token is a no-op, as is logging out an already-invalidated session.
func (s *authService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	if err := s.sessionRepo.DeactivateSessionByTokenHash(ctx, utils.HashSessionToken(token)); err != nil {
		return fmt.Errorf("failed to deactivate session: %w", err)
	}
	return nil
}
