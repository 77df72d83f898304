package services

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/SafeHavenApp/safehaven_backend/internal/apperrors"
	"github.com/SafeHavenApp/safehaven_backend/internal/core/domain"
	portsrepo "github.com/SafeHavenApp/safehaven_backend/internal/core/ports/repositories"
	"github.com/SafeHavenApp/safehaven_backend/internal/utils"
	"github.com/google/uuid"
)

const searchResultLimit = 20

type userService struct {
	userRepo portsrepo.UserRepository
}

// NewUserService creates the user service.
func NewUserService(userRepo portsrepo.UserRepository) *userService {
	return &userService{userRepo: userRepo}
}

// CreateUser validates the credentials and stores a new user with a bcrypt
// password hash. The caller decides how to react to apperrors.ErrDuplicate.
func (s *userService) CreateUser(ctx context.Context, email, password, fullName string) (*domain.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	fullName = strings.TrimSpace(fullName)

	if !utils.IsValidEmail(email) {
		return nil, apperrors.NewAppError(http.StatusBadRequest, "Invalid email format", apperrors.ErrValidation)
	}
	if !utils.IsStrongPassword(password) {
		return nil, apperrors.NewAppError(http.StatusBadRequest, "Password must be at least 8 characters and contain an uppercase letter, a lowercase letter and a digit", apperrors.ErrValidation)
	}
	if len(fullName) < 2 {
		return nil, apperrors.NewAppError(http.StatusBadRequest, "Full name must be at least 2 characters", apperrors.ErrValidation)
	}

	passwordHash, err := utils.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	user := domain.User{
		UserID:       uuid.NewString(),
		Email:        email,
		PasswordHash: passwordHash,
		FullName:     fullName,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		// ErrDuplicate passes through untouched; the registration flow
		// treats it as recoverable.
		return nil, err
	}

	return &user, nil
}

func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user by ID: %w", err)
	}
	return user, nil
}

func (s *userService) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return user, nil
}

// SearchUsers requires at least two characters of query.
func (s *userService) SearchUsers(ctx context.Context, query string) ([]domain.User, error) {
	query = strings.TrimSpace(query)
	if len(query) < 2 {
		return nil, apperrors.NewAppError(http.StatusBadRequest, "Search query must be at least 2 characters", apperrors.ErrValidation)
	}
	users, err := s.userRepo.SearchUsers(ctx, query, searchResultLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to search users: %w", err)
	}
	return users, nil
}
