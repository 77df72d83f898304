package services

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/SafeHavenApp/safehaven_backend/internal/apperrors"
	"github.com/SafeHavenApp/safehaven_backend/internal/core/domain"
	portsrepo "github.com/SafeHavenApp/safehaven_backend/internal/core/ports/repositories"
	portssvc "github.com/SafeHavenApp/safehaven_backend/internal/core/ports/services"
	"github.com/SafeHavenApp/safehaven_backend/internal/dto"
	"github.com/SafeHavenApp/safehaven_backend/internal/middleware"
	"github.com/google/uuid"
)

// registrationService orchestrates the multi-step registration flow: a
// mandatory credential step followed by best-effort persistence of the
// optional profile, health and experience steps.
type registrationService struct {
	userService    portssvc.UserSvcFacade
	authService    portssvc.AuthSvcFacade
	uploadService  portssvc.UploadSvcFacade
	profileRepo    portsrepo.ProfileRepository
	healthRepo     portsrepo.HealthRepository
	experienceRepo portsrepo.ExperienceRepository
}

// NewRegistrationService creates the registration orchestrator.
func NewRegistrationService(
	userService portssvc.UserSvcFacade,
	authService portssvc.AuthSvcFacade,
	uploadService portssvc.UploadSvcFacade,
	profileRepo portsrepo.ProfileRepository,
	healthRepo portsrepo.HealthRepository,
	experienceRepo portsrepo.ExperienceRepository,
) *registrationService {
	return &registrationService{
		userService:    userService,
		authService:    authService,
		uploadService:  uploadService,
		profileRepo:    profileRepo,
		healthRepo:     healthRepo,
		experienceRepo: experienceRepo,
	}
}

// Register implements the orchestration described in the API docs. Steps 2-5
// are each written independently: a failed optional write is logged and the
// remaining writes are still attempted. There is no transaction across the
// inserts; a partial failure leaves a partially populated profile behind.
func (s *registrationService) Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, string, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	step1 := req.Step1
	if step1 == nil {
		return nil, "", apperrors.NewAppError(http.StatusBadRequest, "Step 1 (account details) is required", apperrors.ErrValidation)
	}
	if step1.Password != step1.ConfirmPassword {
		return nil, "", apperrors.NewAppError(http.StatusBadRequest, "Passwords do not match", apperrors.ErrValidation)
	}

	user, err := s.userService.CreateUser(ctx, step1.Email, step1.Password, step1.FullName)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			// Tolerate client-side double submits: fall back to the existing
			// row instead of hard-failing the whole request.
			existing, lookupErr := s.userService.GetUserByEmail(ctx, step1.Email)
			if lookupErr != nil {
				return nil, "", lookupErr
			}
			logger.Info("Duplicate registration tolerated, using existing user", slog.String("user_id", existing.UserID))
			user = existing
		} else {
			return nil, "", err
		}
	}

	// Promote staged step-1 files into the user's permanent namespace.
	var profilePhotoURL, identityDocumentURL string
	if len(step1.TempFiles) > 0 {
		for _, promoted := range s.uploadService.PromoteToUser(ctx, step1.TempFiles, user.UserID) {
			switch promoted.Purpose {
			case "profile":
				profilePhotoURL = promoted.URL
			case "identity":
				identityDocumentURL = promoted.URL
			}
		}
	}

	s.saveStepTwo(ctx, user.UserID, req.Step2, profilePhotoURL, identityDocumentURL)
	s.saveStepThree(ctx, user.UserID, req.Step3)
	s.saveStepFour(ctx, user.UserID, req.Step4)
	s.saveStepFive(ctx, user.UserID, req.Step5)

	token, err := s.authService.IssueSession(ctx, user)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}

// saveStepTwo persists the profile and emergency contacts. The profile row is
// also written when only promoted file URLs exist, since they live on it.
func (s *registrationService) saveStepTwo(ctx context.Context, userID string, step *dto.RegisterStepTwo, profilePhotoURL, identityDocumentURL string) {
	logger := middleware.GetLoggerFromCtx(ctx)

	var payload *dto.ProfilePayload
	if step != nil {
		payload = step.Profile
	}

	if payload.HasData() || profilePhotoURL != "" || identityDocumentURL != "" {
		now := time.Now()
		profile := domain.UserProfile{
			ProfileID:           uuid.NewString(),
			UserID:              userID,
			ProfilePhotoURL:     profilePhotoURL,
			IdentityDocumentURL: identityDocumentURL,
			CreatedAt:           now,
			UpdatedAt:           now,
		}
		if payload != nil {
			profile.DateOfBirth = payload.DateOfBirth
			profile.Gender = payload.Gender
			profile.Address = payload.Address
			profile.City = payload.City
			profile.State = payload.State
			profile.Pincode = payload.Pincode
			profile.Occupation = payload.Occupation
		}
		if err := s.profileRepo.SaveProfile(ctx, profile); err != nil {
			logger.Error("Failed to save profile during registration", slog.String("user_id", userID), slog.String("error", err.Error()))
		}
	}

	if step == nil {
		return
	}
	for _, contact := range step.EmergencyContacts {
		if !contact.IsComplete() {
			continue
		}
		err := s.profileRepo.SaveEmergencyContact(ctx, domain.EmergencyContact{
			ContactID:    uuid.NewString(),
			UserID:       userID,
			Name:         contact.Name,
			Relationship: contact.Relationship,
			Phone:        contact.Phone,
			IsPrimary:    contact.IsPrimary,
			CreatedAt:    time.Now(),
		})
		if err != nil {
			logger.Error("Failed to save emergency contact during registration", slog.String("user_id", userID), slog.String("error", err.Error()))
		}
	}
}

func (s *registrationService) saveStepThree(ctx context.Context, userID string, step *dto.RegisterStepThree) {
	if step == nil {
		return
	}
	logger := middleware.GetLoggerFromCtx(ctx)

	if step.PhysicalHealth.HasData() {
		now := time.Now()
		err := s.healthRepo.SavePhysicalHealth(ctx, domain.PhysicalHealth{
			RecordID:          uuid.NewString(),
			UserID:            userID,
			BloodGroup:        step.PhysicalHealth.BloodGroup,
			HeightCM:          step.PhysicalHealth.HeightCM,
			WeightKG:          step.PhysicalHealth.WeightKG,
			Allergies:         step.PhysicalHealth.Allergies,
			ChronicConditions: step.PhysicalHealth.ChronicConditions,
			Disabilities:      step.PhysicalHealth.Disabilities,
			CreatedAt:         now,
			UpdatedAt:         now,
		})
		if err != nil {
			logger.Error("Failed to save physical health during registration", slog.String("user_id", userID), slog.String("error", err.Error()))
		}
	}

	s.saveMedications(ctx, userID, step.Medications, domain.MedicationGeneral)
}

func (s *registrationService) saveStepFour(ctx context.Context, userID string, step *dto.RegisterStepFour) {
	if step == nil {
		return
	}
	logger := middleware.GetLoggerFromCtx(ctx)

	if step.MentalHealth.HasData() {
		now := time.Now()
		err := s.healthRepo.SaveMentalHealth(ctx, domain.MentalHealth{
			RecordID:         uuid.NewString(),
			UserID:           userID,
			Conditions:       step.MentalHealth.Conditions,
			TherapyHistory:   step.MentalHealth.TherapyHistory,
			CurrentTreatment: step.MentalHealth.CurrentTreatment,
			Notes:            step.MentalHealth.Notes,
			CreatedAt:        now,
			UpdatedAt:        now,
		})
		if err != nil {
			logger.Error("Failed to save mental health during registration", slog.String("user_id", userID), slog.String("error", err.Error()))
		}
	}

	s.saveMedications(ctx, userID, step.Medications, domain.MedicationPsychiatric)
}

func (s *registrationService) saveMedications(ctx context.Context, userID string, medications []dto.MedicationPayload, kind domain.MedicationKind) {
	logger := middleware.GetLoggerFromCtx(ctx)
	for _, med := range medications {
		if med.Name == "" {
			continue
		}
		err := s.healthRepo.SaveMedication(ctx, domain.Medication{
			MedicationID: uuid.NewString(),
			UserID:       userID,
			Name:         med.Name,
			Dosage:       med.Dosage,
			Frequency:    med.Frequency,
			Kind:         kind,
			CreatedAt:    time.Now(),
		})
		if err != nil {
			logger.Error("Failed to save medication during registration", slog.String("user_id", userID), slog.String("error", err.Error()))
		}
	}
}

func (s *registrationService) saveStepFive(ctx context.Context, userID string, step *dto.RegisterStepFive) {
	if step == nil {
		return
	}
	logger := middleware.GetLoggerFromCtx(ctx)

	for _, exp := range step.Experiences {
		if !exp.IsComplete() {
			continue
		}
		experienceID := uuid.NewString()
		experience := domain.HarassmentExperience{
			ExperienceID:     experienceID,
			UserID:           userID,
			Category:         exp.Category,
			Description:      exp.Description,
			Location:         exp.Location,
			OccurredAt:       exp.OccurredAt,
			ReportedToPolice: exp.ReportedToPolice,
			SupportReceived:  exp.SupportReceived,
			CreatedAt:        time.Now(),
		}
		for _, f := range exp.EvidenceFiles {
			if f.URL == "" {
				continue
			}
			experience.EvidenceFiles = append(experience.EvidenceFiles, domain.EvidenceFile{
				FileID:       uuid.NewString(),
				ExperienceID: experienceID,
				URL:          f.URL,
				FileName:     f.FileName,
				FileType:     f.FileType,
				FileSize:     f.FileSize,
				CreatedAt:    time.Now(),
			})
		}
		if err := s.experienceRepo.SaveExperience(ctx, experience); err != nil {
			logger.Error("Failed to save harassment experience during registration", slog.String("user_id", userID), slog.String("error", err.Error()))
		}
	}
}
