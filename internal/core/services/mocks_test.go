package services_test

import (
	"context"
	"io"
	"time"

	"github.com/SafeHavenApp/safehaven_backend/internal/core/domain"
	portsrepo "github.com/SafeHavenApp/safehaven_backend/internal/core/ports/repositories"
	"github.com/SafeHavenApp/safehaven_backend/internal/storage"
	"github.com/stretchr/testify/mock"
)

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
}

var _ portsrepo.UserRepository = (*MockUserRepository)(nil)

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) UpdateLastLogin(ctx context.Context, userID string, loginAt time.Time) error {
	args := m.Called(ctx, userID, loginAt)
	return args.Error(0)
}

func (m *MockUserRepository) SearchUsers(ctx context.Context, query string, limit int) ([]domain.User, error) {
	args := m.Called(ctx, query, limit)
	var users []domain.User
	if args.Get(0) != nil {
		users = args.Get(0).([]domain.User)
	}
	return users, args.Error(1)
}

// --- Mock SessionRepository ---
type MockSessionRepository struct {
	mock.Mock
}

var _ portsrepo.SessionRepository = (*MockSessionRepository)(nil)

func (m *MockSessionRepository) SaveSession(ctx context.Context, session domain.UserSession) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockSessionRepository) FindActiveSessionByTokenHash(ctx context.Context, tokenHash string, now time.Time) (*domain.UserSession, error) {
	args := m.Called(ctx, tokenHash, now)
	var session *domain.UserSession
	if args.Get(0) != nil {
		session = args.Get(0).(*domain.UserSession)
	}
	return session, args.Error(1)
}

func (m *MockSessionRepository) DeactivateSessionByTokenHash(ctx context.Context, tokenHash string) error {
	args := m.Called(ctx, tokenHash)
	return args.Error(0)
}

// --- Mock ProfileRepository ---
type MockProfileRepository struct {
	mock.Mock
}

var _ portsrepo.ProfileRepository = (*MockProfileRepository)(nil)

func (m *MockProfileRepository) SaveProfile(ctx context.Context, profile domain.UserProfile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *MockProfileRepository) FindProfileByUserID(ctx context.Context, userID string) (*domain.UserProfile, error) {
	args := m.Called(ctx, userID)
	var profile *domain.UserProfile
	if args.Get(0) != nil {
		profile = args.Get(0).(*domain.UserProfile)
	}
	return profile, args.Error(1)
}

func (m *MockProfileRepository) SaveEmergencyContact(ctx context.Context, contact domain.EmergencyContact) error {
	args := m.Called(ctx, contact)
	return args.Error(0)
}

func (m *MockProfileRepository) FindEmergencyContactsByUserID(ctx context.Context, userID string) ([]domain.EmergencyContact, error) {
	args := m.Called(ctx, userID)
	var contacts []domain.EmergencyContact
	if args.Get(0) != nil {
		contacts = args.Get(0).([]domain.EmergencyContact)
	}
	return contacts, args.Error(1)
}

// --- Mock HealthRepository ---
type MockHealthRepository struct {
	mock.Mock
}

var _ portsrepo.HealthRepository = (*MockHealthRepository)(nil)

func (m *MockHealthRepository) SavePhysicalHealth(ctx context.Context, record domain.PhysicalHealth) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockHealthRepository) SaveMentalHealth(ctx context.Context, record domain.MentalHealth) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockHealthRepository) SaveMedication(ctx context.Context, medication domain.Medication) error {
	args := m.Called(ctx, medication)
	return args.Error(0)
}

// --- Mock ExperienceRepository ---
type MockExperienceRepository struct {
	mock.Mock
}

var _ portsrepo.ExperienceRepository = (*MockExperienceRepository)(nil)

func (m *MockExperienceRepository) SaveExperience(ctx context.Context, experience domain.HarassmentExperience) error {
	args := m.Called(ctx, experience)
	return args.Error(0)
}

func (m *MockExperienceRepository) FindExperiencesByUserID(ctx context.Context, userID string) ([]domain.HarassmentExperience, error) {
	args := m.Called(ctx, userID)
	var experiences []domain.HarassmentExperience
	if args.Get(0) != nil {
		experiences = args.Get(0).([]domain.HarassmentExperience)
	}
	return experiences, args.Error(1)
}

// --- Mock ReportRepository ---
type MockReportRepository struct {
	mock.Mock
}

var _ portsrepo.ReportRepository = (*MockReportRepository)(nil)

func (m *MockReportRepository) SaveReport(ctx context.Context, report domain.HarassmentReport) error {
	args := m.Called(ctx, report)
	return args.Error(0)
}

func (m *MockReportRepository) FindReportByID(ctx context.Context, reportID string) (*domain.HarassmentReport, error) {
	args := m.Called(ctx, reportID)
	var report *domain.HarassmentReport
	if args.Get(0) != nil {
		report = args.Get(0).(*domain.HarassmentReport)
	}
	return report, args.Error(1)
}

func (m *MockReportRepository) FindAllReports(ctx context.Context, limit, offset int) ([]domain.HarassmentReport, error) {
	args := m.Called(ctx, limit, offset)
	var reports []domain.HarassmentReport
	if args.Get(0) != nil {
		reports = args.Get(0).([]domain.HarassmentReport)
	}
	return reports, args.Error(1)
}

func (m *MockReportRepository) FindVisibleReports(ctx context.Context, userID string, limit, offset int) ([]domain.HarassmentReport, error) {
	args := m.Called(ctx, userID, limit, offset)
	var reports []domain.HarassmentReport
	if args.Get(0) != nil {
		reports = args.Get(0).([]domain.HarassmentReport)
	}
	return reports, args.Error(1)
}

func (m *MockReportRepository) UpdateReportStatus(ctx context.Context, reportID string, status domain.ReportStatus) (*domain.HarassmentReport, error) {
	args := m.Called(ctx, reportID, status)
	var report *domain.HarassmentReport
	if args.Get(0) != nil {
		report = args.Get(0).(*domain.HarassmentReport)
	}
	return report, args.Error(1)
}

// --- Mock AlertRepository ---
type MockAlertRepository struct {
	mock.Mock
}

var _ portsrepo.AlertRepository = (*MockAlertRepository)(nil)

func (m *MockAlertRepository) SaveAlert(ctx context.Context, alert domain.EmergencyAlert) error {
	args := m.Called(ctx, alert)
	return args.Error(0)
}

func (m *MockAlertRepository) FindAlertsByUserID(ctx context.Context, userID string) ([]domain.EmergencyAlert, error) {
	args := m.Called(ctx, userID)
	var alerts []domain.EmergencyAlert
	if args.Get(0) != nil {
		alerts = args.Get(0).([]domain.EmergencyAlert)
	}
	return alerts, args.Error(1)
}

func (m *MockAlertRepository) ResolveAlert(ctx context.Context, alertID, userID string, resolvedAt time.Time) (*domain.EmergencyAlert, error) {
	args := m.Called(ctx, alertID, userID, resolvedAt)
	var alert *domain.EmergencyAlert
	if args.Get(0) != nil {
		alert = args.Get(0).(*domain.EmergencyAlert)
	}
	return alert, args.Error(1)
}

// --- Mock FileStore ---
type MockFileStore struct {
	mock.Mock
}

var _ storage.FileStore = (*MockFileStore)(nil)

func (m *MockFileStore) SaveTemp(ctx context.Context, tempID, fileName string, r io.Reader) (string, error) {
	args := m.Called(ctx, tempID, fileName, r)
	return args.String(0), args.Error(1)
}

func (m *MockFileStore) FindTempFileName(ctx context.Context, tempID string) (string, error) {
	args := m.Called(ctx, tempID)
	return args.String(0), args.Error(1)
}

func (m *MockFileStore) Promote(ctx context.Context, tempID, fileName, userID, destName string) (string, error) {
	args := m.Called(ctx, tempID, fileName, userID, destName)
	return args.String(0), args.Error(1)
}

func (m *MockFileStore) SaveUserFile(ctx context.Context, userID, destName string, r io.Reader) (string, error) {
	args := m.Called(ctx, userID, destName, r)
	return args.String(0), args.Error(1)
}
