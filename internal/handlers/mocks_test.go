package handlers_test

import (
	"context"
	"encoding/json"
	"time"

	"github.com/SafeHavenApp/safehaven_backend/internal/core/domain"
	portssvc "github.com/SafeHavenApp/safehaven_backend/internal/core/ports/services"
	"github.com/SafeHavenApp/safehaven_backend/internal/dto"
	"github.com/SafeHavenApp/safehaven_backend/internal/handlers"
	"github.com/SafeHavenApp/safehaven_backend/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
)

// envelope mirrors dto.APIResponse with a raw data payload so each test can
// unmarshal data into its own concrete type.
type envelope struct {
	Success bool            `json:"success"`
	Error   string          `json:"error"`
	Data    json.RawMessage `json:"data"`
}

// --- Mock UserService ---
type MockUserService struct {
	mock.Mock
}

var _ portssvc.UserSvcFacade = (*MockUserService)(nil)

func (m *MockUserService) CreateUser(ctx context.Context, email, password, fullName string) (*domain.User, error) {
	args := m.Called(ctx, email, password, fullName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) SearchUsers(ctx context.Context, query string) ([]domain.User, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

// --- Mock AuthService ---
type MockAuthService struct {
	mock.Mock
}

var _ portssvc.AuthSvcFacade = (*MockAuthService)(nil)

func (m *MockAuthService) CurrentUser(ctx context.Context, token string) (*domain.User, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).(*domain.User), args.String(1), args.Error(2)
}

func (m *MockAuthService) IssueSession(ctx context.Context, user *domain.User) (string, error) {
	args := m.Called(ctx, user)
	return args.String(0), args.Error(1)
}

func (m *MockAuthService) Logout(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

// --- Mock RegistrationService ---
type MockRegistrationService struct {
	mock.Mock
}

var _ portssvc.RegistrationSvcFacade = (*MockRegistrationService)(nil)

func (m *MockRegistrationService) Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, string, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).(*domain.User), args.String(1), args.Error(2)
}

// --- Mock ProfileService ---
type MockProfileService struct {
	mock.Mock
}

var _ portssvc.ProfileSvcFacade = (*MockProfileService)(nil)

func (m *MockProfileService) GetProfile(ctx context.Context, userID string) (*portssvc.ProfileOverview, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*portssvc.ProfileOverview), args.Error(1)
}

// --- Mock ReportService ---
type MockReportService struct {
	mock.Mock
}

var _ portssvc.ReportSvcFacade = (*MockReportService)(nil)

func (m *MockReportService) CreateReport(ctx context.Context, userID string, req dto.CreateReportRequest) (*domain.HarassmentReport, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.HarassmentReport), args.Error(1)
}

func (m *MockReportService) ListReports(ctx context.Context, userID string, isAdmin bool, limit, offset int) ([]domain.HarassmentReport, error) {
	args := m.Called(ctx, userID, isAdmin, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.HarassmentReport), args.Error(1)
}

func (m *MockReportService) GetReport(ctx context.Context, reportID, userID string, isAdmin bool) (*domain.HarassmentReport, error) {
	args := m.Called(ctx, reportID, userID, isAdmin)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.HarassmentReport), args.Error(1)
}

func (m *MockReportService) UpdateStatus(ctx context.Context, reportID, status, userID string, isAdmin bool) (*domain.HarassmentReport, error) {
	args := m.Called(ctx, reportID, status, userID, isAdmin)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.HarassmentReport), args.Error(1)
}

// --- Mock UploadService ---
type MockUploadService struct {
	mock.Mock
}

var _ portssvc.UploadSvcFacade = (*MockUploadService)(nil)

func (m *MockUploadService) StageUpload(ctx context.Context, upload portssvc.Upload, purpose string) (*dto.TempUploadResponse, error) {
	args := m.Called(ctx, upload, purpose)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.TempUploadResponse), args.Error(1)
}

func (m *MockUploadService) PromoteToUser(ctx context.Context, refs []dto.TempFileRef, userID string) []portssvc.PromotedFile {
	args := m.Called(ctx, refs, userID)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]portssvc.PromotedFile)
}

func (m *MockUploadService) UploadForUser(ctx context.Context, upload portssvc.Upload, purpose, userID string) (*dto.UploadResponse, error) {
	args := m.Called(ctx, upload, purpose, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.UploadResponse), args.Error(1)
}

// --- Mock AlertService ---
type MockAlertService struct {
	mock.Mock
}

var _ portssvc.AlertSvcFacade = (*MockAlertService)(nil)

func (m *MockAlertService) TriggerAlert(ctx context.Context, userID string, req dto.CreateAlertRequest) (*domain.EmergencyAlert, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EmergencyAlert), args.Error(1)
}

func (m *MockAlertService) ListAlerts(ctx context.Context, userID string) ([]domain.EmergencyAlert, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.EmergencyAlert), args.Error(1)
}

func (m *MockAlertService) ResolveAlert(ctx context.Context, alertID, userID string) (*domain.EmergencyAlert, error) {
	args := m.Called(ctx, alertID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EmergencyAlert), args.Error(1)
}

// --- Shared fixture ---

// mockServices bundles one mock per facade for wiring a full router.
type mockServices struct {
	User         *MockUserService
	Auth         *MockAuthService
	Registration *MockRegistrationService
	Profile      *MockProfileService
	Report       *MockReportService
	Upload       *MockUploadService
	Alert        *MockAlertService
}

func newMockServices() *mockServices {
	return &mockServices{
		User:         new(MockUserService),
		Auth:         new(MockAuthService),
		Registration: new(MockRegistrationService),
		Profile:      new(MockProfileService),
		Report:       new(MockReportService),
		Upload:       new(MockUploadService),
		Alert:        new(MockAlertService),
	}
}

func (m *mockServices) container() *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		User:         m.User,
		Auth:         m.Auth,
		Registration: m.Registration,
		Profile:      m.Profile,
		Report:       m.Report,
		Upload:       m.Upload,
		Alert:        m.Alert,
	}
}

// newTestRouter wires the full route table over the mock services.
// IsProduction skips the swagger routes, which tests never exercise.
func newTestRouter(mocks *mockServices) (*gin.Engine, *config.Config) {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{
		SessionCookieName: "auth-token",
		JWTExpiryDuration: time.Hour,
		IsProduction:      true,
	}
	router := gin.New()
	handlers.RegisterRoutes(router, cfg, mocks.container(), nil)
	return router, cfg
}
