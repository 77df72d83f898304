package services

import (
	portsrepo "github.com/SafeHavenApp/safehaven_backend/internal/core/ports/repositories"
	portssvc "github.com/SafeHavenApp/safehaven_backend/internal/core/ports/services"
	"github.com/SafeHavenApp/safehaven_backend/internal/platform/config"
	"github.com/SafeHavenApp/safehaven_backend/internal/storage"
)

// NewServiceContainer wires every service against the repository provider and
// the chosen file store.
func NewServiceContainer(cfg *config.Config, repos *portsrepo.RepositoryProvider, store storage.FileStore) *portssvc.ServiceContainer {
	userService := NewUserService(repos.UserRepo)
	authService := NewAuthService(cfg, repos.UserRepo, repos.SessionRepo)
	uploadService := NewUploadService(store)
	registrationService := NewRegistrationService(
		userService,
		authService,
		uploadService,
		repos.ProfileRepo,
		repos.HealthRepo,
		repos.ExperienceRepo,
	)

	return &portssvc.ServiceContainer{
		User:         userService,
		Auth:         authService,
		Registration: registrationService,
		Profile:      NewProfileService(repos.ProfileRepo, repos.ExperienceRepo),
		Report:       NewReportService(repos.ReportRepo),
		Upload:       uploadService,
		Alert:        NewAlertService(repos.AlertRepo),
	}
}
