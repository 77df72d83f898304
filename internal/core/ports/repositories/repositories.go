package repositories

// RepositoryProvider aggregates all repository implementations for wiring
// into the service container.
type RepositoryProvider struct {
	UserRepo       UserRepository
	ProfileRepo    ProfileRepository
	HealthRepo     HealthRepository
	ExperienceRepo ExperienceRepository
	ReportRepo     ReportRepository
	AlertRepo      AlertRepository
	SessionRepo    SessionRepository
}
