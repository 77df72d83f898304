package pgsql

import (
	portsrepo "github.com/SafeHavenApp/safehaven_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UserRepo:       newPgxUserRepository(dbPool),
		ProfileRepo:    newPgxProfileRepository(dbPool),
		HealthRepo:     newPgxHealthRepository(dbPool),
		ExperienceRepo: newPgxExperienceRepository(dbPool),
		ReportRepo:     newPgxReportRepository(dbPool),
		AlertRepo:      newPgxAlertRepository(dbPool),
		SessionRepo:    newPgxSessionRepository(dbPool),
	}
}
