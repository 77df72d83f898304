package handlers

import (
	"github.com/SafeHavenApp/safehaven_backend/cmd/docs"
	portssvc "github.com/SafeHavenApp/safehaven_backend/internal/core/ports/services"
	"github.com/SafeHavenApp/safehaven_backend/internal/middleware"
	"github.com/SafeHavenApp/safehaven_backend/internal/platform/config"
	"github.com/SafeHavenApp/safehaven_backend/internal/utils"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	posthogClient *utils.PosthogClientWrapper,
) {

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	// Register public routes (auth plus anonymous staged uploads)
	registerAuthRoutes(r, cfg, services)
	registerPublicUploadRoutes(r, services.Upload)

	// Authenticated /api routes
	setupAPIRoutes(r, cfg, services, posthogClient)

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)
}

// setupAPIRoutes configures the authenticated /api group and delegates to
// specific entity route registrations
func setupAPIRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	posthogClient *utils.PosthogClientWrapper,
) {
	api := r.Group("/api",
		middleware.AuthMiddleware(cfg.SessionCookieName, services.Auth),
		middleware.PosthogMiddleware(posthogClient),
	)

	registerSessionRoutes(api, cfg, services)
	registerProfileRoutes(api, services.Profile)
	registerReportRoutes(api, services.Report)
	registerUploadRoutes(api, services.Upload)
	registerUserRoutes(api, services.User)
	registerAlertRoutes(api, services.Alert)
}

// newLoginRateLimiter builds the per-IP limiter applied to the credential
// endpoints: 5 requests per minute.
func newLoginRateLimiter() gin.HandlerFunc {
	rate, _ := limiter.NewRateFromFormatted("5-M")
	store := memory.NewStore()
	return middleware.RateLimit(limiter.New(store, rate))
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	// Swagger setup
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
