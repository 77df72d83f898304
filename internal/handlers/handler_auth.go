package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SafeHavenApp/safehaven_backend/internal/apperrors"
	portssvc "github.com/SafeHavenApp/safehaven_backend/internal/core/ports/services"
	"github.com/SafeHavenApp/safehaven_backend/internal/dto"
	"github.com/SafeHavenApp/safehaven_backend/internal/middleware"
	"github.com/SafeHavenApp/safehaven_backend/internal/platform/config"
	"github.com/gin-gonic/gin"
)

// AuthHandler handles authentication related requests.
type AuthHandler struct {
	cfg                 *config.Config
	authService         portssvc.AuthSvcFacade
	registrationService portssvc.RegistrationSvcFacade
	userService         portssvc.UserSvcFacade
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(cfg *config.Config, services *portssvc.ServiceContainer) *AuthHandler {
	return &AuthHandler{
		cfg:                 cfg,
		authService:         services.Auth,
		registrationService: services.Registration,
		userService:         services.User,
	}
}

// registerAuthRoutes sets up the public credential routes, rate limited per IP.
func registerAuthRoutes(rg *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	h := NewAuthHandler(cfg, services)
	limitMiddleware := newLoginRateLimiter()

	auth := rg.Group("/api/auth")
	{
		auth.POST("/register", limitMiddleware, h.Register)
		auth.POST("/login", limitMiddleware, h.Login)
		// Logout stays public: a request without a token is a no-op, not a 401.
		auth.POST("/logout", h.Logout)
	}
}

// registerSessionRoutes sets up the authenticated session routes.
func registerSessionRoutes(rg *gin.RouterGroup, cfg *config.Config, services *portssvc.ServiceContainer) {
	h := NewAuthHandler(cfg, services)

	auth := rg.Group("/auth")
	{
		auth.GET("/me", h.Me)
	}
}

// setSessionCookie writes the http-only session cookie. SameSite=Lax is enough
// because state-changing routes also accept the Authorization header.
func (h *AuthHandler) setSessionCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cfg.SessionCookieName, token, int(h.cfg.JWTExpiryDuration.Seconds()), "/", "", h.cfg.IsProduction, true)
}

// clearSessionCookie expires the session cookie.
func (h *AuthHandler) clearSessionCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cfg.SessionCookieName, "", -1, "/", "", h.cfg.IsProduction, true)
}

// Register godoc
// @Summary Register new user
// @Description Creates an account from the multi-step registration payload and starts a session.
// @Tags auth
// @Accept json
// @Produce json
// @Param register body dto.RegisterRequest true "Multi-step registration payload"
// @Success 201 {object} dto.APIResponse{data=dto.AuthData}
// @Failure 400 {object} dto.APIResponse
// @Failure 500 {object} dto.APIResponse
// @Router /api/auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("Invalid request body"))
		return
	}

	user, token, err := h.registrationService.Register(c.Request.Context(), req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	logger.Info("User registered", slog.String("user_id", user.UserID))
	h.setSessionCookie(c, token)
	c.JSON(http.StatusCreated, dto.OK(dto.AuthData{User: dto.ToUserResponse(user), Token: token}))
}

// Login godoc
// @Summary User login
// @Description Authenticates a user and starts a session.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login Credentials"
// @Success 200 {object} dto.APIResponse{data=dto.AuthData}
// @Failure 400 {object} dto.APIResponse
// @Failure 401 {object} dto.APIResponse
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("Email and password are required"))
		return
	}

	user, token, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, apperrors.ErrUnauthorized) {
			c.JSON(http.StatusUnauthorized, dto.Fail("Invalid email or password"))
			return
		}
		respondWithError(c, err)
		return
	}

	h.setSessionCookie(c, token)
	c.JSON(http.StatusOK, dto.OK(dto.AuthData{User: dto.ToUserResponse(user), Token: token}))
}

// Logout godoc
// @Summary Log out
// @Description Invalidates the current session, if any, and clears the cookie.
// @Tags auth
// @Produce json
// @Success 200 {object} dto.APIResponse
// @Router /api/auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	token := middleware.ExtractToken(c, h.cfg.SessionCookieName)
	if err := h.authService.Logout(c.Request.Context(), token); err != nil {
		respondWithError(c, err)
		return
	}

	h.clearSessionCookie(c)
	c.JSON(http.StatusOK, dto.OK(gin.H{"message": "Logged out"}))
}

// Me godoc
// @Summary Current user
// @Description Returns the authenticated user's profile.
// @Tags auth
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.UserResponse}
// @Failure 401 {object} dto.APIResponse
// @Security BearerAuth
// @Router /api/auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.Fail("Not authenticated"))
		return
	}

	user, err := h.userService.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.ToUserResponse(user)))
}
