package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/SafeHavenApp/safehaven_backend/internal/apperrors"
	portssvc "github.com/SafeHavenApp/safehaven_backend/internal/core/ports/services"
	"github.com/gin-gonic/gin"
)

// ExtractToken resolves the session token from the http-only cookie or the
// Authorization header. Returns an empty string when neither is present.
func ExtractToken(c *gin.Context, cookieName string) string {
	if cookie, err := c.Cookie(cookieName); err == nil && cookie != "" {
		return cookie
	}
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return ""
	}
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return ""
	}
	return parts[1]
}

// AuthMiddleware creates a Gin middleware handler that validates the session
// token (signature plus an active, unexpired session row) and stores the
// resolved user in the request context.
func AuthMiddleware(cookieName string, authService portssvc.SessionVerifierSvc) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		tokenString := ExtractToken(c, cookieName)
		if tokenString == "" {
			logger.Warn("No session token in cookie or Authorization header")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Not authenticated"})
			return
		}

		user, err := authService.CurrentUser(c.Request.Context(), tokenString)
		if err != nil {
			if !errors.Is(err, apperrors.ErrUnauthorized) {
				logger.Error("Session verification failed unexpectedly", slog.String("error", err.Error()))
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Not authenticated"})
			return
		}

		// Store the user ID and admin flag in the standard context
		ctxWithUser := context.WithValue(c.Request.Context(), userIDKey, user.UserID)
		ctxWithUser = context.WithValue(ctxWithUser, isAdminKey, user.IsAdmin)

		// Add user ID to the logger
		enrichedLogger := logger.With(slog.String("user_id", user.UserID))
		ctxWithLoggerAndUser := context.WithValue(ctxWithUser, loggerCtxKey, enrichedLogger)

		c.Request = c.Request.WithContext(ctxWithLoggerAndUser)

		c.Next()
	}
}
