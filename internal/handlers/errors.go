package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SafeHavenApp/safehaven_backend/internal/apperrors"
	"github.com/SafeHavenApp/safehaven_backend/internal/dto"
	"github.com/SafeHavenApp/safehaven_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// respondWithError maps service errors onto HTTP responses in the standard
// envelope. AppError messages are shown to the client; anything unexpected is
// logged and answered with a generic 500.
func respondWithError(c *gin.Context, err error) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) && errors.Is(err, apperrors.ErrValidation) {
		c.JSON(appErr.Code, dto.Fail(appErr.Message))
		return
	}

	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, dto.Fail("Not found"))
	case errors.Is(err, apperrors.ErrForbidden):
		c.JSON(http.StatusForbidden, dto.Fail("Forbidden"))
	case errors.Is(err, apperrors.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, dto.Fail("Not authenticated"))
	case errors.Is(err, apperrors.ErrDuplicate):
		c.JSON(http.StatusConflict, dto.Fail("Already exists"))
	default:
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Unhandled service error", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.Fail("Internal server error"))
	}
}
