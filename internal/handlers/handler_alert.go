package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SafeHavenApp/safehaven_backend/internal/core/ports/services"
	"github.com/SafeHavenApp/safehaven_backend/internal/dto"
	"github.com/SafeHavenApp/safehaven_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// alertHandler handles HTTP requests related to emergency alerts.
type alertHandler struct {
	alertService portssvc.AlertSvcFacade
}

func newAlertHandler(as portssvc.AlertSvcFacade) *alertHandler {
	return &alertHandler{alertService: as}
}

// registerAlertRoutes registers all emergency alert routes.
func registerAlertRoutes(rg *gin.RouterGroup, alertService portssvc.AlertSvcFacade) {
	h := newAlertHandler(alertService)

	alerts := rg.Group("/emergency/alerts")
	{
		alerts.POST("", h.triggerAlert)
		alerts.GET("", h.listAlerts)
		alerts.POST("/:id/resolve", h.resolveAlert)
	}
}

// triggerAlert godoc
// @Summary Trigger an emergency alert
// @Description Records an active emergency alert with the user's last known position.
// @Tags emergency
// @Accept json
// @Produce json
// @Param alert body dto.CreateAlertRequest true "Alert details"
// @Success 201 {object} dto.APIResponse{data=dto.AlertResponse}
// @Failure 401 {object} dto.APIResponse
// @Security BearerAuth
// @Router /api/emergency/alerts [post]
func (h *alertHandler) triggerAlert(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.Fail("Not authenticated"))
		return
	}

	// An empty body is fine; location and message are optional.
	var req dto.CreateAlertRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.Fail("Invalid request body"))
			return
		}
	}

	alert, err := h.alertService.TriggerAlert(c.Request.Context(), userID, req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	logger.Warn("Emergency alert triggered", slog.String("alert_id", alert.AlertID))
	c.JSON(http.StatusCreated, dto.OK(dto.ToAlertResponse(alert)))
}

// listAlerts godoc
// @Summary List own alerts
// @Description Lists the authenticated user's emergency alerts, newest first.
// @Tags emergency
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]dto.AlertResponse}
// @Failure 401 {object} dto.APIResponse
// @Security BearerAuth
// @Router /api/emergency/alerts [get]
func (h *alertHandler) listAlerts(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.Fail("Not authenticated"))
		return
	}

	alerts, err := h.alertService.ListAlerts(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.ToAlertListResponse(alerts)))
}

// resolveAlert godoc
// @Summary Resolve an alert
// @Description Marks the user's own active alert as resolved.
// @Tags emergency
// @Produce json
// @Param id path string true "Alert ID"
// @Success 200 {object} dto.APIResponse{data=dto.AlertResponse}
// @Failure 401 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse
// @Security BearerAuth
// @Router /api/emergency/alerts/{id}/resolve [post]
func (h *alertHandler) resolveAlert(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.Fail("Not authenticated"))
		return
	}

	alert, err := h.alertService.ResolveAlert(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.ToAlertResponse(alert)))
}
