package handlers

import (
	"net/http"

	portssvc "github.com/SafeHavenApp/safehaven_backend/internal/core/ports/services"
	"github.com/SafeHavenApp/safehaven_backend/internal/dto"
	"github.com/SafeHavenApp/safehaven_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// profileHandler serves the registration-time data back to its owner.
type profileHandler struct {
	profileService portssvc.ProfileSvcFacade
}

func newProfileHandler(ps portssvc.ProfileSvcFacade) *profileHandler {
	return &profileHandler{profileService: ps}
}

// registerProfileRoutes registers the profile read endpoint.
func registerProfileRoutes(rg *gin.RouterGroup, profileService portssvc.ProfileSvcFacade) {
	h := newProfileHandler(profileService)
	rg.GET("/profile", h.getProfile)
}

// getProfile godoc
// @Summary Profile overview
// @Description Returns the authenticated user's profile extension, emergency contacts and past experiences.
// @Tags profile
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.ProfileOverviewResponse}
// @Failure 401 {object} dto.APIResponse
// @Security BearerAuth
// @Router /api/profile [get]
func (h *profileHandler) getProfile(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.Fail("Not authenticated"))
		return
	}

	overview, err := h.profileService.GetProfile(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.ToProfileOverviewResponse(overview.Profile, overview.EmergencyContacts, overview.Experiences)))
}
