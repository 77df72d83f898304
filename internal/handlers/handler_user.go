package handlers

import (
	"net/http"

	portssvc "github.com/SafeHavenApp/safehaven_backend/internal/core/ports/services"
	"github.com/SafeHavenApp/safehaven_backend/internal/dto"
	"github.com/gin-gonic/gin"
)

// userHandler handles HTTP requests related to users.
type userHandler struct {
	userService portssvc.UserSvcFacade
}

func newUserHandler(us portssvc.UserSvcFacade) *userHandler {
	return &userHandler{userService: us}
}

// registerUserRoutes registers all user-related routes.
func registerUserRoutes(rg *gin.RouterGroup, userService portssvc.UserSvcFacade) {
	h := newUserHandler(userService)

	users := rg.Group("/users")
	{
		users.GET("/search", h.searchUsers)
	}
}

// searchUsers godoc
// @Summary Search users
// @Description Finds users by a full-name or email substring. Used when naming a reported person.
// @Tags users
// @Produce json
// @Param q query string true "Search query (min 2 characters)"
// @Success 200 {object} dto.APIResponse{data=[]dto.UserSearchResult}
// @Failure 400 {object} dto.APIResponse
// @Failure 401 {object} dto.APIResponse
// @Security BearerAuth
// @Router /api/users/search [get]
func (h *userHandler) searchUsers(c *gin.Context) {
	users, err := h.userService.SearchUsers(c.Request.Context(), c.Query("q"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.ToUserSearchResults(users)))
}
