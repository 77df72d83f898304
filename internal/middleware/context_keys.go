package middleware

import "github.com/gin-gonic/gin"

// userIDKey is the key used to store the authenticated user's ID in the request context.
const userIDKey = contextKey("userID")

// isAdminKey is the key used to store the authenticated user's admin flag.
const isAdminKey = contextKey("isAdmin")

// GetUserIDFromContext retrieves the authenticated user ID from the Gin context.
// It returns the user ID and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	userIDVal := c.Request.Context().Value(userIDKey)
	if userIDVal == nil {
		return "", false
	}

	userID, ok := userIDVal.(string)
	if !ok {
		return "", false
	}
	return userID, true
}

// GetIsAdminFromContext reports whether the authenticated user is an admin.
func GetIsAdminFromContext(c *gin.Context) bool {
	isAdminVal := c.Request.Context().Value(isAdminKey)
	if isAdminVal == nil {
		return false
	}
	isAdmin, ok := isAdminVal.(bool)
	return ok && isAdmin
}
