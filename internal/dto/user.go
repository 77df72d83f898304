package dto

import (
	"time"

	"github.com/SafeHavenApp/safehaven_backend/internal/core/domain"
)

// UserResponse is the public representation of a user.
type UserResponse struct {
	UserID      string     `json:"userID"`
	Email       string     `json:"email"`
	FullName    string     `json:"fullName"`
	IsVerified  bool       `json:"isVerified"`
	IsAdmin     bool       `json:"isAdmin"`
	LastLoginAt *time.Time `json:"lastLoginAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
}

// ToUserResponse converts a domain User to its response DTO.
func ToUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		UserID:      user.UserID,
		Email:       user.Email,
		FullName:    user.FullName,
		IsVerified:  user.IsVerified,
		IsAdmin:     user.IsAdmin,
		LastLoginAt: user.LastLoginAt,
		CreatedAt:   user.CreatedAt,
	}
}

// UserSearchResult is the minimal user shape returned by the search endpoint.
type UserSearchResult struct {
	UserID   string `json:"userID"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
}

// ToUserSearchResults converts domain users to search results.
func ToUserSearchResults(users []domain.User) []UserSearchResult {
	results := make([]UserSearchResult, len(users))
	for i, u := range users {
		results[i] = UserSearchResult{UserID: u.UserID, FullName: u.FullName, Email: u.Email}
	}
	return results
}
