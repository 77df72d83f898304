package dto

// LoginRequest carries the credentials for POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AuthData is the payload returned after a successful login or registration.
type AuthData struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token"`
}
