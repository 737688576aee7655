package auth

import "github.com/DhavalSuthar-24/squadhub/internal/user"

type RegisterRequest struct {
	Name            string `json:"name" binding:"required,max=100" example:"John Doe"`
	Username        string `json:"username" binding:"required,alphanum,min=3,max=30" example:"johndoe"`
	Email           string `json:"email" binding:"required,email" example:"john@example.com"`
	Phone           string `json:"phone" binding:"required,e164" example:"+919876543210"`
	Password        string `json:"password" binding:"required,min=8,max=72" example:"password123"`
	PasswordConfirm string `json:"password_confirm" binding:"required,eqfield=Password" example:"password123"`
}

type LoginRequest struct {
	LoginIdentifier string `json:"login_identifier" binding:"required" example:"john@example.com"` // Can be email or username
	Password        string `json:"password" binding:"required" example:"password123"`
}

type AuthResponse struct {
	AccessToken string            `json:"access_token"`
	User        user.UserResponse `json:"user"`
}
