package models

import (
	"github.com/golang-jwt/jwt/v5"
)

type LoginRequest struct {
	Username string `json:"username" form:"username" binding:"required"`
	Password string `json:"password" form:"password" binding:"required"`
}

type LoginResponse struct {
	AccessToken string     `json:"accessToken"`
	TokenType   string     `json:"tokenType,omitempty"`
	User        SystemUser `json:"user"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" form:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" form:"newPassword" binding:"required,min=8,nefield=CurrentPassword"`
}

// Claims are read from the bearer token without verification; the console
// never holds the signing key.
type Claims struct {
	Role string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// Session is the process-wide authenticated session.
type Session struct {
	User            *SystemUser `json:"user"`
	Token           string      `json:"-"`
	IsAuthenticated bool        `json:"isAuthenticated"`
}
