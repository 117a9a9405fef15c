package dto

import "time"

// LoginRequest is the JSON body for POST /auth/login.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RegisterRequest is the JSON body for POST /auth/register.
type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=1,max=80"`
	Password string `json:"password" binding:"required,min=1"`
}

// UserResponse is returned when user info is needed (e.g. after login or on /me).
type UserResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Points   int    `json:"points"`
}

// MeResponse is the body of GET /me.
type MeResponse struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Points    int       `json:"points"`
	CreatedAt time.Time `json:"created_at"`
}
