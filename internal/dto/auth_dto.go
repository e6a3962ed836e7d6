package dto

import "github.com/google/uuid"

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	SessionID   uuid.UUID `json:"session_id"`
	UserID      uuid.UUID `json:"user_id"`
	AccessToken string    `json:"access_token"`
}

type LogoutRequest struct {
	SessionID string `json:"session_id"`
}
