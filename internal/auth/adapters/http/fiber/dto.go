package fiber

import "time"

type LoginRequest struct {
	Email    string `json:"email" example:"ops@fleet.io"`
	Password string `json:"password" example:"secret"`
	Remember bool   `json:"remember"`
}

type UserResponse struct {
	ID    string  `json:"id"`
	Email string  `json:"email"`
	Name  *string `json:"name,omitempty"`
}

type SessionResponse struct {
	User      UserResponse `json:"user"`
	Scope     string       `json:"scope" example:"persistent"`
	ExpiresAt time.Time    `json:"expires_at"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_credentials"`
	Message string `json:"message,omitempty" example:"invalid credentials"`
}
