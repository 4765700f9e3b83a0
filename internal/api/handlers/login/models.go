package login

import (
	"time"

	"github.com/m04kA/SIA-BookingService/internal/service/auth"
)

// LoginRequest HTTP request model
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse HTTP response model
type LoginResponse struct {
	Username  string `json:"username"`
	Token     string `json:"token"`
	ExpiresAt string `json:"expiresAt"`
}

// FromSession конвертирует сессию в HTTP response
func FromSession(s *auth.Session) *LoginResponse {
	return &LoginResponse{
		Username:  s.Username,
		Token:     s.Token,
		ExpiresAt: s.ExpiresAt.UTC().Format(time.RFC3339),
	}
}
