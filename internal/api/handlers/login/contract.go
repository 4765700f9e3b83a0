package login

import (
	"context"

	"github.com/m04kA/SIA-BookingService/internal/service/auth"
)

type AuthService interface {
	Authenticate(ctx context.Context, username, password string) (*auth.Session, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
