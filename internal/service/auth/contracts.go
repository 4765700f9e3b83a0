package auth

import (
	"context"
	"time"

	"github.com/m04kA/SIA-BookingService/internal/domain"
)

// CredentialStore источник и получатель учётных данных администратора
type CredentialStore interface {
	Credentials(ctx context.Context) (domain.Credentials, error)
	Preferences(ctx context.Context) (domain.Preferences, error)
	UpdateCredentials(ctx context.Context, creds domain.Credentials) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
