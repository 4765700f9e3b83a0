package create_engineer

import (
	"context"

	"github.com/m04kA/SIA-BookingService/internal/domain"
)

type BookingService interface {
	AddEngineer(ctx context.Context, in domain.EngineerInput) (*domain.Engineer, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
