package get_engineer

import (
	"context"

	"github.com/m04kA/SIA-BookingService/internal/domain"
)

type BookingService interface {
	GetEngineer(ctx context.Context, id string) (*domain.Engineer, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
