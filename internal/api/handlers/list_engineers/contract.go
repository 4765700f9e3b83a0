package list_engineers

import (
	"context"

	"github.com/m04kA/SIA-BookingService/internal/domain"
)

type BookingService interface {
	ListEngineers(ctx context.Context, activeOnly bool) []*domain.Engineer
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
