package get_availability

import (
	"context"

	"github.com/m04kA/SIA-BookingService/internal/domain"
)

type AvailabilityService interface {
	Availability(ctx context.Context) (*domain.CompanyAvailability, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
