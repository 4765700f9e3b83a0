package get_calendar

import (
	"context"

	"github.com/m04kA/SIA-BookingService/internal/service/availability"
)

type AvailabilityService interface {
	Calendar(ctx context.Context, year, month int) ([]availability.CalendarDay, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
