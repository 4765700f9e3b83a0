package get_available_slots

import (
	"context"

	"github.com/m04kA/SIA-BookingService/internal/service/availability"
)

type AvailabilityService interface {
	Slots(ctx context.Context, date string) (*availability.DaySlots, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
