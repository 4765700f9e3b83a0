package get_booking

import (
	"context"

	"github.com/m04kA/SIA-BookingService/internal/service/bookings/models"
)

type BookingService interface {
	Get(ctx context.Context, id string) (*models.Appointment, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
