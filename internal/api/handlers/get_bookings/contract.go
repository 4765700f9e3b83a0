package get_bookings

import (
	"context"

	"github.com/m04kA/SIA-BookingService/internal/domain"
	"github.com/m04kA/SIA-BookingService/internal/service/bookings/models"
)

type BookingService interface {
	List(ctx context.Context, filter domain.AppointmentFilter) ([]*models.Appointment, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
