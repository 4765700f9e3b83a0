package assign_engineer

import (
	"context"

	"github.com/m04kA/SIA-BookingService/internal/service/bookings/models"
)

type BookingService interface {
	AssignEngineer(ctx context.Context, id, engineerID string) (*models.Appointment, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
