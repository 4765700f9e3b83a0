package get_unavailable_dates

import "context"

type AvailabilityService interface {
	UnavailableDates(ctx context.Context, horizonDays int) ([]string, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
