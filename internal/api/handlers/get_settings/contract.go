package get_settings

import (
	"context"

	"github.com/m04kA/SIA-BookingService/internal/domain"
)

type SettingsService interface {
	Settings(ctx context.Context) (domain.AdminSettings, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
