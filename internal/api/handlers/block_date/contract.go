package block_date

import (
	"context"

	"github.com/m04kA/SIA-BookingService/internal/domain"
)

type SettingsService interface {
	BlockDate(ctx context.Context, blocked domain.BlockedDate) (domain.ScheduleConfig, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
