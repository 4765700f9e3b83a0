package create_backup

import (
	"context"

	exportData "github.com/m04kA/SIA-BookingService/internal/usecase/export_data"
)

type BackupUseCase interface {
	Backup(ctx context.Context) (*exportData.BackupResult, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
