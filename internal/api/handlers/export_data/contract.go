package export_data

import (
	"context"

	exportData "github.com/m04kA/SIA-BookingService/internal/usecase/export_data"
)

type ExportUseCase interface {
	Export(ctx context.Context) (*exportData.Export, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
