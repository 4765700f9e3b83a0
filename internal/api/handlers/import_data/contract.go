package import_data

import (
	"context"

	exportData "github.com/m04kA/SIA-BookingService/internal/usecase/export_data"
)

type ImportUseCase interface {
	Import(ctx context.Context, data *exportData.Export) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
