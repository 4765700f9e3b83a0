package export_bookings_csv

import (
	"context"
	"io"
)

type ExportUseCase interface {
	WriteBookingsCSV(ctx context.Context, w io.Writer) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
