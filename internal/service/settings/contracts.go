package settings

import (
	"context"
	"time"

	"github.com/m04kA/SIA-BookingService/internal/domain"
	"github.com/m04kA/SIA-BookingService/internal/infra/storage/records"
)

// RecordsRepository хранилище настроек и проекции расписания
type RecordsRepository interface {
	LoadAdminSettings(ctx context.Context) (*domain.AdminSettings, error)
	LoadCompanyAvailability(ctx context.Context) (*domain.CompanyAvailability, error)
	SaveSnapshot(ctx context.Context, snapshot records.Snapshot) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
