package export_data

import (
	"context"
	"time"

	"github.com/m04kA/SIA-BookingService/internal/domain"
	"github.com/m04kA/SIA-BookingService/internal/infra/storage/records"
	"github.com/m04kA/SIA-BookingService/internal/service/bookings/models"
)

// BookingStore интерфейс хранилища записей и инженеров
type BookingStore interface {
	Snapshot() ([]*domain.Engineer, []*domain.Appointment)
	List(ctx context.Context, filter domain.AppointmentFilter) ([]*models.Appointment, error)
	Replace(ctx context.Context, engineers []*domain.Engineer, appointments []*domain.Appointment, commit func(context.Context) error) error
}

// SettingsStore интерфейс владельца adminSettings
type SettingsStore interface {
	Settings(ctx context.Context) (domain.AdminSettings, error)
	RecordBackup(ctx context.Context, at time.Time, size string) (domain.AdminSettings, error)
	Replace(ctx context.Context, next domain.AdminSettings, commit func(context.Context) error) error
}

// SnapshotWriter атомарная запись всех записей разом
type SnapshotWriter interface {
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
