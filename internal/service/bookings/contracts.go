package bookings

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SIA-BookingService/internal/domain"
)

// RecordsRepository хранилище коллекций appointments и engineers
type RecordsRepository interface {
	LoadEngineers(ctx context.Context) ([]*domain.Engineer, error)
	LoadAppointments(ctx context.Context) ([]*domain.Appointment, error)
	SaveEngineers(ctx context.Context, engineers []*domain.Engineer) error
	SaveAppointments(ctx context.Context, appointments []*domain.Appointment) error
}

// SlotChecker проверяет, что дата и слот сейчас доступны для записи
type SlotChecker interface {
	IsSlotBookable(ctx context.Context, date, slot string) (bool, error)
}

// IDGenerator генератор непрозрачных идентификаторов записей
type IDGenerator interface {
	NewID() string
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

// UUIDGenerator генерирует UUID v4
type UUIDGenerator struct{}

func (UUIDGenerator) NewID() string {
	return uuid.NewString()
}
