package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/SIA-BookingService/internal/domain"
	"github.com/m04kA/SIA-BookingService/internal/integrations/mailer"
	"github.com/m04kA/SIA-BookingService/internal/service/bookings/models"
)

// BookingService интерфейс хранилища записей
type BookingService interface {
	ValidateDraft(ctx context.Context, draft domain.AppointmentDraft) (domain.AppointmentDraft, error)
	Create(ctx context.Context, draft domain.AppointmentDraft) (*models.Appointment, error)
	UpdateStatus(ctx context.Context, id string, status domain.AppointmentStatus) (*models.Appointment, error)
}

// SettingsProvider интерфейс источника настроек администратора
type SettingsProvider interface {
	Preferences(ctx context.Context) (domain.Preferences, error)
	Profile(ctx context.Context) (domain.CompanyProfile, error)
}

// Verifier интерфейс проверки токена защиты от ботов
type Verifier interface {
	Verify(ctx context.Context, token, remoteIP string) (bool, error)
}

// Notifier интерфейс отправки писем
type Notifier interface {
	Send(ctx context.Context, msg mailer.Message) error
}

// Metrics интерфейс метрик бронирования
type Metrics interface {
	BookingCreated(serviceType string)
	NotificationFailed(recipient string)
	VerificationFailed()
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

type nopMetrics struct{}

func (nopMetrics) BookingCreated(string)     {}
func (nopMetrics) NotificationFailed(string) {}
func (nopMetrics) VerificationFailed()       {}
