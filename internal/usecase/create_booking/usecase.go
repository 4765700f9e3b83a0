package create_booking

import (
	"context"
	"fmt"
	"strings"

	"github.com/m04kA/SIA-BookingService/internal/domain"
)

const (
	recipientClient = "client"
	recipientAdmin  = "admin"
)

// UseCase use case публичной записи на приём:
// проверка полей, проверка на бота, сохранение, уведомление
type UseCase struct {
	bookings   BookingService
	settings   SettingsProvider
	verifier   Verifier
	notifier   Notifier
	metrics    Metrics
	adminEmail string
	logger     Logger
}

// NewUseCase создает новый экземпляр use case.
// adminEmail получает копию подтверждения; пустое значение означает адрес из профиля компании.
func NewUseCase(
	bookings BookingService,
	settings SettingsProvider,
	verifier Verifier,
	notifier Notifier,
	adminEmail string,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookings:   bookings,
		settings:   settings,
		verifier:   verifier,
		notifier:   notifier,
		metrics:    nopMetrics{},
		adminEmail: adminEmail,
		logger:     logger,
	}
}

// WithMetrics подключает метрики
func (uc *UseCase) WithMetrics(m Metrics) *UseCase {
	if m != nil {
		uc.metrics = m
	}
	return uc
}

// Execute выполняет use case создания записи.
// Ошибка проверки на бота прерывает запись до сохранения.
// Ошибка отправки письма не отменяет запись: ответ помечается как Degraded.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: email=%s, service=%s, date=%s, time=%s",
		req.Email, req.Service, req.Date, req.Time)

	// 1. Режим обслуживания
	prefs, err := uc.settings.Preferences(ctx)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to load preferences: %v", err)
		return nil, fmt.Errorf("%w: preferences: %v", ErrInternal, err)
	}
	if prefs.MaintenanceMode {
		uc.logger.Warn("CreateBooking: rejected, maintenance mode is on")
		return nil, ErrMaintenance
	}

	// 2. Валидация полей и доступности слота до обращения к внешнему сервису
	draft, err := uc.bookings.ValidateDraft(ctx, req.draft())
	if err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 3. Проверка на бота
	if strings.TrimSpace(req.VerificationToken) == "" {
		uc.metrics.VerificationFailed()
		uc.logger.Warn("CreateBooking: verification token is missing")
		return nil, fmt.Errorf("%w: token is missing", ErrVerificationFailed)
	}
	ok, err := uc.verifier.Verify(ctx, req.VerificationToken, req.RemoteIP)
	if err != nil {
		uc.metrics.VerificationFailed()
		uc.logger.Error("CreateBooking: verification service error: %v", err)
		return nil, err
	}
	if !ok {
		uc.metrics.VerificationFailed()
		uc.logger.Warn("CreateBooking: verification rejected for email=%s", req.Email)
		return nil, ErrVerificationFailed
	}

	// 4. Сохранение
	appt, err := uc.bookings.Create(ctx, draft)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to create appointment: %v", err)
		return nil, err
	}
	uc.metrics.BookingCreated(appt.Service)

	// 5. Автоподтверждение
	if prefs.AutoConfirm {
		confirmed, err := uc.bookings.UpdateStatus(ctx, appt.ID, domain.StatusConfirmed)
		if err != nil {
			uc.logger.Error("CreateBooking: auto-confirm failed for id=%s: %v", appt.ID, err)
		} else {
			appt = confirmed
		}
	}

	resp := &Response{Appointment: appt}

	// 6. Уведомления
	if !prefs.EmailNotifications {
		uc.logger.Info("CreateBooking: id=%s created, notifications disabled", appt.ID)
		return resp, nil
	}

	if err := uc.notify(ctx, appt.ID, resp); err != nil {
		uc.logger.Error("CreateBooking: %v", err)
	}

	uc.logger.Info("CreateBooking: successfully created appointment id=%s (degraded=%t)", appt.ID, resp.Degraded)
	return resp, nil
}

// notify sends the confirmation to the client and the admin copy; any failure
// marks resp as degraded
func (uc *UseCase) notify(ctx context.Context, id string, resp *Response) error {
	profile, err := uc.settings.Profile(ctx)
	if err != nil {
		resp.Degraded = true
		resp.Warning = "confirmation email could not be prepared"
		uc.metrics.NotificationFailed(recipientClient)
		return fmt.Errorf("notify id=%s: profile: %v", id, err)
	}

	adminEmail := uc.adminEmail
	if adminEmail == "" {
		adminEmail = profile.Email
	}

	messages, err := confirmationMessages(resp.Appointment, profile, adminEmail)
	if err != nil {
		resp.Degraded = true
		resp.Warning = "confirmation email could not be prepared"
		uc.metrics.NotificationFailed(recipientClient)
		return fmt.Errorf("notify id=%s: render: %v", id, err)
	}

	var firstErr error
	for i, msg := range messages {
		recipient := recipientClient
		if i > 0 {
			recipient = recipientAdmin
		}
		if err := uc.notifier.Send(ctx, msg); err != nil {
			uc.metrics.NotificationFailed(recipient)
			uc.logger.Warn("CreateBooking: failed to notify %s for id=%s: %v", recipient, id, err)
			resp.Degraded = true
			resp.Warning = "appointment saved, but the confirmation email could not be sent"
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	if firstErr != nil {
		return fmt.Errorf("notify id=%s: %w", id, firstErr)
	}
	return nil
}
