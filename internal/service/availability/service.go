package availability

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SIA-BookingService/internal/domain"
)

// Service сервис доступности дат и слотов для публичной формы бронирования
type Service struct {
	source       ScheduleSource
	location     *time.Location
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса доступности
func NewService(source ScheduleSource, location *time.Location, logger Logger) *Service {
	return &Service{
		source:       source,
		location:     location,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет часы (для тестов)
func (s *Service) WithTimeProvider(tp TimeProvider) *Service {
	s.timeProvider = tp
	return s
}

// Engine строит движок по текущему опубликованному расписанию
func (s *Service) Engine(ctx context.Context) (*Engine, error) {
	availability, err := s.source.CompanyAvailability(ctx)
	if err != nil {
		s.logger.Error("Engine: failed to load company availability: %v", err)
		return nil, fmt.Errorf("%w: load availability: %v", ErrInternal, err)
	}
	return NewEngine(availability.Schedule(), s.location, s.timeProvider), nil
}

// Availability возвращает опубликованную проекцию расписания
func (s *Service) Availability(ctx context.Context) (*domain.CompanyAvailability, error) {
	availability, err := s.source.CompanyAvailability(ctx)
	if err != nil {
		s.logger.Error("Availability: failed to load company availability: %v", err)
		return nil, fmt.Errorf("%w: load availability: %v", ErrInternal, err)
	}
	return &availability, nil
}

// Slots возвращает слоты на дату. Прошедшие даты не имеют слотов.
func (s *Service) Slots(ctx context.Context, date string) (*DaySlots, error) {
	if _, err := domain.ParseDate(date); err != nil {
		s.logger.Warn("Slots: invalid date=%q", date)
		return nil, ErrInvalidDate
	}

	engine, err := s.Engine(ctx)
	if err != nil {
		return nil, err
	}

	result := &DaySlots{
		Date:      date,
		Available: engine.IsDateAvailable(date) && !engine.IsPast(date),
		Slots:     []string{},
	}
	if result.Available {
		result.Slots = engine.AvailableTimeSlots(date)
	}

	s.logger.Info("Slots: date=%s available=%t slots=%d", date, result.Available, len(result.Slots))
	return result, nil
}

// UnavailableDates возвращает недоступные даты на горизонте horizonDays
func (s *Service) UnavailableDates(ctx context.Context, horizonDays int) ([]string, error) {
	if horizonDays <= 0 || horizonDays > domain.MaxHorizonDays {
		s.logger.Warn("UnavailableDates: invalid horizon=%d", horizonDays)
		return nil, fmt.Errorf("%w: must be between 1 and %d days", ErrInvalidHorizon, domain.MaxHorizonDays)
	}

	engine, err := s.Engine(ctx)
	if err != nil {
		return nil, err
	}

	dates := engine.UnavailableDates(horizonDays)
	s.logger.Info("UnavailableDates: horizon=%d found=%d", horizonDays, len(dates))
	return dates, nil
}

// Calendar возвращает представление месяца
func (s *Service) Calendar(ctx context.Context, year, month int) ([]CalendarDay, error) {
	if month < 1 || month > 12 || year < 1970 || year > 9999 {
		s.logger.Warn("Calendar: invalid month=%d year=%d", month, year)
		return nil, ErrInvalidMonth
	}

	engine, err := s.Engine(ctx)
	if err != nil {
		return nil, err
	}

	return engine.Month(year, time.Month(month)), nil
}

// IsSlotBookable проверяет, что слот на дату можно забронировать прямо сейчас
func (s *Service) IsSlotBookable(ctx context.Context, date, slot string) (bool, error) {
	engine, err := s.Engine(ctx)
	if err != nil {
		return false, err
	}
	return engine.IsSlotBookable(date, slot), nil
}
