package bookings

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/m04kA/SIA-BookingService/internal/domain"
	"github.com/m04kA/SIA-BookingService/internal/service/bookings/models"
)

// Service хранилище записей на приём и инженеров.
// Коллекции живут в памяти, каждая успешная мутация сразу сохраняется в
// репозиторий. Мутации сериализуются мьютексом.
type Service struct {
	mu sync.RWMutex

	appointments []*domain.Appointment
	engineers    []*domain.Engineer

	repo         RecordsRepository
	slots        SlotChecker
	idGenerator  IDGenerator
	timeProvider TimeProvider
	location     *time.Location
	logger       Logger
}

// NewService создает новый экземпляр сервиса. Перед использованием нужно вызвать Load.
func NewService(
	repo RecordsRepository,
	slots SlotChecker,
	location *time.Location,
	logger Logger,
) *Service {
	return &Service{
		appointments: []*domain.Appointment{},
		engineers:    []*domain.Engineer{},
		repo:         repo,
		slots:        slots,
		idGenerator:  UUIDGenerator{},
		timeProvider: &RealTimeProvider{},
		location:     location,
		logger:       logger,
	}
}

// WithTimeProvider подменяет часы (для тестов)
func (s *Service) WithTimeProvider(tp TimeProvider) *Service {
	s.timeProvider = tp
	return s
}

// WithIDGenerator подменяет генератор идентификаторов (для тестов)
func (s *Service) WithIDGenerator(g IDGenerator) *Service {
	s.idGenerator = g
	return s
}

func (s *Service) now() time.Time {
	return s.timeProvider.Now().In(s.location)
}

// Load загружает коллекции из репозитория, заменяя состояние в памяти
func (s *Service) Load(ctx context.Context) error {
	engineers, err := s.repo.LoadEngineers(ctx)
	if err != nil {
		s.logger.Error("Load: failed to load engineers: %v", err)
		return fmt.Errorf("%w: Load - engineers: %v", ErrInternal, err)
	}
	appointments, err := s.repo.LoadAppointments(ctx)
	if err != nil {
		s.logger.Error("Load: failed to load appointments: %v", err)
		return fmt.Errorf("%w: Load - appointments: %v", ErrInternal, err)
	}

	s.mu.Lock()
	s.engineers = engineers
	s.appointments = appointments
	s.mu.Unlock()

	s.logger.Info("Load: loaded %d appointments and %d engineers", len(appointments), len(engineers))
	return nil
}

// Flush сохраняет обе коллекции (точка сброса при остановке)
func (s *Service) Flush(ctx context.Context) error {
	s.mu.RLock()
	engineers := cloneEngineers(s.engineers)
	appointments := cloneAppointments(s.appointments)
	s.mu.RUnlock()

	if err := s.repo.SaveEngineers(ctx, engineers); err != nil {
		s.logger.Error("Flush: failed to save engineers: %v", err)
		return fmt.Errorf("%w: Flush - engineers: %v", ErrInternal, err)
	}
	if err := s.repo.SaveAppointments(ctx, appointments); err != nil {
		s.logger.Error("Flush: failed to save appointments: %v", err)
		return fmt.Errorf("%w: Flush - appointments: %v", ErrInternal, err)
	}

	s.logger.Info("Flush: saved %d appointments and %d engineers", len(appointments), len(engineers))
	return nil
}

// ValidateDraft проверяет поля черновика и доступность даты и слота.
// Возвращает нормализованный черновик.
func (s *Service) ValidateDraft(ctx context.Context, draft domain.AppointmentDraft) (domain.AppointmentDraft, error) {
	draft = domain.TrimDraft(draft)

	verr := &domain.ValidationError{}
	if err := domain.Validate(draft); err != nil && !errors.As(err, &verr) {
		return draft, err
	}
	if draft.Time != "" {
		if start, end, err := domain.ParseSlotLabel(draft.Time); err != nil || end <= start {
			verr.Add("time", "expected a slot label like 09.00 - 10.00")
		}
	}
	if err := verr.Err(); err != nil {
		return draft, err
	}

	ok, err := s.slots.IsSlotBookable(ctx, draft.Date, draft.Time)
	if err != nil {
		s.logger.Error("ValidateDraft: availability check failed: %v", err)
		return draft, fmt.Errorf("%w: ValidateDraft - availability: %v", ErrInternal, err)
	}
	if !ok {
		return draft, fmt.Errorf("%w: %s %s", ErrSlotNotAvailable, draft.Date, draft.Time)
	}

	return draft, nil
}

// Create создает запись в статусе pending после полной проверки черновика
func (s *Service) Create(ctx context.Context, draft domain.AppointmentDraft) (*models.Appointment, error) {
	draft, err := s.ValidateDraft(ctx, draft)
	if err != nil {
		s.logger.Warn("Create: draft rejected: %v", err)
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	appointment := domain.NewAppointment(s.idGenerator.NewID(), draft, s.now())

	next := append(cloneAppointments(s.appointments), appointment)
	if err := s.repo.SaveAppointments(ctx, next); err != nil {
		s.logger.Error("Create: failed to persist appointment: %v", err)
		return nil, fmt.Errorf("%w: Create - persist: %v", ErrInternal, err)
	}
	s.appointments = next

	s.logger.Info("Create: appointment id=%s created for %s on %s %s",
		appointment.ID, appointment.Email, appointment.Date, appointment.Time)
	return s.view(appointment), nil
}

// Get возвращает запись по ID
func (s *Service) Get(_ context.Context, id string) (*models.Appointment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx := s.appointmentIndex(id)
	if idx < 0 {
		return nil, &domain.NotFoundError{Entity: "appointment", ID: id}
	}
	return s.view(s.appointments[idx]), nil
}

// UpdateStatus переводит запись в новый статус по правилам жизненного цикла
func (s *Service) UpdateStatus(ctx context.Context, id string, status domain.AppointmentStatus) (*models.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.appointmentIndex(id)
	if idx < 0 {
		s.logger.Warn("UpdateStatus: appointment id=%s not found", id)
		return nil, &domain.NotFoundError{Entity: "appointment", ID: id}
	}

	next := cloneAppointments(s.appointments)
	if err := next[idx].TransitionTo(status, s.now()); err != nil {
		s.logger.Warn("UpdateStatus: appointment id=%s: %v", id, err)
		return nil, err
	}

	if err := s.repo.SaveAppointments(ctx, next); err != nil {
		s.logger.Error("UpdateStatus: failed to persist appointment id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateStatus - persist: %v", ErrInternal, err)
	}
	s.appointments = next

	s.logger.Info("UpdateStatus: appointment id=%s is now %s", id, status)
	return s.view(next[idx]), nil
}

// AssignEngineer назначает активного инженера, перезаписывая прежнее назначение
func (s *Service) AssignEngineer(ctx context.Context, id, engineerID string) (*models.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.appointmentIndex(id)
	if idx < 0 {
		s.logger.Warn("AssignEngineer: appointment id=%s not found", id)
		return nil, &domain.NotFoundError{Entity: "appointment", ID: id}
	}

	engIdx := s.engineerIndex(engineerID)
	if engIdx < 0 {
		s.logger.Warn("AssignEngineer: engineer id=%s not found", engineerID)
		return nil, &domain.NotFoundError{Entity: "engineer", ID: engineerID}
	}
	if !s.engineers[engIdx].IsActive() {
		s.logger.Warn("AssignEngineer: engineer id=%s is inactive", engineerID)
		return nil, fmt.Errorf("%w: %w", ErrEngineerInactive, &domain.NotFoundError{Entity: "active engineer", ID: engineerID})
	}

	next := cloneAppointments(s.appointments)
	next[idx].Engineer = engineerID

	if err := s.repo.SaveAppointments(ctx, next); err != nil {
		s.logger.Error("AssignEngineer: failed to persist appointment id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: AssignEngineer - persist: %v", ErrInternal, err)
	}
	s.appointments = next

	s.logger.Info("AssignEngineer: appointment id=%s assigned to engineer id=%s", id, engineerID)
	return s.view(next[idx]), nil
}

// List возвращает записи, подходящие под фильтр. Пустые поля фильтра и
// значение "all" не ограничивают выборку.
func (s *Service) List(_ context.Context, filter domain.AppointmentFilter) ([]*models.Appointment, error) {
	if isSet(filter.Status) {
		if _, err := domain.ParseAppointmentStatus(filter.Status); err != nil {
			return nil, err
		}
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*models.Appointment, 0, len(s.appointments))
	for _, a := range s.appointments {
		view := s.view(a)
		if isSet(filter.Status) && string(a.Status) != filter.Status {
			continue
		}
		if isSet(filter.Service) && a.Service != filter.Service {
			continue
		}
		if isSet(filter.Date) && a.Date != filter.Date {
			continue
		}
		if isSet(filter.EngineerName) && view.EngineerName != filter.EngineerName {
			continue
		}
		result = append(result, view)
	}
	return result, nil
}

// Snapshot возвращает копии обеих коллекций
func (s *Service) Snapshot() ([]*domain.Engineer, []*domain.Appointment) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneEngineers(s.engineers), cloneAppointments(s.appointments)
}

// Replace подменяет обе коллекции целиком (импорт).
// commit выполняется под блокировкой сервиса и должен сохранить новые
// коллекции в репозиторий; при ошибке commit состояние в памяти не меняется.
func (s *Service) Replace(ctx context.Context, engineers []*domain.Engineer, appointments []*domain.Appointment, commit func(context.Context) error) error {
	nextEngineers := cloneEngineers(engineers)
	nextAppointments := cloneAppointments(appointments)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := commit(ctx); err != nil {
		s.logger.Error("Replace: failed to commit collections: %v", err)
		return err
	}
	s.engineers = nextEngineers
	s.appointments = nextAppointments

	s.logger.Info("Replace: replaced with %d appointments and %d engineers", len(nextAppointments), len(nextEngineers))
	return nil
}

func isSet(v string) bool {
	return v != "" && v != "all"
}

func (s *Service) appointmentIndex(id string) int {
	for i, a := range s.appointments {
		if a.ID == id {
			return i
		}
	}
	return -1
}

// engineerName resolves an engineer id; a missing or dangling reference is "Unassigned"
func (s *Service) engineerName(id string) string {
	if id == "" {
		return domain.UnassignedLabel
	}
	if idx := s.engineerIndex(id); idx >= 0 {
		return s.engineers[idx].Name
	}
	return domain.UnassignedLabel
}

func (s *Service) view(a *domain.Appointment) *models.Appointment {
	return models.FromDomainAppointment(a, s.engineerName(a.Engineer))
}

func cloneAppointments(in []*domain.Appointment) []*domain.Appointment {
	out := make([]*domain.Appointment, len(in), len(in)+1)
	for i, a := range in {
		out[i] = a.Clone()
	}
	return out
}
