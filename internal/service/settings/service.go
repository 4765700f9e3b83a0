package settings

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/m04kA/SIA-BookingService/internal/domain"
	"github.com/m04kA/SIA-BookingService/internal/infra/storage/records"
)

// Service владелец adminSettings: профиль компании, учётные данные,
// предпочтения и расписание. Каждое изменение расписания также
// публикует проекцию companyAvailability.
type Service struct {
	mu       sync.RWMutex
	settings *domain.AdminSettings

	repo         RecordsRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса настроек. Перед использованием нужно вызвать Load.
func NewService(repo RecordsRepository, logger Logger) *Service {
	return &Service{
		repo:         repo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет часы (для тестов)
func (s *Service) WithTimeProvider(tp TimeProvider) *Service {
	s.timeProvider = tp
	return s
}

// Load читает настройки. При первом запуске создаёт настройки по умолчанию
// с учётными данными defaults и публикует проекцию расписания.
func (s *Service) Load(ctx context.Context, defaults domain.Credentials) error {
	current, err := s.repo.LoadAdminSettings(ctx)
	if err != nil && !errors.Is(err, records.ErrRecordNotFound) {
		s.logger.Error("Load: failed to load admin settings: %v", err)
		return fmt.Errorf("%w: Load - settings: %v", ErrInternal, err)
	}

	created := false
	if current == nil {
		fresh := domain.DefaultAdminSettings()
		fresh.Credentials = defaults
		current = &fresh
		created = true
		s.logger.Info("Load: admin settings not found, using defaults for %q", defaults.Username)
	}
	normalize(current)

	snapshot := records.Snapshot{}
	if created {
		snapshot.Settings = current
	}

	if _, err := s.repo.LoadCompanyAvailability(ctx); err != nil {
		if !errors.Is(err, records.ErrRecordNotFound) {
			s.logger.Error("Load: failed to load company availability: %v", err)
			return fmt.Errorf("%w: Load - availability: %v", ErrInternal, err)
		}
		projection := domain.NewCompanyAvailability(current.Schedule, s.timeProvider.Now())
		snapshot.Availability = &projection
	}

	if err := s.repo.SaveSnapshot(ctx, snapshot); err != nil {
		s.logger.Error("Load: failed to persist initial records: %v", err)
		return fmt.Errorf("%w: Load - persist: %v", ErrInternal, err)
	}

	s.mu.Lock()
	s.settings = current
	s.mu.Unlock()

	s.logger.Info("Load: admin settings loaded (blocked dates=%d)", len(current.Schedule.BlockedDates))
	return nil
}

// normalize fills gaps left by older or hand-edited records
func normalize(settings *domain.AdminSettings) {
	if settings.Schedule.WorkingHours == nil {
		settings.Schedule.WorkingHours = domain.DefaultWorkingHours()
	}
	if settings.Schedule.BlockedDates == nil {
		settings.Schedule.BlockedDates = []domain.BlockedDate{}
	}
	if settings.Preferences.SessionTimeoutMinutes <= 0 {
		settings.Preferences.SessionTimeoutMinutes = domain.DefaultSessionTimeoutMinutes
	}
}

// Settings возвращает копию текущих настроек
func (s *Service) Settings(_ context.Context) (domain.AdminSettings, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.settings == nil {
		return domain.AdminSettings{}, ErrNotLoaded
	}
	return s.settings.Clone(), nil
}

// Preferences возвращает предпочтения администратора
func (s *Service) Preferences(ctx context.Context) (domain.Preferences, error) {
	settings, err := s.Settings(ctx)
	if err != nil {
		return domain.Preferences{}, err
	}
	return settings.Preferences, nil
}

// Profile возвращает профиль компании
func (s *Service) Profile(ctx context.Context) (domain.CompanyProfile, error) {
	settings, err := s.Settings(ctx)
	if err != nil {
		return domain.CompanyProfile{}, err
	}
	return settings.Profile, nil
}

// Credentials возвращает учётные данные администратора
func (s *Service) Credentials(ctx context.Context) (domain.Credentials, error) {
	settings, err := s.Settings(ctx)
	if err != nil {
		return domain.Credentials{}, err
	}
	return settings.Credentials, nil
}

// CompanyAvailability читает опубликованную проекцию расписания.
// Если проекции ещё нет, строит её из текущих настроек.
func (s *Service) CompanyAvailability(ctx context.Context) (domain.CompanyAvailability, error) {
	projection, err := s.repo.LoadCompanyAvailability(ctx)
	if err == nil {
		return *projection, nil
	}
	if !errors.Is(err, records.ErrRecordNotFound) {
		return domain.CompanyAvailability{}, fmt.Errorf("%w: CompanyAvailability: %v", ErrInternal, err)
	}

	settings, err := s.Settings(ctx)
	if err != nil {
		return domain.CompanyAvailability{}, err
	}
	return domain.NewCompanyAvailability(settings.Schedule, s.timeProvider.Now()), nil
}

// SaveWorkingHours заменяет недельное расписание
func (s *Service) SaveWorkingHours(ctx context.Context, hours domain.WorkingHours) (domain.ScheduleConfig, error) {
	if err := hours.Validate(); err != nil {
		s.logger.Warn("SaveWorkingHours: invalid working hours: %v", err)
		return domain.ScheduleConfig{}, err
	}

	return s.mutateSchedule(ctx, "SaveWorkingHours", func(schedule *domain.ScheduleConfig) error {
		schedule.WorkingHours = hours.Clone()
		return nil
	})
}

// BlockDate добавляет дату в список заблокированных
func (s *Service) BlockDate(ctx context.Context, blocked domain.BlockedDate) (domain.ScheduleConfig, error) {
	blocked.Date = strings.TrimSpace(blocked.Date)
	blocked.Reason = strings.TrimSpace(blocked.Reason)
	if err := blocked.Validate(); err != nil {
		s.logger.Warn("BlockDate: invalid date %q", blocked.Date)
		return domain.ScheduleConfig{}, err
	}

	return s.mutateSchedule(ctx, "BlockDate", func(schedule *domain.ScheduleConfig) error {
		schedule.BlockedDates = append(schedule.BlockedDates, blocked)
		return nil
	})
}

// UnblockDate удаляет заблокированную дату по позиции в списке
func (s *Service) UnblockDate(ctx context.Context, index int) (domain.ScheduleConfig, error) {
	return s.mutateSchedule(ctx, "UnblockDate", func(schedule *domain.ScheduleConfig) error {
		if index < 0 || index >= len(schedule.BlockedDates) {
			return &domain.NotFoundError{Entity: "blocked date", ID: fmt.Sprintf("#%d", index)}
		}
		schedule.BlockedDates = append(schedule.BlockedDates[:index], schedule.BlockedDates[index+1:]...)
		return nil
	})
}

// UpdateProfile обновляет профиль компании
func (s *Service) UpdateProfile(ctx context.Context, profile domain.CompanyProfile) (domain.AdminSettings, error) {
	profile.CompanyName = strings.TrimSpace(profile.CompanyName)
	profile.Email = strings.TrimSpace(profile.Email)
	profile.Phone = strings.TrimSpace(profile.Phone)
	profile.Address = strings.TrimSpace(profile.Address)
	if err := domain.Validate(profile); err != nil {
		s.logger.Warn("UpdateProfile: invalid profile: %v", err)
		return domain.AdminSettings{}, err
	}

	return s.mutate(ctx, "UpdateProfile", func(settings *domain.AdminSettings) error {
		settings.Profile = profile
		return nil
	})
}

// UpdatePreferences обновляет предпочтения администратора
func (s *Service) UpdatePreferences(ctx context.Context, prefs domain.Preferences) (domain.AdminSettings, error) {
	if err := domain.Validate(prefs); err != nil {
		s.logger.Warn("UpdatePreferences: invalid preferences: %v", err)
		return domain.AdminSettings{}, err
	}

	return s.mutate(ctx, "UpdatePreferences", func(settings *domain.AdminSettings) error {
		settings.Preferences = prefs
		return nil
	})
}

// UpdateCredentials сохраняет новые учётные данные
func (s *Service) UpdateCredentials(ctx context.Context, creds domain.Credentials) error {
	_, err := s.mutate(ctx, "UpdateCredentials", func(settings *domain.AdminSettings) error {
		settings.Credentials = creds
		return nil
	})
	return err
}

// RecordBackup фиксирует время и размер последней резервной копии
func (s *Service) RecordBackup(ctx context.Context, at time.Time, size string) (domain.AdminSettings, error) {
	return s.mutate(ctx, "RecordBackup", func(settings *domain.AdminSettings) error {
		backupAt := at
		settings.LastBackup = &backupAt
		settings.DatabaseSize = size
		return nil
	})
}

// Replace подменяет настройки целиком и публикует проекцию расписания (импорт).
// commit выполняется под блокировкой сервиса и должен сохранить next;
// при ошибке commit состояние в памяти не меняется.
func (s *Service) Replace(ctx context.Context, next domain.AdminSettings, commit func(context.Context) error) error {
	replacement := next.Clone()
	normalize(&replacement)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := commit(ctx); err != nil {
		s.logger.Error("Replace: failed to commit settings: %v", err)
		return err
	}
	s.settings = &replacement

	s.logger.Info("Replace: admin settings replaced (blocked dates=%d)", len(replacement.Schedule.BlockedDates))
	return nil
}

// mutate applies fn to a copy of the settings, persists it and swaps it in
func (s *Service) mutate(ctx context.Context, op string, fn func(*domain.AdminSettings) error) (domain.AdminSettings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.settings == nil {
		return domain.AdminSettings{}, ErrNotLoaded
	}

	next := s.settings.Clone()
	if err := fn(&next); err != nil {
		s.logger.Warn("%s: %v", op, err)
		return domain.AdminSettings{}, err
	}

	if err := s.repo.SaveSnapshot(ctx, records.Snapshot{Settings: &next}); err != nil {
		s.logger.Error("%s: failed to persist settings: %v", op, err)
		return domain.AdminSettings{}, fmt.Errorf("%w: %s - persist: %v", ErrInternal, op, err)
	}
	s.settings = &next

	s.logger.Info("%s: admin settings saved", op)
	return next.Clone(), nil
}

// mutateSchedule like mutate, but also republishes the availability projection
// in the same atomic write
func (s *Service) mutateSchedule(ctx context.Context, op string, fn func(*domain.ScheduleConfig) error) (domain.ScheduleConfig, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.settings == nil {
		return domain.ScheduleConfig{}, ErrNotLoaded
	}

	next := s.settings.Clone()
	if err := fn(&next.Schedule); err != nil {
		s.logger.Warn("%s: %v", op, err)
		return domain.ScheduleConfig{}, err
	}

	projection := domain.NewCompanyAvailability(next.Schedule, s.timeProvider.Now())
	if err := s.repo.SaveSnapshot(ctx, records.Snapshot{Settings: &next, Availability: &projection}); err != nil {
		s.logger.Error("%s: failed to persist schedule: %v", op, err)
		return domain.ScheduleConfig{}, fmt.Errorf("%w: %s - persist: %v", ErrInternal, op, err)
	}
	s.settings = &next

	s.logger.Info("%s: schedule saved (blocked dates=%d)", op, len(next.Schedule.BlockedDates))
	return next.Schedule.Clone(), nil
}
