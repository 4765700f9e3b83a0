package export_data

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
)

// Backuper выполняет резервное копирование
type Backuper interface {
	Backup(ctx context.Context) (*BackupResult, error)
}

// Scheduler запускает резервное копирование по cron расписанию
type Scheduler struct {
	cron    *cron.Cron
	timeout time.Duration
	logger  Logger
}

// NewScheduler создает планировщик. spec стандартное cron выражение из пяти полей
// или дескриптор вида "@daily".
func NewScheduler(backuper Backuper, spec string, location *time.Location, timeout time.Duration, logger Logger) (*Scheduler, error) {
	if location == nil {
		location = time.Local
	}
	if timeout <= 0 {
		timeout = time.Minute
	}

	s := &Scheduler{
		cron:    cron.New(cron.WithLocation(location)),
		timeout: timeout,
		logger:  logger,
	}

	_, err := s.cron.AddFunc(spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
		defer cancel()

		result, err := backuper.Backup(ctx)
		if err != nil {
			s.logger.Error("ScheduledBackup: %v", err)
			return
		}
		s.logger.Info("ScheduledBackup: size=%s path=%q", result.Size, result.Path)
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidSchedule, spec, err)
	}
	return s, nil
}

// Start запускает планировщик в отдельной горутине
func (s *Scheduler) Start() {
	s.cron.Start()
	s.logger.Info("ScheduledBackup: scheduler started, next run at %s", s.NextRun().Format(time.RFC3339))
}

// NextRun время следующего запуска
func (s *Scheduler) NextRun() time.Time {
	entries := s.cron.Entries()
	if len(entries) == 0 {
		return time.Time{}
	}
	if !entries[0].Next.IsZero() {
		return entries[0].Next
	}
	return entries[0].Schedule.Next(time.Now())
}

// Stop останавливает планировщик и ждёт завершения запущенного копирования или отмены ctx
func (s *Scheduler) Stop(ctx context.Context) {
	done := s.cron.Stop()
	select {
	case <-done.Done():
	case <-ctx.Done():
		s.logger.Warn("ScheduledBackup: stop timed out")
	}
}
