package export_data

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"

	"github.com/m04kA/SIA-BookingService/internal/domain"
	"github.com/m04kA/SIA-BookingService/internal/infra/storage/records"
)

// UseCase выгрузка, загрузка и резервное копирование состояния
type UseCase struct {
	bookings     BookingStore
	settings     SettingsStore
	writer       SnapshotWriter
	backupDir    string
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case.
// Если backupDir не пуст, Backup дополнительно пишет файл выгрузки в этот каталог.
func NewUseCase(bookings BookingStore, settings SettingsStore, writer SnapshotWriter, backupDir string, logger Logger) *UseCase {
	return &UseCase{
		bookings:     bookings,
		settings:     settings,
		writer:       writer,
		backupDir:    backupDir,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет часы (для тестов)
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Export возвращает полную выгрузку с отметкой времени
func (uc *UseCase) Export(ctx context.Context) (*Export, error) {
	settings, err := uc.settings.Settings(ctx)
	if err != nil {
		uc.logger.Error("Export: failed to read settings: %v", err)
		return nil, fmt.Errorf("%w: Export - settings: %v", ErrInternal, err)
	}
	engineers, appointments := uc.bookings.Snapshot()

	uc.logger.Info("Export: %d appointments, %d engineers", len(appointments), len(engineers))
	return &Export{
		Settings:     settings,
		Engineers:    engineers,
		Appointments: appointments,
		ExportDate:   uc.timeProvider.Now().UTC(),
	}, nil
}

// WriteBookingsCSV пишет записи в CSV с колонками CSVHeader.
// Инженер выводится по имени, отсутствующий или удалённый как "Unassigned".
func (uc *UseCase) WriteBookingsCSV(ctx context.Context, w io.Writer) error {
	appointments, err := uc.bookings.List(ctx, domain.AppointmentFilter{})
	if err != nil {
		uc.logger.Error("WriteBookingsCSV: failed to list appointments: %v", err)
		return fmt.Errorf("%w: WriteBookingsCSV - list: %v", ErrInternal, err)
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(CSVHeader); err != nil {
		return fmt.Errorf("%w: WriteBookingsCSV - header: %v", ErrInternal, err)
	}
	for _, a := range appointments {
		row := []string{
			a.FullName(),
			a.Email,
			a.Phone,
			a.Service,
			a.Date,
			a.Time,
			string(a.Status),
			a.EngineerName,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("%w: WriteBookingsCSV - row %s: %v", ErrInternal, a.ID, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("%w: WriteBookingsCSV - flush: %v", ErrInternal, err)
	}

	uc.logger.Info("WriteBookingsCSV: exported %d appointments", len(appointments))
	return nil
}

// Import заменяет все три записи содержимым выгрузки и перечитывает состояние.
// Выгрузка проверяется целиком до записи.
func (uc *UseCase) Import(ctx context.Context, data *Export) error {
	if err := validateExport(data); err != nil {
		uc.logger.Warn("Import: rejected: %v", err)
		return err
	}

	settings := data.Settings.Clone()
	projection := domain.NewCompanyAvailability(settings.Schedule, uc.timeProvider.Now())
	snapshot := records.Snapshot{
		Engineers:    nonNilEngineers(data.Engineers),
		Appointments: nonNilAppointments(data.Appointments),
		Settings:     &settings,
		Availability: &projection,
	}

	// Порядок блокировок: настройки, затем записи.
	// Запись и подмена состояния в памяти происходят под обеими блокировками.
	err := uc.settings.Replace(ctx, settings, func(ctx context.Context) error {
		return uc.bookings.Replace(ctx, snapshot.Engineers, snapshot.Appointments, func(ctx context.Context) error {
			if err := uc.writer.SaveSnapshot(ctx, snapshot); err != nil {
				return fmt.Errorf("%w: Import - persist: %v", ErrInternal, err)
			}
			return nil
		})
	})
	if err != nil {
		uc.logger.Error("Import: failed to replace records: %v", err)
		return err
	}

	uc.logger.Info("Import: restored %d appointments, %d engineers (exported at %s)",
		len(snapshot.Appointments), len(snapshot.Engineers), data.ExportDate.Format("2006-01-02T15:04:05Z07:00"))
	return nil
}

// Backup фиксирует время и приблизительный размер состояния в KB.
// При заданном каталоге также пишет туда полную выгрузку.
func (uc *UseCase) Backup(ctx context.Context) (*BackupResult, error) {
	export, err := uc.Export(ctx)
	if err != nil {
		return nil, err
	}

	size, err := stateSize(export)
	if err != nil {
		uc.logger.Error("Backup: failed to encode state: %v", err)
		return nil, fmt.Errorf("%w: Backup - encode: %v", ErrInternal, err)
	}

	result := &BackupResult{At: export.ExportDate, Size: size}

	if uc.backupDir != "" {
		path, err := uc.writeBackupFile(export)
		if err != nil {
			uc.logger.Error("Backup: failed to write backup file: %v", err)
			return nil, fmt.Errorf("%w: Backup - write file: %v", ErrInternal, err)
		}
		result.Path = path
	}

	if _, err := uc.settings.RecordBackup(ctx, result.At, result.Size); err != nil {
		uc.logger.Error("Backup: failed to record backup: %v", err)
		return nil, fmt.Errorf("%w: Backup - record: %v", ErrInternal, err)
	}

	uc.logger.Info("Backup: done at %s, size=%s, path=%q", result.At.Format("2006-01-02T15:04:05Z07:00"), result.Size, result.Path)
	return result, nil
}

func (uc *UseCase) writeBackupFile(export *Export) (string, error) {
	if err := os.MkdirAll(uc.backupDir, 0o755); err != nil {
		return "", err
	}
	data, err := json.MarshalIndent(export, "", "  ")
	if err != nil {
		return "", err
	}
	name := fmt.Sprintf("backup-%s.json", export.ExportDate.Format("20060102-150405"))
	path := filepath.Join(uc.backupDir, name)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return "", err
	}
	return path, nil
}

// stateSize encoded size of settings, engineers and appointments rounded to KB
func stateSize(export *Export) (string, error) {
	data, err := json.Marshal(sizedState{
		Settings:     export.Settings,
		Engineers:    export.Engineers,
		Appointments: export.Appointments,
	})
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%d KB", int(math.Round(float64(len(data))/1024))), nil
}

func nonNilEngineers(in []*domain.Engineer) []*domain.Engineer {
	if in == nil {
		return []*domain.Engineer{}
	}
	return in
}

func nonNilAppointments(in []*domain.Appointment) []*domain.Appointment {
	if in == nil {
		return []*domain.Appointment{}
	}
	return in
}
