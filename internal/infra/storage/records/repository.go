package records

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/m04kA/SIA-BookingService/internal/domain"
	"github.com/m04kA/SIA-BookingService/internal/infra/storage/kv"
)

// Имена записей в хранилище
const (
	KeyEngineers           = "engineers"
	KeyAppointments        = "appointments"
	KeyAdminSettings       = "adminSettings"
	KeyCompanyAvailability = "companyAvailability"
)

// Snapshot набор записей для атомарного сохранения. nil поля не пишутся.
type Snapshot struct {
	Engineers    []*domain.Engineer
	Appointments []*domain.Appointment
	Settings     *domain.AdminSettings
	Availability *domain.CompanyAvailability
}

// Repository типизированный доступ к именованным JSON записям
type Repository struct {
	store Store
}

// NewRepository создает новый экземпляр репозитория
func NewRepository(store Store) *Repository {
	return &Repository{store: store}
}

// LoadEngineers возвращает список инженеров; отсутствие записи = пустой список
func (r *Repository) LoadEngineers(ctx context.Context) ([]*domain.Engineer, error) {
	engineers := make([]*domain.Engineer, 0)
	if err := r.load(ctx, KeyEngineers, &engineers); err != nil {
		if errors.Is(err, ErrRecordNotFound) {
			return []*domain.Engineer{}, nil
		}
		return nil, err
	}
	return engineers, nil
}

// LoadAppointments возвращает список записей на приём; отсутствие записи = пустой список
func (r *Repository) LoadAppointments(ctx context.Context) ([]*domain.Appointment, error) {
	appointments := make([]*domain.Appointment, 0)
	if err := r.load(ctx, KeyAppointments, &appointments); err != nil {
		if errors.Is(err, ErrRecordNotFound) {
			return []*domain.Appointment{}, nil
		}
		return nil, err
	}
	return appointments, nil
}

// LoadAdminSettings возвращает настройки или ErrRecordNotFound
func (r *Repository) LoadAdminSettings(ctx context.Context) (*domain.AdminSettings, error) {
	var settings domain.AdminSettings
	if err := r.load(ctx, KeyAdminSettings, &settings); err != nil {
		return nil, err
	}
	return &settings, nil
}

// LoadCompanyAvailability возвращает проекцию расписания или ErrRecordNotFound
func (r *Repository) LoadCompanyAvailability(ctx context.Context) (*domain.CompanyAvailability, error) {
	var availability domain.CompanyAvailability
	if err := r.load(ctx, KeyCompanyAvailability, &availability); err != nil {
		return nil, err
	}
	return &availability, nil
}

func (r *Repository) SaveEngineers(ctx context.Context, engineers []*domain.Engineer) error {
	return r.save(ctx, KeyEngineers, engineers)
}

func (r *Repository) SaveAppointments(ctx context.Context, appointments []*domain.Appointment) error {
	return r.save(ctx, KeyAppointments, appointments)
}

// SaveSnapshot атомарно записывает все непустые поля snapshot
func (r *Repository) SaveSnapshot(ctx context.Context, snapshot Snapshot) error {
	values := make(map[string][]byte, 4)

	add := func(key string, v interface{}) error {
		data, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("%w: %s: %v", ErrEncode, key, err)
		}
		values[key] = data
		return nil
	}

	if snapshot.Engineers != nil {
		if err := add(KeyEngineers, snapshot.Engineers); err != nil {
			return err
		}
	}
	if snapshot.Appointments != nil {
		if err := add(KeyAppointments, snapshot.Appointments); err != nil {
			return err
		}
	}
	if snapshot.Settings != nil {
		if err := add(KeyAdminSettings, snapshot.Settings); err != nil {
			return err
		}
	}
	if snapshot.Availability != nil {
		if err := add(KeyCompanyAvailability, snapshot.Availability); err != nil {
			return err
		}
	}

	if len(values) == 0 {
		return nil
	}
	if err := r.store.PutMany(ctx, values); err != nil {
		return fmt.Errorf("%w: SaveSnapshot: %v", ErrStore, err)
	}
	return nil
}

// Ping проверяет доступность хранилища
func (r *Repository) Ping(ctx context.Context) error {
	return r.store.Ping(ctx)
}

func (r *Repository) load(ctx context.Context, key string, dst interface{}) error {
	data, err := r.store.Get(ctx, key)
	if err != nil {
		if errors.Is(err, kv.ErrKeyNotFound) {
			return fmt.Errorf("%w: %s", ErrRecordNotFound, key)
		}
		return fmt.Errorf("%w: load %s: %v", ErrStore, key, err)
	}

	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrDecode, key, err)
	}
	return nil
}

func (r *Repository) save(ctx context.Context, key string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrEncode, key, err)
	}
	if err := r.store.Put(ctx, key, data); err != nil {
		return fmt.Errorf("%w: save %s: %v", ErrStore, key, err)
	}
	return nil
}
