package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/brianvoe/gofakeit/v7"

	"github.com/m04kA/SIA-BookingService/internal/config"
	"github.com/m04kA/SIA-BookingService/internal/domain"
	"github.com/m04kA/SIA-BookingService/internal/infra/storage/factory"
	"github.com/m04kA/SIA-BookingService/internal/infra/storage/records"
	authService "github.com/m04kA/SIA-BookingService/internal/service/auth"
	availabilityService "github.com/m04kA/SIA-BookingService/internal/service/availability"
	bookingsService "github.com/m04kA/SIA-BookingService/internal/service/bookings"
	settingsService "github.com/m04kA/SIA-BookingService/internal/service/settings"
	"github.com/m04kA/SIA-BookingService/pkg/logger"
)

var surveyServices = []string{
	"Topographic Survey",
	"Utility Survey",
	"Boundary Survey",
	"Subdivision Survey",
	"Construction Layout",
}

func main() {
	var (
		configPath   = flag.String("config", "config.toml", "path to config.toml")
		engineers    = flag.Int("engineers", 4, "number of engineers to create")
		appointments = flag.Int("appointments", 20, "number of appointments to create")
		days         = flag.Int("days", 30, "spread appointments over this many days starting tomorrow")
		seed         = flag.Uint64("seed", 0, "random seed, 0 for a random one")
	)
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	location, err := cfg.App.Location()
	if err != nil {
		log.Fatal("Invalid timezone %q: %v", cfg.App.Timezone, err)
	}

	ctx := context.Background()

	store, err := factory.Open(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal("Failed to open storage: %v", err)
	}
	defer store.Close()
	repo := records.NewRepository(store)

	defaultHash, err := authService.HashPassword(cfg.Auth.DefaultPassword)
	if err != nil {
		log.Fatal("Failed to hash default password: %v", err)
	}

	settingsSvc := settingsService.NewService(repo, log)
	if err := settingsSvc.Load(ctx, domain.Credentials{Username: cfg.Auth.DefaultUsername, PasswordHash: defaultHash}); err != nil {
		log.Fatal("Failed to load admin settings: %v", err)
	}
	availabilitySvc := availabilityService.NewService(settingsSvc, location, log)
	bookingSvc := bookingsService.NewService(repo, availabilitySvc, location, log)
	if err := bookingSvc.Load(ctx); err != nil {
		log.Fatal("Failed to load bookings: %v", err)
	}

	faker := gofakeit.New(*seed)
	s := &seeder{
		faker:        faker,
		availability: availabilitySvc,
		bookings:     bookingSvc,
		location:     location,
		log:          log,
	}

	created, err := s.engineers(ctx, *engineers)
	if err != nil {
		log.Fatal("Failed to seed engineers: %v", err)
	}
	booked, err := s.appointments(ctx, *appointments, *days, created)
	if err != nil {
		log.Fatal("Failed to seed appointments: %v", err)
	}

	log.Info("Seed: done, %d engineers and %d appointments created (storage=%s)", len(created), booked, cfg.Storage.Driver)
}

type seeder struct {
	faker        *gofakeit.Faker
	availability *availabilityService.Service
	bookings     *bookingsService.Service
	location     *time.Location
	log          *logger.Logger
}

func (s *seeder) engineers(ctx context.Context, n int) ([]*domain.Engineer, error) {
	out := make([]*domain.Engineer, 0, n)
	for i := 0; i < n; i++ {
		status := domain.EngineerActive
		if i > 0 && s.faker.IntRange(1, 5) == 1 {
			status = domain.EngineerInactive
		}

		e, err := s.bookings.AddEngineer(ctx, domain.EngineerInput{
			Name:           s.faker.Name(),
			Email:          s.faker.Email(),
			Phone:          s.faker.Phone(),
			Specialization: s.faker.RandomString(surveyServices),
			Address:        s.faker.Address().Address,
			Status:         status,
		})
		if err != nil {
			return out, err
		}
		out = append(out, e)
	}
	return out, nil
}

// appointments создает записи только на свободные слоты; дни без слотов пропускаются
func (s *seeder) appointments(ctx context.Context, n, days int, engineers []*domain.Engineer) (int, error) {
	if days < 1 {
		days = 1
	}
	tomorrow := time.Now().In(s.location).AddDate(0, 0, 1)

	booked := 0
	for attempt := 0; booked < n && attempt < n*10; attempt++ {
		date := tomorrow.AddDate(0, 0, s.faker.IntRange(0, days-1)).Format(domain.DateFormat)

		day, err := s.availability.Slots(ctx, date)
		if err != nil {
			return booked, err
		}
		if !day.Available || len(day.Slots) == 0 {
			continue
		}

		appt, err := s.bookings.Create(ctx, domain.AppointmentDraft{
			FirstName: s.faker.FirstName(),
			LastName:  s.faker.LastName(),
			Email:     s.faker.Email(),
			Phone:     s.faker.Phone(),
			Service:   s.faker.RandomString(surveyServices),
			Date:      date,
			Time:      day.Slots[s.faker.IntRange(0, len(day.Slots)-1)],
		})
		if err != nil {
			return booked, err
		}
		booked++

		switch s.faker.IntRange(1, 4) {
		case 1:
			if _, err := s.bookings.UpdateStatus(ctx, appt.ID, domain.StatusCancelled); err != nil {
				return booked, err
			}
		case 2, 3:
			if _, err := s.bookings.UpdateStatus(ctx, appt.ID, domain.StatusConfirmed); err != nil {
				return booked, err
			}
			if e := pickActive(s.faker, engineers); e != nil {
				if _, err := s.bookings.AssignEngineer(ctx, appt.ID, e.ID); err != nil {
					return booked, err
				}
			}
		}
	}

	if booked < n {
		s.log.Warn("Seed: only %d of %d appointments fit into the schedule", booked, n)
	}
	return booked, nil
}

func pickActive(faker *gofakeit.Faker, engineers []*domain.Engineer) *domain.Engineer {
	active := make([]*domain.Engineer, 0, len(engineers))
	for _, e := range engineers {
		if e.IsActive() {
			active = append(active, e)
		}
	}
	if len(active) == 0 {
		return nil
	}
	return active[faker.IntRange(0, len(active)-1)]
}
