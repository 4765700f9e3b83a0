package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	assignEngineerHandler "github.com/m04kA/SIA-BookingService/internal/api/handlers/assign_engineer"
	blockDateHandler "github.com/m04kA/SIA-BookingService/internal/api/handlers/block_date"
	changePasswordHandler "github.com/m04kA/SIA-BookingService/internal/api/handlers/change_password"
	createBackupHandler "github.com/m04kA/SIA-BookingService/internal/api/handlers/create_backup"
	createBookingHandler "github.com/m04kA/SIA-BookingService/internal/api/handlers/create_booking"
	createEngineerHandler "github.com/m04kA/SIA-BookingService/internal/api/handlers/create_engineer"
	deleteEngineerHandler "github.com/m04kA/SIA-BookingService/internal/api/handlers/delete_engineer"
	exportBookingsCSVHandler "github.com/m04kA/SIA-BookingService/internal/api/handlers/export_bookings_csv"
	exportDataHandler "github.com/m04kA/SIA-BookingService/internal/api/handlers/export_data"
	getAvailabilityHandler "github.com/m04kA/SIA-BookingService/internal/api/handlers/get_availability"
	getAvailableSlotsHandler "github.com/m04kA/SIA-BookingService/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/m04kA/SIA-BookingService/internal/api/handlers/get_booking"
	getBookingsHandler "github.com/m04kA/SIA-BookingService/internal/api/handlers/get_bookings"
	getCalendarHandler "github.com/m04kA/SIA-BookingService/internal/api/handlers/get_calendar"
	getEngineerHandler "github.com/m04kA/SIA-BookingService/internal/api/handlers/get_engineer"
	getScheduleHandler "github.com/m04kA/SIA-BookingService/internal/api/handlers/get_schedule"
	getSettingsHandler "github.com/m04kA/SIA-BookingService/internal/api/handlers/get_settings"
	getStatsHandler "github.com/m04kA/SIA-BookingService/internal/api/handlers/get_stats"
	getUnavailableDatesHandler "github.com/m04kA/SIA-BookingService/internal/api/handlers/get_unavailable_dates"
	healthHandler "github.com/m04kA/SIA-BookingService/internal/api/handlers/health"
	importDataHandler "github.com/m04kA/SIA-BookingService/internal/api/handlers/import_data"
	listEngineersHandler "github.com/m04kA/SIA-BookingService/internal/api/handlers/list_engineers"
	loginHandler "github.com/m04kA/SIA-BookingService/internal/api/handlers/login"
	unblockDateHandler "github.com/m04kA/SIA-BookingService/internal/api/handlers/unblock_date"
	updateBookingStatusHandler "github.com/m04kA/SIA-BookingService/internal/api/handlers/update_booking_status"
	updateEngineerHandler "github.com/m04kA/SIA-BookingService/internal/api/handlers/update_engineer"
	updateSettingsHandler "github.com/m04kA/SIA-BookingService/internal/api/handlers/update_settings"
	updateWorkingHoursHandler "github.com/m04kA/SIA-BookingService/internal/api/handlers/update_working_hours"
	"github.com/m04kA/SIA-BookingService/internal/api/middleware"
	"github.com/m04kA/SIA-BookingService/internal/config"
	"github.com/m04kA/SIA-BookingService/internal/domain"
	"github.com/m04kA/SIA-BookingService/internal/infra/storage/factory"
	"github.com/m04kA/SIA-BookingService/internal/infra/storage/kv"
	"github.com/m04kA/SIA-BookingService/internal/infra/storage/records"
	"github.com/m04kA/SIA-BookingService/internal/integrations/mailer"
	"github.com/m04kA/SIA-BookingService/internal/integrations/recaptcha"
	authService "github.com/m04kA/SIA-BookingService/internal/service/auth"
	availabilityService "github.com/m04kA/SIA-BookingService/internal/service/availability"
	bookingsService "github.com/m04kA/SIA-BookingService/internal/service/bookings"
	settingsService "github.com/m04kA/SIA-BookingService/internal/service/settings"
	createBookingUC "github.com/m04kA/SIA-BookingService/internal/usecase/create_booking"
	exportDataUC "github.com/m04kA/SIA-BookingService/internal/usecase/export_data"
	"github.com/m04kA/SIA-BookingService/pkg/logger"
	"github.com/m04kA/SIA-BookingService/pkg/metrics"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SIA-BookingService...")

	location, err := cfg.App.Location()
	if err != nil {
		log.Fatal("Invalid timezone %q: %v", cfg.App.Timezone, err)
	}

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	ctx := context.Background()

	// Подключаем хранилище
	store, err := factory.Open(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal("Failed to open storage: %v", err)
	}
	defer store.Close()

	if metricsCollector != nil {
		store = kv.NewInstrumented(store, metricsCollector)
	}
	repo := records.NewRepository(store)

	// Инициализируем сервисы
	defaultHash, err := authService.HashPassword(cfg.Auth.DefaultPassword)
	if err != nil {
		log.Fatal("Failed to hash default password: %v", err)
	}

	settingsSvc := settingsService.NewService(repo, log)
	if err := settingsSvc.Load(ctx, domain.Credentials{
		Username:     cfg.Auth.DefaultUsername,
		PasswordHash: defaultHash,
	}); err != nil {
		log.Fatal("Failed to load admin settings: %v", err)
	}

	availabilitySvc := availabilityService.NewService(settingsSvc, location, log)

	bookingSvc := bookingsService.NewService(repo, availabilitySvc, location, log)
	if err := bookingSvc.Load(ctx); err != nil {
		log.Fatal("Failed to load bookings: %v", err)
	}

	authSvc := authService.NewService(settingsSvc, cfg.Auth.JWTSecret, log)

	// Инициализируем интеграции
	var verifier createBookingUC.Verifier = recaptcha.NopVerifier{}
	if cfg.Recaptcha.Enabled {
		verifier = recaptcha.NewClient(
			cfg.Recaptcha.VerifyURL,
			cfg.Recaptcha.Secret,
			time.Duration(cfg.Recaptcha.Timeout)*time.Second,
			log,
		)
		log.Info("reCAPTCHA verification enabled (timeout=%ds)", cfg.Recaptcha.Timeout)
	} else {
		log.Warn("reCAPTCHA verification disabled, any non-empty token is accepted")
	}

	var notifier createBookingUC.Notifier = mailer.NewLogSender(log)
	if cfg.Mail.Enabled {
		notifier = mailer.NewSMTPSender(mailer.SMTPConfig{
			Host:     cfg.Mail.Host,
			Port:     cfg.Mail.Port,
			Username: cfg.Mail.Username,
			Password: cfg.Mail.Password,
			From:     cfg.Mail.From,
			FromName: cfg.Mail.FromName,
			ReplyTo:  cfg.Mail.ReplyTo,
		}, log)
		log.Info("SMTP notifications enabled (host=%s, port=%d)", cfg.Mail.Host, cfg.Mail.Port)
	}

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingSvc,
		settingsSvc,
		verifier,
		notifier,
		cfg.Mail.AdminEmail,
		log,
	)
	if metricsCollector != nil {
		createBookingUseCase.WithMetrics(metricsCollector)
	}

	exportDataUseCase := exportDataUC.NewUseCase(bookingSvc, settingsSvc, repo, cfg.App.BackupDir, log)

	var scheduler *exportDataUC.Scheduler
	if cfg.App.BackupCron != "" {
		scheduler, err = exportDataUC.NewScheduler(
			exportDataUseCase,
			cfg.App.BackupCron,
			location,
			time.Duration(cfg.App.BackupTimeout)*time.Second,
			log,
		)
		if err != nil {
			log.Fatal("Failed to create backup scheduler: %v", err)
		}
		scheduler.Start()
		log.Info("Backup scheduler started (cron=%q, next=%s)", cfg.App.BackupCron, scheduler.NextRun().Format(time.RFC3339))
	}

	// Инициализируем handlers
	health := healthHandler.NewHandler(repo, log)

	handlers := routeHandlers{
		Live:  health.Live,
		Ready: health.Ready,

		GetAvailability:     getAvailabilityHandler.NewHandler(availabilitySvc, log).Handle,
		GetAvailableSlots:   getAvailableSlotsHandler.NewHandler(availabilitySvc, log).Handle,
		GetUnavailableDates: getUnavailableDatesHandler.NewHandler(availabilitySvc, log).Handle,
		GetCalendar:         getCalendarHandler.NewHandler(availabilitySvc, log).Handle,
		CreateBooking:       createBookingHandler.NewHandler(createBookingUseCase, log).Handle,
		Login:               loginHandler.NewHandler(authSvc, log).Handle,

		GetBookings:         getBookingsHandler.NewHandler(bookingSvc, log).Handle,
		GetBooking:          getBookingHandler.NewHandler(bookingSvc, log).Handle,
		UpdateBookingStatus: updateBookingStatusHandler.NewHandler(bookingSvc, log).Handle,
		AssignEngineer:      assignEngineerHandler.NewHandler(bookingSvc, log).Handle,

		ListEngineers:  listEngineersHandler.NewHandler(bookingSvc, log).Handle,
		CreateEngineer: createEngineerHandler.NewHandler(bookingSvc, log).Handle,
		GetEngineer:    getEngineerHandler.NewHandler(bookingSvc, log).Handle,
		UpdateEngineer: updateEngineerHandler.NewHandler(bookingSvc, log).Handle,
		DeleteEngineer: deleteEngineerHandler.NewHandler(bookingSvc, log).Handle,

		GetSchedule:        getScheduleHandler.NewHandler(settingsSvc, log).Handle,
		UpdateWorkingHours: updateWorkingHoursHandler.NewHandler(settingsSvc, log).Handle,
		BlockDate:          blockDateHandler.NewHandler(settingsSvc, log).Handle,
		UnblockDate:        unblockDateHandler.NewHandler(settingsSvc, log).Handle,

		GetSettings:    getSettingsHandler.NewHandler(settingsSvc, log).Handle,
		UpdateSettings: updateSettingsHandler.NewHandler(settingsSvc, log).Handle,
		ChangePassword: changePasswordHandler.NewHandler(authSvc, log).Handle,

		GetStats:          getStatsHandler.NewHandler(bookingSvc, log).Handle,
		ExportData:        exportDataHandler.NewHandler(exportDataUseCase, log).Handle,
		ExportBookingsCSV: exportBookingsCSVHandler.NewHandler(exportDataUseCase, log).Handle,
		ImportData:        importDataHandler.NewHandler(exportDataUseCase, log).Handle,
		CreateBackup:      createBackupHandler.NewHandler(exportDataUseCase, log).Handle,
	}

	limiter, err := middleware.NewRateLimiter(
		cfg.RateLimit.RequestsPerMinute,
		cfg.RateLimit.Burst,
		time.Duration(cfg.RateLimit.IdleExpiry)*time.Second,
		log,
	).WithTrustedProxies(cfg.RateLimit.TrustedProxies)
	if err != nil {
		log.Fatal("Invalid rate limiter config: %v", err)
	}

	// Настраиваем роутер
	mw := routerMiddleware{
		Auth:      middleware.Auth(authSvc, log),
		RateLimit: limiter.Middleware,
	}
	if cfg.Metrics.Enabled {
		mw.Metrics = middleware.MetricsMiddleware(metricsCollector)
		mw.MetricsPath = cfg.Metrics.Path
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}
	r := newRouter(handlers, mw)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s (storage=%s, timezone=%s)", addr, cfg.Storage.Driver, location)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	if scheduler != nil {
		scheduler.Stop(shutdownCtx)
	}

	if err := bookingSvc.Flush(shutdownCtx); err != nil {
		log.Error("Failed to flush bookings: %v", err)
	}

	log.Info("Server stopped gracefully")
}
