package main

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// routeHandlers обработчики всех маршрутов сервиса
type routeHandlers struct {
	Live  http.HandlerFunc
	Ready http.HandlerFunc

	GetAvailability     http.HandlerFunc
	GetAvailableSlots   http.HandlerFunc
	GetUnavailableDates http.HandlerFunc
	GetCalendar         http.HandlerFunc
	CreateBooking       http.HandlerFunc
	Login               http.HandlerFunc

	GetBookings         http.HandlerFunc
	GetBooking          http.HandlerFunc
	UpdateBookingStatus http.HandlerFunc
	AssignEngineer      http.HandlerFunc

	ListEngineers  http.HandlerFunc
	CreateEngineer http.HandlerFunc
	GetEngineer    http.HandlerFunc
	UpdateEngineer http.HandlerFunc
	DeleteEngineer http.HandlerFunc

	GetSchedule        http.HandlerFunc
	UpdateWorkingHours http.HandlerFunc
	BlockDate          http.HandlerFunc
	UnblockDate        http.HandlerFunc

	GetSettings    http.HandlerFunc
	UpdateSettings http.HandlerFunc
	ChangePassword http.HandlerFunc

	GetStats          http.HandlerFunc
	ExportData        http.HandlerFunc
	ExportBookingsCSV http.HandlerFunc
	ImportData        http.HandlerFunc
	CreateBackup      http.HandlerFunc
}

// routerMiddleware промежуточные обработчики роутера.
// Metrics == nil отключает сбор метрик и эндпоинт MetricsPath.
type routerMiddleware struct {
	Auth        mux.MiddlewareFunc
	RateLimit   mux.MiddlewareFunc
	Metrics     mux.MiddlewareFunc
	MetricsPath string
}

// newRouter собирает маршруты API.
// Ограничитель частоты стоит только на POST /bookings и POST /admin/login,
// авторизация на всех /admin/* кроме /admin/login.
func newRouter(h routeHandlers, mw routerMiddleware) *mux.Router {
	r := mux.NewRouter()

	if mw.Metrics != nil {
		r.Use(mw.Metrics)
		r.Handle(mw.MetricsPath, promhttp.Handler()).Methods(http.MethodGet)
	}

	r.HandleFunc("/health/live", h.Live).Methods(http.MethodGet)
	r.HandleFunc("/health/ready", h.Ready).Methods(http.MethodGet)

	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES
	// ============================================================

	api.HandleFunc("/availability", h.GetAvailability).Methods(http.MethodGet)
	api.HandleFunc("/availability/slots", h.GetAvailableSlots).Methods(http.MethodGet)
	api.HandleFunc("/availability/unavailable-dates", h.GetUnavailableDates).Methods(http.MethodGet)
	api.HandleFunc("/availability/calendar", h.GetCalendar).Methods(http.MethodGet)

	limited := api.PathPrefix("").Subrouter()
	limited.Use(mw.RateLimit)

	limited.HandleFunc("/bookings", h.CreateBooking).Methods(http.MethodPost)
	limited.HandleFunc("/admin/login", h.Login).Methods(http.MethodPost)

	// ============================================================
	// ADMIN ROUTES (Authorization: Bearer <token>)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(mw.Auth)

	// --- Записи ---
	admin.HandleFunc("/bookings", h.GetBookings).Methods(http.MethodGet)
	admin.HandleFunc("/bookings/{bookingId}", h.GetBooking).Methods(http.MethodGet)
	admin.HandleFunc("/bookings/{bookingId}/status", h.UpdateBookingStatus).Methods(http.MethodPatch)
	admin.HandleFunc("/bookings/{bookingId}/engineer", h.AssignEngineer).Methods(http.MethodPatch)

	// --- Инженеры ---
	admin.HandleFunc("/engineers", h.ListEngineers).Methods(http.MethodGet)
	admin.HandleFunc("/engineers", h.CreateEngineer).Methods(http.MethodPost)
	admin.HandleFunc("/engineers/{engineerId}", h.GetEngineer).Methods(http.MethodGet)
	admin.HandleFunc("/engineers/{engineerId}", h.UpdateEngineer).Methods(http.MethodPut)
	admin.HandleFunc("/engineers/{engineerId}", h.DeleteEngineer).Methods(http.MethodDelete)

	// --- Расписание ---
	admin.HandleFunc("/schedule", h.GetSchedule).Methods(http.MethodGet)
	admin.HandleFunc("/schedule/working-hours", h.UpdateWorkingHours).Methods(http.MethodPut)
	admin.HandleFunc("/schedule/blocked-dates", h.BlockDate).Methods(http.MethodPost)
	admin.HandleFunc("/schedule/blocked-dates/{index:[0-9]+}", h.UnblockDate).Methods(http.MethodDelete)

	// --- Настройки ---
	admin.HandleFunc("/settings", h.GetSettings).Methods(http.MethodGet)
	admin.HandleFunc("/settings", h.UpdateSettings).Methods(http.MethodPut)
	admin.HandleFunc("/settings/password", h.ChangePassword).Methods(http.MethodPut)

	// --- Статистика и данные ---
	admin.HandleFunc("/stats", h.GetStats).Methods(http.MethodGet)
	admin.HandleFunc("/export", h.ExportData).Methods(http.MethodGet)
	admin.HandleFunc("/export/bookings.csv", h.ExportBookingsCSV).Methods(http.MethodGet)
	admin.HandleFunc("/import", h.ImportData).Methods(http.MethodPost)
	admin.HandleFunc("/backup", h.CreateBackup).Methods(http.MethodPost)

	return r
}
