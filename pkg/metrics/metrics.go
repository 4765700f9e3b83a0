package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics набор prometheus-метрик сервиса
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	BookingsCreatedTotal      *prometheus.CounterVec
	NotificationFailuresTotal *prometheus.CounterVec
	VerificationFailuresTotal prometheus.Counter
	StoreOperationDuration    *prometheus.HistogramVec
	StoreOperationErrorsTotal *prometheus.CounterVec
}

// New создает метрики и регистрирует их в глобальном реестре
func New(serviceName string) *Metrics {
	return NewWithRegisterer(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegisterer создает метрики в указанном реестре (удобно для тестов)
func NewWithRegisterer(serviceName string, reg prometheus.Registerer) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests.",
			ConstLabels: constLabels,
		}, []string{"method", "route", "status"}),

		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency.",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),

		BookingsCreatedTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "bookings_created_total",
			Help:        "Bookings persisted, by service.",
			ConstLabels: constLabels,
		}, []string{"service_type"}),

		NotificationFailuresTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "booking_notification_failures_total",
			Help:        "Booking notifications that could not be delivered.",
			ConstLabels: constLabels,
		}, []string{"recipient"}),

		VerificationFailuresTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "booking_verification_failures_total",
			Help:        "Booking submissions rejected by the bot check.",
			ConstLabels: constLabels,
		}),

		StoreOperationDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "store_operation_duration_seconds",
			Help:        "Key-value store operation latency.",
			ConstLabels: constLabels,
			Buckets:     []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		}, []string{"operation"}),

		StoreOperationErrorsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "store_operation_errors_total",
			Help:        "Failed key-value store operations.",
			ConstLabels: constLabels,
		}, []string{"operation"}),
	}

	reg.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.BookingsCreatedTotal,
		m.NotificationFailuresTotal,
		m.VerificationFailuresTotal,
		m.StoreOperationDuration,
		m.StoreOperationErrorsTotal,
	)

	return m
}

// ObserveHTTP фиксирует один HTTP запрос
func (m *Metrics) ObserveHTTP(method, route string, status int, elapsed time.Duration) {
	m.HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// ObserveStore фиксирует операцию хранилища
func (m *Metrics) ObserveStore(operation string, elapsed time.Duration, err error) {
	m.StoreOperationDuration.WithLabelValues(operation).Observe(elapsed.Seconds())
	if err != nil {
		m.StoreOperationErrorsTotal.WithLabelValues(operation).Inc()
	}
}

func (m *Metrics) BookingCreated(serviceType string) {
	m.BookingsCreatedTotal.WithLabelValues(serviceType).Inc()
}

func (m *Metrics) NotificationFailed(recipient string) {
	m.NotificationFailuresTotal.WithLabelValues(recipient).Inc()
}

func (m *Metrics) VerificationFailed() {
	m.VerificationFailuresTotal.Inc()
}
