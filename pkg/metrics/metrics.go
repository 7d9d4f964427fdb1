package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics набор prometheus-метрик сервиса
type Metrics struct {
	// HTTP
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// База данных
	DBQueryDuration      *prometheus.HistogramVec
	DBOpenConnections    *prometheus.GaugeVec
	DBInUseConnections   *prometheus.GaugeVec
	DBIdleConnections    *prometheus.GaugeVec
	DBWaitCount          *prometheus.GaugeVec
	DBMaxOpenConnections *prometheus.GaugeVec

	// Бизнес-метрики
	BookingsCreated  *prometheus.CounterVec
	BookingConflicts *prometheus.CounterVec
	BookingsStatus   *prometheus.CounterVec
	PriceQuotes      *prometheus.CounterVec
}

// New создает метрики и регистрирует их в глобальном реестре prometheus
func New(serviceName string) *Metrics {
	return NewWithRegistry(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegistry создает метрики и регистрирует их в переданном реестре
// Используется в тестах, чтобы не конфликтовать с глобальным реестром
func NewWithRegistry(serviceName string, reg prometheus.Registerer) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "route", "status"}),

		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),

		DBQueryDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Database query latency",
			ConstLabels: constLabels,
			Buckets:     []float64{.001, .0025, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"operation", "status"}),

		DBOpenConnections: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_open_connections",
			Help:        "Number of established connections",
			ConstLabels: constLabels,
		}, []string{"db"}),

		DBInUseConnections: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_in_use_connections",
			Help:        "Number of connections currently in use",
			ConstLabels: constLabels,
		}, []string{"db"}),

		DBIdleConnections: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_idle_connections",
			Help:        "Number of idle connections",
			ConstLabels: constLabels,
		}, []string{"db"}),

		DBWaitCount: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_wait_count",
			Help:        "Total number of connections waited for",
			ConstLabels: constLabels,
		}, []string{"db"}),

		DBMaxOpenConnections: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_max_open_connections",
			Help:        "Maximum number of open connections",
			ConstLabels: constLabels,
		}, []string{"db"}),

		BookingsCreated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "bookings_created_total",
			Help:        "Bookings created, by initial status",
			ConstLabels: constLabels,
		}, []string{"status"}),

		BookingConflicts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "booking_conflicts_total",
			Help:        "Booking attempts rejected by the availability check, by conflict kind",
			ConstLabels: constLabels,
		}, []string{"kind"}),

		BookingsStatus: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "booking_status_transitions_total",
			Help:        "Booking status transitions",
			ConstLabels: constLabels,
		}, []string{"status"}),

		PriceQuotes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "price_quotes_total",
			Help:        "Price quotes computed, by peak/weekend flags",
			ConstLabels: constLabels,
		}, []string{"peak", "weekend"}),
	}

	reg.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.DBQueryDuration,
		m.DBOpenConnections,
		m.DBInUseConnections,
		m.DBIdleConnections,
		m.DBWaitCount,
		m.DBMaxOpenConnections,
		m.BookingsCreated,
		m.BookingConflicts,
		m.BookingsStatus,
		m.PriceQuotes,
	)

	return m
}

// Discard метрики в отдельном реестре, который никто не читает
// Используется, когда метрики выключены в конфиге, чтобы не проверять nil в каждом месте
func Discard() *Metrics {
	return NewWithRegistry("discard", prometheus.NewRegistry())
}

// RecordBookingCreated фиксирует созданное бронирование
func (m *Metrics) RecordBookingCreated(status string) {
	m.BookingsCreated.WithLabelValues(status).Inc()
}

// RecordBookingConflict фиксирует отказ проверки доступности
func (m *Metrics) RecordBookingConflict(kind string) {
	m.BookingConflicts.WithLabelValues(kind).Inc()
}

// RecordStatusTransition фиксирует смену статуса бронирования
func (m *Metrics) RecordStatusTransition(status string) {
	m.BookingsStatus.WithLabelValues(status).Inc()
}

// RecordPriceQuote фиксирует расчет стоимости
func (m *Metrics) RecordPriceQuote(isPeak, isWeekend bool) {
	m.PriceQuotes.WithLabelValues(boolLabel(isPeak), boolLabel(isWeekend)).Inc()
}

func boolLabel(v bool) string {
	if v {
		return "true"
	}
	return "false"
}
