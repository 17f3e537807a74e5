package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics набор метрик сервиса
// Каждый экземпляр использует собственный registry, поэтому в тестах можно создавать несколько
type Metrics struct {
	registry *prometheus.Registry

	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	BookingsCreatedTotal *prometheus.CounterVec
	BookingStatusUpdates *prometheus.CounterVec

	StorageOperationDuration *prometheus.HistogramVec
	DBQueryDuration          *prometheus.HistogramVec
	DBOpenConnections        prometheus.Gauge
	DBInUseConnections       prometheus.Gauge
}

// New создает и регистрирует метрики с префиксом namespace
func New(namespace string) *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		registry: registry,
		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		}, []string{"method", "route", "status"}),
		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		BookingsCreatedTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bookings_created_total",
			Help:      "Number of bookings created, by wash service",
		}, []string{"service_id"}),
		BookingStatusUpdates: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "booking_status_updates_total",
			Help:      "Number of booking status updates, by new status",
		}, []string{"status"}),
		StorageOperationDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "storage_operation_duration_seconds",
			Help:      "Key-value storage operation latency",
			Buckets:   []float64{.0005, .001, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"backend", "operation", "result"}),
		DBQueryDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "db_query_duration_seconds",
			Help:      "SQL query latency",
			Buckets:   []float64{.0005, .001, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"operation"}),
		DBOpenConnections: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "db_open_connections",
			Help:      "Number of established DB connections",
		}),
		DBInUseConnections: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "db_in_use_connections",
			Help:      "Number of DB connections currently in use",
		}),
	}

	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.BookingsCreatedTotal,
		m.BookingStatusUpdates,
		m.StorageOperationDuration,
		m.DBQueryDuration,
		m.DBOpenConnections,
		m.DBInUseConnections,
	)

	return m
}

// Handler HTTP handler для эндпоинта /metrics
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry возвращает registry (используется в тестах)
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// ObserveStorage записывает длительность операции хранилища
func (m *Metrics) ObserveStorage(backend, operation string, err error, started time.Time) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.StorageOperationDuration.WithLabelValues(backend, operation, result).Observe(time.Since(started).Seconds())
}

// BookingCreated увеличивает счетчик созданных бронирований
func (m *Metrics) BookingCreated(serviceID string) {
	m.BookingsCreatedTotal.WithLabelValues(serviceID).Inc()
}

// BookingStatusUpdated увеличивает счетчик смен статуса
func (m *Metrics) BookingStatusUpdated(status string) {
	m.BookingStatusUpdates.WithLabelValues(status).Inc()
}
