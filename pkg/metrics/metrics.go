// Package metrics содержит Prometheus-коллекторы сервиса: HTTP, база данных
// и connection pool. Все метрики имеют лейбл service для агрегации в общих дашбордах.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор Prometheus-коллекторов сервиса
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	DBQueryDuration *prometheus.HistogramVec
	DBQueryErrors   *prometheus.CounterVec

	DBConnectionsOpen  *prometheus.GaugeVec
	DBConnectionsIdle  *prometheus.GaugeVec
	DBConnectionsInUse *prometheus.GaugeVec

	TxTotal    *prometheus.CounterVec
	TxDuration *prometheus.HistogramVec
}

// New регистрирует и возвращает коллекторы. Имя сервиса передается
// лейблом service при записи каждой метрики.
func New() *Metrics {
	return &Metrics{
		HTTPRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"service", "method", "path", "status"}),

		HTTPRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"service", "method", "path"}),

		DBQueryDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "db_query_duration_seconds",
			Help:    "Database query latency in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}, []string{"service", "operation"}),

		DBQueryErrors: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "db_query_errors_total",
			Help: "Total number of failed database queries",
		}, []string{"service", "operation"}),

		DBConnectionsOpen: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_connections_open",
			Help: "Number of open database connections",
		}, []string{"service"}),

		DBConnectionsIdle: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_connections_idle",
			Help: "Number of idle database connections",
		}, []string{"service"}),

		DBConnectionsInUse: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_connections_in_use",
			Help: "Number of database connections in use",
		}, []string{"service"}),

		TxTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "db_transactions_total",
			Help: "Total number of database transactions by outcome",
		}, []string{"service", "outcome"}),

		TxDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "db_transaction_duration_seconds",
			Help:    "Database transaction latency in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}, []string{"service"}),
	}
}

// ObserveHTTPRequest записывает метрики одного HTTP запроса
func (m *Metrics) ObserveHTTPRequest(service, method, path, status string, seconds float64) {
	m.HTTPRequestsTotal.WithLabelValues(service, method, path, status).Inc()
	m.HTTPRequestDuration.WithLabelValues(service, method, path).Observe(seconds)
}

// ObserveDBQuery записывает метрики одного запроса к базе данных
func (m *Metrics) ObserveDBQuery(service, operation string, seconds float64, err error) {
	m.DBQueryDuration.WithLabelValues(service, operation).Observe(seconds)
	if err != nil {
		m.DBQueryErrors.WithLabelValues(service, operation).Inc()
	}
}

// ObserveTx записывает метрики завершенной транзакции
func (m *Metrics) ObserveTx(service, outcome string, seconds float64) {
	m.TxTotal.WithLabelValues(service, outcome).Inc()
	m.TxDuration.WithLabelValues(service).Observe(seconds)
}

// SetPoolStats записывает состояние connection pool
func (m *Metrics) SetPoolStats(service string, open, idle, inUse int) {
	m.DBConnectionsOpen.WithLabelValues(service).Set(float64(open))
	m.DBConnectionsIdle.WithLabelValues(service).Set(float64(idle))
	m.DBConnectionsInUse.WithLabelValues(service).Set(float64(inUse))
}
