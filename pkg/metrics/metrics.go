package metrics

import (
	"database/sql"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics набор Prometheus метрик сервиса
type Metrics struct {
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	dbQueryDuration     *prometheus.HistogramVec
	dbConnections       *prometheus.GaugeVec
}

// New создает метрики и регистрирует их в глобальном реестре Prometheus
func New(serviceName string) *Metrics {
	return NewWithRegisterer(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegisterer создает метрики и регистрирует их в указанном реестре
func NewWithRegisterer(serviceName string, reg prometheus.Registerer) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		httpRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "path", "status"}),

		httpRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "path"}),

		dbQueryDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Database query latency",
			ConstLabels: constLabels,
			Buckets:     []float64{.001, .0025, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"operation", "status"}),

		dbConnections: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_connections",
			Help:        "Database connection pool state",
			ConstLabels: constLabels,
		}, []string{"state"}),
	}

	reg.MustRegister(
		m.httpRequestsTotal,
		m.httpRequestDuration,
		m.dbQueryDuration,
		m.dbConnections,
	)

	return m
}

// ObserveHTTPRequest фиксирует обработанный HTTP запрос
func (m *Metrics) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	m.httpRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// ObserveDBQuery фиксирует выполненный SQL запрос
func (m *Metrics) ObserveDBQuery(operation string, err error, duration time.Duration) {
	status := "ok"
	if err != nil && err != sql.ErrNoRows {
		status = "error"
	}
	m.dbQueryDuration.WithLabelValues(operation, status).Observe(duration.Seconds())
}

// SetDBPoolStats публикует состояние пула соединений
func (m *Metrics) SetDBPoolStats(stats sql.DBStats) {
	m.dbConnections.WithLabelValues("open").Set(float64(stats.OpenConnections))
	m.dbConnections.WithLabelValues("in_use").Set(float64(stats.InUse))
	m.dbConnections.WithLabelValues("idle").Set(float64(stats.Idle))
	m.dbConnections.WithLabelValues("wait_count").Set(float64(stats.WaitCount))
}
