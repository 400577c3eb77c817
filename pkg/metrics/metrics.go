package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Исходы вызовов внешнего API
const (
	OutcomeSuccess      = "success"
	OutcomeClientError  = "client_error"
	OutcomeServerError  = "server_error"
	OutcomeNetworkError = "network_error"
	OutcomeInvalid      = "invalid_response"
)

// Результаты обращения к кэшу
const (
	CacheHit   = "hit"
	CacheMiss  = "miss"
	CacheError = "error"
)

// Metrics набор prometheus метрик сервиса
// Все методы безопасны для nil-получателя: если метрики выключены, вызовы ничего не делают
type Metrics struct {
	httpRequestsTotal       *prometheus.CounterVec
	httpRequestDuration     *prometheus.HistogramVec
	upstreamRequestsTotal   *prometheus.CounterVec
	upstreamRequestDuration *prometheus.HistogramVec
	staleResponsesTotal     prometheus.Counter
	cacheRequestsTotal      *prometheus.CounterVec
	dbQueriesTotal          *prometheus.CounterVec
	dbQueryDuration         *prometheus.HistogramVec
	dbConnections           *prometheus.GaugeVec
}

// New создает и регистрирует метрики в prometheus.DefaultRegisterer
func New(serviceName string) *Metrics {
	return NewWithRegistry(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegistry создает и регистрирует метрики в указанном реестре
func NewWithRegistry(serviceName string, reg prometheus.Registerer) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		httpRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests served by the dashboard API",
			ConstLabels: constLabels,
		}, []string{"method", "path", "status"}),
		httpRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "Duration of HTTP requests served by the dashboard API",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "path"}),
		upstreamRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "upstream_requests_total",
			Help:        "Total number of calls to the barbershop API",
			ConstLabels: constLabels,
		}, []string{"endpoint", "outcome"}),
		upstreamRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "upstream_request_duration_seconds",
			Help:        "Duration of calls to the barbershop API",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"endpoint"}),
		staleResponsesTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "appointments_stale_responses_total",
			Help:        "Appointment list responses discarded because a newer fetch was issued",
			ConstLabels: constLabels,
		}),
		cacheRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "analytics_cache_requests_total",
			Help:        "Analytics cache lookups by result",
			ConstLabels: constLabels,
		}, []string{"result"}),
		dbQueriesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "db_queries_total",
			Help:        "Total number of journal database queries",
			ConstLabels: constLabels,
		}, []string{"operation", "status"}),
		dbQueryDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Duration of journal database queries",
			ConstLabels: constLabels,
			Buckets:     []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"operation"}),
		dbConnections: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_connections",
			Help:        "Journal database connection pool state",
			ConstLabels: constLabels,
		}, []string{"state"}),
	}

	reg.MustRegister(
		m.httpRequestsTotal,
		m.httpRequestDuration,
		m.upstreamRequestsTotal,
		m.upstreamRequestDuration,
		m.staleResponsesTotal,
		m.cacheRequestsTotal,
		m.dbQueriesTotal,
		m.dbQueryDuration,
		m.dbConnections,
	)

	return m
}

// ObserveHTTP фиксирует обработанный HTTP запрос
func (m *Metrics) ObserveHTTP(method, path string, status int, d time.Duration) {
	if m == nil {
		return
	}
	m.httpRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(method, path).Observe(d.Seconds())
}

// ObserveUpstream фиксирует вызов внешнего API
func (m *Metrics) ObserveUpstream(endpoint, outcome string, d time.Duration) {
	if m == nil {
		return
	}
	m.upstreamRequestsTotal.WithLabelValues(endpoint, outcome).Inc()
	m.upstreamRequestDuration.WithLabelValues(endpoint).Observe(d.Seconds())
}

// IncStaleResponse фиксирует отброшенный устаревший ответ
func (m *Metrics) IncStaleResponse() {
	if m == nil {
		return
	}
	m.staleResponsesTotal.Inc()
}

// ObserveCache фиксирует обращение к кэшу аналитики
func (m *Metrics) ObserveCache(result string) {
	if m == nil {
		return
	}
	m.cacheRequestsTotal.WithLabelValues(result).Inc()
}

// ObserveDBQuery фиксирует запрос к базе данных
func (m *Metrics) ObserveDBQuery(operation string, failed bool, d time.Duration) {
	if m == nil {
		return
	}
	status := "ok"
	if failed {
		status = "error"
	}
	m.dbQueriesTotal.WithLabelValues(operation, status).Inc()
	m.dbQueryDuration.WithLabelValues(operation).Observe(d.Seconds())
}

// SetDBConnections фиксирует состояние пула соединений
func (m *Metrics) SetDBConnections(open, inUse, idle int) {
	if m == nil {
		return
	}
	m.dbConnections.WithLabelValues("open").Set(float64(open))
	m.dbConnections.WithLabelValues("in_use").Set(float64(inUse))
	m.dbConnections.WithLabelValues("idle").Set(float64(idle))
}
