package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	statusSuccess = "success"
	statusError   = "error"

	resultHit  = "hit"
	resultMiss = "miss"
)

// Metrics holds all Prometheus metrics for the API.
type Metrics struct {
	// HTTP request metrics
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	// Catalog metrics
	lookupsTotal      *prometheus.CounterVec
	catalogLoadsTotal *prometheus.CounterVec
	catalogEntries    prometheus.Gauge
}

// NewMetrics creates and registers all Prometheus metrics.
func NewMetrics() *Metrics {
	return &Metrics{
		httpRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "mocat_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "endpoint", "status_code"},
		),

		httpRequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "mocat_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "endpoint"},
		),

		lookupsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "mocat_lookups_total",
				Help: "Total number of translation lookups",
			},
			[]string{"result"},
		),

		catalogLoadsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "mocat_catalog_loads_total",
				Help: "Total number of catalog load attempts",
			},
			[]string{"status"},
		),

		catalogEntries: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "mocat_catalog_entries",
				Help: "Number of entries in the loaded catalog",
			},
		),
	}
}

// RecordHTTPRequest records an HTTP request.
func (m *Metrics) RecordHTTPRequest(method, endpoint string, statusCode int, duration time.Duration) {
	statusCodeStr := strconv.Itoa(statusCode)

	m.httpRequestsTotal.WithLabelValues(method, endpoint, statusCodeStr).Inc()
	m.httpRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// RecordLookup records a translation lookup. A translation equal to the
// requested id counts as a miss; the identity fallback makes the two
// indistinguishable at this level.
func (m *Metrics) RecordLookup(hit bool) {
	result := resultMiss
	if hit {
		result = resultHit
	}
	m.lookupsTotal.WithLabelValues(result).Inc()
}

// RecordLoad records a catalog load attempt.
func (m *Metrics) RecordLoad(success bool) {
	status := statusSuccess
	if !success {
		status = statusError
	}
	m.catalogLoadsTotal.WithLabelValues(status).Inc()
}

// SetCatalogEntries updates the loaded-entries gauge.
func (m *Metrics) SetCatalogEntries(count int) {
	m.catalogEntries.Set(float64(count))
}

// InstrumentHandler instruments an HTTP handler with metrics.
func (m *Metrics) InstrumentHandler(method, endpoint string, handler http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		handler(rw, r)

		m.RecordHTTPRequest(method, endpoint, rw.statusCode, time.Since(start))
	}
}
