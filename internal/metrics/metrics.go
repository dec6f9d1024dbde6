// Package metrics exposes Prometheus collectors for the HTTP surface and the
// invoice repositories.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "invoice_register"

// Metrics groups the collectors used by the service. A nil *Metrics is valid
// and records nothing.
type Metrics struct {
	RequestsTotal       *prometheus.CounterVec
	RequestDuration     *prometheus.HistogramVec
	RepositoryCalls     *prometheus.CounterVec
	RepositoryDuration  *prometheus.HistogramVec
	ResponseErrorsTotal *prometheus.CounterVec
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		RequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		RequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
			},
			[]string{"method", "route"},
		),
		RepositoryCalls: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "repository_calls_total",
				Help:      "Total number of repository calls",
			},
			[]string{"operation", "status"},
		),
		RepositoryDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "repository_call_duration_seconds",
				Help:      "Repository call duration in seconds",
				Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
			},
			[]string{"operation"},
		),
		ResponseErrorsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "response_errors_total",
				Help:      "Total number of error responses by resource and error kind",
			},
			[]string{"resource", "kind"},
		),
	}

	reg.MustRegister(
		m.RequestsTotal,
		m.RequestDuration,
		m.RepositoryCalls,
		m.RepositoryDuration,
		m.ResponseErrorsTotal,
	)

	return m
}

// ObserveRequest records a finished HTTP request
func (m *Metrics) ObserveRequest(method, route string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	if route == "" {
		route = "unmatched"
	}
	m.RequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.RequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// ObserveRepositoryCall records a finished repository call
func (m *Metrics) ObserveRepositoryCall(operation string, started time.Time, err error) {
	if m == nil {
		return
	}
	status := "success"
	if err != nil {
		status = "error"
	}
	m.RepositoryCalls.WithLabelValues(operation, status).Inc()
	m.RepositoryDuration.WithLabelValues(operation).Observe(time.Since(started).Seconds())
}

// ObserveErrorResponse records an error envelope sent for resource
func (m *Metrics) ObserveErrorResponse(resource, kind string) {
	if m == nil {
		return
	}
	m.ResponseErrorsTotal.WithLabelValues(resource, kind).Inc()
}
