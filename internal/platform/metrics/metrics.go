// Package metrics registers the Prometheus instruments exposed on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the application.
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	LedgerEventsTotal   *prometheus.CounterVec
}

// New creates and registers all Prometheus metrics.
func New() *Metrics {
	return &Metrics{
		HTTPRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "asset_exchange_http_requests_total",
			Help: "Total number of HTTP requests, by method, route, and status code",
		}, []string{"method", "route", "status"}),
		HTTPRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "asset_exchange_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds, by method and route",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		LedgerEventsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "asset_exchange_ledger_events_total",
			Help: "Total number of ledger event appends, by event type; counted at append time, so a rolled-back transaction still counts",
		}, []string{"type"}),
	}
}

// ObserveRequest records one finished HTTP request.
func (m *Metrics) ObserveRequest(method, route, status string, seconds float64) {
	m.HTTPRequestsTotal.WithLabelValues(method, route, status).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, route).Observe(seconds)
}

// IncrementLedgerEvent counts one appended ledger event.
func (m *Metrics) IncrementLedgerEvent(eventType string) {
	m.LedgerEventsTotal.WithLabelValues(eventType).Inc()
}
