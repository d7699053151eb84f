package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Consumer event outcomes recorded per processed delivery.
const (
	EventOutcomeApplied   = "applied"
	EventOutcomeMalformed = "malformed"
	EventOutcomeUnknown   = "unknown"
	EventOutcomeRequeued  = "requeued"
	EventOutcomeDropped   = "dropped"
)

// Metrics provides observability for the HTTP surface and the ledger consumer.
type Metrics struct {
	// Ledger consumer outcomes by ack/nack decision
	ConsumerEvents *prometheus.CounterVec

	// HTTP requests by method, route, and status
	HTTPRequests *prometheus.CounterVec

	// HTTP request latency by route
	HTTPLatency *prometheus.HistogramVec
}

// New creates a Metrics instance with all collectors registered on reg.
func New(reg prometheus.Registerer) *Metrics {
	return &Metrics{
		ConsumerEvents: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "userservice_consumer_events_total",
			Help: "Total order events processed by the ledger consumer, by outcome",
		}, []string{"outcome"}),

		HTTPRequests: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "userservice_http_requests_total",
			Help: "Total HTTP requests by method, route, and status code",
		}, []string{"method", "route", "status"}),

		HTTPLatency: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Name:    "userservice_http_request_duration_seconds",
			Help:    "HTTP request latency by route",
			Buckets: prometheus.DefBuckets,
		}, []string{"route"}),
	}
}

// ObserveEvent records a consumer outcome.
func (m *Metrics) ObserveEvent(outcome string) {
	if m != nil {
		m.ConsumerEvents.WithLabelValues(outcome).Inc()
	}
}

// ObserveHTTPRequest records one served request.
func (m *Metrics) ObserveHTTPRequest(method, route, status string, d time.Duration) {
	if m != nil {
		m.HTTPRequests.WithLabelValues(method, route, status).Inc()
		m.HTTPLatency.WithLabelValues(route).Observe(d.Seconds())
	}
}
