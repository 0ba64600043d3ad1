package observability

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus collectors for the service.
type Metrics struct {
	requests           *prometheus.CounterVec
	requestDuration    *prometheus.HistogramVec
	errors             *prometheus.CounterVec
	subscriptions      prometheus.Counter
	subscriptionErrors *prometheus.CounterVec
	confirmationEmails *prometheus.CounterVec
}

// NewMetrics creates and registers all collectors on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		requests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "HTTP requests by path, method and status.",
		}, []string{"path", "method", "status"}),
		requestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency.",
			Buckets: prometheus.DefBuckets,
		}, []string{"path", "method"}),
		errors: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "http_errors_total",
			Help: "HTTP error responses by path, method and error code.",
		}, []string{"path", "method", "code"}),
		subscriptions: factory.NewCounter(prometheus.CounterOpts{
			Name: "subscriptions_registered_total",
			Help: "Subscribers committed with status pending_confirmation.",
		}),
		subscriptionErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "subscriptions_failed_total",
			Help: "Failed subscription attempts by failure kind.",
		}, []string{"kind"}),
		confirmationEmails: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "confirmation_emails_total",
			Help: "Confirmation email attempts by result.",
		}, []string{"result"}),
	}
}

// RecordRequest increments counters for requests.
func (m *Metrics) RecordRequest(path, method string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.requests.WithLabelValues(path, method, strconv.Itoa(status)).Inc()
	m.requestDuration.WithLabelValues(path, method).Observe(duration.Seconds())
}

// RecordError increments error counters.
func (m *Metrics) RecordError(path, method, code string) {
	if m == nil {
		return
	}
	m.errors.WithLabelValues(path, method, code).Inc()
}

// RecordSubscriptionRegistered counts a committed registration.
func (m *Metrics) RecordSubscriptionRegistered() {
	if m == nil {
		return
	}
	m.subscriptions.Inc()
}

// RecordSubscriptionFailed counts a failed registration by kind.
func (m *Metrics) RecordSubscriptionFailed(kind string) {
	if m == nil {
		return
	}
	m.subscriptionErrors.WithLabelValues(kind).Inc()
}

// RecordConfirmationEmail counts confirmation email outcomes ("sent" or "failed").
func (m *Metrics) RecordConfirmationEmail(result string) {
	if m == nil {
		return
	}
	m.confirmationEmails.WithLabelValues(result).Inc()
}
