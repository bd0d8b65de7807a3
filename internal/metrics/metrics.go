package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the portal's Prometheus metrics.
type Metrics struct {
	registry           *prometheus.Registry
	Submissions        *prometheus.CounterVec
	ValidationFailures *prometheus.CounterVec
	StepTransitions    *prometheus.CounterVec
	ActiveSessions     prometheus.Gauge
	RateLimited        prometheus.Counter
}

// New creates the metrics on a fresh registry that also carries the Go and
// process collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		Submissions: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "portal_submissions_total",
			Help: "Forms submitted successfully, by service",
		}, []string{"service"}),
		ValidationFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "portal_validation_failures_total",
			Help: "Step advances or submissions refused because of field errors, by form",
		}, []string{"form"}),
		StepTransitions: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "portal_step_transitions_total",
			Help: "Multi-step form transitions, by form and direction",
		}, []string{"form", "direction"}),
		ActiveSessions: factory.NewGauge(prometheus.GaugeOpts{
			Name: "portal_sessions_active",
			Help: "Visitor sessions currently held in memory",
		}),
		RateLimited: factory.NewCounter(prometheus.CounterOpts{
			Name: "portal_rate_limited_total",
			Help: "Requests rejected by the per-IP rate limit",
		}),
	}
}

// IncrementSubmissions counts a successful submission.
func (m *Metrics) IncrementSubmissions(service string) {
	m.Submissions.WithLabelValues(service).Inc()
}

// IncrementValidationFailures counts a refused advance or submission.
func (m *Metrics) IncrementValidationFailures(form string) {
	m.ValidationFailures.WithLabelValues(form).Inc()
}

// IncrementStepTransition counts a move between steps; direction is
// "forward" or "back".
func (m *Metrics) IncrementStepTransition(form, direction string) {
	m.StepTransitions.WithLabelValues(form, direction).Inc()
}

// SetActiveSessions records the number of live sessions.
func (m *Metrics) SetActiveSessions(n int) {
	m.ActiveSessions.Set(float64(n))
}

// IncrementRateLimited counts a request rejected by the rate limiter.
func (m *Metrics) IncrementRateLimited() {
	m.RateLimited.Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
