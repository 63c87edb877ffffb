// Package metrics holds the dashboard's Prometheus collectors.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "filmoradmin"

// Result label values.
const (
	ResultSuccess   = "success"
	ResultFailure   = "failure"
	ResultRejected  = "rejected"
	ResultSignedOut = "signed_out"
)

// Gate decision label values.
const (
	DecisionAllow        = "allow"
	DecisionLogin        = "redirect_login"
	DecisionHome         = "redirect_home"
	DecisionNotPermitted = "not_permitted"
)

type Metrics struct {
	logins    *prometheus.CounterVec
	refreshes *prometheus.CounterVec
	gate      *prometheus.CounterVec
	backend   *prometheus.HistogramVec
}

// New registers the collectors on reg. Pass prometheus.NewRegistry() in tests.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		logins: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "logins_total",
			Help:      "Credential exchanges by result.",
		}, []string{"result"}),
		refreshes: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "token_refreshes_total",
			Help:      "Access token refresh attempts by result.",
		}, []string{"result"}),
		gate: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "gate_decisions_total",
			Help:      "Authorization gate decisions.",
		}, []string{"decision"}),
		backend: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "backend_request_duration_seconds",
			Help:      "Latency of calls to the backend REST API.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"operation", "status"}),
	}
}

// The methods below are nil-safe so components can run without metrics in tests.

func (m *Metrics) Login(result string) {
	if m == nil {
		return
	}
	m.logins.WithLabelValues(result).Inc()
}

func (m *Metrics) Refresh(result string) {
	if m == nil {
		return
	}
	m.refreshes.WithLabelValues(result).Inc()
}

func (m *Metrics) Gate(decision string) {
	if m == nil {
		return
	}
	m.gate.WithLabelValues(decision).Inc()
}

func (m *Metrics) Backend(operation, status string, seconds float64) {
	if m == nil {
		return
	}
	m.backend.WithLabelValues(operation, status).Observe(seconds)
}
