package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var latencyBuckets = []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1}

// Metrics tracks wallet provisioning, authentication and HTTP traffic.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	AccountsProvisioned *prometheus.CounterVec
	ProvisionRejected   *prometheus.CounterVec
	ProvisionDuration   prometheus.Histogram
	AuthAttempts        *prometheus.CounterVec
	HTTPRequests        *prometheus.CounterVec
	HTTPDuration        *prometheus.HistogramVec
}

// New registers the metrics with the default registry
func New() *Metrics {
	return NewWithRegistry(prometheus.DefaultRegisterer)
}

// NewWithRegistry registers the metrics with reg
func NewWithRegistry(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		AccountsProvisioned: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "wallet_accounts_provisioned_total",
			Help: "Wallet accounts created, by account kind",
		}, []string{"kind"}),
		ProvisionRejected: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "wallet_account_provision_rejected_total",
			Help: "Rejected wallet account requests, by error code",
		}, []string{"code"}),
		ProvisionDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "wallet_account_provision_duration_seconds",
			Help:    "Duration of wallet account provisioning",
			Buckets: latencyBuckets,
		}),
		AuthAttempts: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "wallet_auth_attempts_total",
			Help: "Login and refresh attempts, by operation and outcome",
		}, []string{"operation", "outcome"}),
		HTTPRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "wallet_http_requests_total",
			Help: "HTTP requests, by method, route and status",
		}, []string{"method", "route", "status"}),
		HTTPDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "wallet_http_request_duration_seconds",
			Help:    "HTTP request latency, by method and route",
			Buckets: latencyBuckets,
		}, []string{"method", "route"}),
	}
}

// IncrementProvisioned records a created wallet account
func (m *Metrics) IncrementProvisioned(kind string) {
	if m == nil {
		return
	}
	m.AccountsProvisioned.WithLabelValues(kind).Inc()
}

// IncrementRejected records a provisioning failure
func (m *Metrics) IncrementRejected(code string) {
	if m == nil {
		return
	}
	m.ProvisionRejected.WithLabelValues(code).Inc()
}

// ObserveProvision records the duration of a provisioning call.
// Call with time.Now() at the start of the operation.
func (m *Metrics) ObserveProvision(start time.Time) {
	if m == nil {
		return
	}
	m.ProvisionDuration.Observe(time.Since(start).Seconds())
}

// IncrementAuth records a login or refresh outcome
func (m *Metrics) IncrementAuth(operation, outcome string) {
	if m == nil {
		return
	}
	m.AuthAttempts.WithLabelValues(operation, outcome).Inc()
}

// ObserveHTTP records a served request
func (m *Metrics) ObserveHTTP(method, route, status string, start time.Time) {
	if m == nil {
		return
	}
	m.HTTPRequests.WithLabelValues(method, route, status).Inc()
	m.HTTPDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
}
