package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_Counters(t *testing.T) {
	m := NewWithRegistry(prometheus.NewRegistry())

	m.IncrementProvisioned("card")
	m.IncrementProvisioned("card")
	m.IncrementProvisioned("momo")
	m.IncrementRejected("CONFLICT")
	m.IncrementAuth("login", "success")
	m.ObserveProvision(time.Now())
	m.ObserveHTTP("POST", "/api/v1/wallet-accounts", "201", time.Now())

	assert.Equal(t, float64(2), testutil.ToFloat64(m.AccountsProvisioned.WithLabelValues("card")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.AccountsProvisioned.WithLabelValues("momo")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.ProvisionRejected.WithLabelValues("CONFLICT")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.AuthAttempts.WithLabelValues("login", "success")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.HTTPRequests.WithLabelValues("POST", "/api/v1/wallet-accounts", "201")))
}

func TestMetrics_NilReceiver(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.IncrementProvisioned("card")
		m.IncrementRejected("BAD_REQUEST")
		m.ObserveProvision(time.Now())
		m.IncrementAuth("refresh", "failure")
		m.ObserveHTTP("GET", "/health", "200", time.Now())
	})
}
