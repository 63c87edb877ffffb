package metrics_test

import (
	"testing"

	"github.com/66gu1/filmoradmin/internal/infrastructure/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestMetrics(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	m := metrics.New(reg)

	m.Login(metrics.ResultSuccess)
	m.Login(metrics.ResultFailure)
	m.Login(metrics.ResultFailure)
	m.Refresh(metrics.ResultSignedOut)
	m.Gate(metrics.DecisionLogin)
	m.Backend("login", "200", 0.01)

	count, err := testutil.GatherAndCount(reg, "filmoradmin_logins_total")
	require.NoError(t, err)
	require.Equal(t, 2, count)

	count, err = testutil.GatherAndCount(reg,
		"filmoradmin_token_refreshes_total", "filmoradmin_gate_decisions_total", "filmoradmin_backend_request_duration_seconds")
	require.NoError(t, err)
	require.Equal(t, 3, count)
}

func TestMetrics_NilSafe(t *testing.T) {
	t.Parallel()

	var m *metrics.Metrics
	require.NotPanics(t, func() {
		m.Login(metrics.ResultSuccess)
		m.Refresh(metrics.ResultFailure)
		m.Gate(metrics.DecisionAllow)
		m.Backend("refresh", "500", 1)
	})
}
