package sessions

import "log-dashboard/internal/shared/metrics"

var metricActiveSessions = metrics.NewGauge(
	metrics.GaugeOpts{
		Namespace: metrics.Namespace,
		Subsystem: metrics.SubSession,
		Name:      "active_sessions",
	},
)
