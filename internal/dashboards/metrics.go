package dashboards

import (
	"log-dashboard/internal/shared/metrics"
)

const (
	outcomeFresh = "fresh"
	outcomeStale = "stale"
	outcomeEmpty = "empty"
)

var (
	metricDashboardLoadsTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubDashboard,
			Name:      "loads_total",
		},
		[]string{"outcome"},
	)

	metricUploadsTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubDashboard,
			Name:      "uploads_total",
		},
		[]string{metrics.FieldErrorCode},
	)

	metricAnalysesTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubDashboard,
			Name:      "analyses_total",
		},
		[]string{metrics.FieldErrorCode},
	)
)
