package fileactions

import (
	"log-dashboard/internal/shared/metrics"
)

var (
	metricFileActionsTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubFileAction,
			Name:      "runs_total",
		},
		[]string{"action", metrics.FieldErrorCode},
	)
)
