package aggregators

import (
	"log-dashboard/internal/shared/metrics"
)

// metricUntimedEntriesTotal counts entries left out of the hourly series because their timestamp
// matched none of the accepted layouts. They still count toward totals, errors and unique IPs.
var (
	metricUntimedEntriesTotal = metrics.NewCounter(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubMetrics,
			Name:      "untimed_entries_total",
		},
	)
)
