package logsources

import "log-dashboard/internal/shared/metrics"

const (
	outcomeOK          = "ok"
	outcomeUnavailable = "unavailable"
	outcomeRejected    = "rejected"
	outcomeHTTPError   = "http_error"
	outcomeDecodeError = "decode_error"
)

var metricBackendCalls = metrics.NewCounterVec(
	metrics.CounterOpts{
		Namespace: metrics.Namespace,
		Subsystem: metrics.SubBackend,
		Name:      "calls_total",
	},
	[]string{"operation", "outcome"},
)

var metricBackendCallDuration = metrics.NewHistogramVec(
	metrics.HistogramOpts{
		Namespace: metrics.Namespace,
		Subsystem: metrics.SubBackend,
		Name:      "call_duration_seconds",
		Buckets:   metrics.DefBuckets,
	},
	[]string{"operation"},
)
