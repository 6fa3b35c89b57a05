package aggregators

import (
	"math"
	"strings"
	"time"

	"log-dashboard/internal/models"
)

// DefaultAnomalyThreshold is the number of error responses a single IP may produce before it is
// counted as an anomaly (strictly more than the threshold is anomalous).
const DefaultAnomalyThreshold = 5

// timestampLayouts are tried in order. Layouts without a zone are read in the aggregator location.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04",
}

type MetricsAggregator interface {
	// Compute projects logs into a snapshot. It never fails and does not retain logs.
	Compute(logs []*models.LogEntry) *models.MetricsSnapshot
}

// Options configures a MetricsAggregator. Zero values fall back to the defaults.
type Options struct {
	AnomalyThreshold int
	Location         *time.Location
}

type metricsAggregator struct {
	anomalyThreshold int
	location         *time.Location
}

func NewMetricsAggregator(opts Options) MetricsAggregator {
	a := &metricsAggregator{
		anomalyThreshold: opts.AnomalyThreshold,
		location:         opts.Location,
	}
	if a.anomalyThreshold <= 0 {
		a.anomalyThreshold = DefaultAnomalyThreshold
	}
	if a.location == nil {
		a.location = time.Local
	}
	return a
}

// ComputeMetrics computes a snapshot with the default threshold in the local time zone.
func ComputeMetrics(logs []*models.LogEntry) *models.MetricsSnapshot {
	return NewMetricsAggregator(Options{}).Compute(logs)
}

func (a *metricsAggregator) Compute(logs []*models.LogEntry) *models.MetricsSnapshot {
	snapshot := &models.MetricsSnapshot{
		TotalRequests:    len(logs),
		AnomalyThreshold: a.anomalyThreshold,
	}

	uniqueIPs := make(map[string]struct{})
	errorsByIP := make(map[string]int)

	for _, entry := range logs {
		if entry == nil {
			continue
		}
		isError := entry.IsError()
		if isError {
			snapshot.ErrorRequests++
		}

		if entry.HasIP() {
			uniqueIPs[*entry.IP] = struct{}{}
			if isError {
				errorsByIP[*entry.IP]++
			}
		}

		hour, ok := a.hourOf(entry.Timestamp)
		if !ok {
			metricUntimedEntriesTotal.Inc()
			continue
		}
		snapshot.HourlyRequests[hour]++
		snapshot.Sparkline[hour%models.SparklineBuckets]++
		if isError {
			snapshot.HourlyErrors[hour]++
		}
	}

	snapshot.ErrorRate = errorRate(snapshot.ErrorRequests, snapshot.TotalRequests)
	snapshot.UniqueIPs = len(uniqueIPs)
	for _, count := range errorsByIP {
		if count > a.anomalyThreshold {
			snapshot.Anomalies++
		}
	}
	snapshot.PeakHour = peakHour(snapshot.HourlyRequests)

	return snapshot
}

// hourOf returns the hour of day of timestamp in the aggregator location.
func (a *metricsAggregator) hourOf(timestamp string) (int, bool) {
	timestamp = strings.TrimSpace(timestamp)
	if timestamp == "" {
		return 0, false
	}
	for _, layout := range timestampLayouts {
		t, err := time.ParseInLocation(layout, timestamp, a.location)
		if err == nil {
			return t.In(a.location).Hour(), true
		}
	}
	return 0, false
}

// errorRate is the error percentage rounded to one decimal, 0 for an empty sequence.
func errorRate(errorRequests, totalRequests int) float64 {
	if totalRequests == 0 {
		return 0
	}
	rate := float64(errorRequests) / float64(totalRequests) * 100
	return math.Round(rate*10) / 10
}

// peakHour returns the first hour holding the maximum request count.
func peakHour(hourly [models.HoursPerDay]int) int {
	peak := 0
	for hour, count := range hourly {
		if count > hourly[peak] {
			peak = hour
		}
	}
	return peak
}
