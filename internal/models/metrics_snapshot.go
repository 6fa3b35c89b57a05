package models

// HoursPerDay is the number of hourly buckets kept in a snapshot.
const HoursPerDay = 24

// SparklineBuckets is the number of buckets of the metric card sparkline (hour % 12).
const SparklineBuckets = 12

// MetricsSnapshot is the aggregate view of a log sequence rendered by the dashboard cards and charts.
//
// Example JSON:
//
//	{
//	  "totalRequests": 3,
//	  "errorRequests": 2,
//	  "errorRate": 66.7,
//	  "uniqueIPs": 2,
//	  "anomalies": 0,
//	  "anomalyThreshold": 5,
//	  "hourlyRequests": [0, 0, 0, 0, 0, 2, ...],
//	  "hourlyErrors": [0, 0, 0, 0, 0, 1, ...],
//	  "peakHour": 5,
//	  "sparkline": [0, 0, 0, 0, 0, 2, ...]
//	}
type MetricsSnapshot struct {
	TotalRequests    int                   `json:"totalRequests"`
	ErrorRequests    int                   `json:"errorRequests"`
	ErrorRate        float64               `json:"errorRate"`
	UniqueIPs        int                   `json:"uniqueIPs"`
	Anomalies        int                   `json:"anomalies"`
	AnomalyThreshold int                   `json:"anomalyThreshold"`
	HourlyRequests   [HoursPerDay]int      `json:"hourlyRequests"`
	HourlyErrors     [HoursPerDay]int      `json:"hourlyErrors"`
	PeakHour         int                   `json:"peakHour"`
	Sparkline        [SparklineBuckets]int `json:"sparkline"`
}

// TimelinePoint is one hour of the requests-per-hour chart.
type TimelinePoint struct {
	Hour     string `json:"hour"`
	Requests int    `json:"requests"`
	Errors   int    `json:"errors"`
}
