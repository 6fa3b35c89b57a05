package models

import "strings"

// Insight is one AI-generated finding for an uploaded file. Its content is opaque backend output.
type Insight struct {
	Type           string  `json:"type"`
	Title          string  `json:"title"`
	Description    string  `json:"description"`
	Severity       string  `json:"severity"`
	Recommendation string  `json:"recommendation"`
	Confidence     int     `json:"confidence"`
	AnomalyLogs    []int64 `json:"anomaly_logs"`
}

type InsightKind string

const (
	InsightSecurity      InsightKind = "security"
	InsightAnomaly       InsightKind = "anomaly"
	InsightVulnerability InsightKind = "vulnerability"
	InsightPerformance   InsightKind = "performance"
	InsightUnknown       InsightKind = "unknown"
)

// ParseInsightKind maps a backend type tag onto the closed set of kinds.
// "threat" is an alias of "security".
func ParseInsightKind(tag string) InsightKind {
	switch strings.ToLower(strings.TrimSpace(tag)) {
	case "security", "threat":
		return InsightSecurity
	case "anomaly":
		return InsightAnomaly
	case "vulnerability":
		return InsightVulnerability
	case "performance":
		return InsightPerformance
	default:
		return InsightUnknown
	}
}

type Severity string

const (
	SeverityHigh    Severity = "high"
	SeverityMedium  Severity = "medium"
	SeverityLow     Severity = "low"
	SeverityUnknown Severity = "unknown"
)

func ParseSeverity(tag string) Severity {
	switch strings.ToLower(strings.TrimSpace(tag)) {
	case "high":
		return SeverityHigh
	case "medium":
		return SeverityMedium
	case "low":
		return SeverityLow
	default:
		return SeverityUnknown
	}
}

// IsRated reports whether the severity is one of high, medium or low.
func (s Severity) IsRated() bool {
	return s != SeverityUnknown
}

type ConfidenceLevel string

const (
	ConfidenceHigh   ConfidenceLevel = "high"
	ConfidenceMedium ConfidenceLevel = "medium"
	ConfidenceLow    ConfidenceLevel = "low"
)

// ConfidenceThresholds splits a 0-100 confidence score into levels.
type ConfidenceThresholds struct {
	High   int
	Medium int
}

// DefaultConfidenceThresholds are the dashboard's historical cut-offs.
var DefaultConfidenceThresholds = ConfidenceThresholds{High: 90, Medium: 70}

func (t ConfidenceThresholds) Level(confidence int) ConfidenceLevel {
	switch {
	case confidence >= t.High:
		return ConfidenceHigh
	case confidence >= t.Medium:
		return ConfidenceMedium
	default:
		return ConfidenceLow
	}
}
