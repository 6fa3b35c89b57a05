package insights

import (
	"log-dashboard/internal/models"
)

type Icon string

const (
	IconShield   Icon = "shield"
	IconAlert    Icon = "alert-triangle"
	IconTrending Icon = "trending-up"
	IconInfo     Icon = "info"
)

type Tone string

const (
	ToneRed    Tone = "red"
	ToneOrange Tone = "orange"
	ToneYellow Tone = "yellow"
	ToneBlue   Tone = "blue"
	ToneGray   Tone = "gray"
)

type BadgeVariant string

const (
	BadgeDestructive BadgeVariant = "destructive"
	BadgeSecondary   BadgeVariant = "secondary"
	BadgeOutline     BadgeVariant = "outline"
	BadgeSuccess     BadgeVariant = "success"
)

type Badge struct {
	Label   string       `json:"label"`
	Variant BadgeVariant `json:"variant"`
}

// Item is one insight ready for rendering.
type Item struct {
	Kind            models.InsightKind     `json:"kind"`
	Icon            Icon                   `json:"icon"`
	Tone            Tone                   `json:"tone"`
	Title           string                 `json:"title"`
	Description     string                 `json:"description"`
	Recommendation  string                 `json:"recommendation"`
	Severity        models.Severity        `json:"severity"`
	SeverityBadge   Badge                  `json:"severityBadge"`
	Confidence      int                    `json:"confidence"`
	ConfidenceLevel models.ConfidenceLevel `json:"confidenceLevel"`
	ConfidenceBadge Badge                  `json:"confidenceBadge"`
	AnomalyLogs     []int64                `json:"anomalyLogs"`
}

type InsightsView struct {
	FileName    string  `json:"fileName"`
	ThreatCount int     `json:"threatCount"`
	Items       []*Item `json:"items"`
}

type Presenter interface {
	Present(fileName string, insights []*models.Insight) *InsightsView
}

type presenter struct {
	thresholds models.ConfidenceThresholds
}

func NewPresenter(thresholds models.ConfidenceThresholds) Presenter {
	return &presenter{thresholds: thresholds}
}

// Present renders insights in backend order. Threats are insights with a rated severity.
func (p *presenter) Present(fileName string, insights []*models.Insight) *InsightsView {
	view := &InsightsView{
		FileName: fileName,
		Items:    make([]*Item, 0, len(insights)),
	}

	for _, insight := range insights {
		if insight == nil {
			continue
		}

		kind := models.ParseInsightKind(insight.Type)
		severity := models.ParseSeverity(insight.Severity)
		level := p.thresholds.Level(insight.Confidence)
		icon, tone := kindStyle(kind)

		if severity.IsRated() {
			view.ThreatCount++
		}

		anomalyLogs := insight.AnomalyLogs
		if anomalyLogs == nil {
			anomalyLogs = []int64{}
		}

		view.Items = append(view.Items, &Item{
			Kind:            kind,
			Icon:            icon,
			Tone:            tone,
			Title:           insight.Title,
			Description:     insight.Description,
			Recommendation:  insight.Recommendation,
			Severity:        severity,
			SeverityBadge:   severityBadge(severity),
			Confidence:      insight.Confidence,
			ConfidenceLevel: level,
			ConfidenceBadge: confidenceBadge(level),
			AnomalyLogs:     anomalyLogs,
		})
	}

	return view
}

func kindStyle(kind models.InsightKind) (Icon, Tone) {
	switch kind {
	case models.InsightSecurity:
		return IconShield, ToneRed
	case models.InsightAnomaly:
		return IconAlert, ToneOrange
	case models.InsightVulnerability:
		return IconAlert, ToneYellow
	case models.InsightPerformance:
		return IconTrending, ToneBlue
	case models.InsightUnknown:
		return IconInfo, ToneGray
	}
	return IconInfo, ToneGray
}

func severityBadge(severity models.Severity) Badge {
	switch severity {
	case models.SeverityHigh:
		return Badge{Label: "High", Variant: BadgeDestructive}
	case models.SeverityMedium:
		return Badge{Label: "Medium", Variant: BadgeSecondary}
	case models.SeverityLow:
		return Badge{Label: "Low", Variant: BadgeOutline}
	case models.SeverityUnknown:
		return Badge{Label: "Unknown", Variant: BadgeOutline}
	}
	return Badge{Label: "Unknown", Variant: BadgeOutline}
}

func confidenceBadge(level models.ConfidenceLevel) Badge {
	switch level {
	case models.ConfidenceHigh:
		return Badge{Label: "High", Variant: BadgeSuccess}
	case models.ConfidenceMedium:
		return Badge{Label: "Medium", Variant: BadgeSecondary}
	case models.ConfidenceLow:
		return Badge{Label: "Low", Variant: BadgeOutline}
	}
	return Badge{Label: "Low", Variant: BadgeOutline}
}
