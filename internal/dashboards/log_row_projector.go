package dashboards

import (
	"net/http"
	"strings"

	"log-dashboard/internal/models"

	"github.com/mileusna/useragent"
)

const (
	defaultPageLimit = 100
	maxPageLimit     = 1000
)

type Highlight string

const (
	HighlightNone      Highlight = ""
	HighlightForbidden Highlight = "forbidden_admin"
	HighlightServer    Highlight = "server_error"
	HighlightProbe     Highlight = "probe"
)

const (
	StatusClassAny      = ""
	StatusClassSuccess  = "2xx"
	StatusClassRedirect = "3xx"
	StatusClassClient   = "4xx"
	StatusClassServer   = "5xx"
)

// LogFilter narrows the raw log table. Zero values match everything.
type LogFilter struct {
	StatusClass string `validate:"omitempty,oneof=2xx 3xx 4xx 5xx"`
	IP          string `validate:"omitempty,max=64"`
	Method      string `validate:"omitempty,max=16"`
	Limit       int    `validate:"min=0,max=1000"`
	Offset      int    `validate:"min=0"`
}

// LogRow is a LogEntry decorated for the raw log table.
type LogRow struct {
	*models.LogEntry
	Browser   string    `json:"browser"`
	Highlight Highlight `json:"highlight"`
}

type LogPage struct {
	Total  int       `json:"total"`
	Limit  int       `json:"limit"`
	Offset int       `json:"offset"`
	Rows   []*LogRow `json:"rows"`
}

//go:generate mockgen -source=log_row_projector.go -destination=./mocks/log_row_projector_mock.go -package=mocks
type LogRowProjector interface {
	Project(logs []*models.LogEntry, filter LogFilter) *LogPage
}

type logRowProjector struct{}

func NewLogRowProjector() LogRowProjector {
	return &logRowProjector{}
}

// Project keeps backend order. Total counts matching rows before paging.
func (p *logRowProjector) Project(logs []*models.LogEntry, filter LogFilter) *LogPage {
	limit := filter.Limit
	if limit <= 0 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}
	offset := max(filter.Offset, 0)

	page := &LogPage{Limit: limit, Offset: offset, Rows: make([]*LogRow, 0)}
	for _, entry := range logs {
		if entry == nil || !p.matches(entry, filter) {
			continue
		}
		page.Total++
		if page.Total <= offset || len(page.Rows) >= limit {
			continue
		}
		page.Rows = append(page.Rows, &LogRow{
			LogEntry:  entry,
			Browser:   p.normalizeUserAgent(models.StringValue(entry.UserAgent)),
			Highlight: p.highlight(entry),
		})
	}
	return page
}

func (p *logRowProjector) matches(entry *models.LogEntry, filter LogFilter) bool {
	if filter.IP != "" && models.StringValue(entry.IP) != filter.IP {
		return false
	}
	if filter.Method != "" && !strings.EqualFold(models.StringValue(entry.Method), filter.Method) {
		return false
	}
	if filter.StatusClass != StatusClassAny {
		if entry.Status == nil {
			return false
		}
		return statusClass(*entry.Status) == filter.StatusClass
	}
	return true
}

// highlight flags rows worth a second look: forbidden admin access, server errors and
// probes for common admin or WordPress paths.
func (p *logRowProjector) highlight(entry *models.LogEntry) Highlight {
	if entry.Status == nil {
		return HighlightNone
	}
	uri := models.StringValue(entry.URI)
	status := *entry.Status
	switch {
	case status == http.StatusForbidden && strings.Contains(uri, "/admin"):
		return HighlightForbidden
	case status >= http.StatusInternalServerError:
		return HighlightServer
	case status == http.StatusNotFound && (strings.Contains(uri, "wp-") || strings.Contains(uri, "admin")):
		return HighlightProbe
	default:
		return HighlightNone
	}
}

// normalizeUserAgent parses user agent to extract the browser name, or returns original if parsing fails.
func (p *logRowProjector) normalizeUserAgent(ua string) string {
	parsed := useragent.Parse(ua)
	if parsed.Name != "" {
		return parsed.Name
	}
	return ua
}

func statusClass(status int) string {
	switch {
	case status >= 200 && status < 300:
		return StatusClassSuccess
	case status >= 300 && status < 400:
		return StatusClassRedirect
	case status >= 400 && status < 500:
		return StatusClassClient
	case status >= 500 && status < 600:
		return StatusClassServer
	default:
		return ""
	}
}
