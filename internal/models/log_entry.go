package models

// LogEntry is one parsed access-log record as returned by the log backend.
// Nullable columns are pointers so that an absent value can be told apart from a zero value.
type LogEntry struct {
	ID        int64   `json:"id"`
	FileHash  string  `json:"file_hash"`
	Timestamp string  `json:"timestamp"`
	IP        *string `json:"ip"`
	Method    *string `json:"method"`
	URI       *string `json:"uri"`
	Status    *int    `json:"status"`
	Bytes     *int64  `json:"bytes"`
	UserAgent *string `json:"user_agent"`
	Referer   *string `json:"referer"`
}

// HasIP reports whether the entry carries a non-empty client address.
func (e *LogEntry) HasIP() bool {
	return e.IP != nil && *e.IP != ""
}

// IsError reports whether the entry has a status code of 400 or above.
func (e *LogEntry) IsError() bool {
	return e.Status != nil && *e.Status >= 400
}

// StringValue dereferences a nullable string column.
func StringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
