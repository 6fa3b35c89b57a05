package logsources

import (
	"errors"
	"fmt"
)

var (
	ErrBackendUnavailable  = errors.New("log backend unavailable")
	ErrBackendUnauthorized = errors.New("log backend rejected credentials")
	ErrMissingSession      = errors.New("no authenticated session")
)

// HTTPError is a non-2xx backend reply other than 401.
type HTTPError struct {
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Body)
}
