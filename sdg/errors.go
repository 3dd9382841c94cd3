package sdg

import (
	"errors"
	"fmt"
)

// Common errors
var (
	// ErrInvalidConfig indicates invalid client configuration
	ErrInvalidConfig = errors.New("invalid client configuration")
	// ErrInvalidQuery indicates a data query that names no or conflicting codes
	ErrInvalidQuery = errors.New("invalid data query")
)

// RequestError reports a request that failed after exhausting its retries.
// It wraps the last transport or status error observed.
type RequestError struct {
	Endpoint string
	Attempts int
	Err      error
}

// Error implements the error interface
func (e *RequestError) Error() string {
	return fmt.Sprintf("request to %s failed after %d attempts: %v", e.Endpoint, e.Attempts, e.Err)
}

// Unwrap returns the last underlying error
func (e *RequestError) Unwrap() error {
	return e.Err
}

// StatusError reports a single non-200 response. All error statuses are
// treated alike by the retry loop; the code is carried for diagnostics only.
type StatusError struct {
	StatusCode int
	Body       string
}

// Error implements the error interface
func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("unexpected status code: %d", e.StatusCode)
	}
	return fmt.Sprintf("unexpected status code: %d: %s", e.StatusCode, e.Body)
}
