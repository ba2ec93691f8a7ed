package deposit

import (
	"errors"
	"fmt"
)

// SubmitError is a typed submission failure. Retryable marks failures
// a caller could reasonably try again (server errors, throttling,
// network trouble); the client itself never retries.
type SubmitError struct {
	StatusCode int
	Message    string
	Retryable  bool
}

func (e *SubmitError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("deposit rejected (HTTP %d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("deposit failed: %s", e.Message)
}

// IsRetryable reports whether err is a retryable submission failure.
func IsRetryable(err error) bool {
	var se *SubmitError
	if errors.As(err, &se) {
		return se.Retryable
	}
	return false
}
