package maskit

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyText is returned when there is nothing to submit.
	ErrEmptyText = errors.New("input text is empty")

	// ErrUnsupportedFormat is returned for unknown input or output formats.
	ErrUnsupportedFormat = errors.New("unsupported format")

	// ErrConflictingOptions is returned when both randomize and classes are set.
	ErrConflictingOptions = errors.New("randomize and classes cannot be combined")

	// ErrUnavailable wraps transport failures talking to the service.
	ErrUnavailable = errors.New("service unavailable")
)

// ValidationError reports a request that was rejected before sending.
type ValidationError struct {
	Field string
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %v", e.Field, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// APIError is a non-200 answer of the remote service.
type APIError struct {
	Endpoint   string
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("%s endpoint returned HTTP %d", e.Endpoint, e.StatusCode)
	}
	return fmt.Sprintf("%s endpoint returned HTTP %d: %s", e.Endpoint, e.StatusCode, e.Body)
}

// UserMessage is the text shown to the user when a request fails.
func (e *APIError) UserMessage() string {
	if e.Body == "" {
		return "An error occurred!"
	}
	return "An error occurred: " + e.Body
}
