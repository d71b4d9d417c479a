// Package apierr provides the error taxonomy for the client SDK:
// ValidationError for bad caller input, HTTPError for non-2xx responses and
// NetworkError for transport-level failures. HTTP errors additionally carry
// a recoverability category so callers can distinguish transient backend
// trouble from requests that will never succeed.
package apierr

import (
	"errors"
	"fmt"
)

// ErrorCategory describes whether an error class is worth re-issuing.
type ErrorCategory int

const (
	// Recoverable errors may succeed on a later attempt.
	// Examples: 500 Internal Server Error, network timeouts, connection failures.
	Recoverable ErrorCategory = iota

	// Irrecoverable errors will fail the same way every time.
	// Examples: 401 Unauthorized, 403 Forbidden, 400 Bad Request.
	Irrecoverable
)

// String returns a human-readable representation of the error category.
func (c ErrorCategory) String() string {
	switch c {
	case Recoverable:
		return "Recoverable"
	case Irrecoverable:
		return "Irrecoverable"
	default:
		return fmt.Sprintf("Unknown(%d)", int(c))
	}
}

// ValidationError reports invalid caller input detected before any network
// I/O takes place.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("validation: %s", e.Reason)
	}
	return fmt.Sprintf("validation: %s: %s", e.Field, e.Reason)
}

// NewValidation constructs a ValidationError for the given field.
func NewValidation(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// HTTPError reports a non-2xx response. Body holds whatever error text the
// server returned, truncated by the caller if need be.
//
// The message deliberately contains the literal "API error": the fallback
// switch-over in the client keys on that substring.
type HTTPError struct {
	Operation  string
	StatusCode int
	Body       string
	Category   ErrorCategory
}

func (e *HTTPError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("%s: API error (status %d): %s", e.Operation, e.StatusCode, e.Body)
	}
	return fmt.Sprintf("%s: API error (status %d)", e.Operation, e.StatusCode)
}

// IsHTTP reports whether err is (or wraps) an HTTPError and, if so, returns it.
func IsHTTP(err error) (*HTTPError, bool) {
	var he *HTTPError
	if errors.As(err, &he) {
		return he, true
	}
	return nil, false
}

// NetworkError reports a transport-level failure: the request never produced
// an HTTP status code. Always recoverable.
type NetworkError struct {
	Operation string
	Err       error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s: network error: %v", e.Operation, e.Err)
}

// Unwrap returns the underlying transport error.
func (e *NetworkError) Unwrap() error { return e.Err }

// IsNetwork reports whether err is (or wraps) a NetworkError.
func IsNetwork(err error) bool {
	var ne *NetworkError
	return errors.As(err, &ne)
}

// IsIrrecoverable reports whether err should not be re-issued.
func IsIrrecoverable(err error) bool {
	if he, ok := IsHTTP(err); ok {
		return he.Category == Irrecoverable
	}
	return IsValidation(err)
}
