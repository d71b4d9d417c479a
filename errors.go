package client

import "github.com/palefo/client-go/internal/apierr"

// Re-export the error taxonomy so callers compare against a single package.
type (
	// ValidationError reports invalid caller input, produced before any
	// network I/O.
	ValidationError = apierr.ValidationError
	// HTTPError reports a non-2xx response with the server-provided text.
	HTTPError = apierr.HTTPError
	// NetworkError reports a transport-level failure.
	NetworkError = apierr.NetworkError
)

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool { return apierr.IsValidation(err) }

// IsHTTP reports whether err is (or wraps) an HTTPError and, if so,
// returns it.
func IsHTTP(err error) (*HTTPError, bool) { return apierr.IsHTTP(err) }

// IsNetwork reports whether err is (or wraps) a NetworkError.
func IsNetwork(err error) bool { return apierr.IsNetwork(err) }

// IsCORSBlocked reports whether err looks like a cross-origin rejection.
func IsCORSBlocked(err error) bool { return apierr.IsCORSBlocked(err) }
