package apierr

import (
	"io"
	"net/http"
	"strings"
)

// maxBodySnippet bounds how much server error text an HTTPError carries.
const maxBodySnippet = 512

// FromResponse builds an HTTPError from a non-2xx response, reading a bounded
// snippet of the body for the server-provided error text. The response body
// is consumed but not closed.
func FromResponse(operation string, resp *http.Response) *HTTPError {
	snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxBodySnippet))
	return &HTTPError{
		Operation:  operation,
		StatusCode: resp.StatusCode,
		Body:       strings.TrimSpace(string(snippet)),
		Category:   categoryForStatus(resp.StatusCode),
	}
}

// NewNetwork wraps a transport-level failure.
func NewNetwork(operation string, err error) *NetworkError {
	return &NetworkError{Operation: operation, Err: err}
}

// categoryForStatus maps HTTP status codes to error categories:
// 4xx client errors (except 408/429) are irrecoverable, everything else
// may be transient.
func categoryForStatus(statusCode int) ErrorCategory {
	switch {
	case statusCode >= 400 && statusCode < 500:
		switch statusCode {
		case http.StatusRequestTimeout, http.StatusTooManyRequests:
			return Recoverable
		default:
			return Irrecoverable
		}
	default:
		return Recoverable
	}
}

// IsCORSBlocked reports whether err looks like a cross-origin rejection.
//
// Go has no native CORS failure mode; the relay (or an intermediary proxy)
// reports blocked requests with "CORS" somewhere in the error text, and that
// is the signal the UI notification keys on.
func IsCORSBlocked(err error) bool {
	if err == nil {
		return false
	}
	if he, ok := IsHTTP(err); ok {
		return strings.Contains(he.Body, "CORS")
	}
	return strings.Contains(err.Error(), "CORS")
}
