package apierr

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"testing"
)

func TestHTTPErrorMessageCarriesMarker(t *testing.T) {
	t.Parallel()
	he := &HTTPError{Operation: "list contributions", StatusCode: 500, Body: "boom"}
	if !strings.Contains(he.Error(), "API error") {
		t.Fatalf("message %q missing the API error marker", he.Error())
	}
	if !strings.Contains(he.Error(), "boom") {
		t.Fatalf("message %q missing server text", he.Error())
	}
}

func TestFromResponse(t *testing.T) {
	t.Parallel()
	resp := &http.Response{
		StatusCode: http.StatusBadGateway,
		Body:       io.NopCloser(strings.NewReader("upstream unavailable")),
	}
	he := FromResponse("statistics", resp)
	if he.StatusCode != http.StatusBadGateway || he.Body != "upstream unavailable" {
		t.Fatalf("unexpected error: %+v", he)
	}
	if he.Category != Recoverable {
		t.Fatalf("502 should be recoverable")
	}
}

func TestCategoryForStatus(t *testing.T) {
	t.Parallel()
	cases := map[int]ErrorCategory{
		400: Irrecoverable,
		401: Irrecoverable,
		404: Irrecoverable,
		408: Recoverable,
		429: Recoverable,
		500: Recoverable,
		503: Recoverable,
	}
	for status, want := range cases {
		if got := categoryForStatus(status); got != want {
			t.Fatalf("status %d: got %s, want %s", status, got, want)
		}
	}
}

func TestTaxonomyPredicates(t *testing.T) {
	t.Parallel()
	ve := NewValidation("count", "must be at least 1")
	if !IsValidation(ve) || IsNetwork(ve) {
		t.Fatalf("validation error misclassified")
	}
	if _, ok := IsHTTP(ve); ok {
		t.Fatalf("validation error detected as HTTP")
	}

	ne := NewNetwork("statistics", errors.New("connection refused"))
	if !IsNetwork(ne) || IsValidation(ne) {
		t.Fatalf("network error misclassified")
	}

	wrapped := fmt.Errorf("op failed: %w", &HTTPError{Operation: "x", StatusCode: 404})
	he, ok := IsHTTP(wrapped)
	if !ok || he.StatusCode != 404 {
		t.Fatalf("wrapped HTTP error not unwrapped")
	}
	if !IsIrrecoverable(wrapped) {
		t.Fatalf("404 should be irrecoverable")
	}
}

func TestIsCORSBlocked(t *testing.T) {
	t.Parallel()
	if IsCORSBlocked(nil) {
		t.Fatalf("nil is not a CORS block")
	}
	if !IsCORSBlocked(NewNetwork("statistics", errors.New("blocked by CORS policy"))) {
		t.Fatalf("CORS-flavored transport error not detected")
	}
	if IsCORSBlocked(NewNetwork("statistics", errors.New("connection refused"))) {
		t.Fatalf("plain transport error detected as CORS")
	}
	if !IsCORSBlocked(&HTTPError{Operation: "x", StatusCode: 403, Body: "CORS origin denied"}) {
		t.Fatalf("CORS-flavored HTTP body not detected")
	}
}
