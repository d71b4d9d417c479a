package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/palefo/client-go/internal/types"
)

// maxProbeBody bounds how much payload a probe result carries.
const maxProbeBody = 2048

// Probe issues a single diagnostic GET and captures the outcome instead of
// returning an error, so one failing endpoint never aborts the rest of a
// connection test.
func Probe(ctx context.Context, httpClient HTTPClient, name, u string) types.ProbeResult {
	result := types.ProbeResult{Name: name, URL: u}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		result.Error = err.Error()
		return result
	}
	resp, err := httpClient.Do(httpReq)
	if err != nil {
		result.Error = err.Error()
		return result
	}
	defer func() { _ = resp.Body.Close() }()

	result.Status = resp.StatusCode
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxProbeBody))
	if err != nil {
		result.Error = err.Error()
		return result
	}

	if !ok(resp) {
		result.Error = fmt.Sprintf("status %d: %s", resp.StatusCode, string(body))
		return result
	}

	result.OK = true
	if json.Valid(body) {
		result.Body = json.RawMessage(body)
	}
	return result
}

// ConnectionProbes returns the four endpoints a connection test exercises.
func ConnectionProbes(baseURL string) []struct{ Name, URL string } {
	return []struct{ Name, URL string }{
		{"statistics", fmt.Sprintf("%s/statistics", baseURL)},
		{"contributions", fmt.Sprintf("%s/contributions?page=1&pageSize=1&includeUnapproved=false", baseURL)},
		{"sentences", fmt.Sprintf("%s/sentences/random?count=1", baseURL)},
		{"ai", fmt.Sprintf("%s/ai/random-phrase", baseURL)},
	}
}
