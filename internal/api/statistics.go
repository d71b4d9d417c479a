package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/palefo/client-go/internal/apierr"
	"github.com/palefo/client-go/internal/types"
)

// GetStatistics fetches platform-wide totals. httpClient may be the CORS
// relay when the caller has one enabled.
func GetStatistics(ctx context.Context, httpClient HTTPClient, baseURL string) (*types.Statistics, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	u := fmt.Sprintf("%s/statistics", baseURL)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	resp, err := httpClient.Do(httpReq)
	if err != nil {
		return nil, apierr.NewNetwork("statistics", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if !ok(resp) {
		return nil, apierr.FromResponse("statistics", resp)
	}

	var stats types.Statistics
	if err := json.NewDecoder(resp.Body).Decode(&stats); err != nil {
		return nil, err
	}
	return &stats, nil
}
