package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/palefo/client-go/internal/apierr"
	"github.com/palefo/client-go/internal/types"
)

// TopContributors fetches the leaderboard, ordered server-side by
// contribution count.
func TopContributors(ctx context.Context, httpClient HTTPClient, baseURL string, limit int) ([]types.Contributor, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	u := fmt.Sprintf("%s/contributors/top?limit=%d", baseURL, limit)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	resp, err := httpClient.Do(httpReq)
	if err != nil {
		return nil, apierr.NewNetwork("top contributors", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if !ok(resp) {
		return nil, apierr.FromResponse("top contributors", resp)
	}

	var contributors []types.Contributor
	if err := json.NewDecoder(resp.Body).Decode(&contributors); err != nil {
		return nil, err
	}
	return contributors, nil
}
