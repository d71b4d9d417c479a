package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/palefo/client-go/internal/apierr"
	"github.com/palefo/client-go/internal/types"
)

// RandomSentences fetches up to count random sentences, optionally excluding
// the given sentence IDs. The server bounds count at 50.
func RandomSentences(ctx context.Context, httpClient HTTPClient, baseURL string, count int, excludeIDs []int) ([]types.Sentence, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	q := url.Values{}
	q.Set("count", strconv.Itoa(count))
	if len(excludeIDs) > 0 {
		ids := make([]string, len(excludeIDs))
		for i, id := range excludeIDs {
			ids[i] = strconv.Itoa(id)
		}
		q.Set("excludeIds", strings.Join(ids, ","))
	}
	return fetchSentences(ctx, httpClient, "random sentences",
		fmt.Sprintf("%s/sentences/random?%s", baseURL, q.Encode()))
}

// SentencesByCategory fetches sentences for one category.
func SentencesByCategory(ctx context.Context, httpClient HTTPClient, baseURL, category string, count int) ([]types.Sentence, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return fetchSentences(ctx, httpClient, "sentences by category",
		fmt.Sprintf("%s/sentences/category/%s?count=%d", baseURL, url.PathEscape(category), count))
}

// SentencesByCategorySimple is the simple-query variant of the category
// endpoint; same contract, different server-side resource path.
func SentencesByCategorySimple(ctx context.Context, httpClient HTTPClient, baseURL, category string, count int) ([]types.Sentence, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return fetchSentences(ctx, httpClient, "sentences by category (simple)",
		fmt.Sprintf("%s/sentences/category-simple/%s?count=%d", baseURL, url.PathEscape(category), count))
}

// SentencesByDifficulty fetches sentences for one difficulty level (1-5).
func SentencesByDifficulty(ctx context.Context, httpClient HTTPClient, baseURL string, level, count int) ([]types.Sentence, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return fetchSentences(ctx, httpClient, "sentences by difficulty",
		fmt.Sprintf("%s/sentences/difficulty/%d?count=%d", baseURL, level, count))
}

func fetchSentences(ctx context.Context, httpClient HTTPClient, op, u string) ([]types.Sentence, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	resp, err := httpClient.Do(httpReq)
	if err != nil {
		return nil, apierr.NewNetwork(op, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if !ok(resp) {
		return nil, apierr.FromResponse(op, resp)
	}

	var sentences []types.Sentence
	if err := json.NewDecoder(resp.Body).Decode(&sentences); err != nil {
		return nil, err
	}
	return sentences, nil
}
