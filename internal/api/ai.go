package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/palefo/client-go/internal/apierr"
	"github.com/palefo/client-go/internal/types"
)

// RandomPhrase fetches an AI-generated practice phrase.
func RandomPhrase(ctx context.Context, httpClient HTTPClient, baseURL string, opts types.PhraseOptions) (*types.AIPhrase, error) {
	return fetchPhrase(ctx, httpClient, "ai random phrase",
		fmt.Sprintf("%s/ai/random-phrase%s", baseURL, phraseQuery(opts)))
}

// GeminiPhrase fetches a phrase generated by the Gemini model specifically.
func GeminiPhrase(ctx context.Context, httpClient HTTPClient, baseURL string, opts types.PhraseOptions) (*types.AIPhrase, error) {
	return fetchPhrase(ctx, httpClient, "gemini phrase",
		fmt.Sprintf("%s/ai/gemini-phrase%s", baseURL, phraseQuery(opts)))
}

// phraseQuery builds the optional query string shared by both phrase
// endpoints. Zero-valued fields are omitted; an empty option set yields an
// empty string so the bare endpoint URL is used.
func phraseQuery(opts types.PhraseOptions) string {
	q := url.Values{}
	if opts.Category != "" {
		q.Set("category", opts.Category)
	}
	if opts.DifficultyLevel > 0 {
		q.Set("difficultyLevel", strconv.Itoa(opts.DifficultyLevel))
	}
	if opts.MinWords > 0 {
		q.Set("minWords", strconv.Itoa(opts.MinWords))
	}
	if opts.MaxWords > 0 {
		q.Set("maxWords", strconv.Itoa(opts.MaxWords))
	}
	if len(q) == 0 {
		return ""
	}
	return "?" + q.Encode()
}

func fetchPhrase(ctx context.Context, httpClient HTTPClient, op, u string) (*types.AIPhrase, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
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

	var phrase types.AIPhrase
	if err := json.NewDecoder(resp.Body).Decode(&phrase); err != nil {
		return nil, err
	}
	return &phrase, nil
}
