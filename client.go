// Package client is the Go SDK for the Palefò API: Kreyòl sentence
// retrieval, audio contribution upload, statistics and leaderboards,
// moderation and AI phrase generation.
//
// Every operation issues exactly one HTTP request (the contribution list
// additionally retries once after the fallback switch-over), reports a
// loading scope to the configured StatusReporter, and surfaces CORS-flavored
// transport failures as a user-facing notification before propagating the
// error to the caller.
package client

import (
	"context"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/palefo/client-go/internal/api"
	"github.com/palefo/client-go/internal/apierr"
	"github.com/palefo/client-go/internal/store"
)

// DefaultFallbackURL is the fixed local endpoint the client switches to
// permanently after the primary base URL fails with an API error.
const DefaultFallbackURL = "http://localhost:5056/api"

// --------------------------------------------------------------------
// Client core
// --------------------------------------------------------------------

type Client struct {
	http     *http.Client
	relay    Relay
	reporter StatusReporter
	store    SessionStore

	// Fallback state. Explicit fields rather than globals so the one-shot
	// transition is observable and testable per client instance.
	mu            sync.Mutex
	baseURL       string
	fallbackURL   string
	usingFallback bool

	inflight   int32  // loading-scope refcount
	closedOnce uint32 // ensures Close is idempotent
}

// New constructs a Client for the given base URL with optional functional
// arguments.
func New(baseURL string, opts ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, apierr.NewValidation("baseURL", "base URL is required")
	}

	c := &Client{
		baseURL:     baseURL,
		fallbackURL: DefaultFallbackURL,
		http:        &http.Client{Timeout: 30 * time.Second},
		relay:       NoRelay{},
		reporter:    logReporter{},
		store:       store.New(),
	}

	// Auto-enable debug via env variable without changing code.
	if debugLoggingRequested() {
		opts = append(opts, WithDebugLogging(true))
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Close flushes the session store. Safe to call multiple times.
func (c *Client) Close() error {
	if !atomic.CompareAndSwapUint32(&c.closedOnce, 0, 1) {
		return nil
	}
	return c.store.Flush()
}

// BaseURL returns the currently active base URL.
func (c *Client) BaseURL() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.baseURL
}

// UsingFallback reports whether the one-shot fallback switch has happened.
func (c *Client) UsingFallback() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.usingFallback
}

// ResetFallback restores the base URL the client was constructed with and
// re-arms the fallback switch. The switch itself never reverts on its own.
func (c *Client) ResetFallback(baseURL string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.baseURL = baseURL
	c.usingFallback = false
}

// switchToFallback flips the client onto the fallback base URL. Returns
// false when the switch already happened; the flip is idempotent, so
// concurrent triggers are benign.
func (c *Client) switchToFallback() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.usingFallback {
		return false
	}
	c.usingFallback = true
	c.baseURL = c.fallbackURL
	return true
}

// begin opens a loading scope and returns its release func. The reporter
// sees only the outermost transition, so overlapping calls cannot clear the
// indicator early.
func (c *Client) begin() func() {
	if atomic.AddInt32(&c.inflight, 1) == 1 {
		c.reporter.LoadingStarted()
	}
	return func() {
		if atomic.AddInt32(&c.inflight, -1) == 0 {
			c.reporter.LoadingFinished()
		}
	}
}

// observe records the outcome of an operation: metrics, a log line for
// failures, and the CORS notification. The error is always propagated by the
// caller; nothing is swallowed here.
func (c *Client) observe(operation string, err error) {
	if err == nil {
		requestsTotal.WithLabelValues(operation, outcomeOK).Inc()
		return
	}
	requestsTotal.WithLabelValues(operation, outcomeError).Inc()
	log.Error().Err(err).Str("operation", operation).Msg("API request failed")
	if apierr.IsCORSBlocked(err) {
		corsBlockedTotal.Inc()
		c.reporter.NotifyCORSBlocked(
			"The API refused a cross-origin request. Enable the CORS relay or check the API URL.")
	}
}

// --------------------------------------------------------------------
// Sentence operations - delegated to internal/api
// --------------------------------------------------------------------

// RandomSentences fetches up to count random sentences, excluding the given
// sentence IDs. The server may return fewer than count.
func (c *Client) RandomSentences(ctx context.Context, count int, excludeIDs []int) ([]Sentence, error) {
	if count < 1 {
		return nil, apierr.NewValidation("count", "must be at least 1")
	}
	done := c.begin()
	defer done()
	sentences, err := api.RandomSentences(ctx, c.http, c.BaseURL(), count, excludeIDs)
	c.observe("random_sentences", err)
	return sentences, err
}

// SentencesByCategory fetches sentences for one category.
func (c *Client) SentencesByCategory(ctx context.Context, category string, count int) ([]Sentence, error) {
	if count < 1 {
		return nil, apierr.NewValidation("count", "must be at least 1")
	}
	done := c.begin()
	defer done()
	sentences, err := api.SentencesByCategory(ctx, c.http, c.BaseURL(), category, count)
	c.observe("sentences_by_category", err)
	return sentences, err
}

// SentencesByCategorySimple fetches sentences for one category through the
// simple-query endpoint.
func (c *Client) SentencesByCategorySimple(ctx context.Context, category string, count int) ([]Sentence, error) {
	if count < 1 {
		return nil, apierr.NewValidation("count", "must be at least 1")
	}
	done := c.begin()
	defer done()
	sentences, err := api.SentencesByCategorySimple(ctx, c.http, c.BaseURL(), category, count)
	c.observe("sentences_by_category_simple", err)
	return sentences, err
}

// SentencesByDifficulty fetches sentences for one difficulty level (1-5).
func (c *Client) SentencesByDifficulty(ctx context.Context, level, count int) ([]Sentence, error) {
	if !validDifficulty(level) {
		return nil, apierr.NewValidation("level", "difficulty level must be between 1 and 5")
	}
	if count < 1 {
		return nil, apierr.NewValidation("count", "must be at least 1")
	}
	done := c.begin()
	defer done()
	sentences, err := api.SentencesByDifficulty(ctx, c.http, c.BaseURL(), level, count)
	c.observe("sentences_by_difficulty", err)
	return sentences, err
}

// --------------------------------------------------------------------
// Statistics & contributors
// --------------------------------------------------------------------

// Statistics fetches platform-wide totals. When the CORS relay is enabled
// the request goes through it instead of the direct HTTP client.
func (c *Client) Statistics(ctx context.Context) (*Statistics, error) {
	done := c.begin()
	defer done()
	httpClient := api.HTTPClient(c.http)
	if c.relay.IsEnabled() {
		httpClient = c.relay
	}
	stats, err := api.GetStatistics(ctx, httpClient, c.BaseURL())
	c.observe("statistics", err)
	return stats, err
}

// TopContributors fetches the leaderboard. A non-positive limit defaults
// to 10.
func (c *Client) TopContributors(ctx context.Context, limit int) ([]Contributor, error) {
	if limit <= 0 {
		limit = 10
	}
	done := c.begin()
	defer done()
	contributors, err := api.TopContributors(ctx, c.http, c.BaseURL(), limit)
	c.observe("top_contributors", err)
	return contributors, err
}

// --------------------------------------------------------------------
// AI phrase generation
// --------------------------------------------------------------------

// AIRandomPhrase fetches an AI-generated practice phrase.
func (c *Client) AIRandomPhrase(ctx context.Context, opts PhraseOptions) (*AIPhrase, error) {
	done := c.begin()
	defer done()
	phrase, err := api.RandomPhrase(ctx, c.http, c.BaseURL(), opts)
	c.observe("ai_random_phrase", err)
	return phrase, err
}

// GeminiPhrase fetches a phrase generated by the Gemini model.
func (c *Client) GeminiPhrase(ctx context.Context, opts PhraseOptions) (*AIPhrase, error) {
	done := c.begin()
	defer done()
	phrase, err := api.GeminiPhrase(ctx, c.http, c.BaseURL(), opts)
	c.observe("gemini_phrase", err)
	return phrase, err
}

// --------------------------------------------------------------------
// Diagnostics
// --------------------------------------------------------------------

// TestConnection probes the four main endpoint groups and reports each
// outcome. Individual probe failures are captured in the report instead of
// aborting the remaining probes.
func (c *Client) TestConnection(ctx context.Context) *ConnectionReport {
	done := c.begin()
	defer done()

	report := &ConnectionReport{}
	for _, probe := range api.ConnectionProbes(c.BaseURL()) {
		result := api.Probe(ctx, c.http, probe.Name, probe.URL)
		if !result.OK {
			log.Warn().Str("probe", result.Name).Str("error", result.Error).Msg("connection probe failed")
		}
		report.Probes = append(report.Probes, result)
	}
	return report
}
