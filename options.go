package client

// This file defines functional options that configure the Client during
// construction. Keeping them in a standalone file avoids cluttering
// client.go and makes it easy to discover all available knobs at a glance.

import (
	"fmt"
	"time"
)

// Option configures a Client during construction in New.
// Options must be deterministic and side-effect free.
type Option func(*Client) error

// WithHTTPTimeout sets the underlying http.Client Timeout used by the SDK.
//
// Prefer per-request context deadlines where possible; this timeout is a
// coarse safety net that bounds the total time spent on a single HTTP
// request. The value must be greater than zero.
func WithHTTPTimeout(d time.Duration) Option {
	return func(c *Client) error {
		if d <= 0 {
			return fmt.Errorf("http timeout must be > 0")
		}
		c.http.Timeout = d
		return nil
	}
}

// WithDebugLogging wraps the client's transport so each request/response is
// logged when enabled is true.
//
// Do not enable this option in production environments: dumps include
// headers and bodies.
func WithDebugLogging(enabled bool) Option {
	return func(c *Client) error {
		if enabled {
			c.http.Transport = &debugTransport{base: c.http.Transport}
		}
		return nil
	}
}

// WithRelay injects the CORS-relay collaborator. Operations documented as
// relay-aware route through it whenever relay.IsEnabled() reports true.
func WithRelay(relay Relay) Option {
	return func(c *Client) error {
		if relay == nil {
			return fmt.Errorf("nil relay")
		}
		c.relay = relay
		return nil
	}
}

// WithStatusReporter injects the UI collaborator that renders the loading
// indicator and transient notifications.
func WithStatusReporter(reporter StatusReporter) Option {
	return func(c *Client) error {
		if reporter == nil {
			return fmt.Errorf("nil status reporter")
		}
		c.reporter = reporter
		return nil
	}
}

// WithSessionStore injects the persistence collaborator for session state.
// The default is an in-memory store that forgets everything on exit.
func WithSessionStore(s SessionStore) Option {
	return func(c *Client) error {
		if s == nil {
			return fmt.Errorf("nil session store")
		}
		c.store = s
		return nil
	}
}

// WithFallbackURL overrides the fixed fallback endpoint the client switches
// to after an API error on the contribution list.
func WithFallbackURL(u string) Option {
	return func(c *Client) error {
		if u == "" {
			return fmt.Errorf("empty fallback URL")
		}
		c.fallbackURL = u
		return nil
	}
}
