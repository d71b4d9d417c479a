package client

import (
	"testing"
	"time"
)

func TestWithHTTPTimeout(t *testing.T) {
	t.Parallel()
	c := newTestClient(t, "http://localhost:5000/api", WithHTTPTimeout(5*time.Second))
	if c.http.Timeout != 5*time.Second {
		t.Fatalf("timeout = %v", c.http.Timeout)
	}

	if _, err := New("http://localhost:5000/api", WithHTTPTimeout(0)); err == nil {
		t.Fatal("zero timeout must be rejected")
	}
}

func TestWithDebugLoggingWrapsTransport(t *testing.T) {
	t.Parallel()
	c := newTestClient(t, "http://localhost:5000/api", WithDebugLogging(true))
	if _, ok := c.http.Transport.(*debugTransport); !ok {
		t.Fatalf("transport = %T, want *debugTransport", c.http.Transport)
	}

	plain := newTestClient(t, "http://localhost:5000/api", WithDebugLogging(false))
	if plain.http.Transport != nil {
		t.Fatalf("disabled debug logging must leave the transport alone, got %T", plain.http.Transport)
	}
}

func TestNilCollaboratorsRejected(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name string
		opt  Option
	}{
		{"nil relay", WithRelay(nil)},
		{"nil reporter", WithStatusReporter(nil)},
		{"nil store", WithSessionStore(nil)},
		{"empty fallback URL", WithFallbackURL("")},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := New("http://localhost:5000/api", tc.opt); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestFromConfigDefaults(t *testing.T) {
	t.Parallel()
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.APIURL != "http://localhost:5000/api" {
		t.Fatalf("default APIURL = %q", cfg.APIURL)
	}
	if cfg.FallbackURL != DefaultFallbackURL {
		t.Fatalf("default FallbackURL = %q", cfg.FallbackURL)
	}
	if cfg.HTTPTimeout != 30*time.Second {
		t.Fatalf("default HTTPTimeout = %v", cfg.HTTPTimeout)
	}

	c, err := FromConfig(cfg)
	if err != nil {
		t.Fatalf("FromConfig: %v", err)
	}
	t.Cleanup(func() { _ = c.Close() })
	if c.BaseURL() != cfg.APIURL {
		t.Fatalf("BaseURL = %q", c.BaseURL())
	}
	if c.http.Timeout != cfg.HTTPTimeout {
		t.Fatalf("timeout = %v", c.http.Timeout)
	}
}

func TestOptionsApplyAfterConfig(t *testing.T) {
	t.Parallel()
	cfg := Config{
		APIURL:      "http://localhost:5000/api",
		FallbackURL: DefaultFallbackURL,
		HTTPTimeout: 30 * time.Second,
	}
	c, err := FromConfig(cfg, WithHTTPTimeout(time.Second))
	if err != nil {
		t.Fatalf("FromConfig: %v", err)
	}
	t.Cleanup(func() { _ = c.Close() })
	if c.http.Timeout != time.Second {
		t.Fatalf("explicit option should win over config, timeout = %v", c.http.Timeout)
	}
}
