package client

import (
	"time"

	"github.com/kelseyhightower/envconfig"

	"github.com/palefo/client-go/internal/store"
)

// Config groups the environment-driven client settings. Values are taken
// from environment variables with the prefix "PALEFO_".
// Example: PALEFO_API_URL=https://api.palefo.org/api PALEFO_HTTP_TIMEOUT=10s .
type Config struct {
	APIURL      string        `envconfig:"API_URL"      default:"http://localhost:5000/api"`
	FallbackURL string        `envconfig:"FALLBACK_URL" default:"http://localhost:5056/api"`
	HTTPTimeout time.Duration `envconfig:"HTTP_TIMEOUT" default:"30s"`

	// SessionFile, when set, makes the session store survive restarts.
	SessionFile string `envconfig:"SESSION_FILE"`
}

// LoadConfig populates Config from environment variables (prefix PALEFO_).
func LoadConfig() (Config, error) {
	var c Config
	return c, envconfig.Process("PALEFO", &c)
}

// FromConfig constructs a Client from an environment-driven Config.
// Explicit options are applied after the config and take precedence.
func FromConfig(cfg Config, opts ...Option) (*Client, error) {
	base := []Option{
		WithHTTPTimeout(cfg.HTTPTimeout),
		WithFallbackURL(cfg.FallbackURL),
	}
	if cfg.SessionFile != "" {
		s, err := store.NewFile(cfg.SessionFile)
		if err != nil {
			return nil, err
		}
		base = append(base, WithSessionStore(s))
	}
	return New(cfg.APIURL, append(base, opts...)...)
}
