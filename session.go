package client

import (
	"github.com/rs/zerolog/log"

	"github.com/palefo/client-go/internal/store"
)

// SessionStore is the persistence collaborator for client session state,
// standing in for the browser's local storage.
type SessionStore interface {
	Get(key string) (string, bool)
	Set(key, value string)
	Delete(key string)
	Flush() error
}

// NewSessionStore returns the default in-memory session store.
func NewSessionStore() SessionStore { return store.New() }

// NewFileSessionStore returns a session store that snapshots to path on
// Flush and loads existing state at construction.
func NewFileSessionStore(path string) (SessionStore, error) { return store.NewFile(path) }

// Session store keys.
const (
	adminFlagKey  = "adminAuthenticated"
	apiURLKey     = "palefo-api-url"
	adminFlagTrue = "true"
)

// Stand-in admin credentials, kept only for behavioral parity with the
// platform's current ad-hoc check. Replace with delegation to a real
// authenticator before exposing moderation to untrusted environments.
const (
	adminUsername = "admin"
	adminPassword = "palefo2023"
)

// AuthenticateAdmin compares the given credentials against the stand-in
// admin account. On a match it persists the session flag and returns true;
// otherwise it returns false and the store is left untouched.
func (c *Client) AuthenticateAdmin(username, password string) bool {
	if username != adminUsername || password != adminPassword {
		return false
	}
	c.store.Set(adminFlagKey, adminFlagTrue)
	log.Info().Msg("admin session opened")
	return true
}

// IsAdminAuthenticated reports whether an admin session flag is persisted.
func (c *Client) IsAdminAuthenticated() bool {
	v, ok := c.store.Get(adminFlagKey)
	return ok && v == adminFlagTrue
}

// LogoutAdmin clears the persisted admin session flag.
func (c *Client) LogoutAdmin() {
	c.store.Delete(adminFlagKey)
	log.Info().Msg("admin session closed")
}

// SetAPIURL persists a manual API-URL override in the session store.
//
// Nothing reads the override back into the active base URL; the platform's
// frontend behaves the same way, so the inconsistency is preserved rather
// than silently repaired. Use ResetFallback to actually change the active
// base URL.
func (c *Client) SetAPIURL(url string) {
	c.store.Set(apiURLKey, url)
}

// StoredAPIURL returns the persisted override, if any.
func (c *Client) StoredAPIURL() (string, bool) {
	return c.store.Get(apiURLKey)
}
