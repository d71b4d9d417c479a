package client

import "net/http"

// Relay is the external CORS-relay collaborator: an optional request
// forwarder that re-issues calls on the client's behalf to work around
// cross-origin restrictions. It satisfies the same Do contract as
// *http.Client, so API operations stay relay-agnostic.
type Relay interface {
	IsEnabled() bool
	Do(req *http.Request) (*http.Response, error)
}

// NoRelay is the default relay: disabled, never used for requests.
type NoRelay struct{}

func (NoRelay) IsEnabled() bool { return false }

func (NoRelay) Do(req *http.Request) (*http.Response, error) {
	return http.DefaultClient.Do(req)
}
