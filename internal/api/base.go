// Package api holds the stateless HTTP operations behind the public Client.
// Each function issues exactly one request against the supplied base URL and
// decodes the JSON response; cross-cutting behavior (loading scope, fallback,
// metrics, CORS surfacing) lives in the client package.
package api

import (
	"net/http"

	"github.com/palefo/client-go/internal/types"
)

// HTTPClient interface for dependency injection. The CORS relay satisfies it
// as well as *http.Client.
type HTTPClient = types.HTTPClient

// ok reports whether the response status is in the 2xx range.
func ok(resp *http.Response) bool {
	return resp.StatusCode >= 200 && resp.StatusCode < 300
}
