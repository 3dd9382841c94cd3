package sdg

import (
	"net/http"

	"github.com/justin4957/UNStatsExplorer/cache"
)

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client. The caller is then
// responsible for setting a sensible timeout on it.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient = httpClient
		}
	}
}

// WithCache replaces the default in-memory metadata store, e.g. with a
// file-backed one so metadata survives across invocations.
func WithCache(store cache.Store) Option {
	return func(c *Client) {
		if store != nil {
			c.store = store
		}
	}
}

// WithProgress registers a callback invoked after every fetched page with
// the number of records aggregated so far. Purely cosmetic; errors in the
// fetch are not reported through it.
func WithProgress(progress func(fetched int)) Option {
	return func(c *Client) {
		c.progress = progress
	}
}
