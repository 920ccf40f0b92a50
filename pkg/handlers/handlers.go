// Package handlers contains the reference handler set for the dispatch
// framework: a small demo API over an injected in-memory user store. The
// handlers illustrate the (Request, mutable Response) contract; any function
// with that shape can serve as a route handler.
package handlers

import (
	"fmt"
	"time"

	"github.com/routekit/dispatch/pkg/httpwire"
	"github.com/routekit/dispatch/pkg/metrics"
	"github.com/routekit/dispatch/pkg/userstore"
)

const homeHTML = `<!DOCTYPE html>` +
	`<html><head><title>dispatch demo server</title></head>` +
	`<body>` +
	`<h1>Welcome to the dispatch demo server!</h1>` +
	`<p>Available endpoints:</p>` +
	`<ul>` +
	`<li>GET / - This page</li>` +
	`<li>GET /api/hello - Hello JSON</li>` +
	`<li>GET /api/time - Current time</li>` +
	`<li>GET /api/users - List users</li>` +
	`<li>POST /api/users - Create user</li>` +
	`<li>GET /api/users/123 - Get specific user</li>` +
	`<li>DELETE /api/users/123 - Delete user</li>` +
	`<li>GET /admin - Protected route (requires auth)</li>` +
	`</ul>` +
	`</body></html>`

// Handlers bundles the reference handlers around their dependencies. The
// store is injected so tests can use a fresh instance per test; now is
// injectable for deterministic time handling.
type Handlers struct {
	store *userstore.Store
	now   func() time.Time
}

// New creates the reference handler set around the given store.
func New(store *userstore.Store) *Handlers {
	return &Handlers{store: store, now: time.Now}
}

// Home serves the HTML endpoint index.
func (h *Handlers) Home(req *httpwire.Request, res *httpwire.Response) {
	res.SetHTML(httpwire.StatusOK, homeHTML)
}

// Hello greets the caller by the name query parameter, defaulting to Guest.
func (h *Handlers) Hello(req *httpwire.Request, res *httpwire.Response) {
	name := req.QueryValue("name", "Guest")
	res.SetJSON(httpwire.StatusOK, fmt.Sprintf(
		`{"message": "Hello, %s!", "timestamp": %d}`, name, h.now().Unix()))
}

// Time reports the current server time.
func (h *Handlers) Time(req *httpwire.Request, res *httpwire.Response) {
	now := h.now()
	res.SetJSON(httpwire.StatusOK, fmt.Sprintf(
		`{"current_time": "%s", "unix_timestamp": %d}`, now.Format(time.RFC1123), now.Unix()))
}

// Admin serves the admin panel; the auth middleware gates access to it.
func (h *Handlers) Admin(req *httpwire.Request, res *httpwire.Response) {
	res.SetJSON(httpwire.StatusOK, `{"message": "Welcome to admin panel"}`)
}

// Metrics returns a handler serving the Prometheus text exposition of the
// given registry.
func Metrics(registry *metrics.Registry) func(*httpwire.Request, *httpwire.Response) {
	return func(req *httpwire.Request, res *httpwire.Response) {
		body, err := registry.Expose()
		if err != nil {
			res.SetJSON(httpwire.StatusInternalServerError, `{"error": "Internal server error"}`)
			return
		}
		res.StatusCode = httpwire.StatusOK
		res.ContentType = metrics.ExpositionContentType()
		res.Body = body
	}
}
