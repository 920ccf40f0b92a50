package router

import (
	"github.com/routekit/dispatch/pkg/common"
	"github.com/routekit/dispatch/pkg/httpwire"
)

// Route is an immutable (method, pattern, handler) registration.
type Route struct {
	Method  httpwire.Method
	Pattern string
	Handler common.Handler
}

// RouteTable holds routes in registration order. Registration order is match
// priority: Resolve scans the table front to back and the first entry whose
// method and pattern both match wins. The table is populated once at startup
// and read-only afterwards, so it is safe to share across concurrent
// dispatch calls.
type RouteTable struct {
	routes   []Route
	notFound common.Handler
}

// NewRouteTable creates an empty route table. The notFound handler is
// returned by Resolve when no route matches; passing nil installs
// NotFoundHandler.
func NewRouteTable(notFound common.Handler) *RouteTable {
	if notFound == nil {
		notFound = NotFoundHandler
	}
	return &RouteTable{notFound: notFound}
}

// Register appends a route to the table.
func (t *RouteTable) Register(method httpwire.Method, pattern string, handler common.Handler) {
	t.routes = append(t.routes, Route{Method: method, Pattern: pattern, Handler: handler})
}

// Resolve returns the handler for the first route matching the method and
// path, or the not-found handler when nothing matches. For a fixed table and
// fixed inputs the result is always the same handler.
func (t *RouteTable) Resolve(method httpwire.Method, path string) common.Handler {
	for _, route := range t.routes {
		if route.Method == method && Matches(route.Pattern, path) {
			return route.Handler
		}
	}
	return t.notFound
}

// Len returns the number of registered routes.
func (t *RouteTable) Len() int {
	return len(t.routes)
}

// NotFoundHandler is the default handler for unmatched routes.
func NotFoundHandler(req *httpwire.Request, res *httpwire.Response) {
	res.SetJSON(httpwire.StatusNotFound, `{"error": "Route not found"}`)
}
