package handlers

import (
	"testing"

	"github.com/routekit/dispatch/pkg/common"
	"github.com/routekit/dispatch/pkg/httpwire"
	"github.com/routekit/dispatch/pkg/middleware"
	"github.com/routekit/dispatch/pkg/router"
	"github.com/routekit/dispatch/pkg/userstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// newDemoRouter wires the demo routes and the reference middleware stack the
// way the server binary does.
func newDemoRouter(t *testing.T) *router.Router {
	t.Helper()

	h := New(userstore.NewStore())
	return router.NewRouter(router.RouterConfig{
		Logger: zap.NewNop(),
		Middlewares: []common.Middleware{
			middleware.Logging(zap.NewNop()),
			middleware.RequireAuth(zap.NewNop(), "/admin"),
		},
		Routes: h.Routes(),
	})
}

func TestDispatchHome(t *testing.T) {
	r := newDemoRouter(t)

	res := r.Handle(&httpwire.Request{Method: httpwire.MethodGet, Path: "/"})

	assert.Equal(t, httpwire.StatusOK, res.StatusCode)
	assert.Equal(t, "text/html", res.ContentType)
}

func TestDispatchListAndCreateUsers(t *testing.T) {
	r := newDemoRouter(t)

	res := r.Handle(&httpwire.Request{Method: httpwire.MethodGet, Path: "/api/users"})
	require.Equal(t, httpwire.StatusOK, res.StatusCode)
	assert.Equal(t, "application/json", res.ContentType)
	assert.Contains(t, string(res.Body), `"count": 3`)

	res = r.Handle(&httpwire.Request{
		Method: httpwire.MethodPost,
		Path:   "/api/users",
		Body:   []byte(`{"name":"John","email":"john@example.com"}`),
	})
	require.Equal(t, httpwire.StatusCreated, res.StatusCode)
	assert.Contains(t, string(res.Body), `"created": true`)
	assert.Contains(t, string(res.Body), `"id": 4`)
}

func TestDispatchQueryParameter(t *testing.T) {
	r := newDemoRouter(t)

	path, rawQuery := httpwire.SplitTarget("/api/hello?name=Alice")
	res := r.Handle(&httpwire.Request{
		Method: httpwire.MethodGet,
		Path:   path,
		Query:  httpwire.ParseQuery(rawQuery),
	})

	assert.Contains(t, string(res.Body), `"Hello, Alice!"`)

	res = r.Handle(&httpwire.Request{Method: httpwire.MethodGet, Path: "/api/hello"})
	assert.Contains(t, string(res.Body), `"Hello, Guest!"`)
}

func TestDispatchAdminGate(t *testing.T) {
	r := newDemoRouter(t)

	// Without the Authorization header the gate rejects before the handler
	res := r.Handle(&httpwire.Request{
		Method:  httpwire.MethodGet,
		Path:    "/admin",
		Headers: map[string]string{},
	})
	require.Equal(t, httpwire.StatusUnauthorized, res.StatusCode)
	assert.Equal(t, `{"error": "Unauthorized"}`, string(res.Body))

	// With the header present the admin handler answers
	res = r.Handle(&httpwire.Request{
		Method:  httpwire.MethodGet,
		Path:    "/admin",
		Headers: map[string]string{"Authorization": "Bearer secret"},
	})
	require.Equal(t, httpwire.StatusOK, res.StatusCode)
	assert.Contains(t, string(res.Body), "admin panel")
}

func TestDispatchUnmatchedRoute(t *testing.T) {
	r := newDemoRouter(t)

	res := r.Handle(&httpwire.Request{Method: httpwire.MethodGet, Path: "/nope"})
	assert.Equal(t, httpwire.StatusNotFound, res.StatusCode)
	assert.Equal(t, `{"error": "Route not found"}`, string(res.Body))

	// An unsupported method falls through to 404 as well
	res = r.Handle(&httpwire.Request{Method: httpwire.MethodUnsupported, Path: "/api/users"})
	assert.Equal(t, httpwire.StatusNotFound, res.StatusCode)
}

func TestDispatchUserByID(t *testing.T) {
	r := newDemoRouter(t)

	res := r.Handle(&httpwire.Request{Method: httpwire.MethodGet, Path: "/api/users/1"})
	require.Equal(t, httpwire.StatusOK, res.StatusCode)
	assert.Contains(t, string(res.Body), `"name": "Alice"`)

	res = r.Handle(&httpwire.Request{Method: httpwire.MethodDelete, Path: "/api/users/1"})
	require.Equal(t, httpwire.StatusOK, res.StatusCode)
	assert.Contains(t, string(res.Body), `"success": true`)

	res = r.Handle(&httpwire.Request{Method: httpwire.MethodGet, Path: "/api/users/1"})
	assert.Equal(t, httpwire.StatusNotFound, res.StatusCode)
}

func TestMetricsEndpoint(t *testing.T) {
	h := New(userstore.NewStore())
	r := router.NewRouter(router.RouterConfig{
		Logger:        zap.NewNop(),
		EnableMetrics: true,
		Routes:        h.Routes(),
	})
	r.RegisterRoute(httpwire.MethodGet, "/metrics", Metrics(r.Metrics()))

	r.Handle(&httpwire.Request{Method: httpwire.MethodGet, Path: "/api/users"})

	res := r.Handle(&httpwire.Request{Method: httpwire.MethodGet, Path: "/metrics"})
	require.Equal(t, httpwire.StatusOK, res.StatusCode)
	assert.Contains(t, string(res.Body), "dispatch_requests_total")
	assert.Contains(t, res.ContentType, "text/plain")
}
