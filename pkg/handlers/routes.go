package handlers

import (
	"github.com/routekit/dispatch/pkg/httpwire"
	"github.com/routekit/dispatch/pkg/router"
)

// Routes returns the demo route set in its intended registration order. The
// literal /api/users routes come before the :id routes so the permissive
// parameter match cannot shadow them.
func (h *Handlers) Routes() []router.RouteConfig {
	return []router.RouteConfig{
		{Method: httpwire.MethodGet, Path: "/", Handler: h.Home},
		{Method: httpwire.MethodGet, Path: "/api/hello", Handler: h.Hello},
		{Method: httpwire.MethodGet, Path: "/api/time", Handler: h.Time},
		{Method: httpwire.MethodGet, Path: "/api/users", Handler: h.ListUsers},
		{Method: httpwire.MethodPost, Path: "/api/users", Handler: h.CreateUser},
		{Method: httpwire.MethodGet, Path: "/api/users/:id", Handler: h.GetUser},
		{Method: httpwire.MethodDelete, Path: "/api/users/:id", Handler: h.DeleteUser},
		{Method: httpwire.MethodGet, Path: "/admin", Handler: h.Admin},
	}
}
