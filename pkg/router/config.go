// Package router provides the request dispatch core: an ordered route table
// with pattern matching, a middleware chain with short-circuit semantics,
// and the dispatcher that turns a parsed request into a final response.
package router

import (
	"github.com/routekit/dispatch/pkg/common"
	"github.com/routekit/dispatch/pkg/httpwire"
	"github.com/routekit/dispatch/pkg/metrics"
	"go.uber.org/zap"
)

// RouterConfig defines the global configuration for the router.
// It includes settings for logging, body limits, metrics, and middleware.
type RouterConfig struct {
	Logger          *zap.Logger         // Logger for all router operations
	MaxBodySize     int64               // Maximum request body size in bytes; 0 disables the check
	EnableMetrics   bool                // Enable per-request metrics collection
	MetricsRegistry *metrics.Registry   // Registry observations are recorded into (required when EnableMetrics)
	Middlewares     []common.Middleware // Middleware gates run before routing, in order
	NotFoundHandler common.Handler      // Handler for unmatched routes; nil installs the default
	Routes          []RouteConfig       // Routes registered at construction
	SubRouters      []SubRouterConfig   // Route groups with a common path prefix
}

// SubRouterConfig defines a group of routes sharing a common path prefix.
type SubRouterConfig struct {
	PathPrefix string        // Prefix prepended to every route path in the group
	Routes     []RouteConfig // Routes in this group
}

// RouteConfig defines a single route registration.
type RouteConfig struct {
	Method  httpwire.Method // HTTP method this route handles
	Path    string          // Route pattern, optionally with one trailing :param segment
	Handler common.Handler  // Handler invoked on match
}

// Handler is an alias for common.Handler.
type Handler = common.Handler

// Middleware is an alias for common.Middleware.
type Middleware = common.Middleware
