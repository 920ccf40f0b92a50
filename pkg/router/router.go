package router

import (
	"runtime/debug"
	"time"

	"github.com/routekit/dispatch/pkg/common"
	"github.com/routekit/dispatch/pkg/httpwire"
	"github.com/routekit/dispatch/pkg/metrics"
	"go.uber.org/zap"
)

// Router is the dispatcher. It owns its route table and middleware chain,
// constructed once at startup; after that every field is read-only, so a
// single Router may be shared by a transport that processes connections
// concurrently. Handle itself keeps no per-call state outside the Request
// and Response it is given.
type Router struct {
	config  RouterConfig
	logger  *zap.Logger
	table   *RouteTable
	chain   common.MiddlewareChain
	metrics *metrics.Registry
}

// NewRouter creates a Router from the given configuration, registering the
// configured middleware, routes, and sub-router groups.
func NewRouter(config RouterConfig) *Router {
	// Set up the logger
	logger := config.Logger
	if logger == nil {
		// Create a default logger if none is provided
		var err error
		logger, err = zap.NewProduction()
		if err != nil {
			// Fallback to a no-op logger if we can't create a production logger
			logger = zap.NewNop()
		}
	}

	r := &Router{
		config: config,
		logger: logger,
		table:  NewRouteTable(config.NotFoundHandler),
		chain:  common.NewMiddlewareChain(config.Middlewares...),
	}

	if config.EnableMetrics {
		r.metrics = config.MetricsRegistry
		if r.metrics == nil {
			r.metrics = metrics.NewRegistry("dispatch")
		}
	}

	for _, route := range config.Routes {
		r.RegisterRoute(route.Method, route.Path, route.Handler)
	}
	for _, sr := range config.SubRouters {
		r.registerSubRouter(sr)
	}

	return r
}

// registerSubRouter registers all routes in a sub-router group, applying the
// group's path prefix to each route.
func (r *Router) registerSubRouter(sr SubRouterConfig) {
	for _, route := range sr.Routes {
		r.RegisterRoute(route.Method, sr.PathPrefix+route.Path, route.Handler)
	}
}

// RegisterRoute appends a route to the route table. Registration order is
// match priority. Registration is a startup-time operation; it must not be
// called once requests are being dispatched.
func (r *Router) RegisterRoute(method httpwire.Method, pattern string, handler common.Handler) {
	r.table.Register(method, pattern, handler)
	r.logger.Debug("Route registered",
		zap.String("method", method.String()),
		zap.String("pattern", pattern),
	)
}

// Use appends middleware to the chain. Like RegisterRoute, this is a
// startup-time operation.
func (r *Router) Use(middlewares ...common.Middleware) {
	r.chain = r.chain.Append(middlewares...)
}

// Metrics returns the registry observations are recorded into, or nil when
// metrics are disabled.
func (r *Router) Metrics() *metrics.Registry {
	return r.metrics
}

// Handle runs the full dispatch pipeline for one request and returns the
// final response. Every outcome, including middleware rejection, an
// unmatched route, an oversized body, or a recovered panic, is expressed as
// a normal response value; Handle never fails.
func (r *Router) Handle(req *httpwire.Request) (res *httpwire.Response) {
	res = httpwire.NewResponse()
	start := time.Now()

	defer func() {
		duration := time.Since(start)

		if r.metrics != nil {
			r.metrics.ObserveRequest(req.Method.String(), req.Path, res.StatusCode, duration)
		}

		fields := []zap.Field{
			zap.String("method", req.Method.String()),
			zap.String("path", req.Path),
			zap.Int("status", res.StatusCode),
			zap.Duration("duration", duration),
		}
		if req.TraceID != "" {
			fields = append([]zap.Field{zap.String("trace_id", req.TraceID)}, fields...)
		}

		switch {
		case res.StatusCode >= 500:
			r.logger.Error("Server error", fields...)
		case res.StatusCode >= 400:
			r.logger.Warn("Client error", fields...)
		case duration > 1*time.Second:
			r.logger.Warn("Slow request", fields...)
		default:
			// Debug level for normal requests to avoid log spam
			r.logger.Debug("Request dispatched", fields...)
		}
	}()

	defer func() {
		if rec := recover(); rec != nil {
			r.logger.Error("Panic recovered",
				zap.Any("panic", rec),
				zap.String("stack", string(debug.Stack())),
				zap.String("method", req.Method.String()),
				zap.String("path", req.Path),
			)
			res.SetJSON(httpwire.StatusInternalServerError, `{"error": "Internal server error"}`)
		}
	}()

	// Oversized bodies are rejected outright rather than truncated.
	if r.config.MaxBodySize > 0 && int64(len(req.Body)) > r.config.MaxBodySize {
		r.logger.Warn("Request body too large",
			zap.String("method", req.Method.String()),
			zap.String("path", req.Path),
			zap.Int("body_length", len(req.Body)),
			zap.Int64("max_body_size", r.config.MaxBodySize),
		)
		res.SetJSON(httpwire.StatusBadRequest, `{"error": "Request body too large"}`)
		return res
	}

	// A middleware that stops the chain has already populated the response.
	if !r.chain.Run(req, res) {
		return res
	}

	handler := r.table.Resolve(req.Method, req.Path)
	handler(req, res)
	return res
}
