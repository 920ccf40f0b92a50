// Package middleware provides a collection of middleware gates for the
// dispatch framework. A gate runs before routing, may mutate the response,
// and vetoes further processing by returning false; a gate that vetoes must
// leave the response fully populated.
package middleware

import (
	"strings"

	"github.com/routekit/dispatch/pkg/common"
	"github.com/routekit/dispatch/pkg/httpwire"
	"go.uber.org/zap"
)

// Use the Middleware type from the common package
type Middleware = common.Middleware

// Chain combines multiple middleware into one gate that runs them in order
// and stops at the first veto.
func Chain(middlewares ...Middleware) Middleware {
	return func(req *httpwire.Request, res *httpwire.Response) bool {
		for _, m := range middlewares {
			if !m(req, res) {
				return false
			}
		}
		return true
	}
}

// Logging returns a middleware that logs every request it observes. It never
// vetoes, so registering it before any rejecting gate guarantees rejected
// requests are logged too.
func Logging(logger *zap.Logger) Middleware {
	return func(req *httpwire.Request, res *httpwire.Response) bool {
		fields := []zap.Field{
			zap.String("method", req.Method.String()),
			zap.String("path", req.Path),
		}
		if len(req.Query) > 0 {
			fields = append(fields, zap.Any("query", req.Query))
		}
		if req.TraceID != "" {
			fields = append([]zap.Field{zap.String("trace_id", req.TraceID)}, fields...)
		}

		logger.Info("Request received", fields...)
		return true
	}
}

// MaxBodySize returns a middleware that rejects requests whose body exceeds
// maxSize bytes with a 400 response. Oversized bodies are an error
// condition, never silently truncated data.
func MaxBodySize(maxSize int64) Middleware {
	return func(req *httpwire.Request, res *httpwire.Response) bool {
		if int64(len(req.Body)) > maxSize {
			res.SetJSON(httpwire.StatusBadRequest, `{"error": "Request body too large"}`)
			return false
		}
		return true
	}
}

// CORS returns a middleware that adds CORS headers to the response. It never
// vetoes.
func CORS(origins []string, methods []string, headers []string) Middleware {
	return func(req *httpwire.Request, res *httpwire.Response) bool {
		if len(origins) > 0 {
			res.SetHeader("Access-Control-Allow-Origin", strings.Join(origins, ", "))
		}
		if len(methods) > 0 {
			res.SetHeader("Access-Control-Allow-Methods", strings.Join(methods, ", "))
		}
		if len(headers) > 0 {
			res.SetHeader("Access-Control-Allow-Headers", strings.Join(headers, ", "))
		}
		return true
	}
}
