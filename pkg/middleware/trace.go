package middleware

import (
	"github.com/google/uuid"
	"github.com/routekit/dispatch/pkg/httpwire"
)

// Trace returns a middleware that assigns a unique trace ID to each request
// so log lines from a single request can be correlated. It never vetoes.
func Trace() Middleware {
	return func(req *httpwire.Request, res *httpwire.Response) bool {
		req.TraceID = uuid.New().String()
		return true
	}
}
