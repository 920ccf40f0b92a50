package middleware

import (
	"github.com/routekit/dispatch/pkg/httpwire"
	"go.uber.org/ratelimit"
)

// RateLimit returns a middleware that paces dispatch to at most rps requests
// per second using Uber's leaky-bucket limiter. Take blocks until the next
// permit rather than rejecting, so the gate always continues; with the
// reference single-request-at-a-time transport this bounds the rate at which
// handlers run.
func RateLimit(rps int) Middleware {
	limiter := ratelimit.New(rps)
	return func(req *httpwire.Request, res *httpwire.Response) bool {
		limiter.Take()
		return true
	}
}
