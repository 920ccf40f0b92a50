// Package common provides common utilities and interfaces for the dispatch framework.
package common

import (
	"github.com/routekit/dispatch/pkg/httpwire"
)

// MiddlewareChain represents an ordered chain of middleware gates.
type MiddlewareChain []Middleware

// NewMiddlewareChain creates a new middleware chain
func NewMiddlewareChain(middlewares ...Middleware) MiddlewareChain {
	return middlewares
}

// Append adds middleware to the end of the chain
func (c MiddlewareChain) Append(middlewares ...Middleware) MiddlewareChain {
	return append(c, middlewares...)
}

// Prepend adds middleware to the beginning of the chain
func (c MiddlewareChain) Prepend(middlewares ...Middleware) MiddlewareChain {
	result := make(MiddlewareChain, len(middlewares)+len(c))
	copy(result, middlewares)
	copy(result[len(middlewares):], c)
	return result
}

// Run executes each middleware in registration order. It stops at the first
// middleware that returns false and reports false itself, meaning the
// Response as mutated by that middleware is final and no handler should run.
// When every middleware returns true, Run returns true.
func (c MiddlewareChain) Run(req *httpwire.Request, res *httpwire.Response) bool {
	for _, m := range c {
		if !m(req, res) {
			return false
		}
	}
	return true
}
