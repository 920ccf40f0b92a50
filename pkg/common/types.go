// Package common provides the shared handler and middleware types used
// across the dispatch framework.
package common

import (
	"github.com/routekit/dispatch/pkg/httpwire"
)

// Handler is the terminal function for a matched route. It mutates the
// Response in place; it has no return value because every outcome of
// dispatch is expressed through the Response.
type Handler func(req *httpwire.Request, res *httpwire.Response)

// Middleware is an ordered gate invoked before routing. It returns true to
// continue the chain and false to stop processing; a middleware that stops
// the chain is responsible for fully populating the Response (status and
// body) as the terminal response.
type Middleware func(req *httpwire.Request, res *httpwire.Response) bool
