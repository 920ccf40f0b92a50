package middleware

import (
	"strings"

	"github.com/routekit/dispatch/pkg/httpwire"
	"go.uber.org/zap"
)

// RequireAuth returns a middleware that gates the given path prefixes on the
// presence of an Authorization header. The header lookup is case-insensitive.
// Requests to unprotected paths pass through untouched; requests to a
// protected path without the header are rejected with a 401 response.
//
// This is a presence check only; token validation is out of scope.
func RequireAuth(logger *zap.Logger, protectedPrefixes ...string) Middleware {
	return func(req *httpwire.Request, res *httpwire.Response) bool {
		protected := false
		for _, prefix := range protectedPrefixes {
			if strings.HasPrefix(req.Path, prefix) {
				protected = true
				break
			}
		}
		if !protected {
			return true
		}

		if _, ok := req.Header("Authorization"); !ok {
			logger.Warn("Unauthorized request rejected",
				zap.String("method", req.Method.String()),
				zap.String("path", req.Path),
			)
			res.SetJSON(httpwire.StatusUnauthorized, `{"error": "Unauthorized"}`)
			return false
		}

		logger.Debug("Authorization header present",
			zap.String("method", req.Method.String()),
			zap.String("path", req.Path),
		)
		return true
	}
}
