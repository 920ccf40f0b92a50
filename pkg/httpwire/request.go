package httpwire

import "strings"

// Request is a fully parsed HTTP request as seen by the dispatch core.
// It is constructed once by the transport and treated as read-only for the
// duration of one dispatch cycle; no request state survives the cycle.
type Request struct {
	Method  Method
	Path    string            // normalized path, never contains '?'
	Query   map[string]string // parsed query parameters, last write wins
	Headers map[string]string // header names as received on the wire
	Body    []byte

	// TraceID is populated by the trace middleware so that log lines from a
	// single request can be correlated. Empty when tracing is not enabled.
	TraceID string
}

// Header looks up a header value by name, case-insensitively. Header names
// are stored exactly as received, so a direct map access is only correct for
// an exact case match; use this for lookups such as Authorization.
func (r *Request) Header(name string) (string, bool) {
	if v, ok := r.Headers[name]; ok {
		return v, true
	}
	for k, v := range r.Headers {
		if strings.EqualFold(k, name) {
			return v, true
		}
	}
	return "", false
}

// QueryValue returns the query parameter value for key, or def when the key
// is absent.
func (r *Request) QueryValue(key, def string) string {
	if v, ok := r.Query[key]; ok {
		return v
	}
	return def
}

// SplitTarget splits a request target into its path and raw query component.
// The path returned never contains '?'.
func SplitTarget(target string) (path, rawQuery string) {
	if i := strings.IndexByte(target, '?'); i >= 0 {
		return target[:i], target[i+1:]
	}
	return target, ""
}

// ParseQuery parses a raw query string into a map. Keys and values are
// opaque strings; repeated keys resolve last-write-wins. Empty pairs are
// skipped.
func ParseQuery(rawQuery string) map[string]string {
	query := make(map[string]string)
	for _, pair := range strings.Split(rawQuery, "&") {
		if pair == "" {
			continue
		}
		if i := strings.IndexByte(pair, '='); i >= 0 {
			query[pair[:i]] = pair[i+1:]
		} else {
			query[pair] = ""
		}
	}
	return query
}
