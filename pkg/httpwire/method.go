// Package httpwire defines the request and response values exchanged between
// the transport layer and the dispatch core. The transport parses raw bytes
// into a Request and serializes the Response the dispatcher returns; the
// dispatch core itself never touches the wire.
package httpwire

// Method is the closed set of HTTP methods the dispatcher understands.
// Anything else is mapped to MethodUnsupported and will never match a
// registered route.
type Method int

const (
	MethodGet Method = iota
	MethodPost
	MethodPut
	MethodDelete
	MethodUnsupported
)

// ParseMethod maps a request-line method token to a Method.
func ParseMethod(s string) Method {
	switch s {
	case "GET":
		return MethodGet
	case "POST":
		return MethodPost
	case "PUT":
		return MethodPut
	case "DELETE":
		return MethodDelete
	default:
		return MethodUnsupported
	}
}

// String returns the wire representation of the method.
func (m Method) String() string {
	switch m {
	case MethodGet:
		return "GET"
	case MethodPost:
		return "POST"
	case MethodPut:
		return "PUT"
	case MethodDelete:
		return "DELETE"
	default:
		return "UNSUPPORTED"
	}
}
