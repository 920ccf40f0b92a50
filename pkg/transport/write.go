package transport

import (
	"fmt"
	"io"
	"sort"

	"github.com/routekit/dispatch/pkg/httpwire"
)

// WriteResponse serializes a response onto the wire:
//
//	HTTP/1.1 <status_code> <status_text>
//	Content-Type: <content_type>
//	Content-Length: <byte length of body>
//	<extra headers, sorted by name>
//	Connection: close
//
//	<body>
//
// Extra headers are emitted in sorted order so serialization is
// deterministic.
func WriteResponse(w io.Writer, res *httpwire.Response) error {
	var head []byte
	head = fmt.Appendf(head, "HTTP/1.1 %d %s\r\n", res.StatusCode, httpwire.StatusText(res.StatusCode))
	head = fmt.Appendf(head, "Content-Type: %s\r\n", res.ContentType)
	head = fmt.Appendf(head, "Content-Length: %d\r\n", len(res.Body))

	if len(res.Headers) > 0 {
		names := make([]string, 0, len(res.Headers))
		for name := range res.Headers {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			head = fmt.Appendf(head, "%s: %s\r\n", name, res.Headers[name])
		}
	}

	head = append(head, "Connection: close\r\n\r\n"...)

	if _, err := w.Write(head); err != nil {
		return fmt.Errorf("error writing response head: %w", err)
	}
	if len(res.Body) > 0 {
		if _, err := w.Write(res.Body); err != nil {
			return fmt.Errorf("error writing response body: %w", err)
		}
	}
	return nil
}
