package transport

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/routekit/dispatch/pkg/httpwire"
)

// Head limits. The request line and the header block are bounded the same
// way the body is: an oversized head is rejected outright, never truncated.
const (
	maxRequestLineBytes = 8 << 10
	maxHeaderBytes      = 64 << 10
)

// ErrBodyTooLarge is returned when a request declares a body larger than the
// configured maximum. The request is rejected outright; bodies are never
// truncated.
var ErrBodyTooLarge = errors.New("request body too large")

// ErrRequestTooLarge is returned when the request line exceeds
// maxRequestLineBytes or the header block exceeds maxHeaderBytes.
var ErrRequestTooLarge = errors.New("request head too large")

// ParseRequest reads one HTTP/1.1 request from r and builds the request
// value the dispatch core consumes: method token mapped into the closed
// Method set, target split into path and parsed query, headers stored as
// received, and the body read per Content-Length bounded by maxBodySize.
func ParseRequest(r io.Reader, maxBodySize int64) (*httpwire.Request, error) {
	reader := bufio.NewReader(r)

	requestLine, err := readLine(reader, maxRequestLineBytes)
	if err != nil {
		return nil, fmt.Errorf("error reading request line: %w", err)
	}
	if len(requestLine) == 0 {
		return nil, errors.New("empty request line")
	}

	parts := bytes.SplitN(requestLine, []byte(" "), 3)
	if len(parts) != 3 {
		return nil, fmt.Errorf("malformed request line: %q", string(requestLine))
	}

	path, rawQuery := httpwire.SplitTarget(string(parts[1]))
	req := &httpwire.Request{
		Method:  httpwire.ParseMethod(string(parts[0])),
		Path:    path,
		Query:   httpwire.ParseQuery(rawQuery),
		Headers: make(map[string]string),
	}

	headerBytes := 0
	for {
		headerLine, err := readLine(reader, maxHeaderBytes)
		if err != nil {
			return nil, fmt.Errorf("error reading header line: %w", err)
		}
		if len(headerLine) == 0 {
			break
		}
		headerBytes += len(headerLine)
		if headerBytes > maxHeaderBytes {
			return nil, fmt.Errorf("%w: header block exceeds %d bytes", ErrRequestTooLarge, maxHeaderBytes)
		}

		headerParts := bytes.SplitN(headerLine, []byte(":"), 2)
		if len(headerParts) != 2 {
			// Malformed header lines are skipped, not fatal
			continue
		}
		key := strings.TrimSpace(string(headerParts[0]))
		value := strings.TrimSpace(string(headerParts[1]))
		req.Headers[key] = value
	}

	if contentLengthStr, ok := req.Header("Content-Length"); ok {
		contentLength, err := strconv.ParseInt(contentLengthStr, 10, 64)
		if err != nil || contentLength < 0 {
			return nil, fmt.Errorf("invalid Content-Length: %q", contentLengthStr)
		}
		if maxBodySize > 0 && contentLength > maxBodySize {
			return nil, fmt.Errorf("%w: %d bytes declared, limit %d", ErrBodyTooLarge, contentLength, maxBodySize)
		}
		body := make([]byte, contentLength)
		if _, err := io.ReadFull(reader, body); err != nil {
			return nil, fmt.Errorf("error reading request body: %w", err)
		}
		req.Body = body
	}

	return req, nil
}

// readLine reads one CRLF- or LF-terminated line with the terminator and any
// trailing '\r' stripped. Reading stops with ErrRequestTooLarge as soon as
// the line exceeds limit, before the rest of it is buffered.
func readLine(reader *bufio.Reader, limit int) ([]byte, error) {
	var line []byte
	for {
		b, err := reader.ReadByte()
		if err != nil {
			return nil, err
		}
		if b == '\n' {
			return bytes.TrimSuffix(line, []byte("\r")), nil
		}
		line = append(line, b)
		if len(line) > limit {
			return nil, fmt.Errorf("%w: line exceeds %d bytes", ErrRequestTooLarge, limit)
		}
	}
}
