package transport

import (
	"strconv"
	"strings"
	"testing"

	"github.com/routekit/dispatch/pkg/httpwire"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRequestBasic(t *testing.T) {
	raw := "GET /api/hello?name=Alice HTTP/1.1\r\n" +
		"Host: localhost:8080\r\n" +
		"User-Agent: curl/8.0\r\n" +
		"\r\n"

	req, err := ParseRequest(strings.NewReader(raw), 0)
	require.NoError(t, err)

	assert.Equal(t, httpwire.MethodGet, req.Method)
	assert.Equal(t, "/api/hello", req.Path)
	assert.Equal(t, "Alice", req.Query["name"])
	assert.Equal(t, "localhost:8080", req.Headers["Host"])
	assert.Empty(t, req.Body)
}

func TestParseRequestBody(t *testing.T) {
	body := `{"name":"John","email":"john@example.com"}`
	raw := "POST /api/users HTTP/1.1\r\n" +
		"Content-Type: application/json\r\n" +
		"Content-Length: " + strconv.Itoa(len(body)) + "\r\n" +
		"\r\n" +
		body

	req, err := ParseRequest(strings.NewReader(raw), 1024)
	require.NoError(t, err)

	assert.Equal(t, httpwire.MethodPost, req.Method)
	assert.Equal(t, body, string(req.Body))
}

func TestParseRequestUnsupportedMethod(t *testing.T) {
	raw := "PATCH /api/users HTTP/1.1\r\n\r\n"

	req, err := ParseRequest(strings.NewReader(raw), 0)
	require.NoError(t, err)
	assert.Equal(t, httpwire.MethodUnsupported, req.Method)
}

func TestParseRequestMalformed(t *testing.T) {
	_, err := ParseRequest(strings.NewReader("GET\r\n\r\n"), 0)
	assert.Error(t, err)

	_, err = ParseRequest(strings.NewReader("\r\n"), 0)
	assert.Error(t, err)

	// Truncated headers
	_, err = ParseRequest(strings.NewReader("GET / HTTP/1.1\r\nHost: x"), 0)
	assert.Error(t, err)
}

func TestParseRequestSkipsMalformedHeaders(t *testing.T) {
	raw := "GET / HTTP/1.1\r\n" +
		"not-a-header-line\r\n" +
		"Host: localhost\r\n" +
		"\r\n"

	req, err := ParseRequest(strings.NewReader(raw), 0)
	require.NoError(t, err)
	assert.Equal(t, "localhost", req.Headers["Host"])
	assert.Len(t, req.Headers, 1)
}

func TestParseRequestBodyTooLarge(t *testing.T) {
	raw := "POST /api/users HTTP/1.1\r\n" +
		"Content-Length: 100\r\n" +
		"\r\n" +
		strings.Repeat("x", 100)

	_, err := ParseRequest(strings.NewReader(raw), 10)
	assert.ErrorIs(t, err, ErrBodyTooLarge)
}

func TestParseRequestLineTooLong(t *testing.T) {
	raw := "GET /" + strings.Repeat("a", 16<<10) + " HTTP/1.1\r\n\r\n"

	_, err := ParseRequest(strings.NewReader(raw), 0)
	assert.ErrorIs(t, err, ErrRequestTooLarge)
}

func TestParseRequestHeaderTooLarge(t *testing.T) {
	// A single oversized header line is rejected while reading, regardless
	// of the body limit
	raw := "GET / HTTP/1.1\r\n" +
		"X-Huge: " + strings.Repeat("x", 80<<10) + "\r\n" +
		"\r\n"

	_, err := ParseRequest(strings.NewReader(raw), 10)
	assert.ErrorIs(t, err, ErrRequestTooLarge)

	// So is a header block whose lines are individually small but add up
	// past the cap
	var b strings.Builder
	b.WriteString("GET / HTTP/1.1\r\n")
	for i := 0; i < 20; i++ {
		b.WriteString("X-Pad-" + strconv.Itoa(i) + ": " + strings.Repeat("y", 4<<10) + "\r\n")
	}
	b.WriteString("\r\n")

	_, err = ParseRequest(strings.NewReader(b.String()), 0)
	assert.ErrorIs(t, err, ErrRequestTooLarge)
}

func TestParseRequestInvalidContentLength(t *testing.T) {
	raw := "POST /api/users HTTP/1.1\r\n" +
		"Content-Length: banana\r\n" +
		"\r\n"

	_, err := ParseRequest(strings.NewReader(raw), 0)
	assert.Error(t, err)
}
