package httpwire

// Response is the value handlers and middleware populate. The dispatcher
// creates one per request with the defaults below and the transport
// serializes whatever state it holds when dispatch returns; there is no
// separate error channel.
type Response struct {
	StatusCode  int
	ContentType string
	Headers     map[string]string // extra headers, e.g. CORS; may be nil
	Body        []byte
}

// NewResponse returns a Response with the dispatch defaults: 200, text/plain,
// empty body.
func NewResponse() *Response {
	return &Response{
		StatusCode:  200,
		ContentType: "text/plain",
	}
}

// SetJSON sets the status code and a JSON body.
func (r *Response) SetJSON(status int, body string) {
	r.StatusCode = status
	r.ContentType = "application/json"
	r.Body = []byte(body)
}

// SetText sets the status code and a plain-text body.
func (r *Response) SetText(status int, body string) {
	r.StatusCode = status
	r.ContentType = "text/plain"
	r.Body = []byte(body)
}

// SetHTML sets the status code and an HTML body.
func (r *Response) SetHTML(status int, body string) {
	r.StatusCode = status
	r.ContentType = "text/html"
	r.Body = []byte(body)
}

// SetHeader sets an extra response header, allocating the header map on
// first use.
func (r *Response) SetHeader(name, value string) {
	if r.Headers == nil {
		r.Headers = make(map[string]string)
	}
	r.Headers[name] = value
}
