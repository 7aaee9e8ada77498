package gateway

import "net/http"

// Response is the success half of a gateway Outcome: the status code, the
// fully-read body, and the response headers, passed through unmodified. The
// body is opaque to the gateway; decoding belongs to the caller.
type Response struct {
	StatusCode int
	Body       []byte
	Header     http.Header
}
