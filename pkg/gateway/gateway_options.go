package gateway

import (
	"net/http"
	"time"

	"github.com/Greatversion/httpkit/pkg/connectivity"
)

// Option configures the Gateway at construction time. The configuration is
// immutable afterwards.
type Option func(*Gateway)

// WithConnectTimeout sets the timeout for establishing a connection.
// Default: 10 seconds (DefaultConnectTimeout).
//
// Example:
//
//	gw, err := gateway.New(baseURL, obs,
//	    gateway.WithConnectTimeout(5*time.Second),
//	)
func WithConnectTimeout(timeout time.Duration) Option {
	return func(g *Gateway) {
		if timeout > 0 {
			g.connectTimeout = timeout
		}
	}
}

// WithReceiveTimeout sets the timeout for receiving the full response.
// Default: 15 seconds (DefaultReceiveTimeout).
//
// Note: individual requests can tighten this further with context.WithTimeout.
func WithReceiveTimeout(timeout time.Duration) Option {
	return func(g *Gateway) {
		if timeout > 0 {
			g.receiveTimeout = timeout
		}
	}
}

// WithChecker replaces the connectivity checker consulted before every
// request. Default: connectivity.NewDialChecker().
//
// Use connectivity.Static(true) to disable the pre-flight gate.
func WithChecker(checker connectivity.Checker) Option {
	return func(g *Gateway) {
		if checker != nil {
			g.checker = checker
		}
	}
}

// WithTransport sets a custom base transport. Useful for custom connection
// pooling or proxies. The connect timeout option has no effect when a custom
// transport is supplied; the transport owns its own dialer.
func WithTransport(transport http.RoundTripper) Option {
	return func(g *Gateway) {
		if transport != nil {
			g.transport = transport
		}
	}
}

// WithDefaultHeader adds a header sent with every request. The gateway always
// sends "Accept: application/json"; this can override it.
func WithDefaultHeader(key, value string) Option {
	return func(g *Gateway) {
		g.headers[key] = value
	}
}
