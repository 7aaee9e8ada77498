// Package connectivity reports whether the network is currently reachable.
//
// The answer is a point-in-time signal: reachability can change between the
// check and whatever the caller does next. Callers that need hard guarantees
// must handle transport-level failures as well.
package connectivity

import (
	"context"
	"net"
	"net/http"
	"time"
)

const (
	// DefaultDialTimeout bounds each dial attempt made by DialChecker.
	DefaultDialTimeout = 3 * time.Second

	// DefaultProbeTimeout bounds the probe request made by ProbeChecker.
	DefaultProbeTimeout = 5 * time.Second

	// DefaultProbeURL answers HEAD requests with 204 and no body.
	DefaultProbeURL = "https://www.gstatic.com/generate_204"
)

// DefaultEndpoints are public DNS resolvers used by DialChecker. DNS-over-TCP
// endpoints answer fast and are rarely blocked.
var DefaultEndpoints = []string{"1.1.1.1:53", "8.8.8.8:53"}

// Checker reports network reachability.
type Checker interface {
	// Reachable reports whether the network was reachable at the time of
	// the call. It never returns an error: any failure means unreachable.
	Reachable(ctx context.Context) bool
}

// Static is a Checker with a fixed answer. Useful as a test double and for
// environments where connectivity is known (e.g. Static(true) in servers).
type Static bool

func (s Static) Reachable(ctx context.Context) bool {
	return bool(s)
}

// DialChecker reports reachability by attempting TCP dials against a set of
// well-known endpoints. The network counts as reachable when any endpoint
// accepts a connection.
type DialChecker struct {
	endpoints []string
	timeout   time.Duration
	dial      func(ctx context.Context, network, address string) (net.Conn, error)
}

// DialOption configures a DialChecker.
type DialOption func(*DialChecker)

// WithEndpoints replaces the endpoints to dial. Each entry is host:port.
func WithEndpoints(endpoints ...string) DialOption {
	return func(c *DialChecker) {
		if len(endpoints) > 0 {
			c.endpoints = endpoints
		}
	}
}

// WithDialTimeout bounds each individual dial attempt.
func WithDialTimeout(timeout time.Duration) DialOption {
	return func(c *DialChecker) {
		if timeout > 0 {
			c.timeout = timeout
		}
	}
}

// WithDialFunc replaces the dial function. Intended for tests.
func WithDialFunc(dial func(ctx context.Context, network, address string) (net.Conn, error)) DialOption {
	return func(c *DialChecker) {
		if dial != nil {
			c.dial = dial
		}
	}
}

// NewDialChecker creates a DialChecker with the default endpoints and timeout.
func NewDialChecker(opts ...DialOption) *DialChecker {
	checker := &DialChecker{
		endpoints: DefaultEndpoints,
		timeout:   DefaultDialTimeout,
	}
	for _, opt := range opts {
		opt(checker)
	}
	if checker.dial == nil {
		dialer := &net.Dialer{Timeout: checker.timeout}
		checker.dial = dialer.DialContext
	}
	return checker
}

func (c *DialChecker) Reachable(ctx context.Context) bool {
	for _, endpoint := range c.endpoints {
		if ctx.Err() != nil {
			return false
		}
		conn, err := c.dial(ctx, "tcp", endpoint)
		if err != nil {
			continue
		}
		conn.Close()
		return true
	}
	return false
}

// ProbeChecker reports reachability by issuing an HTTP HEAD request against a
// probe URL. Any completed response, whatever its status, counts as reachable.
type ProbeChecker struct {
	url    string
	client *http.Client
}

// ProbeOption configures a ProbeChecker.
type ProbeOption func(*ProbeChecker)

// WithProbeURL replaces the probe URL.
func WithProbeURL(url string) ProbeOption {
	return func(c *ProbeChecker) {
		if url != "" {
			c.url = url
		}
	}
}

// WithProbeClient replaces the HTTP client used for probes.
func WithProbeClient(client *http.Client) ProbeOption {
	return func(c *ProbeChecker) {
		if client != nil {
			c.client = client
		}
	}
}

// NewProbeChecker creates a ProbeChecker against DefaultProbeURL.
func NewProbeChecker(opts ...ProbeOption) *ProbeChecker {
	checker := &ProbeChecker{
		url:    DefaultProbeURL,
		client: &http.Client{Timeout: DefaultProbeTimeout},
	}
	for _, opt := range opts {
		opt(checker)
	}
	return checker
}

func (c *ProbeChecker) Reachable(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, c.url, nil)
	if err != nil {
		return false
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return false
	}
	resp.Body.Close()
	return true
}
