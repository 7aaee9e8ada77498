// Package gateway is a thin, instrumented wrapper around an HTTP API client.
//
// A Gateway owns a base URL and a pair of timeouts, exposes the four common
// verbs, checks network reachability before every call, and normalizes every
// failure into a closed set of categories (see Category). The actual transport
// is go-resty; the gateway adds no retries, no caching, and no authentication.
package gateway

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"

	"github.com/Greatversion/httpkit/pkg/connectivity"
	"github.com/Greatversion/httpkit/pkg/observability"
)

const (
	// DefaultConnectTimeout bounds connection establishment.
	DefaultConnectTimeout = 10 * time.Second

	// DefaultReceiveTimeout bounds the whole request, headers and body included.
	DefaultReceiveTimeout = 15 * time.Second

	headerRequestID = "X-Request-ID"
)

// Gateway is the single entry point for issuing HTTP calls against one API.
// It is immutable after construction and safe for concurrent use; calls are
// independent and share nothing but the configuration.
//
// Every call yields exactly one outcome: a *Response, or a *Error carrying
// one of the fixed categories. Non-2xx statuses are failures, not responses.
//
// Example:
//
//	gw, err := gateway.New("https://api.example.com", obs,
//	    gateway.WithConnectTimeout(10*time.Second),
//	    gateway.WithReceiveTimeout(15*time.Second),
//	)
//	if err != nil {
//	    return err
//	}
//	resp, err := gw.Get(ctx, "/users", gateway.WithQueryParam("page", "1"))
//	if gateway.IsNoConnectivity(err) {
//	    // offline: tell the user, don't bother parsing
//	}
type Gateway struct {
	http           *resty.Client
	checker        connectivity.Checker
	obs            observability.Observability
	inst           *instrumentation
	connectTimeout time.Duration
	receiveTimeout time.Duration
	transport      http.RoundTripper
	headers        map[string]string
}

// New creates a Gateway for the API rooted at baseURL.
//
// Returns an error if baseURL is empty or obs is nil.
func New(baseURL string, obs observability.Observability, opts ...Option) (*Gateway, error) {
	if baseURL == "" {
		return nil, errors.New("gateway: base URL cannot be empty")
	}
	if obs == nil {
		return nil, errors.New("gateway: observability provider cannot be nil")
	}

	g := &Gateway{
		checker:        connectivity.NewDialChecker(),
		obs:            obs,
		inst:           newInstrumentation(obs.Tracer(), obs.Metrics()),
		connectTimeout: DefaultConnectTimeout,
		receiveTimeout: DefaultReceiveTimeout,
		headers: map[string]string{
			"Accept": "application/json",
		},
	}

	for _, opt := range opts {
		opt(g)
	}

	transport := g.transport
	if transport == nil {
		transport = &http.Transport{
			DialContext:         (&net.Dialer{Timeout: g.connectTimeout}).DialContext,
			TLSHandshakeTimeout: g.connectTimeout,
			MaxIdleConns:        100,
			MaxIdleConnsPerHost: 10,
			IdleConnTimeout:     90 * time.Second,
			ForceAttemptHTTP2:   true,
		}
	}

	g.http = resty.New().
		SetBaseURL(baseURL).
		SetTimeout(g.receiveTimeout).
		SetTransport(transport).
		SetHeaders(g.headers)

	return g, nil
}

// Get performs a GET request against path, relative to the base URL.
func (g *Gateway) Get(ctx context.Context, path string, opts ...RequestOption) (*Response, error) {
	return g.Do(ctx, http.MethodGet, path, nil, opts...)
}

// Post performs a POST request. A non-nil body is serialized as JSON.
func (g *Gateway) Post(ctx context.Context, path string, body any, opts ...RequestOption) (*Response, error) {
	return g.Do(ctx, http.MethodPost, path, body, opts...)
}

// Put performs a PUT request. A non-nil body is serialized as JSON.
func (g *Gateway) Put(ctx context.Context, path string, body any, opts ...RequestOption) (*Response, error) {
	return g.Do(ctx, http.MethodPut, path, body, opts...)
}

// Delete performs a DELETE request. A non-nil body is serialized as JSON.
func (g *Gateway) Delete(ctx context.Context, path string, body any, opts ...RequestOption) (*Response, error) {
	return g.Do(ctx, http.MethodDelete, path, body, opts...)
}

// Do executes one request. All verbs delegate here.
//
// The sequence is fixed: connectivity check, then transport, then
// classification. The connectivity check is a pre-flight gate only —
// reachability can change between the check and the request, in which case
// the failure is classified from the transport error instead.
func (g *Gateway) Do(ctx context.Context, method, path string, body any, opts ...RequestOption) (*Response, error) {
	cfg := buildRequestConfig(opts)

	logger := g.obs.Logger().With(
		observability.String("http.method", method),
		observability.String("http.path", path),
	)

	if !g.checker.Reachable(ctx) {
		gwErr := errNoConnectivity()
		logger.Warn(ctx, "request blocked, network unreachable")
		g.inst.observe(method, 0, gwErr)
		return nil, gwErr
	}

	requestID := cfg.headers[headerRequestID]
	if requestID == "" {
		requestID = uuid.NewString()
	}
	logger = logger.With(observability.String("request_id", requestID))

	ctx, span := g.inst.tracer.Start(ctx, "gateway.request",
		observability.WithSpanKind(observability.SpanKindClient),
		observability.WithAttributes(
			observability.String("http.method", method),
			observability.String("http.path", path),
		),
	)
	defer span.End()

	req := g.http.R().
		SetContext(ctx).
		SetHeaders(cfg.headers).
		SetHeader(headerRequestID, requestID).
		SetQueryParams(cfg.query)
	if body != nil {
		req.SetBody(body)
	}

	logger.Debug(ctx, "issuing request")

	start := time.Now()
	resp, err := req.Execute(method, path)
	durationMS := float64(time.Since(start).Milliseconds())

	if err != nil {
		gwErr := classifyTransportError(err)
		span.RecordError(gwErr)
		span.SetStatus(observability.StatusCodeError, gwErr.Category.String())
		g.inst.observe(method, durationMS, gwErr)
		logger.Error(ctx, "request failed",
			observability.String("error.category", gwErr.Category.String()),
			observability.Error(err),
		)
		return nil, gwErr
	}

	statusCode := resp.StatusCode()
	span.SetAttributes(observability.Int("http.status_code", statusCode))

	if statusCode < 200 || statusCode > 299 {
		gwErr := classifyStatus(statusCode)
		span.SetStatus(observability.StatusCodeError, gwErr.Category.String())
		g.inst.observe(method, durationMS, gwErr)
		logger.Warn(ctx, "request rejected",
			observability.Int("http.status_code", statusCode),
			observability.String("error.category", gwErr.Category.String()),
		)
		return nil, gwErr
	}

	span.SetStatus(observability.StatusCodeOK, "request successful")
	g.inst.observe(method, durationMS, nil)
	logger.Info(ctx, "request completed",
		observability.Int("http.status_code", statusCode),
		observability.Float64("duration_ms", durationMS),
	)

	return &Response{
		StatusCode: statusCode,
		Body:       resp.Body(),
		Header:     resp.Header(),
	}, nil
}
