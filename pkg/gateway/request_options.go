package gateway

import "maps"

// RequestOption configures a single request.
type RequestOption func(*requestConfig)

type requestConfig struct {
	query   map[string]string
	headers map[string]string
}

func buildRequestConfig(opts []RequestOption) *requestConfig {
	cfg := &requestConfig{
		query:   make(map[string]string),
		headers: make(map[string]string),
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithQueryParam adds a single query parameter to the request URL.
//
// Example:
//
//	resp, err := gw.Get(ctx, "/users",
//	    gateway.WithQueryParam("page", "2"),
//	)
func WithQueryParam(key, value string) RequestOption {
	return func(cfg *requestConfig) {
		cfg.query[key] = value
	}
}

// WithQueryParams adds multiple query parameters to the request URL.
func WithQueryParams(params map[string]string) RequestOption {
	return func(cfg *requestConfig) {
		maps.Copy(cfg.query, params)
	}
}

// WithHeader adds a single header to the request. Headers set here override
// the gateway's default headers for this request only.
func WithHeader(key, value string) RequestOption {
	return func(cfg *requestConfig) {
		cfg.headers[key] = value
	}
}

// WithHeaders adds multiple headers to the request.
func WithHeaders(headers map[string]string) RequestOption {
	return func(cfg *requestConfig) {
		maps.Copy(cfg.headers, headers)
	}
}
