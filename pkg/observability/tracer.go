package observability

import "context"

// Tracer provides distributed tracing capabilities.
type Tracer interface {
	// Start creates a new span and returns a context carrying it.
	// The caller must end the span with span.End().
	Start(ctx context.Context, spanName string, opts ...SpanOption) (context.Context, Span)
}
