// Package noop provides an observability provider that discards everything.
// Use it when observability should be disabled entirely.
package noop

import (
	"context"

	"github.com/Greatversion/httpkit/pkg/observability"
)

// Provider is a zero-overhead observability.Observability implementation.
type Provider struct {
	tracer  noopTracer
	logger  noopLogger
	metrics noopMetrics
}

// NewProvider creates a new no-op observability provider.
func NewProvider() *Provider {
	return &Provider{}
}

func (p *Provider) Tracer() observability.Tracer {
	return p.tracer
}

func (p *Provider) Logger() observability.Logger {
	return p.logger
}

func (p *Provider) Metrics() observability.Metrics {
	return p.metrics
}

type noopTracer struct{}

func (noopTracer) Start(ctx context.Context, spanName string, opts ...observability.SpanOption) (context.Context, observability.Span) {
	return ctx, noopSpan{}
}

type noopSpan struct{}

func (noopSpan) End() {}

func (noopSpan) SetAttributes(fields ...observability.Field) {}

func (noopSpan) SetStatus(code observability.StatusCode, description string) {}

func (noopSpan) RecordError(err error, fields ...observability.Field) {}

type noopLogger struct{}

func (noopLogger) Debug(ctx context.Context, msg string, fields ...observability.Field) {}

func (noopLogger) Info(ctx context.Context, msg string, fields ...observability.Field) {}

func (noopLogger) Warn(ctx context.Context, msg string, fields ...observability.Field) {}

func (noopLogger) Error(ctx context.Context, msg string, fields ...observability.Field) {}

func (l noopLogger) With(fields ...observability.Field) observability.Logger {
	return l
}

type noopMetrics struct{}

func (noopMetrics) Counter(name, description, unit string) observability.Counter {
	return noopCounter{}
}

func (noopMetrics) Histogram(name, description, unit string) observability.Histogram {
	return noopHistogram{}
}

type noopCounter struct{}

func (noopCounter) Add(ctx context.Context, value int64, fields ...observability.Field) {}

func (noopCounter) Increment(ctx context.Context, fields ...observability.Field) {}

type noopHistogram struct{}

func (noopHistogram) Record(ctx context.Context, value float64, fields ...observability.Field) {}
