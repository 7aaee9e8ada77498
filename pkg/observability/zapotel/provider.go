// Package zapotel implements the observability facade with a zap logger and
// OpenTelemetry tracing and metrics. It only uses the OpenTelemetry API:
// exporter and SDK setup belong to the application, not to this library.
package zapotel

import (
	"errors"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/Greatversion/httpkit/pkg/observability"
)

const scopeName = "github.com/Greatversion/httpkit"

// Provider implements observability.Observability.
type Provider struct {
	logger  *zapLogger
	tracer  *otelTracer
	metrics *otelMetrics
}

// Option configures the Provider.
type Option func(*Provider)

// WithTracerProvider uses the given tracer provider instead of the otel global.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(p *Provider) {
		if tp != nil {
			p.tracer = &otelTracer{tracer: tp.Tracer(scopeName)}
		}
	}
}

// WithMeterProvider uses the given meter provider instead of the otel global.
func WithMeterProvider(mp metric.MeterProvider) Option {
	return func(p *Provider) {
		if mp != nil {
			p.metrics = newOtelMetrics(mp.Meter(scopeName), p.logger.base)
		}
	}
}

// NewProvider creates a provider that logs through log and emits traces and
// metrics through the OpenTelemetry globals unless overridden by options.
func NewProvider(log *zap.Logger, opts ...Option) (*Provider, error) {
	if log == nil {
		return nil, errors.New("zapotel: logger cannot be nil")
	}

	p := &Provider{
		logger: &zapLogger{base: log},
		tracer: &otelTracer{tracer: otel.Tracer(scopeName)},
	}
	p.metrics = newOtelMetrics(otel.Meter(scopeName), log)

	for _, opt := range opts {
		opt(p)
	}

	return p, nil
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
