package zapotel

import (
	"context"

	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"

	"github.com/Greatversion/httpkit/pkg/observability"
)

// otelMetrics creates OpenTelemetry instruments. Instrument creation failures
// are logged and replaced with discarding instruments so callers never have to
// branch on metric errors.
type otelMetrics struct {
	meter  metric.Meter
	logger *zap.Logger
}

func newOtelMetrics(meter metric.Meter, logger *zap.Logger) *otelMetrics {
	return &otelMetrics{meter: meter, logger: logger}
}

func (m *otelMetrics) Counter(name, description, unit string) observability.Counter {
	counter, err := m.meter.Int64Counter(name,
		metric.WithDescription(description),
		metric.WithUnit(unit),
	)
	if err != nil {
		m.logger.Warn("failed to create counter", zap.String("name", name), zap.Error(err))
		return discardCounter{}
	}
	return &otelCounter{counter: counter}
}

func (m *otelMetrics) Histogram(name, description, unit string) observability.Histogram {
	histogram, err := m.meter.Float64Histogram(name,
		metric.WithDescription(description),
		metric.WithUnit(unit),
	)
	if err != nil {
		m.logger.Warn("failed to create histogram", zap.String("name", name), zap.Error(err))
		return discardHistogram{}
	}
	return &otelHistogram{histogram: histogram}
}

type otelCounter struct {
	counter metric.Int64Counter
}

func (c *otelCounter) Add(ctx context.Context, value int64, fields ...observability.Field) {
	c.counter.Add(ctx, value, metric.WithAttributes(toAttributes(fields)...))
}

func (c *otelCounter) Increment(ctx context.Context, fields ...observability.Field) {
	c.Add(ctx, 1, fields...)
}

type otelHistogram struct {
	histogram metric.Float64Histogram
}

func (h *otelHistogram) Record(ctx context.Context, value float64, fields ...observability.Field) {
	h.histogram.Record(ctx, value, metric.WithAttributes(toAttributes(fields)...))
}

type discardCounter struct{}

func (discardCounter) Add(ctx context.Context, value int64, fields ...observability.Field) {}

func (discardCounter) Increment(ctx context.Context, fields ...observability.Field) {}

type discardHistogram struct{}

func (discardHistogram) Record(ctx context.Context, value float64, fields ...observability.Field) {}
