package fake

import (
	"context"
	"errors"
	"testing"

	"github.com/Greatversion/httpkit/pkg/observability"
)

func TestTracerCapturesSpans(t *testing.T) {
	provider := NewProvider()
	tracer := provider.Tracer().(*Tracer)

	_, span := tracer.Start(context.Background(), "operation",
		observability.WithSpanKind(observability.SpanKindClient),
		observability.WithAttributes(observability.String("key", "value")),
	)
	span.SetStatus(observability.StatusCodeError, "boom")
	span.RecordError(errors.New("boom"))
	span.End()

	spans := tracer.Spans()
	if len(spans) != 1 {
		t.Fatalf("expected 1 span, got %d", len(spans))
	}

	got := spans[0]
	if got.Name != "operation" {
		t.Errorf("expected span name operation, got %s", got.Name)
	}
	if got.Kind != observability.SpanKindClient {
		t.Errorf("expected client span kind, got %v", got.Kind)
	}
	if !got.Ended {
		t.Error("expected span to be ended")
	}
	if got.Status != observability.StatusCodeError {
		t.Errorf("expected error status, got %v", got.Status)
	}
	if got.RecordedErr == nil {
		t.Error("expected recorded error")
	}
	if value, ok := got.Attribute("key"); !ok || value != "value" {
		t.Errorf("expected attribute key=value, got %v", value)
	}
}

func TestLoggerCapturesEntriesWithInheritedFields(t *testing.T) {
	provider := NewProvider()
	logger := provider.Logger().With(observability.String("component", "gateway"))

	logger.Info(context.Background(), "hello", observability.Int("attempt", 1))

	entries := provider.Logger().(*Logger).Entries()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0].Level != "info" || entries[0].Msg != "hello" {
		t.Errorf("unexpected entry: %+v", entries[0])
	}
	if len(entries[0].Fields) != 2 {
		t.Errorf("expected inherited + call fields, got %+v", entries[0].Fields)
	}
}

func TestMetricsCapturePoints(t *testing.T) {
	provider := NewProvider()
	metrics := provider.Metrics().(*Metrics)

	counter := metrics.Counter("requests", "", "{request}")
	counter.Increment(context.Background())
	counter.Add(context.Background(), 2)

	histogram := metrics.Histogram("latency", "", "ms")
	histogram.Record(context.Background(), 12.5)

	if points := metrics.Points("requests"); len(points) != 2 {
		t.Errorf("expected 2 counter points, got %d", len(points))
	}
	points := metrics.Points("latency")
	if len(points) != 1 || points[0].Value != 12.5 {
		t.Errorf("unexpected histogram points: %+v", points)
	}
}
