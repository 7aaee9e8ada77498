package zapotel

import (
	"context"

	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/Greatversion/httpkit/pkg/observability"
)

type otelTracer struct {
	tracer trace.Tracer
}

func (t *otelTracer) Start(ctx context.Context, spanName string, opts ...observability.SpanOption) (context.Context, observability.Span) {
	cfg := observability.NewSpanConfig(opts)

	ctx, span := t.tracer.Start(ctx, spanName,
		trace.WithSpanKind(toSpanKind(cfg.Kind())),
		trace.WithAttributes(toAttributes(cfg.Attributes())...),
	)

	return ctx, &otelSpan{span: span}
}

func toSpanKind(kind observability.SpanKind) trace.SpanKind {
	switch kind {
	case observability.SpanKindServer:
		return trace.SpanKindServer
	case observability.SpanKindClient:
		return trace.SpanKindClient
	default:
		return trace.SpanKindInternal
	}
}

type otelSpan struct {
	span trace.Span
}

func (s *otelSpan) End() {
	s.span.End()
}

func (s *otelSpan) SetAttributes(fields ...observability.Field) {
	s.span.SetAttributes(toAttributes(fields)...)
}

func (s *otelSpan) SetStatus(code observability.StatusCode, description string) {
	switch code {
	case observability.StatusCodeOK:
		s.span.SetStatus(codes.Ok, description)
	case observability.StatusCodeError:
		s.span.SetStatus(codes.Error, description)
	default:
		s.span.SetStatus(codes.Unset, description)
	}
}

func (s *otelSpan) RecordError(err error, fields ...observability.Field) {
	s.span.RecordError(err, trace.WithAttributes(toAttributes(fields)...))
}
