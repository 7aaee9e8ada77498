package zapotel

import (
	"context"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/Greatversion/httpkit/pkg/observability"
)

// zapLogger adapts *zap.Logger to observability.Logger. When the context
// carries a valid span, trace_id and span_id are appended for correlation.
type zapLogger struct {
	base *zap.Logger
}

func (l *zapLogger) log(ctx context.Context, level func(string, ...zap.Field), msg string, fields []observability.Field) {
	zapFields := toZapFields(fields)
	if sc := trace.SpanContextFromContext(ctx); sc.IsValid() {
		zapFields = append(zapFields,
			zap.String("trace_id", sc.TraceID().String()),
			zap.String("span_id", sc.SpanID().String()),
		)
	}
	level(msg, zapFields...)
}

func (l *zapLogger) Debug(ctx context.Context, msg string, fields ...observability.Field) {
	l.log(ctx, l.base.Debug, msg, fields)
}

func (l *zapLogger) Info(ctx context.Context, msg string, fields ...observability.Field) {
	l.log(ctx, l.base.Info, msg, fields)
}

func (l *zapLogger) Warn(ctx context.Context, msg string, fields ...observability.Field) {
	l.log(ctx, l.base.Warn, msg, fields)
}

func (l *zapLogger) Error(ctx context.Context, msg string, fields ...observability.Field) {
	l.log(ctx, l.base.Error, msg, fields)
}

func (l *zapLogger) With(fields ...observability.Field) observability.Logger {
	return &zapLogger{base: l.base.With(toZapFields(fields)...)}
}
