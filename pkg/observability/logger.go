package observability

import "context"

// Logger provides structured, leveled logging with trace context propagation.
type Logger interface {
	Debug(ctx context.Context, msg string, fields ...Field)
	Info(ctx context.Context, msg string, fields ...Field)
	Warn(ctx context.Context, msg string, fields ...Field)
	Error(ctx context.Context, msg string, fields ...Field)

	// With returns a child logger whose entries always carry the given fields.
	With(fields ...Field) Logger
}
