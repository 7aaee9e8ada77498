package observability

// Observability is the facade interface that bundles tracing, logging, and
// metrics. It is the only observability type the rest of the library depends
// on, so callers can plug in the zapotel provider, the noop provider, or the
// fake provider for tests.
type Observability interface {
	Tracer() Tracer
	Logger() Logger
	Metrics() Metrics
}

// Field is a key-value pair attached to log entries and span attributes.
type Field struct {
	Key   string
	Value any
}

// String creates a string field.
func String(key, value string) Field {
	return Field{Key: key, Value: value}
}

// Int creates an integer field.
func Int(key string, value int) Field {
	return Field{Key: key, Value: value}
}

// Int64 creates an int64 field.
func Int64(key string, value int64) Field {
	return Field{Key: key, Value: value}
}

// Float64 creates a float64 field.
func Float64(key string, value float64) Field {
	return Field{Key: key, Value: value}
}

// Bool creates a boolean field.
func Bool(key string, value bool) Field {
	return Field{Key: key, Value: value}
}

// Error creates an error field under the conventional "error" key.
func Error(err error) Field {
	return Field{Key: "error", Value: err}
}

// Any creates a field with an arbitrary value.
func Any(key string, value any) Field {
	return Field{Key: key, Value: value}
}

// Span represents an active trace span.
type Span interface {
	// End finishes the span. The span must not be used afterwards.
	End()

	// SetAttributes sets additional attributes on the span.
	SetAttributes(fields ...Field)

	// SetStatus sets the canonical status of the span.
	SetStatus(code StatusCode, description string)

	// RecordError records an error as an event on the span.
	RecordError(err error, fields ...Field)
}

// StatusCode represents the canonical status of a span.
type StatusCode int

const (
	StatusCodeUnset StatusCode = iota
	StatusCodeOK
	StatusCodeError
)

// SpanKind represents the role of a span in a trace.
type SpanKind int

const (
	SpanKindInternal SpanKind = iota
	SpanKindServer
	SpanKindClient
)

// SpanOption configures span creation.
type SpanOption interface {
	apply(*spanConfig)
}

type spanConfig struct {
	kind       SpanKind
	attributes []Field
}

type spanOptionFunc func(*spanConfig)

func (f spanOptionFunc) apply(c *spanConfig) {
	f(c)
}

// WithSpanKind sets the span kind.
func WithSpanKind(kind SpanKind) SpanOption {
	return spanOptionFunc(func(c *spanConfig) {
		c.kind = kind
	})
}

// WithAttributes sets initial attributes on the span.
func WithAttributes(fields ...Field) SpanOption {
	return spanOptionFunc(func(c *spanConfig) {
		c.attributes = append(c.attributes, fields...)
	})
}

// SpanConfig exposes span configuration to provider implementations.
type SpanConfig interface {
	Kind() SpanKind
	Attributes() []Field
}

// NewSpanConfig resolves span options into a SpanConfig (for providers).
func NewSpanConfig(opts []SpanOption) SpanConfig {
	cfg := &spanConfig{kind: SpanKindInternal}
	for _, opt := range opts {
		opt.apply(cfg)
	}
	return cfg
}

func (c *spanConfig) Kind() SpanKind {
	return c.kind
}

func (c *spanConfig) Attributes() []Field {
	return c.attributes
}
