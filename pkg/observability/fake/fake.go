// Package fake provides a recording observability provider for tests.
// Everything emitted through the facade is captured for later assertions.
package fake

import (
	"context"
	"sync"
	"time"

	"github.com/Greatversion/httpkit/pkg/observability"
)

// Provider records all spans, log entries, and metric points.
type Provider struct {
	tracer  *Tracer
	logger  *Logger
	metrics *Metrics
}

// NewProvider creates a new recording provider.
func NewProvider() *Provider {
	return &Provider{
		tracer:  &Tracer{},
		logger:  &Logger{store: &logStore{}},
		metrics: &Metrics{},
	}
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

// Tracer captures started spans.
type Tracer struct {
	mu    sync.Mutex
	spans []*Span
}

func (t *Tracer) Start(ctx context.Context, spanName string, opts ...observability.SpanOption) (context.Context, observability.Span) {
	cfg := observability.NewSpanConfig(opts)
	span := &Span{
		Name:       spanName,
		Kind:       cfg.Kind(),
		Attributes: cfg.Attributes(),
		StartTime:  time.Now(),
	}

	t.mu.Lock()
	t.spans = append(t.spans, span)
	t.mu.Unlock()

	return ctx, span
}

// Spans returns a copy of all captured spans.
func (t *Tracer) Spans() []*Span {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]*Span, len(t.spans))
	copy(out, t.spans)
	return out
}

// Span captures span operations.
type Span struct {
	mu          sync.Mutex
	Name        string
	Kind        observability.SpanKind
	Attributes  []observability.Field
	StartTime   time.Time
	Ended       bool
	Status      observability.StatusCode
	StatusDesc  string
	RecordedErr error
}

func (s *Span) End() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Ended = true
}

func (s *Span) SetAttributes(fields ...observability.Field) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Attributes = append(s.Attributes, fields...)
}

func (s *Span) SetStatus(code observability.StatusCode, description string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Status = code
	s.StatusDesc = description
}

func (s *Span) RecordError(err error, fields ...observability.Field) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.RecordedErr = err
}

// Attribute returns the value of the named span attribute and whether it was set.
func (s *Span) Attribute(key string) (any, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := len(s.Attributes) - 1; i >= 0; i-- {
		if s.Attributes[i].Key == key {
			return s.Attributes[i].Value, true
		}
	}
	return nil, false
}

// Entry is a captured log entry.
type Entry struct {
	Level  string
	Msg    string
	Fields []observability.Field
}

// Logger captures log entries. Child loggers created with With share the
// same entry store as the root logger.
type Logger struct {
	store *logStore
	with  []observability.Field
}

type logStore struct {
	mu      sync.Mutex
	entries []Entry
}

func (l *Logger) record(level, msg string, fields []observability.Field) {
	all := append(append([]observability.Field{}, l.with...), fields...)
	l.store.mu.Lock()
	defer l.store.mu.Unlock()
	l.store.entries = append(l.store.entries, Entry{Level: level, Msg: msg, Fields: all})
}

func (l *Logger) Debug(ctx context.Context, msg string, fields ...observability.Field) {
	l.record("debug", msg, fields)
}

func (l *Logger) Info(ctx context.Context, msg string, fields ...observability.Field) {
	l.record("info", msg, fields)
}

func (l *Logger) Warn(ctx context.Context, msg string, fields ...observability.Field) {
	l.record("warn", msg, fields)
}

func (l *Logger) Error(ctx context.Context, msg string, fields ...observability.Field) {
	l.record("error", msg, fields)
}

func (l *Logger) With(fields ...observability.Field) observability.Logger {
	return &Logger{
		store: l.store,
		with:  append(append([]observability.Field{}, l.with...), fields...),
	}
}

// Entries returns a copy of all captured log entries.
func (l *Logger) Entries() []Entry {
	l.store.mu.Lock()
	defer l.store.mu.Unlock()
	out := make([]Entry, len(l.store.entries))
	copy(out, l.store.entries)
	return out
}

// Point is a single recorded measurement.
type Point struct {
	Value  float64
	Fields []observability.Field
}

// Metrics captures counter and histogram measurements keyed by instrument name.
type Metrics struct {
	mu     sync.Mutex
	points map[string][]Point
}

func (m *Metrics) record(name string, value float64, fields []observability.Field) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.points == nil {
		m.points = make(map[string][]Point)
	}
	m.points[name] = append(m.points[name], Point{Value: value, Fields: fields})
}

func (m *Metrics) Counter(name, description, unit string) observability.Counter {
	return &fakeCounter{metrics: m, name: name}
}

func (m *Metrics) Histogram(name, description, unit string) observability.Histogram {
	return &fakeHistogram{metrics: m, name: name}
}

// Points returns all measurements recorded for the named instrument.
func (m *Metrics) Points(name string) []Point {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Point, len(m.points[name]))
	copy(out, m.points[name])
	return out
}

type fakeCounter struct {
	metrics *Metrics
	name    string
}

func (c *fakeCounter) Add(ctx context.Context, value int64, fields ...observability.Field) {
	c.metrics.record(c.name, float64(value), fields)
}

func (c *fakeCounter) Increment(ctx context.Context, fields ...observability.Field) {
	c.metrics.record(c.name, 1, fields)
}

type fakeHistogram struct {
	metrics *Metrics
	name    string
}

func (h *fakeHistogram) Record(ctx context.Context, value float64, fields ...observability.Field) {
	h.metrics.record(h.name, value, fields)
}
