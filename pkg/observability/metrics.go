package observability

import "context"

// Metrics creates metric instruments. Instruments should be created once at
// component initialization and reused for every measurement.
type Metrics interface {
	// Counter returns a monotonically increasing counter instrument.
	Counter(name, description, unit string) Counter

	// Histogram returns a distribution-recording instrument.
	Histogram(name, description, unit string) Histogram
}

// Counter is a monotonically increasing metric.
type Counter interface {
	// Add increments the counter by value with optional attributes.
	Add(ctx context.Context, value int64, fields ...Field)

	// Increment increments the counter by 1 with optional attributes.
	Increment(ctx context.Context, fields ...Field)
}

// Histogram records a distribution of values.
type Histogram interface {
	// Record adds a value to the histogram with optional attributes.
	Record(ctx context.Context, value float64, fields ...Field)
}
