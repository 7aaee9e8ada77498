package gateway

import (
	"context"

	"github.com/Greatversion/httpkit/pkg/observability"
)

// instrumentation holds the gateway's metric instruments. Instruments are
// created once at construction and reused for every request.
type instrumentation struct {
	tracer observability.Tracer

	requestCounter   observability.Counter
	errorCounter     observability.Counter
	latencyHistogram observability.Histogram
}

func newInstrumentation(tracer observability.Tracer, metrics observability.Metrics) *instrumentation {
	return &instrumentation{
		tracer: tracer,

		requestCounter: metrics.Counter(
			"gateway.request.count",
			"Total number of gateway requests",
			"{request}",
		),

		errorCounter: metrics.Counter(
			"gateway.request.errors",
			"Total number of gateway request failures by category",
			"{error}",
		),

		latencyHistogram: metrics.Histogram(
			"gateway.request.duration",
			"Duration of gateway requests",
			"ms",
		),
	}
}

// observe records one finished call. Metrics use context.Background() so a
// cancelled request context cannot drop the measurements that describe it.
func (i *instrumentation) observe(method string, durationMS float64, gwErr *Error) {
	ctx := context.Background()

	attrs := []observability.Field{
		observability.String("http.method", method),
	}

	if gwErr != nil {
		i.errorCounter.Increment(ctx, append(attrs,
			observability.String("error.category", gwErr.Category.String()),
		)...)
	}

	i.requestCounter.Increment(ctx, attrs...)
	i.latencyHistogram.Record(ctx, durationMS, attrs...)
}
