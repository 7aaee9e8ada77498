package zapotel

import (
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/Greatversion/httpkit/pkg/observability"
)

func toZapFields(fields []observability.Field) []zap.Field {
	out := make([]zap.Field, 0, len(fields))
	for _, f := range fields {
		switch v := f.Value.(type) {
		case string:
			out = append(out, zap.String(f.Key, v))
		case int:
			out = append(out, zap.Int(f.Key, v))
		case int64:
			out = append(out, zap.Int64(f.Key, v))
		case float64:
			out = append(out, zap.Float64(f.Key, v))
		case bool:
			out = append(out, zap.Bool(f.Key, v))
		case error:
			out = append(out, zap.NamedError(f.Key, v))
		default:
			out = append(out, zap.Any(f.Key, v))
		}
	}
	return out
}

func toAttributes(fields []observability.Field) []attribute.KeyValue {
	out := make([]attribute.KeyValue, 0, len(fields))
	for _, f := range fields {
		switch v := f.Value.(type) {
		case string:
			out = append(out, attribute.String(f.Key, v))
		case int:
			out = append(out, attribute.Int(f.Key, v))
		case int64:
			out = append(out, attribute.Int64(f.Key, v))
		case float64:
			out = append(out, attribute.Float64(f.Key, v))
		case bool:
			out = append(out, attribute.Bool(f.Key, v))
		case error:
			out = append(out, attribute.String(f.Key, v.Error()))
		default:
			out = append(out, attribute.String(f.Key, fmt.Sprintf("%v", v)))
		}
	}
	return out
}
