package slogx

import (
	"errors"
	"log/slog"

	"github.com/oporajita/x/errorx"
	"go.opentelemetry.io/otel/attribute"
)

func NewLogFields(kvs ...attribute.KeyValue) []slog.Attr {
	attrs := make([]slog.Attr, 0, len(kvs))
	for _, kv := range kvs {
		switch kv.Value.Type() {
		case attribute.BOOL:
			attrs = append(attrs, slog.Bool(string(kv.Key), kv.Value.AsBool()))
		case attribute.INT64:
			attrs = append(attrs, slog.Int64(string(kv.Key), kv.Value.AsInt64()))
		case attribute.FLOAT64:
			attrs = append(attrs, slog.Float64(string(kv.Key), kv.Value.AsFloat64()))
		case attribute.STRING:
			attrs = append(attrs, slog.String(string(kv.Key), kv.Value.AsString()))
		default:
			attrs = append(attrs, slog.Any(string(kv.Key), kv.Value.AsInterface()))
		}
	}
	return attrs
}

// ErrorAttr renders err under the "error" key. Upload errors are expanded into
// a group so the failure kind and status can be filtered on.
func ErrorAttr(err error) slog.Attr {
	var e *errorx.Error
	if !errors.As(err, &e) {
		return slog.Any("error", err)
	}

	attrs := []slog.Attr{
		slog.String("type", e.Type.String()),
		slog.String("message", err.Error()),
	}
	if e.StatusCode != 0 {
		attrs = append(attrs, slog.Int("status_code", e.StatusCode))
	}
	return slog.GroupAttrs("error", attrs...)
}
