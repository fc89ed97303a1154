package slogx

import (
	"context"
	"log/slog"
	"time"

	slogctx "github.com/veqryn/slog-context"
)

// NewContextValueExtractor emits the value stored under contextKey as fieldKey
// on every record logged with that context.
func NewContextValueExtractor(contextKey any, fieldKey string) slogctx.AttrExtractor {
	return func(ctx context.Context, recordT time.Time, recordLvl slog.Level, recordMsg string) []slog.Attr {
		defer func() {
			// Nullify panic to prevent having this hook break an upload
			recover()
		}()

		if ctx == nil {
			return nil
		}
		v := ctx.Value(contextKey)
		if v == nil {
			return nil
		}
		return []slog.Attr{slog.Any(fieldKey, v)}
	}
}
