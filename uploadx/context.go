package uploadx

import (
	"context"

	"github.com/oporajita/x/slogx"
	slogctx "github.com/veqryn/slog-context"
)

type batchIDContextKey struct{}

const BatchIDFieldKey = "batch_id"

// WithBatchID stores the id of the batch an upload belongs to.
func WithBatchID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, batchIDContextKey{}, id)
}

func BatchIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(batchIDContextKey{}).(string)
	return id, ok
}

// BatchIDExtractor adds the batch id to every log line written with a batch context.
// Pass it to loggerx.New.
func BatchIDExtractor() slogctx.AttrExtractor {
	return slogx.NewContextValueExtractor(batchIDContextKey{}, BatchIDFieldKey)
}
