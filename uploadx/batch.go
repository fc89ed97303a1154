package uploadx

import (
	"context"
	"log/slog"
	"net/http"
	"sync"

	"github.com/oporajita/x/loggerx"
	"github.com/oporajita/x/multipartx"
	"github.com/oporajita/x/tracex"
	"github.com/segmentio/ksuid"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"
)

// Target is where every file of a batch goes.
type Target struct {
	URL       string
	FieldName string
	Fields    []multipartx.Field
	Headers   http.Header
}

// Outcome is the result of one picked file. Exactly one of Result and Err is set.
type Outcome struct {
	Index  int
	Path   string
	Result *Result
	Err    error
}

func (o Outcome) Failed() bool {
	return o.Err != nil
}

type BatchOption func(*Batch)

// WithConcurrency uploads up to n files at once. Outcomes keep selection
// order either way. The default of 1 waits for each outcome before reading
// the next file.
func WithConcurrency(n int) BatchOption {
	return func(b *Batch) {
		b.concurrency = max(n, 1)
	}
}

// OnComplete is called once per file as soon as its outcome is known.
// Calls are never concurrent.
func OnComplete(fn func(Outcome)) BatchOption {
	return func(b *Batch) {
		b.onComplete = fn
	}
}

func WithBatchLogger(l *loggerx.Logger) BatchOption {
	return func(b *Batch) {
		b.l = l
	}
}

// Batch uploads picked files one after the other to the same Target.
type Batch struct {
	uploader    *Uploader
	source      *Source
	target      Target
	concurrency int
	onComplete  func(Outcome)
	l           *loggerx.Logger

	callbackMu sync.Mutex
}

func NewBatch(u *Uploader, s *Source, target Target, opts ...BatchOption) *Batch {
	b := &Batch{
		uploader:    u,
		source:      s,
		target:      target,
		concurrency: 1,
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.l == nil {
		b.l = &loggerx.Logger{Logger: slog.Default()}
	}
	return b
}

// Run uploads paths and returns one Outcome per path, in the same order.
// A failing file never stops the others.
func (b *Batch) Run(ctx context.Context, paths []string) []Outcome {
	id, ok := BatchIDFromContext(ctx)
	if !ok {
		id = ksuid.New().String()
		ctx = WithBatchID(ctx, id)
	}

	b.l.Info(ctx, "starting upload batch", attribute.Int("files", len(paths)), attribute.Int("concurrency", b.concurrency))

	outcomes := make([]Outcome, len(paths))
	if b.concurrency <= 1 {
		for i, p := range paths {
			outcomes[i] = b.runOne(ctx, i, p)
			b.complete(ctx, outcomes[i])
		}
	} else {
		var g errgroup.Group
		g.SetLimit(b.concurrency)
		for i, p := range paths {
			g.Go(func() error {
				outcomes[i] = b.runOne(ctx, i, p)
				b.complete(ctx, outcomes[i])
				return nil
			})
		}
		_ = g.Wait()
	}

	failed := 0
	for _, o := range outcomes {
		if o.Failed() {
			failed++
		}
	}
	b.l.Info(ctx, "upload batch finished", attribute.Int("files", len(paths)), attribute.Int("failed", failed))

	return outcomes
}

func (b *Batch) runOne(ctx context.Context, i int, path string) Outcome {
	o := Outcome{Index: i, Path: path}

	f, err := b.source.Read(path)
	if err != nil {
		b.l.WithError(err).Warn(ctx, "could not read picked file", attribute.String("path", path))
		o.Err = err
		return o
	}

	o.Result, o.Err = b.uploader.Upload(ctx, &UploadRequest{
		URL:       b.target.URL,
		FieldName: b.target.FieldName,
		FileName:  f.Name,
		MimeType:  f.MimeType,
		Data:      f.Data,
		Fields:    b.target.Fields,
		Headers:   b.target.Headers,
	})
	return o
}

func (b *Batch) complete(ctx context.Context, o Outcome) {
	if b.onComplete == nil {
		return
	}
	b.callbackMu.Lock()
	defer b.callbackMu.Unlock()
	defer tracex.RecoverWithStackTrace(ctx, b.l, "panic in upload completion callback")
	b.onComplete(o)
}
