package loggerx

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"github.com/oporajita/x/errorx"
	"github.com/oporajita/x/slogx"
	slogctx "github.com/veqryn/slog-context"
	"go.opentelemetry.io/otel/attribute"
	semconv "go.opentelemetry.io/otel/semconv/v1.17.0"
	"go.opentelemetry.io/otel/trace"
)

type Logger struct {
	*slog.Logger
}

// New builds a logger writing to w. format is "json" or "text"; extractors
// are run on every record and can pull values out of the context.
func New(w io.Writer, level string, format string, extractors ...slogctx.AttrExtractor) *Logger {
	opts := &slog.HandlerOptions{Level: ParseLevel(level)}

	var h slog.Handler
	if strings.EqualFold(format, "text") {
		h = slog.NewTextHandler(w, opts)
	} else {
		h = slog.NewJSONHandler(w, opts)
	}

	return &Logger{slog.New(slogctx.NewHandler(h, &slogctx.HandlerOptions{Prependers: extractors}))}
}

// ParseLevel maps a level name to a slog level, defaulting to info.
func ParseLevel(level string) slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return slog.LevelInfo
	}
	return l
}

func (l *Logger) WithError(err error) *Logger {
	return &Logger{l.Logger.With(slogx.ErrorAttr(err))}
}

// WithStackTrace attaches the stack captured by an upload error, if any.
func (l *Logger) WithStackTrace(err error) *Logger {
	e, ok := errorx.IsError(err)
	if !ok || len(e.StackTrace()) == 0 {
		return l
	}
	return l.WithFields(semconv.ExceptionStacktrace(e.StackTrace().String()))
}

func (l *Logger) Error(ctx context.Context, msg string, kvs ...attribute.KeyValue) {
	l.Logger.LogAttrs(ctx, slog.LevelError, msg, slogx.NewLogFields(kvs...)...)
}

func (l *Logger) Warn(ctx context.Context, msg string, kvs ...attribute.KeyValue) {
	l.Logger.LogAttrs(ctx, slog.LevelWarn, msg, slogx.NewLogFields(kvs...)...)
}

func (l *Logger) Info(ctx context.Context, msg string, kvs ...attribute.KeyValue) {
	l.Logger.LogAttrs(ctx, slog.LevelInfo, msg, slogx.NewLogFields(kvs...)...)
}

func (l *Logger) Debug(ctx context.Context, msg string, kvs ...attribute.KeyValue) {
	l.Logger.LogAttrs(ctx, slog.LevelDebug, msg, slogx.NewLogFields(kvs...)...)
}

func (l *Logger) WithFields(kvs ...attribute.KeyValue) *Logger {
	lfs := slogx.NewLogFields(kvs...)
	// This is a workaround until we get a nice slog.WithAttrs method - See https://github.com/golang/go/issues/66937#issuecomment-2730350514
	return &Logger{l.Logger.With("", slog.GroupValue(lfs...))}
}

// WithSpanStartOptions copies the attributes given to a span onto the logger.
func (l *Logger) WithSpanStartOptions(opts ...trace.SpanStartOption) *Logger {
	cfg := trace.NewSpanStartConfig(opts...)
	return l.WithFields(cfg.Attributes()...)
}

// WithAttrs attaches already built slog attributes.
func (l *Logger) WithAttrs(attrs ...slog.Attr) *Logger {
	args := make([]any, len(attrs))
	for i, a := range attrs {
		args[i] = a
	}
	return &Logger{l.Logger.With(args...)}
}
