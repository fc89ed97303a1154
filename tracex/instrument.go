package tracex

import (
	"context"

	"github.com/oporajita/x/loggerx"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	ComponentNameSeparator = "."
	InstrumentationName    = "github.com/oporajita/x"
)

func ComponentName(packageName, structName string) string {
	return packageName + ComponentNameSeparator + structName
}

// DefaultTracer returns the tracer of the globally registered provider.
// Without a registered provider this is a no-op tracer.
func DefaultTracer() trace.Tracer {
	return otel.Tracer(InstrumentationName)
}

/*
Instrument starts a span named after the component and returns a logger tagged
with the same component. `span.End()` must be called at the end of using the span.

	const myComponentName = "uploadx.Uploader"

	func (u *Uploader) instrument(ctx context.Context, name string, opts ...trace.SpanStartOption) (context.Context, trace.Span, *loggerx.Logger) {
		return tracex.Instrument(ctx, u.tracer, u.l, myComponentName, name, opts...)
	}
*/
func Instrument(ctx context.Context, tracer trace.Tracer, l *loggerx.Logger, componentName string, name string, opts ...trace.SpanStartOption) (context.Context, trace.Span, *loggerx.Logger) {
	if tracer == nil {
		tracer = DefaultTracer()
	}
	fullComponentName := ComponentName(componentName, name)
	ctx, span := tracer.Start(ctx, fullComponentName, opts...)

	l = l.
		WithSpanStartOptions(opts...).
		WithFields(attribute.Key("component").String(fullComponentName))
	return ctx, span, l
}

// EndWithError records err on span, if any, and ends it.
func EndWithError(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}
