package loggerxtest

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/oporajita/x/loggerx"
	slogctx "github.com/veqryn/slog-context"
)

func NewTestLogger(t testing.TB) *loggerx.Logger {
	t.Helper()
	return &loggerx.Logger{Logger: slog.New(slog.DiscardHandler)}
}

// NewTestLoggerWithJSONBuffer logs every level as JSON into the returned buffer.
func NewTestLoggerWithJSONBuffer(t testing.TB, extractors ...slogctx.AttrExtractor) (*loggerx.Logger, *bytes.Buffer) {
	t.Helper()
	buf := new(bytes.Buffer)
	return loggerx.New(buf, "debug", "json", extractors...), buf
}

func NewTestLoggerWithTextBuffer(t testing.TB) (*loggerx.Logger, *bytes.Buffer) {
	t.Helper()
	buf := new(bytes.Buffer)
	return loggerx.New(buf, "debug", "text"), buf
}
