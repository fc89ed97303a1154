package loggerx_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/oporajita/x/errorx"
	"github.com/oporajita/x/loggerx"
	loggerxtest "github.com/oporajita/x/loggerx/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		m := map[string]any{}
		require.NoError(t, json.Unmarshal([]byte(line), &m))
		out = append(out, m)
	}
	return out
}

func TestLogger(t *testing.T) {
	ctx := context.Background()

	t.Run("should log fields as json", func(t *testing.T) {
		l, buf := loggerxtest.NewTestLoggerWithJSONBuffer(t)
		l.Info(ctx, "uploaded", attribute.String("file", "a.txt"), attribute.Int("status_code", 201))

		lines := decodeLines(t, buf)
		require.Len(t, lines, 1)
		assert.Equal(t, "uploaded", lines[0]["msg"])
		assert.Equal(t, "a.txt", lines[0]["file"])
		assert.Equal(t, float64(201), lines[0]["status_code"])
	})

	t.Run("should attach upload errors", func(t *testing.T) {
		l, buf := loggerxtest.NewTestLoggerWithJSONBuffer(t)
		err := errorx.TransportErrorf(nil, "post")
		l.WithError(err).WithStackTrace(err).Warn(ctx, "upload failed")

		lines := decodeLines(t, buf)
		require.Len(t, lines, 1)
		assert.Equal(t, "TRANSPORT", lines[0]["error"].(map[string]any)["type"])
		assert.Contains(t, buf.String(), "exception.stacktrace")
	})

	t.Run("should copy span start attributes", func(t *testing.T) {
		l, buf := loggerxtest.NewTestLoggerWithJSONBuffer(t)
		l.WithSpanStartOptions(
			trace.WithAttributes(attribute.String("file_name", "a.txt")),
			trace.WithSpanKind(trace.SpanKindClient),
		).Info(ctx, "span started")

		lines := decodeLines(t, buf)
		require.Len(t, lines, 1)
		assert.Equal(t, "a.txt", lines[0]["file_name"])
	})

	t.Run("should filter by level", func(t *testing.T) {
		buf := new(bytes.Buffer)
		l := loggerx.New(buf, "warn", "text")
		l.Info(ctx, "hidden")
		l.Warn(ctx, "shown")

		assert.NotContains(t, buf.String(), "hidden")
		assert.Contains(t, buf.String(), "shown")
	})
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, loggerx.ParseLevel("debug"))
	assert.Equal(t, slog.LevelError, loggerx.ParseLevel("ERROR"))
	assert.Equal(t, slog.LevelInfo, loggerx.ParseLevel("nonsense"))
}
