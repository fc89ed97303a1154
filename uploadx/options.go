package uploadx

import (
	"time"

	"github.com/oporajita/x/httpx"
	"github.com/oporajita/x/loggerx"
	"go.opentelemetry.io/otel/trace"
)

const DefaultRetryInterval = 500 * time.Millisecond

// Option is a named func that will help set custom options to the Uploader
type Option func(*Uploader)

func WithLogger(l *loggerx.Logger) Option {
	return func(u *Uploader) {
		u.l = l
	}
}

// WithHTTPClient sets the client used to send requests.
func WithHTTPClient(c *httpx.Client) Option {
	return func(u *Uploader) {
		u.client = c
	}
}

// WithRetry enables up to n extra attempts after a transport failure.
// Server and protocol failures are never retried.
func WithRetry(n int) Option {
	return func(u *Uploader) {
		u.retries = max(n, 0)
	}
}

func WithRetryInterval(d time.Duration) Option {
	return func(u *Uploader) {
		u.retryInterval = d
	}
}

func WithTracer(t trace.Tracer) Option {
	return func(u *Uploader) {
		u.tracer = t
	}
}
