package uploadx

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"time"
	"unicode/utf8"

	"github.com/inhies/go-bytesize"
	"github.com/oporajita/x/errorx"
	"github.com/oporajita/x/httpx"
	"github.com/oporajita/x/loggerx"
	"github.com/oporajita/x/multipartx"
	"github.com/oporajita/x/retryx"
	"github.com/oporajita/x/slogx"
	"github.com/oporajita/x/tracex"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const uploaderComponentName = "uploadx.Uploader"

// Uploader posts multipart bodies. It holds no per-call state and is safe for
// concurrent use.
type Uploader struct {
	client        *httpx.Client
	l             *loggerx.Logger
	tracer        trace.Tracer
	retries       int
	retryInterval time.Duration
}

func NewUploader(opts ...Option) *Uploader {
	u := &Uploader{
		retryInterval: DefaultRetryInterval,
	}
	for _, opt := range opts {
		opt(u)
	}
	if u.client == nil {
		u.client = httpx.NewHTTPClient()
	}
	if u.l == nil {
		u.l = &loggerx.Logger{Logger: slog.Default()}
	}
	if u.tracer == nil {
		u.tracer = tracex.DefaultTracer()
	}
	return u
}

func (u *Uploader) instrument(ctx context.Context, name string, opts ...trace.SpanStartOption) (context.Context, trace.Span, *loggerx.Logger) {
	return tracex.Instrument(ctx, u.tracer, u.l, uploaderComponentName, name, opts...)
}

// Upload builds the multipart body for req and posts it once.
// The returned error is always an *errorx.Error.
func (u *Uploader) Upload(ctx context.Context, req *UploadRequest) (res *Result, err error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	ctx, span, l := u.instrument(ctx, "Upload", trace.WithAttributes(
		attribute.String("file_name", req.FileName),
		attribute.String("field_name", req.FieldName),
	))
	defer func() { tracex.EndWithError(span, err) }()

	boundary := multipartx.NewBoundary()
	body := multipartx.Build(boundary, req.Fields, req.file())

	headers := http.Header{}
	dropped, err := httpx.MergeHeaders(headers, req.Headers, httpx.ContentTypeHeaderKey)
	if err != nil {
		return nil, err
	}
	if len(dropped) > 0 {
		l.Warn(ctx, "ignoring caller headers that would replace the multipart content type", attribute.StringSlice("headers", dropped))
	}
	headers.Set(httpx.ContentTypeHeaderKey, multipartx.ContentType(boundary))

	l.WithAttrs(slogx.OutgoingRequest(http.MethodPost, req.URL, headers)).
		Debug(ctx, "sending upload", attribute.String("size", bytesize.New(float64(len(body))).String()))

	httpReq := &httpx.Request{
		Method:  http.MethodPost,
		URL:     req.URL,
		Body:    body,
		Headers: headers,
	}

	attempts := 0
	var resp *httpx.Response
	send := func() error {
		attempts++
		r, err := u.client.Do(ctx, httpReq)
		if err != nil {
			return classifySendError(req.URL, err)
		}
		resp = r
		return nil
	}

	if u.retries > 0 {
		err = retryx.ConstantRetry(send,
			retryx.WithContext(ctx),
			retryx.WithRetryCount(u.retries+1),
			retryx.WithInterval(u.retryInterval),
			retryx.WithRetryIf(errorx.IsTransportError),
		)
	} else {
		err = send()
	}
	if err != nil {
		l.WithError(err).Warn(ctx, "upload failed", attribute.Int("attempts", attempts))
		return nil, err
	}

	if err := resp.Validate(); err != nil {
		return nil, errorx.ProtocolErrorf(err, "invalid status code %d from %s", resp.StatusCode, redactURL(req.URL))
	}

	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))

	if !resp.IsSuccess() {
		err := errorx.ServerError(resp.StatusCode, bodyText(resp.Body))
		l.WithError(err).Warn(ctx, "upload rejected")
		return nil, err
	}

	l.Info(ctx, "upload succeeded",
		attribute.Int("status_code", resp.StatusCode),
		attribute.Int("attempts", attempts),
		attribute.String("duration", resp.Duration.String()),
	)

	return &Result{
		StatusCode: resp.StatusCode,
		Body:       resp.Body,
		Headers:    resp.Headers,
		Duration:   resp.Duration,
		Boundary:   boundary,
	}, nil
}

func classifySendError(rawURL string, err error) error {
	if httpx.IsMalformedResponse(err) {
		return errorx.ProtocolErrorf(err, "malformed response from %s", redactURL(rawURL))
	}
	return errorx.TransportErrorf(err, "post %s", redactURL(rawURL))
}

func bodyText(b []byte) string {
	if !utf8.Valid(b) {
		return ""
	}
	return string(b)
}

// redactURL drops credentials and the query string before a URL ends up in an error.
func redactURL(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "<invalid url>"
	}
	return (&url.URL{Scheme: u.Scheme, Host: u.Host, Path: u.Path}).String()
}
