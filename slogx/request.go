package slogx

import (
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"
)

var (
	mu                  sync.RWMutex
	sensitiveHeadersMap = map[string]bool{"authorization": true}
	redactionText       = "**[REDACTED]**"
	includeQuery        = false
)

// ConfigureSensitiveHeaders adds headers that should be redacted in the logs.
// Authorization is always redacted.
// Note that this will be applied globally to all loggers using slogx.
func ConfigureSensitiveHeaders(sensitiveHeaders ...string) {
	mu.Lock()
	defer mu.Unlock()
	for _, header := range sensitiveHeaders {
		sensitiveHeadersMap[strings.ToLower(header)] = true
	}
}

// ConfigureRedactionText sets the text that will be used to redact sensitive headers in the logs.
// Default is "**[REDACTED]**"
func ConfigureRedactionText(text string) {
	mu.Lock()
	defer mu.Unlock()
	redactionText = text
}

// ConfigureIncludeQuery sets whether to include query parameters in the logs. Defaults to false
func ConfigureIncludeQuery(include bool) {
	mu.Lock()
	defer mu.Unlock()
	includeQuery = include
}

func RedactHeaders(headers http.Header) slog.Attr {
	mu.RLock()
	defer mu.RUnlock()

	headerMap := make(map[string][]string, len(headers))
	for key, values := range headers {
		if sensitiveHeadersMap[strings.ToLower(key)] {
			headerMap[key] = []string{redactionText}
		} else {
			headerMap[key] = values
		}
	}

	return slog.Any("headers", headerMap)
}

// OutgoingRequest groups the parts of an outbound request that are safe to log.
func OutgoingRequest(method, rawURL string, headers http.Header) slog.Attr {
	attrs := []slog.Attr{
		slog.String("method", method),
		RedactHeaders(headers),
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		attrs = append(attrs, slog.String("url", rawURL))
		return slog.GroupAttrs("http_request", attrs...)
	}

	attrs = append(attrs,
		slog.String("scheme", u.Scheme),
		slog.String("host", u.Host),
		slog.String("path", u.EscapedPath()),
	)

	if len(u.RawQuery) > 0 {
		mu.RLock()
		q := redactionText
		if includeQuery {
			q = u.RawQuery
		}
		mu.RUnlock()
		attrs = append(attrs, slog.String("query", q))
	}

	return slog.GroupAttrs("http_request", attrs...)
}
