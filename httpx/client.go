package httpx

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/textproto"
	"net/url"
	"strings"
	"time"
)

// ErrNoResponse is returned when the transport produced neither a response nor an error.
var ErrNoResponse = errors.New("transport returned no response")

// ResponseReadError marks a failure that happened after the status line was
// received, while reading the response body.
type ResponseReadError struct {
	StatusCode int
	Err        error
}

func (e *ResponseReadError) Error() string {
	return "read response body: " + e.Err.Error()
}

func (e *ResponseReadError) Unwrap() error {
	return e.Err
}

// Do sends input as-is and reads the whole response body.
// Errors from the transport are returned unchanged so callers can classify them.
func (c *Client) Do(ctx context.Context, input *Request) (*Response, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var body io.Reader
	if input.Body != nil {
		body = bytes.NewReader(input.Body)
	}

	httpRequest, err := http.NewRequestWithContext(ctx, input.Method, input.URL, body)
	if err != nil {
		return nil, err
	}

	buildQueryParams(httpRequest, input.QueryParameters)

	if input.Headers != nil {
		httpRequest.Header = input.Headers.Clone()
	}

	startTime := time.Now()

	httpResponse, err := c.doer.Do(httpRequest)
	if err != nil {
		return nil, err
	}
	if httpResponse == nil {
		return nil, ErrNoResponse
	}

	defer httpResponse.Body.Close()

	respBody, err := io.ReadAll(httpResponse.Body)
	if err != nil {
		return nil, &ResponseReadError{StatusCode: httpResponse.StatusCode, Err: err}
	}

	return &Response{
		StatusCode: httpResponse.StatusCode,
		Body:       respBody,
		Headers:    httpResponse.Header,
		Duration:   time.Since(startTime),
	}, nil
}

// IsMalformedResponse reports whether err means bytes came back from the peer
// but could not be parsed as an HTTP response.
func IsMalformedResponse(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrNoResponse) {
		return true
	}
	var rre *ResponseReadError
	if errors.As(err, &rre) {
		return true
	}
	var pe textproto.ProtocolError
	if errors.As(err, &pe) {
		return true
	}
	// net/http reports status line and header parse failures as plain strings.
	msg := err.Error()
	return strings.Contains(msg, "malformed HTTP") ||
		strings.Contains(msg, "malformed MIME header") ||
		strings.Contains(msg, "server sent an invalid")
}

func buildQueryParams(httpRequest *http.Request, params url.Values) {
	if len(params) > 0 {
		requestQueryParams := httpRequest.URL.Query()

		for queryParamKey, queryParamValues := range params {
			for _, queryParamValue := range queryParamValues {
				requestQueryParams.Add(queryParamKey, queryParamValue)
			}
		}

		httpRequest.URL.RawQuery = requestQueryParams.Encode()
	}
}
