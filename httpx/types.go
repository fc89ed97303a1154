package httpx

import (
	"net/http"
	"net/url"
	"time"
)

const httpClientDefaultTimeout = 60 * time.Second

// Request is sent as is: Body is written verbatim and Headers are cloned.
type Request struct {
	Method          string `validate:"required"`
	URL             string `validate:"required,url"`
	Body            []byte
	Headers         http.Header
	QueryParameters url.Values
}

func (r *Request) Validate() error {
	return validate.Struct(r)
}

// Response is the fully read answer to a Request. Duration covers the round
// trip and the body read.
type Response struct {
	StatusCode int `validate:"required,min=100,max=999"`
	Body       []byte
	Headers    http.Header
	Duration   time.Duration
}

// Validate fails for a status code outside 100..999.
func (r *Response) Validate() error {
	return validate.Struct(r)
}

// IsSuccess reports a 2xx status code.
func (r *Response) IsSuccess() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}
