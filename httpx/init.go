package httpx

import (
	"crypto/tls"
	"net/http"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Doer sends an HTTP request and returns an HTTP response.
// *http.Client satisfies it; tests swap in their own.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

type Client struct {
	httpClient *http.Client
	transport  *http.Transport
	doer       Doer
}

// GetDefaultHTTPClient returns an HTTP client with basic settings
func GetDefaultHTTPClient() *http.Client {
	return &http.Client{
		Timeout: httpClientDefaultTimeout,
	}
}

// NewHTTPClient returns a default HTTP client with default options
func NewHTTPClient() *Client {
	httpClient := GetDefaultHTTPClient()
	httpClient.Transport = &http.Transport{Proxy: http.ProxyFromEnvironment}

	return &Client{
		httpClient: httpClient,
		doer:       httpClient,
	}
}

// NewClientWithOptions creates a configurable HTTP Client
func NewClientWithOptions(options ...Option) *Client {
	client := &Client{
		transport: &http.Transport{
			Proxy:           http.ProxyFromEnvironment,
			TLSClientConfig: &tls.Config{},
		},
	}

	client.httpClient = GetDefaultHTTPClient()

	for _, opt := range options {
		opt(client)
	}

	client.httpClient.Transport = client.transport
	if client.doer == nil {
		client.doer = client.httpClient
	}

	return client
}
