package transport

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/vango-dev/formbind/pkg/form"
)

// Client is a net/http-backed form.Transport. Construct with New.
type Client struct {
	hc      *http.Client
	baseURL string
	header  http.Header
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets the underlying *http.Client. Use this to supply a
// client with custom transports, cookie jars, or proxies.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.hc = hc }
}

// WithBaseURL prefixes every request URL with base, so forms can submit
// to paths like "/contacts".
func WithBaseURL(base string) Option {
	return func(c *Client) { c.baseURL = strings.TrimRight(base, "/") }
}

// WithHeader adds a header to every request, e.g. an Authorization
// token.
func WithHeader(key, value string) Option {
	return func(c *Client) { c.header.Add(key, value) }
}

// WithTimeout sets the per-request timeout on the underlying client.
// Default: 30 seconds.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.hc.Timeout = d }
}

// New creates a Client.
func New(opts ...Option) *Client {
	c := &Client{
		hc:     &http.Client{Timeout: 30 * time.Second},
		header: make(http.Header),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Invoke implements form.Transport. Network failures and non-2xx
// responses both surface as *form.TransportError; in the latter case the
// decoded response is attached for handler inspection.
func (c *Client) Invoke(ctx context.Context, method, url string, payload *form.Payload) (*form.Response, error) {
	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload.Body)
	}

	req, err := http.NewRequestWithContext(ctx, strings.ToUpper(method), c.baseURL+url, body)
	if err != nil {
		return nil, &form.TransportError{Method: method, URL: url, Err: err}
	}
	for key, values := range c.header {
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}
	if payload != nil && payload.ContentType != "" {
		req.Header.Set("Content-Type", payload.ContentType)
	}

	res, err := c.hc.Do(req)
	if err != nil {
		return nil, &form.TransportError{Method: method, URL: url, Err: err}
	}
	defer res.Body.Close()

	data, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, &form.TransportError{Method: method, URL: url, StatusCode: res.StatusCode, Err: err}
	}

	resp := &form.Response{
		StatusCode: res.StatusCode,
		Header:     res.Header,
		Body:       data,
	}
	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return nil, &form.TransportError{
			Method:     method,
			URL:        url,
			StatusCode: res.StatusCode,
			Response:   resp,
			Err:        fmt.Errorf("unexpected status %d", res.StatusCode),
		}
	}
	return resp, nil
}
