// Package api is the single point of outbound HTTP calls to the clinic
// API. Services build on the verb methods here; nothing else in the
// repository touches the network.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// TokenSource supplies the stored bearer token, if any. An empty string
// means no token is persisted and the request goes out unauthenticated.
type TokenSource interface {
	Token() string
}

// Doer abstracts the underlying HTTP client for testing.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client issues requests against the remote API. All methods return a
// *Response for 2xx statuses and an error otherwise; callers never see a
// panic or a raw non-2xx body.
type Client struct {
	baseURL string
	http    Doer
	tokens  TokenSource
	logger  zerolog.Logger
}

// NewClient creates a client for the API at baseURL. Authenticated calls
// read the token from tokens at call time, so a login that lands between
// two calls is picked up without rebuilding the client.
func NewClient(baseURL string, timeout time.Duration, tokens TokenSource, logger zerolog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Timeout:   timeout,
			Transport: newLoggingTransport(http.DefaultTransport, logger),
		},
		tokens: tokens,
		logger: logger.With().Str("component", "api").Logger(),
	}
}

// callOptions are per-call opt-ins, mirroring the upstream convention
// that auth and cache-busting are requested explicitly per call.
type callOptions struct {
	auth    bool
	noCache bool
}

// CallOption configures a single request.
type CallOption func(*callOptions)

// WithAuth attaches the stored bearer token to the request when one is
// present. Calls without it always go out unauthenticated.
func WithAuth() CallOption {
	return func(o *callOptions) { o.auth = true }
}

// WithNoCache disables response caching for the request.
func WithNoCache() CallOption {
	return func(o *callOptions) { o.noCache = true }
}

// Get issues a GET request.
func (c *Client) Get(ctx context.Context, path string, opts ...CallOption) (*Response, error) {
	return c.do(ctx, http.MethodGet, path, nil, opts)
}

// Post issues a POST request with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body any, opts ...CallOption) (*Response, error) {
	return c.do(ctx, http.MethodPost, path, body, opts)
}

// Patch issues a PATCH request with a JSON body.
func (c *Client) Patch(ctx context.Context, path string, body any, opts ...CallOption) (*Response, error) {
	return c.do(ctx, http.MethodPatch, path, body, opts)
}

// Delete issues a DELETE request.
func (c *Client) Delete(ctx context.Context, path string, opts ...CallOption) (*Response, error) {
	return c.do(ctx, http.MethodDelete, path, nil, opts)
}

// do is the single helper behind every verb method.
func (c *Client) do(ctx context.Context, method, path string, body any, opts []CallOption) (*Response, error) {
	var options callOptions
	for _, opt := range opts {
		opt(&options)
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	requestID := uuid.NewString()
	req.Header.Set("X-Request-ID", requestID)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if options.noCache {
		req.Header.Set("Cache-Control", "no-cache")
	}
	if options.auth {
		if token := c.tokens.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%s %s: failed to read response: %w", method, path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, newError(resp.StatusCode, data, requestID)
	}

	return &Response{
		Status:    resp.StatusCode,
		Body:      data,
		RequestID: requestID,
	}, nil
}

// Response is a successful (2xx) API response.
type Response struct {
	Status    int
	Body      []byte
	RequestID string
}

// Decode unmarshals the response body into v.
func (r *Response) Decode(v any) error {
	if len(r.Body) == 0 {
		return nil
	}
	if err := json.Unmarshal(r.Body, v); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
