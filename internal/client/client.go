// Package client is the thin REST client through which every remote call is
// made. All business logic lives on the backend; this package only shapes
// requests, injects the bearer token from the session, and normalizes error
// responses into APIError values the UI can surface.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/Faizan-Ansari1000/Go-Travel/internal/session"
)

// DefaultTimeout matches the mobile client's HTTP provider.
const DefaultTimeout = 20 * time.Second

// GenericErrorMessage is surfaced when an error response carries no usable
// message of its own.
const GenericErrorMessage = "Something went wrong. Please try again."

// APIError is a non-2xx response from the backend. Message is taken from the
// response body's "message" field when present, falling back to
// GenericErrorMessage, so it is always safe to show the user.
type APIError struct {
	StatusCode int
	Message    string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("api error (status %d): %s", e.StatusCode, e.Message)
}

// Envelope is the common wrapper the backend puts around responses. Success
// is a logical flag; Status mirrors the HTTP status for clients that check
// the body instead of the transport. Go's JSON decoding is case-insensitive
// on field names, so both "status" and "Status" spellings map here.
type Envelope struct {
	Success bool   `json:"success"`
	Status  int    `json:"status"`
	Message string `json:"message"`
}

// Client issues JSON requests against the configured base URL.
type Client struct {
	baseURL  string
	http     *http.Client
	sessions session.Store
	logger   *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient substitutes the underlying http.Client (tests, custom
// transports).
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithSessionStore wires the store the client reads the bearer token from.
// Without one, requests go out unauthenticated.
func WithSessionStore(s session.Store) Option {
	return func(c *Client) { c.sessions = s }
}

// WithLogger sets the structured logger for request/response lines.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// New returns a Client for baseURL. The default http.Client carries the
// 20-second timeout and a logging transport writing one structured line per
// call.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.http == nil {
		c.http = &http.Client{
			Timeout:   DefaultTimeout,
			Transport: NewLoggingTransport(nil, c.logger),
		}
	}
	return c
}

// Post issues a POST with a JSON body and decodes the response into out
// (out may be nil). Returns the HTTP status code alongside any error so
// callers can apply the "success flag or 200/201" rule.
func (c *Client) Post(ctx context.Context, path string, body, out any) (int, error) {
	return c.do(ctx, http.MethodPost, path, body, out)
}

// Get issues a GET and decodes the response into out.
func (c *Client) Get(ctx context.Context, path string, out any) (int, error) {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

// Put issues a PUT with a JSON body and decodes the response into out.
func (c *Client) Put(ctx context.Context, path string, body, out any) (int, error) {
	return c.do(ctx, http.MethodPut, path, body, out)
}

// Delete issues a DELETE and decodes the response into out.
func (c *Client) Delete(ctx context.Context, path string, out any) (int, error) {
	return c.do(ctx, http.MethodDelete, path, nil, out)
}

// do builds and sends one request. The context ties the call to the caller's
// lifetime: navigating away cancels the context and aborts the request.
func (c *Client) do(ctx context.Context, method, path string, body, out any) (int, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return 0, fmt.Errorf("client.Client.do: marshal body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return 0, fmt.Errorf("client.Client.do: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token := c.token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, fmt.Errorf("client.Client.do: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, fmt.Errorf("client.Client.do: read body: %w", err)
	}

	if resp.StatusCode >= 400 {
		return resp.StatusCode, &APIError{
			StatusCode: resp.StatusCode,
			Message:    extractMessage(data),
		}
	}

	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return resp.StatusCode, fmt.Errorf("client.Client.do: decode response: %w", err)
		}
	}
	return resp.StatusCode, nil
}

// token loads the current bearer token from the session store. A missing or
// unreadable session just means an unauthenticated request.
func (c *Client) token() string {
	if c.sessions == nil {
		return ""
	}
	ctx, err := c.sessions.Load()
	if err != nil {
		c.logger.Warn("session load failed, sending unauthenticated request", "error", err)
		return ""
	}
	return ctx.Token
}

// extractMessage pulls the "message" field out of an error body, falling back
// to the generic message when the body has none or is not JSON.
func extractMessage(body []byte) string {
	var env Envelope
	if err := json.Unmarshal(body, &env); err == nil && strings.TrimSpace(env.Message) != "" {
		return env.Message
	}
	return GenericErrorMessage
}

// Accepted applies the submission success rule: the envelope's success flag
// or an HTTP 200/201 status, whichever signals first.
func Accepted(env Envelope, statusCode int) bool {
	return env.Success || statusCode == http.StatusOK || statusCode == http.StatusCreated
}
