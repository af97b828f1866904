// Package client implements the typed HTTP client for the retailer REST API.
//
// The client owns bearer-token injection: once a token is set, every request
// carries an Authorization header. An unauthorized response from any endpoint
// other than login/register is reported through the OnUnauthorized hook so
// the session layer can tear itself down.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/awnumar/memguard"
	"github.com/google/uuid"
)

// Client talks to the retailer API. Safe for use from multiple goroutines.
type Client struct {
	baseURL *url.URL
	httpc   *http.Client
	logger  *slog.Logger

	mu    sync.RWMutex
	token *memguard.Enclave

	onUnauthorized func()
}

// Option configures the Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying *http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpc = hc }
}

// WithLogger sets the structured logger. If not set, a no-op logger is used.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

// New creates a Client for the API rooted at baseURL (e.g.
// "http://localhost:5000/api").
func New(baseURL string, opts ...Option) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parsing base URL: %w", err)
	}
	c := &Client{
		baseURL: u,
		httpc:   &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = slog.New(slog.DiscardHandler)
	}
	return c, nil
}

// SetToken installs tok as the bearer credential for subsequent requests.
// The token lives in a memguard enclave while in memory and is only opened
// long enough to build the Authorization header.
func (c *Client) SetToken(tok string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = memguard.NewEnclave([]byte(tok))
}

// ClearToken removes the bearer credential.
func (c *Client) ClearToken() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = nil
}

// HasToken reports whether a bearer credential is currently installed.
func (c *Client) HasToken() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token != nil
}

// OnUnauthorized registers fn to be called when a request outside the auth
// endpoints comes back 401. At most one hook is held; a second call
// replaces the first.
func (c *Client) OnUnauthorized(fn func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onUnauthorized = fn
}

func (c *Client) bearer() (string, bool) {
	c.mu.RLock()
	enclave := c.token
	c.mu.RUnlock()
	if enclave == nil {
		return "", false
	}
	buf, err := enclave.Open()
	if err != nil {
		c.logger.Warn("opening token enclave", "err", err)
		return "", false
	}
	defer buf.Destroy()
	return buf.String(), true
}

// isAuthPath reports whether path is one of the endpoints exempt from the
// global unauthorized handling (the user is mid-login there).
func isAuthPath(path string) bool {
	return path == "/auth/login" || path == "/auth/register"
}

// do runs one request against the API. body (when non-nil) is JSON-encoded;
// out (when non-nil) receives the decoded response body. No retries, no
// timeout beyond the http.Client's own.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	var rd io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request body: %w", err)
		}
		rd = bytes.NewReader(data)
	}

	u := *c.baseURL
	u.Path = strings.TrimRight(u.Path, "/") + path
	if query != nil {
		u.RawQuery = query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), rd)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if tok, ok := c.bearer(); ok {
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return c.apiError(path, resp)
	}
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decoding %s %s response: %w", method, path, err)
		}
	}
	return nil
}

// apiError turns an error response into an *APIError and fires the
// unauthorized hook when applicable.
func (c *Client) apiError(path string, resp *http.Response) error {
	apiErr := &APIError{
		Status: resp.StatusCode,
		kind:   kindForStatus(resp.StatusCode),
	}

	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if data, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10)); err == nil {
		if jerr := json.Unmarshal(data, &payload); jerr == nil {
			if payload.Message != "" {
				apiErr.Message = payload.Message
			} else {
				apiErr.Message = payload.Error
			}
		}
	}

	if resp.StatusCode == http.StatusUnauthorized && !isAuthPath(path) {
		c.mu.RLock()
		hook := c.onUnauthorized
		c.mu.RUnlock()
		if hook != nil {
			hook()
		}
	}
	return apiErr
}
