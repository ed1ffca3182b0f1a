// Package hrmsclient is a Go client for the HRMS REST API. It carries
// the session, caching, and polling behavior a browser front end needs:
// bearer attachment, the fatal-versus-transient 401 split, a short-TTL
// list cache, and bounded-concurrency bulk approvals.
package hrmsclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const currentUserPath = "/api/v1/auth/me"

// APIError is any non-2xx response from the server.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
	Details    map[string]string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("api error %d", e.StatusCode)
}

// IsAuthError reports whether err is a 401 APIError.
func IsAuthError(err error) bool {
	apiErr, ok := err.(*APIError)
	return ok && apiErr.StatusCode == http.StatusUnauthorized
}

// envelope mirrors the server's response wrapper.
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string            `json:"code"`
		Message string            `json:"message"`
		Details map[string]string `json:"details"`
	} `json:"error"`
	Meta *Meta `json:"meta"`
}

// Meta is the pagination block returned by list endpoints.
type Meta struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalItems int64 `json:"total_items"`
	TotalPages int   `json:"total_pages"`
}

type Client struct {
	baseURL    string
	httpClient *http.Client
	session    *SessionStore

	// OnSessionExpired fires after a 401 from the current-user
	// endpoint has cleared the session. 401s from any other endpoint
	// never trigger it.
	OnSessionExpired func()
}

func New(baseURL string, session *SessionStore) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
		session:    session,
	}
}

// WithHTTPClient swaps the underlying transport, mainly for tests.
func (c *Client) WithHTTPClient(hc *http.Client) *Client {
	c.httpClient = hc
	return c
}

func (c *Client) Session() *SessionStore {
	return c.session
}

// do runs one request and decodes the envelope's data into out (when
// out is non-nil). The token is read fresh from the session store on
// every call; another process may have cleared it.
func (c *Client) do(ctx context.Context, method, path string, body any, out any) (*Meta, error) {
	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.session.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var env envelope
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &env); err != nil {
			return nil, &APIError{StatusCode: resp.StatusCode, Message: "malformed response"}
		}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		if env.Error != nil {
			apiErr.Code = env.Error.Code
			apiErr.Message = env.Error.Message
			apiErr.Details = env.Error.Details
		}
		// A 401 is fatal only from the current-user endpoint. Other
		// endpoints can 401 transiently during a token refresh race,
		// and clearing the session there causes redirect loops.
		if resp.StatusCode == http.StatusUnauthorized && c.isCurrentUserPath(path) {
			c.session.Clear()
			if c.OnSessionExpired != nil {
				c.OnSessionExpired()
			}
		}
		return nil, apiErr
	}

	if out != nil && env.Data != nil {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return nil, fmt.Errorf("decode response: %w", err)
		}
	}
	return env.Meta, nil
}

func (c *Client) isCurrentUserPath(path string) bool {
	if i := strings.IndexByte(path, '?'); i >= 0 {
		path = path[:i]
	}
	return path == currentUserPath
}

func (c *Client) get(ctx context.Context, path string, out any) (*Meta, error) {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) post(ctx context.Context, path string, body, out any) (*Meta, error) {
	return c.do(ctx, http.MethodPost, path, body, out)
}

func (c *Client) put(ctx context.Context, path string, body, out any) (*Meta, error) {
	return c.do(ctx, http.MethodPut, path, body, out)
}

func (c *Client) delete(ctx context.Context, path string) error {
	_, err := c.do(ctx, http.MethodDelete, path, nil, nil)
	return err
}
