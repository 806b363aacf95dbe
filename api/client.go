// Package api is the typed client for the church membership API. Every call
// carries the stored bearer token, and a rejected token outside the public
// views ends the session.
package api

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
	"time"

	"church_admin/navigation"
	"church_admin/storage"

	"github.com/google/uuid"
)

const loginPath = "/auth/login"

type Observer interface {
	ObserveRequest(method, route string, status int, elapsed time.Duration)
	ObserveForcedLogout()
}

type Client struct {
	baseURL    string
	httpClient *http.Client
	storage    storage.Storage
	log        *slog.Logger
	observer   Observer

	mu               sync.RWMutex
	onSessionExpired func(ctx context.Context)
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

func WithLogger(l *slog.Logger) Option {
	return func(c *Client) { c.log = l }
}

func WithObserver(o Observer) Option {
	return func(c *Client) { c.observer = o }
}

// New creates a client rooted at baseURL, which already includes the
// versioned API prefix.
func New(baseURL string, timeout time.Duration, st storage.Storage, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		storage:    st,
		log:        slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// OnSessionExpired registers the hook run after a rejected token has been
// cleared from storage.
func (c *Client) OnSessionExpired(fn func(ctx context.Context)) {
	c.mu.Lock()
	c.onSessionExpired = fn
	c.mu.Unlock()
}

type call struct {
	method string
	path   string
	route  string
	query  url.Values
	body   any
	out    any
}

func (c *Client) do(ctx context.Context, r call) error {
	var reader io.Reader
	if r.body != nil {
		payload, err := json.Marshal(r.body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	target := c.baseURL + r.path
	if len(r.query) > 0 {
		target += "?" + r.query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, r.method, target, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())

	token, ok, err := c.storage.Get(ctx, storage.KeyAccessToken)
	if err != nil {
		return fmt.Errorf("failed to read access token: %w", err)
	}
	if ok && token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.observe(r, 0, start)
		return &Error{Method: r.method, Path: r.path, Err: err}
	}
	defer resp.Body.Close()
	c.observe(r, resp.StatusCode, start)

	c.log.Debug("API call", "method", r.method, "path", r.path, "status", resp.StatusCode,
		"request_id", req.Header.Get("X-Request-ID"), "elapsed", time.Since(start))

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &Error{Method: r.method, Path: r.path, StatusCode: resp.StatusCode, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := newError(r.method, r.path, resp.StatusCode, body)
		if resp.StatusCode == http.StatusUnauthorized {
			c.handleUnauthorized(ctx, r.path)
		}
		return apiErr
	}

	if r.out == nil || len(bytes.TrimSpace(body)) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, r.out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// handleUnauthorized clears the session unless the current view is public or
// the rejected call was the login itself.
func (c *Client) handleUnauthorized(ctx context.Context, path string) {
	view := navigation.FromContext(ctx)
	if navigation.IsPublic(view.Path()) || strings.Contains(path, loginPath) {
		return
	}

	c.log.Warn("API rejected bearer token, ending session", "path", path, "view", view.Path())

	if err := c.storage.Remove(ctx, storage.KeyAccessToken, storage.KeyUser); err != nil {
		c.log.Error("Failed to clear stored session", "error", err)
	}
	if c.observer != nil {
		c.observer.ObserveForcedLogout()
	}

	c.mu.RLock()
	hook := c.onSessionExpired
	c.mu.RUnlock()
	if hook != nil {
		hook(ctx)
	}

	view.Redirect(navigation.LoginPath)
}

func (c *Client) observe(r call, status int, start time.Time) {
	if c.observer == nil {
		return
	}
	route := r.route
	if route == "" {
		route = r.path
	}
	c.observer.ObserveRequest(r.method, route, status, time.Since(start))
}

func pageQuery(page, size int, sizeParam string) url.Values {
	q := url.Values{}
	if page > 0 {
		q.Set("page", fmt.Sprint(page))
	}
	if size > 0 {
		q.Set(sizeParam, fmt.Sprint(size))
	}
	return q
}

func idPath(prefix, id string) string {
	return prefix + "/" + url.PathEscape(id)
}
