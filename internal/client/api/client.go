// Package api implements the shared HTTP pipeline every backend request
// passes through: bearer-token injection, error normalization, and the
// 401/403 session-invalidation rules.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/karimfs/skybook/internal/logging"
)

// PageLogin is the page the pipeline forces navigation to when the backend
// rejects the session.
const PageLogin = "login"

// TokenStore provides the current bearer token and a way to drop the whole
// session (token and user together). The session manager implements it.
type TokenStore interface {
	Token() string
	Clear(ctx context.Context) error
}

// Navigator abstracts "which page is active" so the pipeline can force a
// redirect to login without knowing anything about the UI.
type Navigator interface {
	CurrentPage() string
	NavigateTo(page string)
}

// Client is the shared request pipeline. It holds no state beyond its
// collaborators; all side effects are confined to the token store and the
// navigator.
type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenStore
	nav     Navigator
	log     logging.Logger
}

func New(baseURL string, timeout time.Duration, tokens TokenStore, nav Navigator, log logging.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		tokens:  tokens,
		nav:     nav,
		log:     log.With("component", "api"),
	}
}

func (c *Client) Get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out, true)
}

func (c *Client) Post(ctx context.Context, path string, body any, out any) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out, true)
}

func (c *Client) Patch(ctx context.Context, path string, body any, out any) error {
	return c.do(ctx, http.MethodPatch, path, nil, body, out, true)
}

func (c *Client) Delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, nil, true)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any, out any, withAuth bool) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	u := c.baseURL + path
	if len(query) > 0 {
		u = u + "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	if withAuth {
		if token := strings.TrimSpace(c.tokens.Token()); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn(ctx, "request failed without response", "method", method, "path", path, "error", err)
		return networkError()
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return networkError()
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if out == nil || len(respBody) == 0 {
			return nil
		}
		if err := json.Unmarshal(respBody, out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
		return nil
	}

	switch resp.StatusCode {
	case http.StatusUnauthorized:
		// The session is gone server-side. Token and user are cleared
		// together; an orphaned half-session must never remain.
		if err := c.tokens.Clear(ctx); err != nil {
			c.log.Error(ctx, "failed to clear session after 401", "error", err)
		}
		if c.nav.CurrentPage() != PageLogin {
			c.nav.NavigateTo(PageLogin)
		}

	case http.StatusForbidden:
		// A 403 with an expired (or malformed) token usually means a
		// public endpoint was sent a stale credential. Clear the session
		// and, for idempotent requests, retry once anonymously.
		if withAuth {
			if token := c.tokens.Token(); token != "" && tokenExpired(token) {
				c.log.Warn(ctx, "stored token expired, clearing session")
				if err := c.tokens.Clear(ctx); err != nil {
					c.log.Error(ctx, "failed to clear session after 403", "error", err)
				}
				if method == http.MethodGet {
					return c.do(ctx, method, path, query, body, out, false)
				}
			}
		}
	}

	return normalizeError(resp.StatusCode, respBody)
}
