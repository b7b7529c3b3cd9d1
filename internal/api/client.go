// Package api is the typed client for the subcvlt backend. It is the single
// channel for every authenticated and unauthenticated backend call and owns
// the bearer token lifecycle.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/subculture-collective/subcvlt/internal/repository"
)

// Client talks to the backend REST API. It is safe for concurrent use; the
// in-memory token mirrors the persisted copy in the state store.
type Client struct {
	baseURL    string
	httpClient *http.Client
	store      repository.StateStore
	logger     *slog.Logger

	mu       sync.Mutex
	token    string
	hydrated bool
}

// NewClient creates a backend client. An empty baseURL targets a local
// development server.
func NewClient(baseURL string, store repository.StateStore, logger *slog.Logger) *Client {
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		store:      store,
		logger:     logger,
	}
}

// Error is a backend request failure: the server's error message plus the
// HTTP status code. Unlike cache and listing failures, these propagate to
// the caller, who can act on them.
type Error struct {
	Message string
	Status  int
}

func (e *Error) Error() string {
	return fmt.Sprintf("api: %s (status %d)", e.Message, e.Status)
}

// SetToken replaces the current bearer token in memory and mirrors the
// change to the state store. An empty token clears the persisted copy.
// Storage failures are logged and swallowed; the in-memory token is
// authoritative for the life of the process.
func (c *Client) SetToken(ctx context.Context, token string) {
	c.mu.Lock()
	c.token = token
	c.hydrated = true
	c.mu.Unlock()

	var err error
	if token == "" {
		err = c.store.Delete(ctx, repository.KeyAuthToken)
	} else {
		err = c.store.Set(ctx, repository.KeyAuthToken, token)
	}
	if err != nil {
		c.logger.Warn("failed to persist auth token", "error", err)
	}
}

// Token returns the current bearer token, hydrating from the state store on
// first use. Returns "" when no session exists.
func (c *Client) Token(ctx context.Context) string {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.hydrated {
		c.hydrated = true
		stored, err := c.store.Get(ctx, repository.KeyAuthToken)
		switch {
		case err == nil:
			c.token = stored
		case !errors.Is(err, repository.ErrNotFound):
			c.logger.Warn("failed to read auth token", "error", err)
		}
	}
	return c.token
}

// ClearToken drops the current session.
func (c *Client) ClearToken(ctx context.Context) {
	c.SetToken(ctx, "")
}

// do performs a JSON request against the backend. A non-nil payload is
// marshaled as the body; a non-nil result receives the decoded response.
// Responses with status 204 are never decoded. Any non-2xx status becomes a
// *Error built from the body's "error" field, falling back to the status
// text.
func (c *Client) do(ctx context.Context, method, path string, payload, result any) error {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token := c.Token(ctx); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp)
	}

	if resp.StatusCode == http.StatusNoContent || result == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func decodeError(resp *http.Response) *Error {
	message := http.StatusText(resp.StatusCode)

	var body struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil && body.Error != "" {
		message = body.Error
	}

	return &Error{Message: message, Status: resp.StatusCode}
}
