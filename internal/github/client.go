// Package github fetches the collective's public repository listing, with a
// persisted time-boxed cache in front of the API.
package github

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/subculture-collective/subcvlt/internal/domain/catalog"
)

const defaultBaseURL = "https://api.github.com"

// Client reads the repository listing for one organization. Read-only; no
// token is sent, so only public repositories are visible.
type Client struct {
	baseURL    string
	org        string
	httpClient *http.Client
}

// NewClient creates a listing client. An empty baseURL targets api.github.com.
func NewClient(baseURL, org string) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		baseURL:    baseURL,
		org:        org,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// ListRepos fetches the organization's repositories, most recently updated
// first.
func (c *Client) ListRepos(ctx context.Context) ([]catalog.RepoRecord, error) {
	url := fmt.Sprintf("%s/orgs/%s/repos?per_page=100&sort=updated", c.baseURL, c.org)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github.v3+json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("github api returned %d", resp.StatusCode)
	}

	var repos []catalog.RepoRecord
	if err := json.NewDecoder(resp.Body).Decode(&repos); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return repos, nil
}
