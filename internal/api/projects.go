package api

import (
	"context"
	"net/http"
	"net/url"
)

// ProjectFilter narrows ListProjects. Zero values mean "any".
type ProjectFilter struct {
	Status string
	Type   string
}

// ListProjects returns the authored projects, optionally filtered by status
// and type. The endpoint is not paginated.
func (c *Client) ListProjects(ctx context.Context, filter ProjectFilter) ([]Project, error) {
	params := url.Values{}
	if filter.Status != "" {
		params.Set("status", filter.Status)
	}
	if filter.Type != "" {
		params.Set("type", filter.Type)
	}

	path := "/api/v1/projects"
	if qs := params.Encode(); qs != "" {
		path += "?" + qs
	}

	var projects []Project
	if err := c.do(ctx, http.MethodGet, path, nil, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

// GetProject returns a single project by slug.
func (c *Client) GetProject(ctx context.Context, slug string) (*Project, error) {
	var project Project
	if err := c.do(ctx, http.MethodGet, "/api/v1/projects/"+url.PathEscape(slug), nil, &project); err != nil {
		return nil, err
	}
	return &project, nil
}

// CreateProject creates a project (admin only).
func (c *Client) CreateProject(ctx context.Context, in ProjectInput) (*Project, error) {
	var project Project
	if err := c.do(ctx, http.MethodPost, "/api/v1/projects", in, &project); err != nil {
		return nil, err
	}
	return &project, nil
}

// UpdateProject replaces a project's writable fields (admin only).
func (c *Client) UpdateProject(ctx context.Context, id string, in ProjectInput) (*Project, error) {
	var project Project
	if err := c.do(ctx, http.MethodPut, "/api/v1/projects/"+url.PathEscape(id), in, &project); err != nil {
		return nil, err
	}
	return &project, nil
}

// DeleteProject removes a project (admin only).
func (c *Client) DeleteProject(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/v1/projects/"+url.PathEscape(id), nil, nil)
}
