package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// PostListOptions selects a page of posts. All=true includes drafts and is
// only honored for authenticated callers.
type PostListOptions struct {
	Page    int
	PerPage int
	All     bool
}

// ListPosts returns a page of posts in the uniform paginated envelope.
func (c *Client) ListPosts(ctx context.Context, opts PostListOptions) (*Paginated[Post], error) {
	params := url.Values{}
	if opts.Page > 0 {
		params.Set("page", strconv.Itoa(opts.Page))
	}
	if opts.PerPage > 0 {
		params.Set("per_page", strconv.Itoa(opts.PerPage))
	}
	if opts.All {
		params.Set("all", "true")
	}

	path := "/api/v1/posts"
	if qs := params.Encode(); qs != "" {
		path += "?" + qs
	}

	var page Paginated[Post]
	if err := c.do(ctx, http.MethodGet, path, nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// GetPost returns a single post by slug.
func (c *Client) GetPost(ctx context.Context, slug string) (*Post, error) {
	var post Post
	if err := c.do(ctx, http.MethodGet, "/api/v1/posts/"+url.PathEscape(slug), nil, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

// CreatePost creates a post (admin only).
func (c *Client) CreatePost(ctx context.Context, in PostInput) (*Post, error) {
	var post Post
	if err := c.do(ctx, http.MethodPost, "/api/v1/posts", in, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

// UpdatePost replaces a post's writable fields (admin only).
func (c *Client) UpdatePost(ctx context.Context, id string, in PostInput) (*Post, error) {
	var post Post
	if err := c.do(ctx, http.MethodPut, "/api/v1/posts/"+url.PathEscape(id), in, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

// DeletePost removes a post (admin only).
func (c *Client) DeletePost(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/v1/posts/"+url.PathEscape(id), nil, nil)
}
