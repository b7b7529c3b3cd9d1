package api

import (
	"context"
	"net/http"
)

// Subscribe signs an email address up for the newsletter. Public endpoint.
func (c *Client) Subscribe(ctx context.Context, email string) (*StatusMessage, error) {
	payload := map[string]string{"email": email}

	var msg StatusMessage
	if err := c.do(ctx, http.MethodPost, "/api/v1/newsletter/subscribe", payload, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}

// Unsubscribe removes a subscription using the token from the unsubscribe
// link. Public endpoint.
func (c *Client) Unsubscribe(ctx context.Context, token string) (*StatusMessage, error) {
	payload := map[string]string{"token": token}

	var msg StatusMessage
	if err := c.do(ctx, http.MethodPost, "/api/v1/newsletter/unsubscribe", payload, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}

// ListSubscribers returns a page of subscribers (admin only).
func (c *Client) ListSubscribers(ctx context.Context, opts PageOptions) (*Paginated[Subscriber], error) {
	var page Paginated[Subscriber]
	if err := c.do(ctx, http.MethodGet, "/api/v1/newsletter/subscribers"+pageQuery(opts), nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}
