package api

import (
	"context"
	"net/http"
	"net/url"
)

// ContactReceipt acknowledges a contact-form submission.
type ContactReceipt struct {
	Message string `json:"message"`
	ID      string `json:"id"`
}

// SubmitContact sends a contact-form message. Public endpoint.
func (c *Client) SubmitContact(ctx context.Context, in ContactInput) (*ContactReceipt, error) {
	var receipt ContactReceipt
	if err := c.do(ctx, http.MethodPost, "/api/v1/contacts", in, &receipt); err != nil {
		return nil, err
	}
	return &receipt, nil
}

// ListContacts returns a page of contact messages (admin only).
func (c *Client) ListContacts(ctx context.Context, opts PageOptions) (*Paginated[Contact], error) {
	var page Paginated[Contact]
	if err := c.do(ctx, http.MethodGet, "/api/v1/contacts"+pageQuery(opts), nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// ToggleContactRead flips a message's read flag (admin only).
func (c *Client) ToggleContactRead(ctx context.Context, id string) (*Contact, error) {
	var contact Contact
	if err := c.do(ctx, http.MethodPatch, "/api/v1/contacts/"+url.PathEscape(id)+"/read", nil, &contact); err != nil {
		return nil, err
	}
	return &contact, nil
}

// DeleteContact removes a message (admin only).
func (c *Client) DeleteContact(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/v1/contacts/"+url.PathEscape(id), nil, nil)
}
