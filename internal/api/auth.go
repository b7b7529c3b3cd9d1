package api

import (
	"context"
	"net/http"
)

// LoginResult is the backend's login response.
type LoginResult struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// Login exchanges credentials for a bearer token and persists the token as a
// side effect, so subsequent requests on this client are authenticated.
func (c *Client) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	payload := map[string]string{
		"username": username,
		"password": password,
	}

	var result LoginResult
	if err := c.do(ctx, http.MethodPost, "/api/v1/auth/login", payload, &result); err != nil {
		return nil, err
	}

	c.SetToken(ctx, result.Token)
	return &result, nil
}

// Me returns the profile behind the current token.
func (c *Client) Me(ctx context.Context) (*User, error) {
	var user User
	if err := c.do(ctx, http.MethodGet, "/api/v1/auth/me", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Logout ends the session client-side. The backend keeps no session state,
// so clearing the token is the whole operation.
func (c *Client) Logout(ctx context.Context) {
	c.ClearToken(ctx)
}
