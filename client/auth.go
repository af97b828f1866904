package client

import (
	"context"
	"net/http"
)

// Login exchanges credentials for a token and the account it belongs to.
// The token is NOT installed on the client; that is the session manager's
// call to make.
func (c *Client) Login(ctx context.Context, creds Credentials) (*LoginResponse, error) {
	var out LoginResponse
	if err := c.do(ctx, http.MethodPost, "/auth/login", nil, creds, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Register creates a new account. No session is established; the caller
// logs in separately.
func (c *Client) Register(ctx context.Context, reg Registration) error {
	return c.do(ctx, http.MethodPost, "/auth/register", nil, reg, nil)
}

// Me returns the account the installed bearer token belongs to.
func (c *Client) Me(ctx context.Context) (*User, error) {
	var out meResponse
	if err := c.do(ctx, http.MethodGet, "/auth/me", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out.User, nil
}
