package client

import (
	"context"
	"net/http"
	"net/url"

	"github.com/lalicorera/storefront/catalog"
)

// ListUsers returns all accounts. Admin only.
func (c *Client) ListUsers(ctx context.Context) ([]User, error) {
	var out usersResponse
	if err := c.do(ctx, http.MethodGet, "/users", nil, nil, &out); err != nil {
		return nil, err
	}
	return out.Users, nil
}

// GetUser returns a single account by id. Admin only.
func (c *Client) GetUser(ctx context.Context, id catalog.ID) (*User, error) {
	var out userResponse
	if err := c.do(ctx, http.MethodGet, "/users/"+url.PathEscape(string(id)), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out.User, nil
}

// UpdateUser applies upd to an account. Admin only.
func (c *Client) UpdateUser(ctx context.Context, id catalog.ID, upd UserUpdate) (*User, error) {
	var out userResponse
	if err := c.do(ctx, http.MethodPut, "/users/"+url.PathEscape(string(id)), nil, upd, &out); err != nil {
		return nil, err
	}
	return &out.User, nil
}

// DeleteUser removes an account. Admin only.
func (c *Client) DeleteUser(ctx context.Context, id catalog.ID) error {
	return c.do(ctx, http.MethodDelete, "/users/"+url.PathEscape(string(id)), nil, nil, nil)
}
