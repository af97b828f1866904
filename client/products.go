package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/lalicorera/storefront/catalog"
)

// ProductQuery mirrors the storefront's catalog filters. Zero values mean
// "not filtered"; Page and Limit fall back to the API defaults when 0.
type ProductQuery struct {
	Page     int
	Limit    int
	Category string
	Featured bool
	Search   string
}

func (q ProductQuery) values() url.Values {
	v := url.Values{}
	if q.Page > 0 {
		v.Set("page", strconv.Itoa(q.Page))
	}
	if q.Limit > 0 {
		v.Set("limit", strconv.Itoa(q.Limit))
	}
	if q.Category != "" {
		v.Set("category", q.Category)
	}
	if q.Featured {
		v.Set("featured", "true")
	}
	if q.Search != "" {
		v.Set("search", q.Search)
	}
	return v
}

// ListProducts returns one page of the catalog.
func (c *Client) ListProducts(ctx context.Context, q ProductQuery) (*ProductList, error) {
	var out ProductList
	if err := c.do(ctx, http.MethodGet, "/products", q.values(), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetProduct returns a single product by id.
func (c *Client) GetProduct(ctx context.Context, id catalog.ID) (*catalog.Product, error) {
	var out productResponse
	if err := c.do(ctx, http.MethodGet, "/products/"+url.PathEscape(string(id)), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out.Product, nil
}

// CreateProduct adds a new product to the catalog. Admin only.
func (c *Client) CreateProduct(ctx context.Context, p catalog.Product) (*catalog.Product, error) {
	var out productResponse
	if err := c.do(ctx, http.MethodPost, "/products", nil, p, &out); err != nil {
		return nil, err
	}
	return &out.Product, nil
}

// UpdateProduct replaces a product's catalog entry. Admin only.
func (c *Client) UpdateProduct(ctx context.Context, id catalog.ID, p catalog.Product) (*catalog.Product, error) {
	var out productResponse
	if err := c.do(ctx, http.MethodPut, "/products/"+url.PathEscape(string(id)), nil, p, &out); err != nil {
		return nil, err
	}
	return &out.Product, nil
}

// DeleteProduct removes a product from the catalog. Admin only.
func (c *Client) DeleteProduct(ctx context.Context, id catalog.ID) error {
	return c.do(ctx, http.MethodDelete, "/products/"+url.PathEscape(string(id)), nil, nil, nil)
}
