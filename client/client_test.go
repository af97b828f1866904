package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lalicorera/storefront/catalog"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	c, err := New(srv.URL)
	require.NoError(t, err)
	return c
}

func TestBearerInjection(t *testing.T) {
	var gotAuth string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"user":{"id":"1","name":"Ana","email":"a@b.com"}}`))
	})

	// No token, no header.
	_, err := c.Me(context.Background())
	require.NoError(t, err)
	assert.Empty(t, gotAuth)

	c.SetToken("tok-123")
	_, err = c.Me(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-123", gotAuth)

	c.ClearToken()
	_, err = c.Me(context.Background())
	require.NoError(t, err)
	assert.Empty(t, gotAuth)
}

func TestRequestIDHeader(t *testing.T) {
	var gotID string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotID = r.Header.Get("X-Request-ID")
		w.Write([]byte(`{"products":[],"totalPages":1,"totalProducts":0}`))
	})
	_, err := c.ListProducts(context.Background(), ProductQuery{})
	require.NoError(t, err)
	assert.NotEmpty(t, gotID)
}

func TestUnauthorizedHook(t *testing.T) {
	t.Run("fires outside auth endpoints", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		})
		calls := 0
		c.OnUnauthorized(func() { calls++ })

		_, err := c.Me(context.Background())
		assert.True(t, errors.Is(err, ErrUnauthorized))
		assert.Equal(t, 1, calls)
	})

	t.Run("silent on login", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"message":"credenciales inválidas"}`))
		})
		calls := 0
		c.OnUnauthorized(func() { calls++ })

		_, err := c.Login(context.Background(), Credentials{Email: "a@b.com", Password: "bad"})
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrUnauthorized))
		assert.Equal(t, 0, calls)

		var apiErr *APIError
		require.True(t, errors.As(err, &apiErr))
		assert.Equal(t, "credenciales inválidas", apiErr.Message)
	})

	t.Run("silent on register", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		})
		calls := 0
		c.OnUnauthorized(func() { calls++ })

		err := c.Register(context.Background(), Registration{Email: "a@b.com"})
		require.Error(t, err)
		assert.Equal(t, 0, calls)
	})
}

func TestErrorMapping(t *testing.T) {
	tests := []struct {
		name   string
		status int
		want   error
	}{
		{"unauthorized", 401, ErrUnauthorized},
		{"not found", 404, ErrNotFound},
		{"bad request", 400, ErrValidation},
		{"unprocessable", 422, ErrValidation},
		{"internal", 500, ErrServer},
		{"bad gateway", 502, ErrServer},
		{"unexpected", 418, ErrServer},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			})
			_, err := c.GetProduct(context.Background(), "7")
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}
}

func TestListProductsQuery(t *testing.T) {
	var got string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		got = r.URL.RawQuery
		w.Write([]byte(`{"products":[{"id":1,"name":"Aguardiente Antioqueño","price":38000}],"totalPages":3,"totalProducts":25}`))
	})

	list, err := c.ListProducts(context.Background(), ProductQuery{
		Page:     2,
		Limit:    12,
		Category: "Ron",
		Search:   "viejo",
	})
	require.NoError(t, err)

	q := "category=Ron&limit=12&page=2&search=viejo"
	assert.Equal(t, q, got)
	assert.Equal(t, 3, list.TotalPages)
	assert.Equal(t, 25, list.TotalProducts)
	require.Len(t, list.Products, 1)
	assert.Equal(t, catalog.ID("1"), list.Products[0].ID)
	assert.InDelta(t, 38000, list.Products[0].Price.Amount(), 1e-9)
}

func TestFeaturedFilter(t *testing.T) {
	var got string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		got = r.URL.Query().Get("featured")
		w.Write([]byte(`{"products":[],"totalPages":1,"totalProducts":0}`))
	})
	_, err := c.ListProducts(context.Background(), ProductQuery{Featured: true})
	require.NoError(t, err)
	assert.Equal(t, "true", got)
}

func TestCreateProduct(t *testing.T) {
	var (
		gotMethod string
		gotPath   string
		gotBody   map[string]any
	)
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"product":{"id":9,"name":"Ron Medellín Añejo","price":45000,"category":"Ron"}}`))
	})

	created, err := c.CreateProduct(context.Background(), catalog.Product{
		Name:     "Ron Medellín Añejo",
		Category: "Ron",
		Price:    catalog.NewPrice(45000),
		Stock:    10,
	})
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "/products", gotPath)
	assert.Equal(t, "Ron Medellín Añejo", gotBody["name"])
	assert.Equal(t, "Ron", gotBody["category"])
	assert.InDelta(t, 45000, gotBody["price"], 1e-9)
	assert.InDelta(t, 10, gotBody["stock"], 1e-9)

	// The server assigns the identity.
	assert.Equal(t, catalog.ID("9"), created.ID)
}

func TestTransportError(t *testing.T) {
	c, err := New("http://127.0.0.1:1") // nothing listens here
	require.NoError(t, err)
	_, err = c.Me(context.Background())
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrUnauthorized))
	assert.False(t, errors.Is(err, ErrServer))
}
