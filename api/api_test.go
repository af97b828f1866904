package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lalicorera/storefront/cart"
	"github.com/lalicorera/storefront/client"
	"github.com/lalicorera/storefront/session"
	"github.com/lalicorera/storefront/storage/memory"
)

// upstream fakes the retailer API behind the local surface.
func upstream(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/auth/login":
			var creds client.Credentials
			json.NewDecoder(r.Body).Decode(&creds)
			if creds.Email != "a@b.com" || creds.Password != "x" {
				w.WriteHeader(http.StatusUnauthorized)
				w.Write([]byte(`{"message":"credenciales inválidas"}`))
				return
			}
			w.Write([]byte(`{"token":"tok","user":{"id":"u1","name":"Ana","email":"a@b.com"}}`))
		case r.URL.Path == "/auth/me":
			if r.Header.Get("Authorization") != "Bearer tok" {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			w.Write([]byte(`{"user":{"id":"u1","name":"Ana","email":"a@b.com"}}`))
		case r.URL.Path == "/products" && r.URL.Query().Get("category") == "Ron":
			w.Write([]byte(`{"products":[{"id":2,"name":"Ron Viejo de Caldas","price":52000,"category":"Ron"}],"totalPages":1,"totalProducts":1}`))
		case r.URL.Path == "/products":
			w.Write([]byte(`{"products":[{"id":1,"name":"Aguardiente Antioqueño","price":38000}],"totalPages":2,"totalProducts":13}`))
		case r.URL.Path == "/products/1":
			w.Write([]byte(`{"product":{"id":1,"name":"Aguardiente Antioqueño","price":38000}}`))
		default:
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"message":"no existe"}`))
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newTestAPI(t *testing.T) *API {
	t.Helper()
	c, err := client.New(upstream(t).URL)
	require.NoError(t, err)
	store := memory.NewStore()
	return New(c, session.NewManager(c, store), cart.NewManager(store))
}

func doReq(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var rd *strings.Reader
	if body != "" {
		rd = strings.NewReader(body)
	} else {
		rd = strings.NewReader("")
	}
	req := httptest.NewRequest(method, path, rd)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestListProductsProxy(t *testing.T) {
	r := newTestAPI(t).Router()

	w := doReq(t, r, "GET", "/products?page=1&limit=12", "")
	require.Equal(t, http.StatusOK, w.Code)
	list := decode[client.ProductList](t, w)
	assert.Equal(t, 13, list.TotalProducts)
	require.Len(t, list.Products, 1)
	assert.Equal(t, "Aguardiente Antioqueño", list.Products[0].Name)

	w = doReq(t, r, "GET", "/products?category=Ron", "")
	list = decode[client.ProductList](t, w)
	require.Len(t, list.Products, 1)
	assert.Equal(t, "Ron Viejo de Caldas", list.Products[0].Name)
}

func TestGetProductNotFound(t *testing.T) {
	r := newTestAPI(t).Router()
	w := doReq(t, r, "GET", "/products/999", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCartFlow(t *testing.T) {
	r := newTestAPI(t).Router()

	product := `{"id":"1","name":"Aguardiente Antioqueño","price":38000}`

	w := doReq(t, r, "POST", "/cart/items", product)
	require.Equal(t, http.StatusOK, w.Code)
	w = doReq(t, r, "POST", "/cart/items", product)
	require.Equal(t, http.StatusOK, w.Code)

	res := decode[CartResponse](t, w)
	require.Len(t, res.Items, 1)
	assert.Equal(t, 2, res.Items[0].Quantity)
	assert.InDelta(t, 76000, res.Total, 1e-9)
	assert.NotEmpty(t, res.TotalFormatted)

	w = doReq(t, r, "PUT", "/cart/items/1", `{"quantity":5}`)
	res = decode[CartResponse](t, w)
	assert.Equal(t, 5, res.Items[0].Quantity)

	// Below 1 leaves the quantity untouched.
	w = doReq(t, r, "PUT", "/cart/items/1", `{"quantity":0}`)
	res = decode[CartResponse](t, w)
	assert.Equal(t, 5, res.Items[0].Quantity)

	w = doReq(t, r, "DELETE", "/cart/items/1", "")
	res = decode[CartResponse](t, w)
	assert.Empty(t, res.Items)
}

func TestAddItemMissingID(t *testing.T) {
	r := newTestAPI(t).Router()
	w := doReq(t, r, "POST", "/cart/items", `{"name":"sin id","price":1000}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSessionFlow(t *testing.T) {
	r := newTestAPI(t).Router()

	w := doReq(t, r, "GET", "/session", "")
	res := decode[SessionResponse](t, w)
	assert.Equal(t, "anonymous", res.State)

	w = doReq(t, r, "POST", "/session", `{"email":"a@b.com","password":"bad"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doReq(t, r, "POST", "/session", `{"email":"a@b.com","password":"x"}`)
	require.Equal(t, http.StatusOK, w.Code)
	res = decode[SessionResponse](t, w)
	assert.Equal(t, "authenticated", res.State)
	require.NotNil(t, res.User)
	assert.Equal(t, "Ana", res.User.Name)

	w = doReq(t, r, "DELETE", "/session", "")
	res = decode[SessionResponse](t, w)
	assert.Equal(t, "anonymous", res.State)
	assert.Nil(t, res.User)
}

func TestCheckoutGating(t *testing.T) {
	a := newTestAPI(t)
	r := a.Router()

	w := doReq(t, r, "GET", "/checkout", "")
	res := decode[CheckoutResponse](t, w)
	assert.False(t, res.Ready)
	assert.Equal(t, "cart is empty", res.Reason)

	doReq(t, r, "POST", "/cart/items", `{"id":"1","name":"a","price":38000}`)
	w = doReq(t, r, "GET", "/checkout", "")
	res = decode[CheckoutResponse](t, w)
	assert.False(t, res.Ready)
	assert.Equal(t, "login required", res.Reason)

	doReq(t, r, "POST", "/session", `{"email":"a@b.com","password":"x"}`)
	w = doReq(t, r, "GET", "/checkout", "")
	res = decode[CheckoutResponse](t, w)
	assert.True(t, res.Ready)
	assert.Empty(t, res.Reason)
	assert.Equal(t, 1, res.Items)
}

func TestOpenAPIDocumentServed(t *testing.T) {
	r := newTestAPI(t).Router()
	w := doReq(t, r, "GET", "/openapi.yaml", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "La Licorera local storefront API")
}
