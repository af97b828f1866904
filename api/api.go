// Package api exposes the local HTTP surface consumed by the embedded web
// UI: catalog browsing proxied to the retailer API, plus cart and session
// operations over the two state managers.
package api

import (
	_ "embed"
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-openapi/runtime/middleware"

	"github.com/lalicorera/storefront/cart"
	"github.com/lalicorera/storefront/client"
	"github.com/lalicorera/storefront/session"
)

// API holds the dependencies needed by the local handlers.
type API struct {
	client  *client.Client
	session *session.Manager
	cart    *cart.Manager
	logger  *slog.Logger
}

//go:embed openapi.yaml
var openapiSpec []byte

// Option configures the API instance.
type Option func(*API)

// WithLogger sets the structured logger. If not set, a JSON logger writing
// to stderr is used.
func WithLogger(logger *slog.Logger) Option {
	return func(a *API) { a.logger = logger }
}

// New creates a new API instance over the shared client and managers.
func New(c *client.Client, sess *session.Manager, crt *cart.Manager, opts ...Option) *API {
	a := &API{
		client:  c,
		session: sess,
		cart:    crt,
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.logger == nil {
		a.logger = slog.New(slog.NewJSONHandler(os.Stderr, nil))
	}
	return a
}

// Router returns a chi.Router with all local routes mounted.
func (a *API) Router() chi.Router {
	r := chi.NewRouter()

	r.Get("/openapi.yaml", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/yaml")
		w.Write(openapiSpec)
	})

	r.Handle("/docs*", middleware.SwaggerUI(middleware.SwaggerUIOpts{
		SpecURL: "/local/v1/openapi.yaml",
		Path:    "local/v1/docs",
	}, nil))

	r.Get("/products", a.handleListProducts)
	r.Get("/products/{id}", a.handleGetProduct)

	r.Get("/cart", a.handleGetCart)
	r.Delete("/cart", a.handleClearCart)
	r.Post("/cart/items", a.handleAddItem)
	r.Put("/cart/items/{id}", a.handleUpdateItem)
	r.Delete("/cart/items/{id}", a.handleRemoveItem)

	r.Get("/session", a.handleGetSession)
	r.Post("/session", a.handleLogin)
	r.Delete("/session", a.handleLogout)
	r.Post("/register", a.handleRegister)

	r.Get("/checkout", a.handleCheckout)

	return r
}
