package api

import (
	"github.com/lalicorera/storefront/cart"
	"github.com/lalicorera/storefront/client"
)

// CartResponse is returned from the cart endpoints.
type CartResponse struct {
	Items          []cart.Line `json:"items"`
	Total          float64     `json:"total"`
	TotalFormatted string      `json:"totalFormatted"`
}

// UpdateItemRequest is the JSON body for PUT /cart/items/{id}.
type UpdateItemRequest struct {
	Quantity int `json:"quantity"`
}

// SessionResponse is returned from GET /session and POST /session.
type SessionResponse struct {
	State string       `json:"state"`
	User  *client.User `json:"user,omitempty"`
}

// CheckoutResponse is returned from GET /checkout. Ready means the payment
// step may proceed: the cart holds something and the session is confirmed.
type CheckoutResponse struct {
	Ready          bool    `json:"ready"`
	Reason         string  `json:"reason,omitempty"`
	Items          int     `json:"items"`
	Total          float64 `json:"total"`
	TotalFormatted string  `json:"totalFormatted"`
}

// ErrorResponse is returned for all error cases.
type ErrorResponse struct {
	Error string `json:"error"`
}
