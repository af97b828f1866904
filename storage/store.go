// Package storage provides the durable client-side storage layer for
// session and cart state.
package storage

import "errors"

// ErrNotFound is returned when a key has no stored value.
var ErrNotFound = errors.New("key not found")

// Store is the small key-value surface the state managers persist through.
// Values are opaque bytes, stored in plain text and trusted at face value
// on read.
type Store interface {
	Get(key string) ([]byte, error)
	Put(key string, value []byte) error
	// Delete removes a key. Deleting an absent key is not an error.
	Delete(key string) error
	Close() error
}

// Fixed keys shared by the session and cart managers. CartKey keeps the
// name the web storefront used for its localStorage entry so a value can be
// carried across verbatim.
const (
	TokenKey = "token"
	CartKey  = "lalicorera-cart"
)
