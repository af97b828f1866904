package client

import (
	"errors"
	"fmt"
)

var (
	// ErrUnauthorized indicates the API rejected the presented credential.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrNotFound indicates the requested entity does not exist.
	ErrNotFound = errors.New("not found")
	// ErrValidation indicates the API rejected the request body.
	ErrValidation = errors.New("validation failed")
	// ErrServer indicates an unexpected 5xx from the API.
	ErrServer = errors.New("server error")
)

// APIError carries the HTTP status and the server-supplied message for a
// rejected request. It unwraps to one of the sentinel errors above so
// callers can branch with errors.Is.
type APIError struct {
	Status  int
	Message string
	kind    error
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api: %s (status %d)", e.Message, e.Status)
	}
	return fmt.Sprintf("api: %s (status %d)", e.kind, e.Status)
}

func (e *APIError) Unwrap() error {
	return e.kind
}

func kindForStatus(status int) error {
	switch {
	case status == 401:
		return ErrUnauthorized
	case status == 404:
		return ErrNotFound
	case status == 400 || status == 422:
		return ErrValidation
	case status >= 500:
		return ErrServer
	default:
		return ErrServer
	}
}
