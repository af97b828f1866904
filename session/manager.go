// Package session owns the authenticated-session lifecycle: the current
// user, the bearer token, and the global reaction to rejected credentials.
package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/lalicorera/storefront/client"
	"github.com/lalicorera/storefront/storage"
)

// State is the session lifecycle position.
type State int

const (
	// StateAnonymous means no token is held.
	StateAnonymous State = iota
	// StateAuthenticating means a token is held but the identity behind it
	// has not been confirmed yet. This is a transient loading state, not a
	// terminal one.
	StateAuthenticating
	// StateAuthenticated means both token and user are confirmed.
	StateAuthenticated
)

func (s State) String() string {
	switch s {
	case StateAnonymous:
		return "anonymous"
	case StateAuthenticating:
		return "authenticating"
	case StateAuthenticated:
		return "authenticated"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Manager drives login, registration, logout and startup token validation.
// It registers itself as the client's unauthorized hook, so a 401 from any
// non-auth endpoint logs the session out as a side effect.
type Manager struct {
	client *client.Client
	store  storage.Store
	logger *slog.Logger

	mu   sync.RWMutex
	user *client.User
}

// Option configures the Manager.
type Option func(*Manager)

// WithLogger sets the structured logger. If not set, a no-op logger is used.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Manager) { m.logger = logger }
}

// NewManager wires a Manager over the API client and the durable store.
func NewManager(c *client.Client, store storage.Store, opts ...Option) *Manager {
	m := &Manager{
		client: c,
		store:  store,
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.logger == nil {
		m.logger = slog.New(slog.DiscardHandler)
	}
	c.OnUnauthorized(m.Logout)
	return m
}

// State reports the current lifecycle position: user confirmed means
// authenticated, a bare token means authenticating, nothing means anonymous.
func (m *Manager) State() State {
	m.mu.RLock()
	user := m.user
	m.mu.RUnlock()
	if user != nil {
		return StateAuthenticated
	}
	if m.client.HasToken() {
		return StateAuthenticating
	}
	return StateAnonymous
}

// CurrentUser returns a copy of the confirmed user, or nil.
func (m *Manager) CurrentUser() *client.User {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.user == nil {
		return nil
	}
	u := *m.user
	return &u
}

// Login exchanges credentials for a session. On success the token is
// persisted durably, installed on the client, and the user recorded. On
// failure nothing changes; errors.Is(err, client.ErrUnauthorized)
// distinguishes rejected credentials from transport or server failure.
func (m *Manager) Login(ctx context.Context, creds client.Credentials) (*client.User, error) {
	res, err := m.client.Login(ctx, creds)
	if err != nil {
		return nil, err
	}
	if err := m.store.Put(storage.TokenKey, []byte(res.Token)); err != nil {
		return nil, fmt.Errorf("persisting token: %w", err)
	}
	m.client.SetToken(res.Token)
	m.mu.Lock()
	m.user = &res.User
	m.mu.Unlock()
	m.logger.Info("logged in", "email", res.User.Email)
	return m.CurrentUser(), nil
}

// Register creates the account, then logs in with the new credentials.
// The two legs are separate requests: if the login leg fails the account
// exists but no session is established, and the caller must log in
// manually.
func (m *Manager) Register(ctx context.Context, reg client.Registration) (*client.User, error) {
	if err := m.client.Register(ctx, reg); err != nil {
		return nil, err
	}
	return m.Login(ctx, client.Credentials{Email: reg.Email, Password: reg.Password})
}

// Logout clears the stored token, the client credential, and the user.
// It never fails and makes no network call.
func (m *Manager) Logout() {
	if err := m.store.Delete(storage.TokenKey); err != nil {
		m.logger.Warn("clearing stored token", "err", err)
	}
	m.client.ClearToken()
	m.mu.Lock()
	m.user = nil
	m.mu.Unlock()
}

// LoadUser validates any durably stored token at startup. A token the API
// no longer honors is deleted (back to anonymous); a transport or server
// failure keeps the token and leaves the user unconfirmed, so a flaky
// network does not force a logout.
func (m *Manager) LoadUser(ctx context.Context) error {
	raw, err := m.store.Get(storage.TokenKey)
	if errors.Is(err, storage.ErrNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("reading stored token: %w", err)
	}
	tok := string(raw)
	if tok == "" {
		return nil
	}

	m.client.SetToken(tok)
	user, err := m.client.Me(ctx)
	if errors.Is(err, client.ErrUnauthorized) {
		// The unauthorized hook already tore the session down; nothing
		// else to report.
		m.logger.Info("stored token rejected, session cleared")
		return nil
	}
	if err != nil {
		return fmt.Errorf("loading user: %w", err)
	}

	m.mu.Lock()
	m.user = user
	m.mu.Unlock()
	return nil
}
