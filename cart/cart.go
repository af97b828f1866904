// Package cart implements the shopping cart: an ordered list of product
// lines merged by identity, persisted synchronously on every mutation.
package cart

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/lalicorera/storefront/catalog"
	"github.com/lalicorera/storefront/storage"
)

// ErrMissingID is returned when a product without a stable identity is
// added. The old storefront invented a random id here, which silently broke
// duplicate detection; callers must supply the real one.
var ErrMissingID = errors.New("product has no id")

// Line is one cart entry: the product exactly as it was added, plus a
// quantity. Quantity is always at least 1.
type Line struct {
	catalog.Product
	Quantity int `json:"quantity"`
}

// Subtotal is the line's price contribution.
func (l Line) Subtotal() float64 {
	return l.Price.Amount() * float64(l.Quantity)
}

// Manager owns the line list. All reads and writes go through its methods;
// every mutation is written back to the store before it returns, and a
// failed write rolls the in-memory state back so memory never runs ahead
// of storage.
type Manager struct {
	store  storage.Store
	logger *slog.Logger

	mu    sync.Mutex
	lines []Line
}

// Option configures the Manager.
type Option func(*Manager)

// WithLogger sets the structured logger. If not set, a no-op logger is used.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Manager) { m.logger = logger }
}

// NewManager hydrates a cart from the store. A missing, corrupt, or
// unreadable stored value yields an empty cart; hydration is best-effort
// and never fails.
func NewManager(store storage.Store, opts ...Option) *Manager {
	m := &Manager{store: store}
	for _, opt := range opts {
		opt(m)
	}
	if m.logger == nil {
		m.logger = slog.New(slog.DiscardHandler)
	}

	raw, err := store.Get(storage.CartKey)
	switch {
	case errors.Is(err, storage.ErrNotFound):
	case err != nil:
		m.logger.Warn("reading stored cart", "err", err)
	default:
		if jerr := json.Unmarshal(raw, &m.lines); jerr != nil {
			m.logger.Warn("discarding corrupt stored cart", "err", jerr)
			m.lines = nil
		}
	}
	return m
}

// Add puts one unit of the product in the cart. An existing line with the
// same id has its quantity incremented; everything else on the line stays
// as first added. A product without an id is rejected.
func (m *Manager) Add(p catalog.Product) error {
	if p.ID == "" {
		return ErrMissingID
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	prev := append([]Line(nil), m.lines...)
	for i := range m.lines {
		if m.lines[i].ID == p.ID {
			m.lines[i].Quantity++
			return m.persistOrRestore(prev)
		}
	}
	m.lines = append(m.lines, Line{Product: p, Quantity: 1})
	return m.persistOrRestore(prev)
}

// Remove deletes the line with the given id. Removing an absent id is a
// silent no-op.
func (m *Manager) Remove(id catalog.ID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.lines {
		if m.lines[i].ID == id {
			prev := append([]Line(nil), m.lines...)
			m.lines = append(m.lines[:i], m.lines[i+1:]...)
			return m.persistOrRestore(prev)
		}
	}
	return nil
}

// SetQuantity sets the quantity of the line with the given id to exactly n.
// Values below 1 are ignored, leaving the prior quantity in place; an
// unknown id is a no-op. Stock is not checked here.
func (m *Manager) SetQuantity(id catalog.ID, n int) error {
	if n < 1 {
		return nil
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.lines {
		if m.lines[i].ID == id {
			if m.lines[i].Quantity == n {
				return nil
			}
			prev := append([]Line(nil), m.lines...)
			m.lines[i].Quantity = n
			return m.persistOrRestore(prev)
		}
	}
	return nil
}

// Clear empties the cart.
func (m *Manager) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.lines) == 0 {
		return nil
	}
	prev := m.lines
	m.lines = nil
	return m.persistOrRestore(prev)
}

// Lines returns a copy of the current lines in insertion order.
func (m *Manager) Lines() []Line {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Line(nil), m.lines...)
}

// Len returns the number of distinct lines.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.lines)
}

// Total sums price times quantity across all lines. String prices are
// normalized by catalog.Price; unparsable ones count as zero.
func (m *Manager) Total() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	var total float64
	for _, l := range m.lines {
		total += l.Subtotal()
	}
	return total
}

// persistOrRestore persists the line list; on failure the lines are rolled
// back to prev. Callers hold m.mu.
func (m *Manager) persistOrRestore(prev []Line) error {
	if err := m.persist(); err != nil {
		m.lines = prev
		return err
	}
	return nil
}

// persist writes the whole line list back to the store. Callers hold m.mu.
func (m *Manager) persist() error {
	data, err := json.Marshal(m.lines)
	if err != nil {
		return fmt.Errorf("encoding cart: %w", err)
	}
	if err := m.store.Put(storage.CartKey, data); err != nil {
		return fmt.Errorf("persisting cart: %w", err)
	}
	return nil
}
