package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/lalicorera/storefront/cart"
	"github.com/lalicorera/storefront/client"
	"github.com/lalicorera/storefront/internal/config"
	"github.com/lalicorera/storefront/session"
	bboltstorage "github.com/lalicorera/storefront/storage/bbolt"
)

// app bundles the pieces every command needs: config, durable store, API
// client, and the two state managers.
type app struct {
	cfg     config.Config
	store   *bboltstorage.Store
	client  *client.Client
	session *session.Manager
	cart    *cart.Manager
}

func newApp() (*app, error) {
	cfg := config.Load()
	if apiURL != "" {
		cfg.APIBaseURL = apiURL
	}
	if dataDir != "" {
		cfg.DataDir = dataDir
	}

	if err := os.MkdirAll(cfg.DataDir, 0o700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}
	store, err := bboltstorage.NewStoreFromFile(filepath.Join(cfg.DataDir, "storefront.db"))
	if err != nil {
		return nil, fmt.Errorf("opening client storage: %w", err)
	}

	c, err := client.New(cfg.APIBaseURL)
	if err != nil {
		store.Close()
		return nil, err
	}

	return &app{
		cfg:     cfg,
		store:   store,
		client:  c,
		session: session.NewManager(c, store),
		cart:    cart.NewManager(store),
	}, nil
}

func (a *app) Close() {
	_ = a.store.Close()
}
