// Package config loads storefront settings from the environment, with a
// .env file as the optional source of defaults.
package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

// Config carries everything the CLI and the serve command need.
type Config struct {
	// APIBaseURL is the root of the remote retailer API, including the
	// /api prefix.
	APIBaseURL string
	// DataDir holds the durable client state (token, cart).
	DataDir string
	// ListenAddr is where the local web UI listens.
	ListenAddr string
	// PageLimit is the default catalog page size.
	PageLimit int
}

// Load reads the configuration. A .env in the working directory is applied
// first; real environment variables win over it.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		APIBaseURL: get("LICORERA_API_URL", "http://localhost:5000/api"),
		DataDir:    get("LICORERA_DATA_DIR", defaultDataDir()),
		ListenAddr: get("LICORERA_LISTEN_ADDR", "127.0.0.1:7600"),
		PageLimit:  getInt("LICORERA_PAGE_LIMIT", 12),
	}
}

func defaultDataDir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return "./data"
	}
	return filepath.Join(base, "lalicorera")
}

func get(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getInt(k string, def int) int {
	if v := os.Getenv(k); v != "" {
		n, err := strconv.Atoi(v)
		if err == nil {
			return n
		}
	}
	return def
}
