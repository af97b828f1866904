package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// Version is stamped at build time.
var Version = "dev"

var (
	apiURL  string
	dataDir string
)

var rootCmd = &cobra.Command{
	Use:   "licorera",
	Short: "licorera is the La Licorera storefront client",
	Long: `Terminal and local-web client for the La Licorera online liquor store.
Browse the catalog, keep a persistent shopping cart, and manage your session
against the remote store API.`,
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&apiURL, "api", "", "Base URL of the store API (overrides LICORERA_API_URL)")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "Directory for persistent client state")
}
