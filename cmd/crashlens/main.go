// crashlens is the command line companion to crashlens-api: it loads a
// collision CSV export and runs queries, summaries, and option listings
// against it without a server.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"crashlens/internal/platform/logger"
	"crashlens/internal/platform/store"
)

var (
	// Global flags available to all subcommands
	dataPath string
	maxRows  int

	// snapshot loaded once per invocation
	snap *store.Snapshot
)

var rootCmd = &cobra.Command{
	Use:   "crashlens",
	Short: "Query and summarize traffic collision person-rows from a CSV export",
	Long: `crashlens loads a collision CSV export into memory and answers
faceted queries, free-text searches, and aggregate summaries over it.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadSnapshot(cmd.Context())
	},
}

// Execute is the entry point called by main.main()
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dataPath, "data", "", "path to the collision CSV export (or SERVICE_DATA_PATH)")
	rootCmd.PersistentFlags().IntVar(&maxRows, "max-rows", 0, "cap on data rows loaded from the CSV, 0 means unlimited")
}

func loadSnapshot(ctx context.Context) error {
	path := dataPath
	if path == "" {
		path = os.Getenv("SERVICE_DATA_PATH")
	}
	if path == "" {
		return fmt.Errorf("no dataset: pass --data or set SERVICE_DATA_PATH")
	}

	s, err := store.Open(ctx, store.Config{
		AppName: "crashlens",
		Data:    store.DataConfig{Path: path, MaxRows: maxRows},
	}, store.WithLogger(*logger.Get()))
	if err != nil {
		return err
	}
	snap = s
	return nil
}

func main() {
	// best effort; real env always wins over .env
	_ = godotenv.Load()
	Execute()
}
