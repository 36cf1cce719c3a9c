// Package root contains the root command for the application
package root

import (
	"fmt"

	"jcarver/finpipe/internal/config"
	"jcarver/finpipe/internal/logging"
	"jcarver/finpipe/internal/store"
	"jcarver/finpipe/internal/taxonomy"

	"github.com/spf13/cobra"
)

var (
	// Log is the shared logger instance for commands
	Log logging.Logger = logging.NewNop()

	// Cfg is the loaded configuration, available after PersistentPreRunE
	Cfg *config.Config

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "finpipe",
		Short: "A personal finance pipeline: ingest bank exports, classify and aggregate.",
		Long: `finpipe ingests Chase CSV exports into a local SQLite database, runs a
layered transformation pipeline (raw -> staging -> marts) and serves spending,
savings and budget metrics over HTTP.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config.LoadEnv()

			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load configuration: %w", err)
			}
			Cfg = cfg
			Log = logging.NewLogrusAdapter(cfg.Log.Level, cfg.Log.Format)
			return nil
		},
		SilenceUsage: true,
	}
)

// OpenStore opens the configured SQLite database.
func OpenStore() (store.TableStore, error) {
	return store.NewSQLiteStore(Cfg.Database.Path, Log)
}

// LoadTaxonomy returns the configured taxonomy, falling back to the embedded
// default when no override path is set.
func LoadTaxonomy() (*taxonomy.Taxonomy, error) {
	if Cfg.Taxonomy.Path != "" {
		return taxonomy.LoadFile(Cfg.Taxonomy.Path)
	}
	return taxonomy.Default()
}
