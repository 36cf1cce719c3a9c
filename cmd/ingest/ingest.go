// Package ingest handles the CSV import commands
package ingest

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"jcarver/finpipe/cmd/root"
	"jcarver/finpipe/internal/ingest"
	"jcarver/finpipe/internal/logging"
	"jcarver/finpipe/internal/models"
	"jcarver/finpipe/internal/store"

	"github.com/spf13/cobra"
)

var dryRun bool

// Cmd represents the ingest command
var Cmd = &cobra.Command{
	Use:   "ingest",
	Short: "Import CSV exports into the raw transaction tables",
	Long: `Import Chase CSV exports into the raw layer. Without arguments both
configured data directories are scanned; re-importing a file is a no-op.`,
	RunE: ingestAll,
}

var bankCmd = &cobra.Command{
	Use:   "bank [files...]",
	Short: "Import bank account exports",
	RunE: func(cmd *cobra.Command, args []string) error {
		return ingestFiles(cmd, models.SourceBankAccount, args, root.Cfg.Data.BankAccountsDir)
	},
}

var cardCmd = &cobra.Command{
	Use:   "card [files...]",
	Short: "Import credit card exports",
	RunE: func(cmd *cobra.Command, args []string) error {
		return ingestFiles(cmd, models.SourceCreditCard, args, root.Cfg.Data.CreditCardsDir)
	},
}

func init() {
	Cmd.PersistentFlags().BoolVar(&dryRun, "dry-run", false, "Parse and validate without writing to the database")
	Cmd.AddCommand(bankCmd)
	Cmd.AddCommand(cardCmd)
}

func ingestAll(cmd *cobra.Command, args []string) error {
	if err := ingestFiles(cmd, models.SourceBankAccount, nil, root.Cfg.Data.BankAccountsDir); err != nil {
		return err
	}
	return ingestFiles(cmd, models.SourceCreditCard, nil, root.Cfg.Data.CreditCardsDir)
}

func ingestFiles(cmd *cobra.Command, source models.Source, args []string, dir string) error {
	files := args
	if len(files) == 0 {
		found, err := listCSVFiles(dir)
		if err != nil {
			return err
		}
		if len(found) == 0 {
			root.Log.Warn("no CSV files found", logging.Field{Key: "dir", Value: dir})
			return nil
		}
		files = found
	}

	tableStore, err := root.OpenStore()
	if err != nil {
		return err
	}
	defer closeStore(tableStore)

	importer := ingest.NewImporter(tableStore, root.Log)
	for _, file := range files {
		var result ingest.Result
		switch source {
		case models.SourceBankAccount:
			result, err = importer.ImportBankAccount(cmd.Context(), file, dryRun)
		case models.SourceCreditCard:
			result, err = importer.ImportCreditCard(cmd.Context(), file, dryRun)
		}
		if err != nil {
			return err
		}
		if result.DryRun {
			fmt.Printf("%s: %d rows parsed (dry run)\n", result.File, result.Read)
			continue
		}
		fmt.Printf("%s: %d rows read, %d inserted\n", result.File, result.Read, result.Inserted)
	}
	return nil
}

func listCSVFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read data directory %s: %w", dir, err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".csv") {
			continue
		}
		files = append(files, filepath.Join(dir, entry.Name()))
	}
	return files, nil
}

func closeStore(s store.TableStore) {
	if err := s.Close(); err != nil {
		root.Log.WithError(err).Warn("failed to close store")
	}
}
