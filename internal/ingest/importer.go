package ingest

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"jcarver/finpipe/internal/logging"
	"jcarver/finpipe/internal/models"
	"jcarver/finpipe/internal/normalize"
	"jcarver/finpipe/internal/store"

	"github.com/gocarina/gocsv"
)

// bankAccountRow maps the columns of a Chase bank account export.
type bankAccountRow struct {
	Details     string `csv:"Details"`
	PostingDate string `csv:"Posting Date"`
	Description string `csv:"Description"`
	Amount      string `csv:"Amount"`
	Type        string `csv:"Type"`
	Balance     string `csv:"Balance"`
	CheckNumber string `csv:"Check or Slip #"`
}

// creditCardRow maps the columns of a Chase credit card export. Category is
// the card network's coarse label, kept for the classifier refinement pass.
type creditCardRow struct {
	TransactionDate string `csv:"Transaction Date"`
	PostDate        string `csv:"Post Date"`
	Description     string `csv:"Description"`
	Category        string `csv:"Category"`
	Type            string `csv:"Type"`
	Amount          string `csv:"Amount"`
	Memo            string `csv:"Memo"`
}

// Result summarizes one file import.
type Result struct {
	File     string
	Read     int
	Inserted int
	DryRun   bool

	// Rows holds the parsed transactions; dry runs surface these as the
	// preview instead of writing anything.
	Rows []models.Transaction
}

// Importer loads CSV exports into the raw tables.
type Importer struct {
	store  store.TableStore
	logger logging.Logger
}

// NewImporter wires an importer against the given store.
func NewImporter(tableStore store.TableStore, logger logging.Logger) *Importer {
	return &Importer{store: tableStore, logger: logger}
}

// ImportBankAccount ingests a bank account export. With dryRun set the file
// is parsed and validated but nothing is written.
func (imp *Importer) ImportBankAccount(ctx context.Context, path string, dryRun bool) (Result, error) {
	csvRows, err := readCSV[bankAccountRow](path)
	if err != nil {
		return Result{}, err
	}

	account := extractAccountNumber(filepath.Base(path))
	rows := make([]models.Transaction, 0, len(csvRows))
	for _, row := range csvRows {
		tx, err := buildTransaction(row.PostingDate, row.Amount, row.Description, "", account, models.SourceBankAccount)
		if err != nil {
			return Result{}, fmt.Errorf("%s: %w", filepath.Base(path), err)
		}
		rows = append(rows, tx)
	}

	return imp.finish(ctx, store.RawBankAccountTransactions, path, rows, dryRun)
}

// ImportCreditCard ingests a credit card export.
func (imp *Importer) ImportCreditCard(ctx context.Context, path string, dryRun bool) (Result, error) {
	csvRows, err := readCSV[creditCardRow](path)
	if err != nil {
		return Result{}, err
	}

	card := extractAccountNumber(filepath.Base(path))
	rows := make([]models.Transaction, 0, len(csvRows))
	for _, row := range csvRows {
		tx, err := buildTransaction(row.TransactionDate, row.Amount, row.Description, row.Category, card, models.SourceCreditCard)
		if err != nil {
			return Result{}, fmt.Errorf("%s: %w", filepath.Base(path), err)
		}
		rows = append(rows, tx)
	}

	return imp.finish(ctx, store.RawCreditCardTransactions, path, rows, dryRun)
}

// buildTransaction validates one raw row and derives its id and calendar
// fields. A malformed date or amount is a hard error; the pipeline does not
// guess at money.
func buildTransaction(rawDate, rawAmount, description, sourceCategory, accountOrCard string, source models.Source) (models.Transaction, error) {
	date, err := parseDate(rawDate)
	if err != nil {
		return models.Transaction{}, err
	}
	amount, err := parseAmount(rawAmount)
	if err != nil {
		return models.Transaction{}, err
	}

	if description == "" {
		description = "No description"
	}

	cal := normalize.CalendarFields(date)
	return models.Transaction{
		ID:             models.TransactionID(date, amount, description),
		Date:           date,
		Year:           cal.Year,
		Month:          cal.Month,
		YearMonth:      cal.YearMonth,
		DayOfWeek:      cal.DayOfWeek,
		Amount:         amount,
		Description:    description,
		SourceCategory: sourceCategory,
		AccountOrCard:  accountOrCard,
		Source:         source,
	}, nil
}

func (imp *Importer) finish(ctx context.Context, table, path string, rows []models.Transaction, dryRun bool) (Result, error) {
	result := Result{
		File:   filepath.Base(path),
		Read:   len(rows),
		DryRun: dryRun,
		Rows:   rows,
	}

	if dryRun {
		imp.logger.Info("dry run, nothing written",
			logging.Field{Key: "file", Value: result.File},
			logging.Field{Key: "rows", Value: result.Read},
		)
		return result, nil
	}

	inserted, err := imp.store.UpsertTransactions(ctx, table, rows)
	if err != nil {
		return Result{}, fmt.Errorf("upsert into %s: %w", table, err)
	}
	result.Inserted = inserted

	imp.logger.Info("imported transactions",
		logging.Field{Key: "file", Value: result.File},
		logging.Field{Key: "table", Value: table},
		logging.Field{Key: "read", Value: result.Read},
		logging.Field{Key: "inserted", Value: result.Inserted},
	)
	return result, nil
}

func readCSV[T any](path string) ([]T, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open CSV file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var rows []T
	if err := gocsv.UnmarshalFile(file, &rows); err != nil {
		return nil, fmt.Errorf("parse CSV file %s: %w", filepath.Base(path), err)
	}
	return rows, nil
}
