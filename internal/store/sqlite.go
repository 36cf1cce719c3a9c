package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"jcarver/finpipe/internal/logging"
	"jcarver/finpipe/internal/models"

	"github.com/shopspring/decimal"
	_ "modernc.org/sqlite"
)

const dateLayout = "2006-01-02"

// Table names are interpolated into DDL, so they are restricted to plain
// identifiers.
var validTableName = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

// SQLiteStore persists pipeline tables in a single SQLite database. Every
// table shares one wide transaction schema; fields that do not apply to a
// given layer are simply empty.
type SQLiteStore struct {
	db     *sql.DB
	logger logging.Logger
}

// NewSQLiteStore opens (creating if needed) the database at path.
func NewSQLiteStore(path string, logger logging.Logger) (*SQLiteStore, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create db directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return &SQLiteStore{db: db, logger: logger}, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

const tableColumns = `
	id TEXT PRIMARY KEY,
	date TEXT NOT NULL,
	year INTEGER NOT NULL,
	month INTEGER NOT NULL,
	year_month TEXT NOT NULL,
	day_of_week INTEGER NOT NULL,
	amount TEXT NOT NULL,
	description TEXT NOT NULL,
	source_category TEXT NOT NULL DEFAULT '',
	category TEXT NOT NULL DEFAULT '',
	meta_category TEXT NOT NULL DEFAULT '',
	account_or_card_number TEXT NOT NULL DEFAULT '',
	source TEXT NOT NULL DEFAULT ''`

const insertColumns = `(id, date, year, month, year_month, day_of_week, amount, description,
	source_category, category, meta_category, account_or_card_number, source)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

// ReplaceTable rebuilds the named table inside one transaction, so readers
// never observe a partially written table.
func (s *SQLiteStore) ReplaceTable(ctx context.Context, name string, rows []models.Transaction) error {
	if err := checkTableName(name); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin replace of %s: %w", name, err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, fmt.Sprintf("DROP TABLE IF EXISTS %s", name)); err != nil {
		return fmt.Errorf("drop %s: %w", name, err)
	}
	if _, err := tx.ExecContext(ctx, fmt.Sprintf("CREATE TABLE %s (%s)", name, tableColumns)); err != nil {
		return fmt.Errorf("create %s: %w", name, err)
	}

	stmt, err := tx.PrepareContext(ctx, fmt.Sprintf("INSERT INTO %s %s", name, insertColumns))
	if err != nil {
		return fmt.Errorf("prepare insert into %s: %w", name, err)
	}
	defer func() { _ = stmt.Close() }()

	for _, row := range rows {
		if _, err := stmt.ExecContext(ctx, insertArgs(row)...); err != nil {
			return fmt.Errorf("insert into %s: %w", name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit replace of %s: %w", name, err)
	}

	s.logger.Info("replaced table",
		logging.Field{Key: "table", Value: name},
		logging.Field{Key: "rows", Value: len(rows)},
	)
	return nil
}

// UpsertTransactions appends rows whose content-hash id is new, making
// repeated ingestion of the same source file a no-op.
func (s *SQLiteStore) UpsertTransactions(ctx context.Context, name string, rows []models.Transaction) (int, error) {
	if err := checkTableName(name); err != nil {
		return 0, err
	}

	if _, err := s.db.ExecContext(ctx, fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (%s)", name, tableColumns)); err != nil {
		return 0, fmt.Errorf("create %s: %w", name, err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin upsert into %s: %w", name, err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, fmt.Sprintf("INSERT OR IGNORE INTO %s %s", name, insertColumns))
	if err != nil {
		return 0, fmt.Errorf("prepare upsert into %s: %w", name, err)
	}
	defer func() { _ = stmt.Close() }()

	inserted := 0
	for _, row := range rows {
		res, err := stmt.ExecContext(ctx, insertArgs(row)...)
		if err != nil {
			return 0, fmt.Errorf("upsert into %s: %w", name, err)
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return 0, fmt.Errorf("rows affected for %s: %w", name, err)
		}
		inserted += int(affected)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit upsert into %s: %w", name, err)
	}
	return inserted, nil
}

// ReadTable loads every row of the named table. A table that has never been
// written reads as empty.
func (s *SQLiteStore) ReadTable(ctx context.Context, name string) ([]models.Transaction, error) {
	if err := checkTableName(name); err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`SELECT id, date, year, month, year_month, day_of_week, amount,
		description, source_category, category, meta_category, account_or_card_number, source
		FROM %s`, name)

	dbRows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		if isNoSuchTable(err) {
			return []models.Transaction{}, nil
		}
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	defer func() { _ = dbRows.Close() }()

	var rows []models.Transaction
	for dbRows.Next() {
		var (
			tx           models.Transaction
			date, amount string
			category     string
			meta         string
			source       string
		)
		if err := dbRows.Scan(&tx.ID, &date, &tx.Year, &tx.Month, &tx.YearMonth, &tx.DayOfWeek,
			&amount, &tx.Description, &tx.SourceCategory, &category, &meta, &tx.AccountOrCard, &source); err != nil {
			return nil, fmt.Errorf("scan row from %s: %w", name, err)
		}

		tx.Date, err = time.Parse(dateLayout, date)
		if err != nil {
			return nil, fmt.Errorf("parse date %q in %s: %w", date, name, err)
		}
		tx.Amount, err = decimal.NewFromString(amount)
		if err != nil {
			return nil, fmt.Errorf("parse amount %q in %s: %w", amount, name, err)
		}
		tx.Category = models.Category(category)
		tx.MetaCategory = models.MetaCategory(meta)
		tx.Source = models.Source(source)
		rows = append(rows, tx)
	}
	if err := dbRows.Err(); err != nil {
		return nil, fmt.Errorf("iterate %s: %w", name, err)
	}
	if rows == nil {
		rows = []models.Transaction{}
	}
	return rows, nil
}

func insertArgs(tx models.Transaction) []any {
	return []any{
		tx.ID,
		tx.Date.Format(dateLayout),
		tx.Year,
		tx.Month,
		tx.YearMonth,
		tx.DayOfWeek,
		tx.Amount.String(),
		tx.Description,
		tx.SourceCategory,
		string(tx.Category),
		string(tx.MetaCategory),
		tx.AccountOrCard,
		string(tx.Source),
	}
}

func checkTableName(name string) error {
	if !validTableName.MatchString(name) {
		return fmt.Errorf("invalid table name %q", name)
	}
	return nil
}

func isNoSuchTable(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, sql.ErrNoRows) || strings.Contains(err.Error(), "no such table")
}
