package ingest

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"jcarver/finpipe/internal/logging"
	"jcarver/finpipe/internal/models"
	"jcarver/finpipe/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const bankCSV = `Details,Posting Date,Description,Amount,Type,Balance,Check or Slip #
DEBIT,03/15/2024,NEW SEASONS MARKET,-42.50,DEBIT_CARD,1000.00,
CREDIT,03/14/2024,CLEARCOVER INC PAYROLL,2500.00,ACH_CREDIT,1042.50,
DEBIT,03/13/2024,,-10.00,DEBIT_CARD,958.00,
`

const cardCSV = `Transaction Date,Post Date,Description,Category,Type,Amount,Memo
03/15/2024,03/16/2024,SQ *OVATION COFFEE 123,Food & Drink,Sale,-6.75,
03/14/2024,03/15/2024,LYFT *RIDE,Travel,Sale,-18.20,
`

func writeTempCSV(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestImportBankAccount(t *testing.T) {
	memStore := store.NewMemoryStore()
	importer := NewImporter(memStore, logging.NewNop())
	path := writeTempCSV(t, "Chase1234_Activity.CSV", bankCSV)

	result, err := importer.ImportBankAccount(context.Background(), path, false)
	require.NoError(t, err)
	assert.Equal(t, 3, result.Read)
	assert.Equal(t, 3, result.Inserted)

	rows, err := memStore.ReadTable(context.Background(), store.RawBankAccountTransactions)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	byDescription := make(map[string]models.Transaction, len(rows))
	for _, tx := range rows {
		assert.NotEmpty(t, tx.ID)
		assert.Equal(t, "Chase1234", tx.AccountOrCard)
		assert.Equal(t, models.SourceBankAccount, tx.Source)
		byDescription[tx.Description] = tx
	}

	groceries := byDescription["NEW SEASONS MARKET"]
	assert.Equal(t, "-42.5", groceries.Amount.String())
	assert.Equal(t, "2024-03", groceries.YearMonth)
	assert.Equal(t, 5, groceries.DayOfWeek, "2024-03-15 was a Friday")

	_, hasPlaceholder := byDescription["No description"]
	assert.True(t, hasPlaceholder, "empty descriptions get a placeholder")
}

func TestImportCreditCard(t *testing.T) {
	memStore := store.NewMemoryStore()
	importer := NewImporter(memStore, logging.NewNop())
	path := writeTempCSV(t, "Chase5678_Activity.CSV", cardCSV)

	result, err := importer.ImportCreditCard(context.Background(), path, false)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Read)
	assert.Equal(t, 2, result.Inserted)

	rows, err := memStore.ReadTable(context.Background(), store.RawCreditCardTransactions)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	for _, tx := range rows {
		assert.Equal(t, models.SourceCreditCard, tx.Source)
	}
	assert.Equal(t, "Food & Drink", rows[0].SourceCategory,
		"the card network category survives ingestion untouched")
}

// Importing the same file twice inserts nothing the second time.
func TestImportIsIdempotent(t *testing.T) {
	memStore := store.NewMemoryStore()
	importer := NewImporter(memStore, logging.NewNop())
	path := writeTempCSV(t, "Chase1234_Activity.CSV", bankCSV)

	first, err := importer.ImportBankAccount(context.Background(), path, false)
	require.NoError(t, err)
	assert.Equal(t, 3, first.Inserted)

	second, err := importer.ImportBankAccount(context.Background(), path, false)
	require.NoError(t, err)
	assert.Equal(t, 3, second.Read)
	assert.Equal(t, 0, second.Inserted)

	rows, err := memStore.ReadTable(context.Background(), store.RawBankAccountTransactions)
	require.NoError(t, err)
	assert.Len(t, rows, 3)
}

func TestImportDryRunWritesNothing(t *testing.T) {
	memStore := store.NewMemoryStore()
	importer := NewImporter(memStore, logging.NewNop())
	path := writeTempCSV(t, "Chase1234_Activity.CSV", bankCSV)

	result, err := importer.ImportBankAccount(context.Background(), path, true)
	require.NoError(t, err)
	assert.True(t, result.DryRun)
	assert.Equal(t, 3, result.Read)
	assert.Equal(t, 0, result.Inserted)
	assert.Len(t, result.Rows, 3, "dry runs surface the parsed rows as a preview")

	rows, err := memStore.ReadTable(context.Background(), store.RawBankAccountTransactions)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestImportRejectsMalformedRows(t *testing.T) {
	memStore := store.NewMemoryStore()
	importer := NewImporter(memStore, logging.NewNop())

	badDate := `Details,Posting Date,Description,Amount,Type,Balance,Check or Slip #
DEBIT,someday,BAD ROW,-1.00,DEBIT_CARD,0,
`
	path := writeTempCSV(t, "Chase1234_bad.CSV", badDate)
	_, err := importer.ImportBankAccount(context.Background(), path, false)
	assert.ErrorContains(t, err, "unparseable date")

	badAmount := `Transaction Date,Post Date,Description,Category,Type,Amount,Memo
03/15/2024,03/16/2024,BAD ROW,Shopping,Sale,not-money,
`
	path = writeTempCSV(t, "Chase5678_bad.CSV", badAmount)
	_, err = importer.ImportCreditCard(context.Background(), path, false)
	assert.ErrorContains(t, err, "unparseable amount")
}

func TestImportMissingFile(t *testing.T) {
	importer := NewImporter(store.NewMemoryStore(), logging.NewNop())
	_, err := importer.ImportBankAccount(context.Background(), filepath.Join(t.TempDir(), "nope.csv"), false)
	assert.Error(t, err)
}
