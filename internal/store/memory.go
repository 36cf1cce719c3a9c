package store

import (
	"context"
	"sync"

	"jcarver/finpipe/internal/models"
)

// MemoryStore is an in-memory TableStore used by tests and dry runs.
type MemoryStore struct {
	mu     sync.RWMutex
	tables map[string][]models.Transaction
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{tables: make(map[string][]models.Transaction)}
}

func (m *MemoryStore) ReplaceTable(_ context.Context, name string, rows []models.Transaction) error {
	if err := checkTableName(name); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tables[name] = append([]models.Transaction(nil), rows...)
	return nil
}

func (m *MemoryStore) ReadTable(_ context.Context, name string) ([]models.Transaction, error) {
	if err := checkTableName(name); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]models.Transaction{}, m.tables[name]...), nil
}

func (m *MemoryStore) UpsertTransactions(_ context.Context, name string, rows []models.Transaction) (int, error) {
	if err := checkTableName(name); err != nil {
		return 0, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	existing := make(map[string]bool, len(m.tables[name]))
	for _, row := range m.tables[name] {
		existing[row.ID] = true
	}

	inserted := 0
	for _, row := range rows {
		if existing[row.ID] {
			continue
		}
		m.tables[name] = append(m.tables[name], row)
		existing[row.ID] = true
		inserted++
	}
	return inserted, nil
}

func (m *MemoryStore) Close() error { return nil }
