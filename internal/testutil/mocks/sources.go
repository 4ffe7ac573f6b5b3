package mocks

import (
	"context"
	"sync"

	"github.com/voltzpay/pix-dashboard/internal/domain/models"
)

// MockTransactionSource is an in-memory TransactionSource for testing.
// Safe for concurrent use so refresher tests can poll it.
type MockTransactionSource struct {
	Transactions []models.Transaction
	Err          error

	mu         sync.Mutex
	fetchCount int
}

// FetchTransactions returns the configured transactions or error
func (m *MockTransactionSource) FetchTransactions(ctx context.Context) ([]models.Transaction, error) {
	m.mu.Lock()
	m.fetchCount++
	m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Transactions, nil
}

// Fetches reports how many times FetchTransactions was called
func (m *MockTransactionSource) Fetches() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.fetchCount
}

// MockSettingsStore is an in-memory SettingsStore for testing
type MockSettingsStore struct {
	Settings map[string]string
	GetErr   error
	SetErr   error
	SetCalls map[string]string
}

// NewMockSettingsStore creates a settings store seeded with values
func NewMockSettingsStore(settings map[string]string) *MockSettingsStore {
	if settings == nil {
		settings = make(map[string]string)
	}
	return &MockSettingsStore{
		Settings: settings,
		SetCalls: make(map[string]string),
	}
}

// GetAll returns the configured settings or error
func (m *MockSettingsStore) GetAll(ctx context.Context) (map[string]string, error) {
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	return m.Settings, nil
}

// Set records the write and applies it to the in-memory map
func (m *MockSettingsStore) Set(ctx context.Context, key, value string) error {
	if m.SetErr != nil {
		return m.SetErr
	}
	m.SetCalls[key] = value
	m.Settings[key] = value
	return nil
}
