package mocks

import (
	"context"
	"sync"
)

// MockPreferenceStore is an in-memory PreferenceStore for testing
type MockPreferenceStore struct {
	mu     sync.RWMutex
	values map[string]string
	Writes int
}

// NewMockPreferenceStore creates a new mock preference store
func NewMockPreferenceStore() *MockPreferenceStore {
	return &MockPreferenceStore{values: make(map[string]string)}
}

// GetString returns the stored value or def
func (m *MockPreferenceStore) GetString(ctx context.Context, key string, def string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if v, ok := m.values[key]; ok {
		return v, nil
	}
	return def, nil
}

// SetString stores value under key
func (m *MockPreferenceStore) SetString(ctx context.Context, key string, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	m.Writes++
	return nil
}

// Value returns the raw stored value
func (m *MockPreferenceStore) Value(key string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	return v, ok
}
