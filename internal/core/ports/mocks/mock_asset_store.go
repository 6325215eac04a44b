package mocks

import (
	"context"
	"fmt"
	"sync"

	"github.com/kamal-hamza/tex2mat/internal/core/domain"
)

// MockAssetStore is an in-memory AssetStore for testing
type MockAssetStore struct {
	mu        sync.RWMutex
	folders   map[string]bool
	materials map[string]*domain.MaterialRecord
	order     []string
	guids     map[string]string

	// FailOn makes SaveMaterial fail for the given output path
	FailOn string
}

// NewMockAssetStore creates a new mock asset store
func NewMockAssetStore() *MockAssetStore {
	return &MockAssetStore{
		folders:   make(map[string]bool),
		materials: make(map[string]*domain.MaterialRecord),
		guids:     make(map[string]string),
	}
}

// AddFolder registers an existing output folder
func (m *MockAssetStore) AddFolder(path string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.folders[path] = true
}

// SetGUID assigns the GUID returned when path is loaded
func (m *MockAssetStore) SetGUID(path, guid string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.guids[path] = guid
}

// LoadImage returns an asset for path
func (m *MockAssetStore) LoadImage(ctx context.Context, path string) (domain.ImageAsset, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return domain.ImageAsset{Path: path, GUID: m.guids[path]}, nil
}

// FolderExists reports whether path was registered
func (m *MockAssetStore) FolderExists(ctx context.Context, path string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.folders[path]
}

// SaveMaterial stores the material in memory
func (m *MockAssetStore) SaveMaterial(ctx context.Context, path string, material *domain.MaterialRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.FailOn != "" && path == m.FailOn {
		return fmt.Errorf("failed to write %s", path)
	}
	if _, ok := m.materials[path]; !ok {
		m.order = append(m.order, path)
	}
	m.materials[path] = material
	return nil
}

// Material returns the material saved at path
func (m *MockAssetStore) Material(path string) (*domain.MaterialRecord, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	mat, ok := m.materials[path]
	return mat, ok
}

// Saved returns the saved paths in write order
func (m *MockAssetStore) Saved() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]string, len(m.order))
	copy(out, m.order)
	return out
}
