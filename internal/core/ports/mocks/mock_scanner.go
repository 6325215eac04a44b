package mocks

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"github.com/kamal-hamza/tex2mat/internal/core/domain"
)

// MockScanner is an in-memory DirectoryScanner for testing
type MockScanner struct {
	mu    sync.RWMutex
	dirs  map[string]bool
	files map[string][]string
}

// NewMockScanner creates a new mock scanner
func NewMockScanner() *MockScanner {
	return &MockScanner{
		dirs:  make(map[string]bool),
		files: make(map[string][]string),
	}
}

// AddDir registers an (empty) directory
func (m *MockScanner) AddDir(dir string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.dirs[dir] = true
}

// AddFiles registers files under dir, in the order given
func (m *MockScanner) AddFiles(dir string, names ...string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.dirs[dir] = true
	for _, name := range names {
		m.files[dir] = append(m.files[dir], filepath.Join(dir, name))
	}
}

// Scan returns the registered files of root matching ext, in insertion order
func (m *MockScanner) Scan(ctx context.Context, root string, ext string) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if !m.dirs[root] {
		return nil, fmt.Errorf("%w: %s", domain.ErrNotFound, root)
	}

	var out []string
	for _, f := range m.files[root] {
		if strings.EqualFold(filepath.Ext(f), ext) {
			out = append(out, f)
		}
	}
	return out, nil
}
