package mocks

import (
	"context"
	"fmt"

	"github.com/kamal-hamza/tex2mat/internal/core/domain"
)

// MockMaterialFactory knows a fixed set of shaders
type MockMaterialFactory struct {
	shaders map[string]bool
	Calls   int
}

// NewMockMaterialFactory creates a factory that knows the given shaders
func NewMockMaterialFactory(shaders ...string) *MockMaterialFactory {
	f := &MockMaterialFactory{shaders: make(map[string]bool)}
	for _, s := range shaders {
		f.shaders[s] = true
	}
	return f
}

// NewMaterial returns a record bound to shader, or ErrConfiguration
func (f *MockMaterialFactory) NewMaterial(ctx context.Context, name string, shader string) (*domain.MaterialRecord, error) {
	f.Calls++
	if !f.shaders[shader] {
		return nil, fmt.Errorf("%w: shader %q not found", domain.ErrConfiguration, shader)
	}
	return domain.NewMaterialRecord(name, domain.Shader{Name: shader}), nil
}
