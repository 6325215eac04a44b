package ports

import (
	"context"

	"github.com/kamal-hamza/tex2mat/internal/core/domain"
)

// DirectoryScanner defines the port for enumerating texture files
type DirectoryScanner interface {
	// Scan recursively lists files under root whose extension matches ext.
	// Returns domain.ErrNotFound when root does not exist.
	Scan(ctx context.Context, root string, ext string) ([]string, error)
}

// AssetStore defines the port for loading images and persisting materials
type AssetStore interface {
	// LoadImage resolves an image asset by path
	LoadImage(ctx context.Context, path string) (domain.ImageAsset, error)

	// FolderExists reports whether path is an existing directory
	FolderExists(ctx context.Context, path string) bool

	// SaveMaterial creates the material asset at path
	SaveMaterial(ctx context.Context, path string, material *domain.MaterialRecord) error
}

// MaterialFactory defines the port for instantiating materials against a shader
type MaterialFactory interface {
	// NewMaterial returns an empty record bound to the named shader.
	// Returns domain.ErrConfiguration when the shader is unknown.
	NewMaterial(ctx context.Context, name string, shader string) (*domain.MaterialRecord, error)
}

// PreferenceStore defines the port for persisted string preferences
type PreferenceStore interface {
	// GetString returns the stored value for key, or def when nothing is stored
	GetString(ctx context.Context, key string, def string) (string, error)

	// SetString stores value under key
	SetString(ctx context.Context, key string, value string) error
}
