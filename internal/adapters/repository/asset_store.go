package repository

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/kamal-hamza/tex2mat/internal/core/domain"
	"github.com/kamal-hamza/tex2mat/internal/core/ports"
)

// FileAssetStore keeps assets as plain files with .meta sidecars
type FileAssetStore struct {
	mu sync.Mutex
}

func NewFileAssetStore() *FileAssetStore {
	return &FileAssetStore{}
}

// Ensure it implements the interface
var _ ports.AssetStore = (*FileAssetStore)(nil)

// LoadImage returns a reference to the image at path, with the GUID from its sidecar if any
func (s *FileAssetStore) LoadImage(ctx context.Context, path string) (domain.ImageAsset, error) {
	if _, err := os.Stat(path); err != nil {
		return domain.ImageAsset{}, fmt.Errorf("failed to load image: %w", err)
	}

	asset := domain.ImageAsset{Path: path}
	meta, err := ReadMeta(path)
	if err != nil {
		return asset, err
	}
	if meta != nil {
		asset.GUID = meta.GUID
	}
	return asset, nil
}

// FolderExists reports whether path is an existing directory
func (s *FileAssetStore) FolderExists(ctx context.Context, path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// SaveMaterial writes the material to path and its sidecar next to it.
// An existing sidecar keeps its GUID so references to the material survive a rerun;
// an unreadable sidecar fails the save before anything is written.
func (s *FileAssetStore) SaveMaterial(ctx context.Context, path string, material *domain.MaterialRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	meta, err := ReadMeta(path)
	if err != nil {
		return fmt.Errorf("failed to save material %s: %w", path, err)
	}
	writeMeta := meta == nil || meta.GUID == ""
	if writeMeta {
		meta = &MetaFile{GUID: NewGUID()}
	}

	data, err := FormatMaterial(material)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write material: %w", err)
	}

	if writeMeta {
		if err := WriteMeta(path, meta); err != nil {
			return fmt.Errorf("failed to write material meta: %w", err)
		}
	}

	return nil
}
