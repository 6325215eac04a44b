package repository

import (
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// MetaExt is the sidecar extension carrying an asset's GUID
const MetaExt = ".meta"

// MetaFile is the sidecar written next to every asset
type MetaFile struct {
	FileFormatVersion int    `yaml:"fileFormatVersion"`
	GUID              string `yaml:"guid"`
}

// NewGUID returns a fresh 32-character hex GUID
func NewGUID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

// ReadMeta reads the sidecar of assetPath. A missing sidecar returns (nil, nil).
func ReadMeta(assetPath string) (*MetaFile, error) {
	data, err := os.ReadFile(assetPath + MetaExt)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read meta file: %w", err)
	}

	var meta MetaFile
	if err := yaml.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("failed to parse meta file %s: %w", assetPath+MetaExt, err)
	}
	return &meta, nil
}

// WriteMeta writes the sidecar of assetPath
func WriteMeta(assetPath string, meta *MetaFile) error {
	if meta.FileFormatVersion == 0 {
		meta.FileFormatVersion = 2
	}
	data, err := yaml.Marshal(meta)
	if err != nil {
		return fmt.Errorf("failed to marshal meta file: %w", err)
	}
	return os.WriteFile(assetPath+MetaExt, data, 0644)
}
