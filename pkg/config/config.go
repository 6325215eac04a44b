package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

type Config struct {
	// Conversion
	TextureExtension  string `yaml:"texture_extension"`
	MaterialExtension string `yaml:"material_extension"`
	Shader            string `yaml:"shader"`
	ShaderCatalog     string `yaml:"shader_catalog"`

	// Policy for ambiguous inputs. Both off reproduces the editor window:
	// unmatched files are skipped and later files replace earlier ones.
	StrictUnmatched  bool `yaml:"strict_unmatched"`
	StrictDuplicates bool `yaml:"strict_duplicates"`

	// UI Settings
	LogLevel   string `yaml:"log_level"`
	ColorTheme string `yaml:"color_theme"`
	Editor     string `yaml:"editor"`

	// Watch
	WatchDebounceMS int `yaml:"watch_debounce_ms"`
}

// DefaultConfig returns a Config struct with default values
func DefaultConfig() *Config {
	return &Config{
		TextureExtension:  ".png",
		MaterialExtension: ".mat",
		Shader:            "Standard",
		ShaderCatalog:     "",
		StrictUnmatched:   false,
		StrictDuplicates:  false,
		LogLevel:          "info",
		ColorTheme:        "auto",
		Editor:            "",
		WatchDebounceMS:   500,
	}
}

// Load reads configuration from the specified file path
func Load(path string) (*Config, error) {
	// Start with default config
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		// If file doesn't exist, return default config (not an error)
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Apply defaults for essential values if missing
	cfg.TextureExtension = normalizeExt(cfg.TextureExtension, ".png")
	cfg.MaterialExtension = normalizeExt(cfg.MaterialExtension, ".mat")
	if strings.TrimSpace(cfg.Shader) == "" {
		cfg.Shader = "Standard"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.WatchDebounceMS <= 0 {
		cfg.WatchDebounceMS = 500
	}

	if !isValidTheme(cfg.ColorTheme) {
		cfg.ColorTheme = "auto"
	}

	return cfg, nil
}

// Save persists the current configuration to the specified file path
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// normalizeExt trims ext and ensures a leading dot, substituting def when blank
func normalizeExt(ext, def string) string {
	ext = strings.TrimSpace(ext)
	if ext == "" {
		return def
	}
	if !strings.HasPrefix(ext, ".") {
		return "." + ext
	}
	return ext
}

// isValidTheme checks if the color theme is one ui.SetTheme understands
func isValidTheme(theme string) bool {
	validThemes := []string{"auto", "dark", "light"}
	for _, valid := range validThemes {
		if theme == valid {
			return true
		}
	}
	return false
}
