package appdirs

import (
	"fmt"
	"os"
	"path/filepath"
)

const appName = "tex2mat"

// Dirs holds the per-user locations tex2mat reads and writes
type Dirs struct {
	ConfigDir string
	StateDir  string
}

// New resolves XDG-compliant directories, using AppData on Windows
func New() (*Dirs, error) {
	configDir, err := getConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to determine config directory: %w", err)
	}
	stateDir, err := getStateDir()
	if err != nil {
		return nil, fmt.Errorf("failed to determine state directory: %w", err)
	}

	return &Dirs{
		ConfigDir: configDir,
		StateDir:  stateDir,
	}, nil
}

func getConfigDir() (string, error) {
	// Check XDG_CONFIG_HOME first (Unix-like systems)
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName), nil
	}

	// Check if we're on Windows by looking for APPDATA
	if appData := os.Getenv("APPDATA"); appData != "" {
		return filepath.Join(appData, appName), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	// Fall back to ~/.config/tex2mat
	return filepath.Join(homeDir, ".config", appName), nil
}

func getStateDir() (string, error) {
	if stateHome := os.Getenv("XDG_STATE_HOME"); stateHome != "" {
		return filepath.Join(stateHome, appName), nil
	}

	if appData := os.Getenv("APPDATA"); appData != "" {
		return filepath.Join(appData, appName, "state"), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	// Fall back to ~/.local/state/tex2mat
	return filepath.Join(homeDir, ".local", "state", appName), nil
}

// ConfigPath returns the path of config.yaml
func (d *Dirs) ConfigPath() string {
	return filepath.Join(d.ConfigDir, "config.yaml")
}

// ShaderCatalogPath returns the default shader catalog location
func (d *Dirs) ShaderCatalogPath() string {
	return filepath.Join(d.ConfigDir, "shaders.toml")
}

// PreferencesPath returns where the last-used paths are stored
func (d *Dirs) PreferencesPath() string {
	return filepath.Join(d.StateDir, "preferences.yaml")
}
