// Package config provides configuration loading functionality.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/tcrtodo/tcrtodo/internal/domain"
)

// Ensure Loader implements domain.ConfigLoader.
var _ domain.ConfigLoader = (*Loader)(nil)

// Loader loads configuration from TOML files.
type Loader struct {
	workDir       string // Directory holding the repo-local config file
	globalConfDir string // Global config directory (e.g., ~/.config/tcrtodo)
}

// NewLoader creates a new Loader rooted at the given working directory.
func NewLoader(workDir string) *Loader {
	return &Loader{
		workDir:       workDir,
		globalConfDir: defaultGlobalConfigDir(),
	}
}

// NewLoaderWithGlobalDir creates a Loader with a custom global config
// directory. This is useful for testing.
func NewLoaderWithGlobalDir(workDir, globalConfDir string) *Loader {
	return &Loader{
		workDir:       workDir,
		globalConfDir: globalConfDir,
	}
}

// defaultGlobalConfigDir returns the default global config directory.
func defaultGlobalConfigDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "tcrtodo")
}

// Load returns the merged configuration.
// Precedence: defaults < global config < repo config.
func (l *Loader) Load() (*domain.Config, error) {
	cfg := domain.NewDefaultConfig()

	if l.globalConfDir != "" {
		globalPath := filepath.Join(l.globalConfDir, domain.GlobalConfigFileName)
		if err := mergeFile(globalPath, cfg); err != nil {
			return nil, err
		}
	}

	repoPath := filepath.Join(l.workDir, domain.ConfigFileName)
	if err := mergeFile(repoPath, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// mergeFile unmarshals the file over cfg. Keys absent from the file leave
// the existing values in place. A missing file is not an error.
func mergeFile(path string, cfg *domain.Config) error {
	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read config file %s: %w", path, err)
	}
	if err := toml.Unmarshal(content, cfg); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}
