package config

import (
	"path/filepath"
)

// DefaultHomeDir returns the default application home directory.
func DefaultHomeDir() string {
	return getDefaultHomeDir()
}

// DefaultConfigPath returns the default config file path under homeDir.
func DefaultConfigPath(homeDir string) string {
	return filepath.Join(homeDir, "config.yaml")
}
