package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// AppName is the directory name used under the user config directory.
const AppName = "claude-allow"

// ConfigFileName is the name of the claude-allow config file.
const ConfigFileName = "config.json"

// UserConfigDir returns the claude-allow directory inside the user config
// directory (XDG_CONFIG_HOME or ~/.config on Linux).
func UserConfigDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolving user config directory: %w", err)
	}
	return filepath.Join(base, AppName), nil
}

// UserConfigPath returns the path of the user-level config file.
func UserConfigPath() (string, error) {
	dir, err := UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, ConfigFileName), nil
}
