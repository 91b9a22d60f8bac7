// Package config loads claude-allow's own configuration.
//
// Sources, lowest to highest priority:
//  1. Built-in defaults
//  2. User config (~/.config/claude-allow/config.json)
//  3. Config file given with --config
//  4. Environment variables (CLAUDE_ALLOW_*)
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix of environment variables read by Load.
const EnvPrefix = "CLAUDE_ALLOW_"

// Configuration represents the claude-allow CLI tool configuration
type Configuration struct {
	SettingsPath      string `koanf:"settings_path" validate:"required"`
	MinColumnWidth    int    `koanf:"min_column_width" validate:"min=10,max=80"`
	SkipConfirmations bool   `koanf:"skip_confirmations"` // Skip the final y/n prompt (also CLAUDE_ALLOW_YES)
	NoColor           bool   `koanf:"no_color"`           // Disable ANSI colors (also NO_COLOR)
}

// Load loads configuration from user, local, and environment sources
// Priority: Environment variables > Local config > User config > Defaults
func Load(localConfigPath string) (*Configuration, error) {
	k := koanf.New(".")

	// Apply defaults first
	for key, value := range GetDefaults() {
		k.Set(key, value)
	}

	// Load user config if it exists
	if userPath, err := UserConfigPath(); err == nil {
		if err := loadFile(k, userPath); err != nil {
			return nil, fmt.Errorf("failed to load user config: %w", err)
		}
	}

	// Load local config if it exists
	if localConfigPath != "" {
		if err := loadFile(k, localConfigPath); err != nil {
			return nil, fmt.Errorf("failed to load local config: %w", err)
		}
	}

	// Override with environment variables (highest priority)
	if err := k.Load(env.Provider(EnvPrefix, ".", envTransform), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment: %w", err)
	}

	// CLAUDE_ALLOW_YES is an alias for skip_confirmations
	if yes := k.String("yes"); yes != "" {
		skip, err := strconv.ParseBool(yes)
		if err != nil {
			return nil, fmt.Errorf("invalid %sYES value %q: expected a boolean", EnvPrefix, yes)
		}
		k.Set("skip_confirmations", skip)
	}

	var cfg Configuration
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	cfg.SettingsPath = expandHomePath(cfg.SettingsPath)

	// https://no-color.org
	if os.Getenv("NO_COLOR") != "" {
		cfg.NoColor = true
	}

	return &cfg, nil
}

// loadFile merges a JSON config file into k. Missing files are skipped.
func loadFile(k *koanf.Koanf, path string) error {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	if err := ValidateJSONSyntax(path); err != nil {
		return err
	}
	return k.Load(file.Provider(path), json.Parser())
}

// envTransform converts environment variable names to config keys
// Example: CLAUDE_ALLOW_SETTINGS_PATH -> settings_path
func envTransform(s string) string {
	return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
}

// expandHomePath expands ~ to the user's home directory
func expandHomePath(path string) string {
	if strings.HasPrefix(path, "~/") {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(homeDir, path[2:])
		}
	}
	return path
}
