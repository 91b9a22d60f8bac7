package cli

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/ariel-frischer/claude-allow/internal/catalog"
	"github.com/ariel-frischer/claude-allow/internal/config"
	apperrors "github.com/ariel-frischer/claude-allow/internal/errors"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// options is the resolved configuration for one command run.
type options struct {
	cfg     *config.Configuration
	catalog *catalog.Catalog
}

// loadOptions loads the claude-allow config, applies command-line overrides
// and loads the command catalog.
func loadOptions(cmd *cobra.Command) (*options, error) {
	configPath, _ := cmd.Flags().GetString("config")

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, apperrors.ConfigParseError(configPath, err)
	}

	if cmd.Flags().Changed("settings") {
		path, _ := cmd.Flags().GetString("settings")
		if strings.TrimSpace(path) == "" {
			return nil, apperrors.NewArgumentErrorWithUsage(
				"--settings requires a non-empty path",
				"claude-allow --settings <path>",
			)
		}
		cfg.SettingsPath = expandHome(path)
	}
	if f := cmd.Flags().Lookup("yes"); f != nil && f.Changed {
		cfg.SkipConfirmations, _ = cmd.Flags().GetBool("yes")
	}
	if noColor, _ := cmd.Flags().GetBool("no-color"); noColor {
		cfg.NoColor = true
	}
	if cfg.NoColor {
		color.NoColor = true
	}

	cat, err := catalog.Default()
	if err != nil {
		return nil, apperrors.CatalogInvalid(err)
	}

	return &options{cfg: cfg, catalog: cat}, nil
}

// expandHome expands a leading ~/ to the user's home directory.
func expandHome(path string) string {
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}
