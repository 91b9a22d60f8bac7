package cli

import (
	"errors"

	"github.com/ariel-frischer/claude-allow/internal/claude"
	"github.com/ariel-frischer/claude-allow/internal/cli/shared"
	apperrors "github.com/ariel-frischer/claude-allow/internal/errors"
	"github.com/spf13/cobra"
)

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the commands currently allowed",
		Long:  "Print the allowedTools list of the Claude Code settings file in columns.",
		Args:  noArgs,
		RunE:  runShow,
	}
}

func runShow(cmd *cobra.Command, args []string) error {
	opts, err := loadOptions(cmd)
	if err != nil {
		return err
	}

	p := shared.NewPrinter(cmd.OutOrStdout())
	path := opts.cfg.SettingsPath

	settings, err := claude.Load(path)
	if err != nil {
		var parseErr *claude.ParseError
		if errors.As(err, &parseErr) {
			p.Warning("Error reading config: %v", parseErr.Err)
			return nil
		}
		return apperrors.SettingsNotReadable(path, err)
	}

	if !settings.Exists() {
		p.Info("No settings file at %s", path)
		return nil
	}

	tools := settings.AllowedTools()
	if len(tools) == 0 {
		p.Info("No allowed tools in %s", path)
		return nil
	}

	p.Info("Allowed tools in %s (%d):", path, len(tools))
	printTools(p.Writer(), columnLayout(opts), "  ✓", tools)
	return nil
}
