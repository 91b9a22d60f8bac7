package cli

import (
	"github.com/ariel-frischer/claude-allow/internal/cli/shared"
	"github.com/ariel-frischer/claude-allow/internal/progress"
	"github.com/spf13/cobra"
)

func runInteractive(cmd *cobra.Command, args []string) error {
	opts, err := loadOptions(cmd)
	if err != nil {
		return err
	}

	caps := progress.DetectTerminalCapabilities(cmd.OutOrStdout())
	if opts.cfg.NoColor {
		caps.SupportsColor = false
	}

	flow := NewFlow(FlowOptions{
		In:           cmd.InOrStdin(),
		Out:          cmd.OutOrStdout(),
		Catalog:      opts.catalog,
		SettingsPath: opts.cfg.SettingsPath,
		SkipConfirm:  opts.cfg.SkipConfirmations,
		Layout:       columnLayout(opts),
		Terminal:     caps,
	})
	return flow.Run()
}

// columnLayout sizes tool columns to the terminal.
func columnLayout(opts *options) shared.ColumnLayout {
	return shared.ColumnLayout{
		Width:          shared.GetTerminalWidth(),
		MinColumnWidth: opts.cfg.MinColumnWidth,
	}
}
