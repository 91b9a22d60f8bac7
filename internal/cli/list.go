package cli

import (
	"github.com/ariel-frischer/claude-allow/internal/cli/shared"
	"github.com/spf13/cobra"
)

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the command catalog",
		Long: `Print the numbered command catalog with risk colors, as shown at the start
of the interactive setup. With --presets, print the selection keywords instead.`,
		Example: `  claude-allow list
  claude-allow list --presets`,
		Args: noArgs,
		RunE: runList,
	}
	cmd.Flags().Bool("presets", false, "Print the selection keywords instead of the catalog")
	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	opts, err := loadOptions(cmd)
	if err != nil {
		return err
	}

	p := shared.NewPrinter(cmd.OutOrStdout())
	c := shared.NewColors()

	if presets, _ := cmd.Flags().GetBool("presets"); presets {
		printPresets(p, c)
		return nil
	}

	printCatalog(p, c, opts.catalog)
	p.Println()
	printLegend(p, c)
	return nil
}
