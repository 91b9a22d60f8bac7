// claude-allow - Allow common shell commands globally in Claude Code
// Author: Ariel Frischer
// Source: https://github.com/ariel-frischer/claude-allow

// Package cli provides the Cobra commands of claude-allow: the interactive
// permissions setup run by the root command, and the list, show and version
// subcommands.
package cli

import (
	"fmt"

	"github.com/ariel-frischer/claude-allow/internal/build"
	apperrors "github.com/ariel-frischer/claude-allow/internal/errors"
	"github.com/spf13/cobra"
)

// NewRootCmd builds the claude-allow command tree.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "claude-allow",
		Short: "Allow common shell commands globally in Claude Code",
		Long: `claude-allow presents a numbered catalog of shell commands and writes the
ones you select into the allowedTools list of the Claude Code user settings
file (~/.config/claude-code/settings.json), replacing or merging with what is
already there. The previous file is backed up before it is rewritten.`,
		Example: `  # Pick commands interactively
  claude-allow

  # Use another settings file and skip the final confirmation
  claude-allow --settings ./settings.json --yes

  # Browse the catalog and the selection keywords
  claude-allow list
  claude-allow list --presets

  # Show what is currently allowed
  claude-allow show`,
		Args:          noArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runInteractive,
	}

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return apperrors.NewArgumentErrorWithUsage(err.Error(), cmd.UseLine())
	})
	rootCmd.Version = build.Version
	rootCmd.SetVersionTemplate(build.Summary() + "\n")

	// Global flags
	rootCmd.PersistentFlags().StringP("config", "c", "", "Path to a claude-allow config file (JSON)")
	rootCmd.PersistentFlags().String("settings", "", "Path to the Claude Code settings file")
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable colored output")

	rootCmd.Flags().BoolP("yes", "y", false, "Skip the final confirmation prompt")

	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newShowCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newDoctorCmd())

	return rootCmd
}

// Execute runs the root command
func Execute() error {
	return NewRootCmd().Execute()
}

// noArgs rejects positional arguments with an argument error.
func noArgs(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		return apperrors.NewArgumentErrorWithUsage(
			fmt.Sprintf("unexpected argument %q for %q", args[0], cmd.CommandPath()),
			cmd.UseLine(),
		)
	}
	return nil
}
