package cli

import (
	"fmt"

	apperrors "github.com/ariel-frischer/claude-allow/internal/errors"
	"github.com/ariel-frischer/claude-allow/internal/health"
	"github.com/spf13/cobra"
)

func newDoctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "doctor",
		Aliases: []string{"doc"},
		Short:   "Run prerequisite checks (doc)",
		Long: `Run the prerequisite checks performed before the interactive setup.

This command checks for:
  - Claude settings (the settings path is a file, or can be created)
  - Claude CLI (advisory; permissions are written even without it)

Each check will display a checkmark if passed or an X with an error message if failed.`,
		Example: `  # Check the default settings location
  claude-allow doctor

  # Check another settings file
  claude-allow doctor --settings ./settings.json`,
		Args: noArgs,
		RunE: runDoctor,
	}
}

func runDoctor(cmd *cobra.Command, args []string) error {
	opts, err := loadOptions(cmd)
	if err != nil {
		return err
	}

	report := health.RunHealthChecks(opts.cfg.SettingsPath)
	fmt.Fprint(cmd.OutOrStdout(), health.FormatReport(report))

	if !report.Passed {
		return prerequisitesError(report)
	}
	return nil
}

// prerequisitesError lists the failed required checks.
func prerequisitesError(report *health.HealthReport) error {
	var problems []string
	for _, c := range report.Failed() {
		if c.Required {
			problems = append(problems, c.Message)
		}
	}
	return apperrors.PrerequisitesFailed(problems)
}
