// Package shared provides constants and output helpers used across the CLI.
// This package has no dependencies on other CLI packages to avoid circular imports.
package shared

import (
	apperrors "github.com/ariel-frischer/claude-allow/internal/errors"
)

// Exit codes for CLI commands
const (
	ExitSuccess          = 0
	ExitRuntimeFailure   = 1
	ExitInvalidArguments = 3
	ExitConfigError      = 4
)

// ExitCode returns the exit code for an error returned by a command.
// CLI errors map by category; anything else is a runtime failure.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	if cliErr := apperrors.AsCLIError(err); cliErr != nil {
		switch cliErr.Category {
		case apperrors.Argument:
			return ExitInvalidArguments
		case apperrors.Configuration:
			return ExitConfigError
		}
	}
	return ExitRuntimeFailure
}
