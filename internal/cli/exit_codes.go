package cli

import (
	"github.com/ariel-frischer/claude-allow/internal/cli/shared"
)

// Exit codes for the claude-allow CLI (re-exported from shared)
const (
	// ExitSuccess indicates successful completion, including a cancelled run
	ExitSuccess = shared.ExitSuccess

	// ExitRuntimeFailure indicates the settings could not be backed up or written
	ExitRuntimeFailure = shared.ExitRuntimeFailure

	// ExitInvalidArguments indicates invalid command arguments
	ExitInvalidArguments = shared.ExitInvalidArguments

	// ExitConfigError indicates the tool config or settings file could not be read
	ExitConfigError = shared.ExitConfigError
)

// ExitCode returns the exit code for an error returned by Execute (re-exported from shared).
func ExitCode(err error) int {
	return shared.ExitCode(err)
}
