// Package progress displays the steps claude-allow runs while applying a
// selection: a spinner on terminals, plain lines otherwise.
package progress

import apperrors "github.com/ariel-frischer/claude-allow/internal/errors"

// StepInfo describes one step of the apply phase for progress display
type StepInfo struct {
	// Name is the human-readable step name (e.g., "backing up settings")
	Name string
	// Number is the current step number (1-based index)
	Number int
	// TotalSteps is the total number of steps
	TotalSteps int
}

// Validate checks that all StepInfo fields meet validation requirements
func (s StepInfo) Validate() error {
	if s.Name == "" {
		return apperrors.NewArgumentError("step name cannot be empty")
	}
	if s.Number <= 0 {
		return apperrors.NewArgumentError("step number must be > 0")
	}
	if s.TotalSteps <= 0 {
		return apperrors.NewArgumentError("total steps must be > 0")
	}
	if s.Number > s.TotalSteps {
		return apperrors.NewArgumentError("step number cannot exceed total steps")
	}
	return nil
}

// TerminalCapabilities encapsulates detected terminal features
type TerminalCapabilities struct {
	// IsTTY indicates whether stdout is a terminal (vs pipe/redirect)
	IsTTY bool
	// SupportsColor indicates whether terminal supports ANSI color codes
	SupportsColor bool
	// SupportsUnicode indicates whether terminal supports Unicode characters
	SupportsUnicode bool
	// Width is the terminal width in columns (0 if unknown/pipe)
	Width int
}

// ProgressSymbols defines the character set for visual indicators
type ProgressSymbols struct {
	// Checkmark is the success indicator ("✓" or "[OK]")
	Checkmark string
	// Failure is the failure indicator ("✗" or "[FAIL]")
	Failure string
	// SpinnerSet is the index into spinner.CharSets
	SpinnerSet int
}
