// Package errors provides structured CLI errors for claude-allow.
// A CLIError carries a category, a message, optional usage text and
// remediation steps, and is rendered by FormatError before the process exits.
package errors

import (
	"errors"
	"fmt"
)

// ErrorCategory classifies a CLIError for display and exit code selection.
type ErrorCategory int

const (
	// Argument errors come from invalid flags or arguments.
	Argument ErrorCategory = iota
	// Configuration errors come from the tool's own config or the settings file.
	Configuration
	// Prerequisite errors mean something the run depends on is missing.
	Prerequisite
	// Runtime errors are I/O failures while applying changes.
	Runtime
)

// String returns the heading used when the error is displayed.
func (c ErrorCategory) String() string {
	switch c {
	case Argument:
		return "Argument Error"
	case Configuration:
		return "Configuration Error"
	case Prerequisite:
		return "Prerequisite Error"
	case Runtime:
		return "Runtime Error"
	default:
		return "Error"
	}
}

// CLIError is a user-facing error with remediation guidance.
type CLIError struct {
	Category    ErrorCategory
	Message     string
	Usage       string
	Remediation []string
	Err         error
}

func (e *CLIError) Error() string {
	return e.Message
}

// Unwrap returns the underlying cause, if any.
func (e *CLIError) Unwrap() error {
	return e.Err
}

// NewArgumentError creates an Argument error.
func NewArgumentError(message string, remediation ...string) *CLIError {
	return &CLIError{Category: Argument, Message: message, Remediation: remediation}
}

// NewArgumentErrorWithUsage creates an Argument error that shows usage text.
func NewArgumentErrorWithUsage(message, usage string, remediation ...string) *CLIError {
	return &CLIError{Category: Argument, Message: message, Usage: usage, Remediation: remediation}
}

// NewConfigError creates a Configuration error.
func NewConfigError(message string, remediation ...string) *CLIError {
	return &CLIError{Category: Configuration, Message: message, Remediation: remediation}
}

// NewPrerequisiteError creates a Prerequisite error.
func NewPrerequisiteError(message string, remediation ...string) *CLIError {
	return &CLIError{Category: Prerequisite, Message: message, Remediation: remediation}
}

// NewRuntimeError creates a Runtime error.
func NewRuntimeError(message string, remediation ...string) *CLIError {
	return &CLIError{Category: Runtime, Message: message, Remediation: remediation}
}

// Wrap converts err into a CLIError of the given category, keeping err as the cause.
// Returns nil if err is nil.
func Wrap(err error, category ErrorCategory, remediation ...string) *CLIError {
	if err == nil {
		return nil
	}
	return &CLIError{
		Category:    category,
		Message:     err.Error(),
		Remediation: remediation,
		Err:         err,
	}
}

// WrapWithMessage is like Wrap but prefixes the message with context.
func WrapWithMessage(err error, category ErrorCategory, message string, remediation ...string) *CLIError {
	if err == nil {
		return nil
	}
	return &CLIError{
		Category:    category,
		Message:     fmt.Sprintf("%s: %s", message, err.Error()),
		Remediation: remediation,
		Err:         err,
	}
}

// IsCLIError reports whether err is, or wraps, a CLIError.
func IsCLIError(err error) bool {
	return AsCLIError(err) != nil
}

// AsCLIError returns the CLIError in err's chain, or nil.
func AsCLIError(err error) *CLIError {
	var cliErr *CLIError
	if errors.As(err, &cliErr) {
		return cliErr
	}
	return nil
}
