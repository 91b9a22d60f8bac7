package errors

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
)

// FormatError renders err with colored headings. Returns "" for nil.
func FormatError(err *CLIError) string {
	if err == nil {
		return ""
	}
	red := color.New(color.FgRed, color.Bold).SprintFunc()
	cyan := color.New(color.FgCyan).SprintFunc()
	return format(err, red, cyan)
}

// FormatErrorPlain renders err without ANSI escape codes. Returns "" for nil.
func FormatErrorPlain(err *CLIError) string {
	if err == nil {
		return ""
	}
	plain := func(a ...interface{}) string { return fmt.Sprint(a...) }
	return format(err, plain, plain)
}

func format(err *CLIError, heading, label func(a ...interface{}) string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s %s\n", heading(err.Category.String()+":"), err.Message)

	if err.Usage != "" {
		fmt.Fprintf(&b, "\n%s\n  %s\n", label("Usage:"), err.Usage)
	}

	if len(err.Remediation) > 0 {
		fmt.Fprintf(&b, "\n%s\n", label("To fix this:"))
		for i, step := range err.Remediation {
			fmt.Fprintf(&b, "  %d. %s\n", i+1, step)
		}
	}

	return b.String()
}

// FormatSimpleError renders any error under the given category heading.
// CLIErrors keep their own category and remediation.
func FormatSimpleError(err error, category ErrorCategory) string {
	if err == nil {
		return ""
	}
	if cliErr := AsCLIError(err); cliErr != nil {
		return FormatError(cliErr)
	}
	return FormatError(&CLIError{Category: category, Message: err.Error()})
}

// PrintError writes the formatted error to stderr.
func PrintError(err *CLIError) {
	FprintError(os.Stderr, err)
}

// FprintError writes the formatted error to w. Nil errors print nothing.
// Output is plain when color is disabled.
func FprintError(w io.Writer, err *CLIError) {
	if err == nil {
		return
	}
	if color.NoColor {
		fmt.Fprint(w, FormatErrorPlain(err))
		return
	}
	fmt.Fprint(w, FormatError(err))
}
