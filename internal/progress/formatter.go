package progress

import (
	"fmt"
	"strings"
)

// formatStepCounter returns the [N/Total] step counter string
func formatStepCounter(number, total int) string {
	return fmt.Sprintf("[%d/%d]", number, total)
}

// buildStepMessage constructs the message shown while a step runs
func buildStepMessage(step StepInfo) string {
	return fmt.Sprintf("%s %s...", formatStepCounter(step.Number, step.TotalSteps), capitalize(step.Name))
}

// capitalize returns the string with the first letter capitalized
func capitalize(s string) string {
	if len(s) == 0 {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// checkmark returns the appropriate checkmark symbol
func checkmark(symbols ProgressSymbols, supportsColor bool) string {
	mark := symbols.Checkmark
	if supportsColor && symbols.Checkmark == "✓" {
		mark = "\033[32m" + mark + "\033[0m" // Green
	}
	return mark
}

// failureMark returns the appropriate failure symbol
func failureMark(symbols ProgressSymbols, supportsColor bool) string {
	mark := symbols.Failure
	if supportsColor && symbols.Failure == "✗" {
		mark = "\033[31m" + mark + "\033[0m" // Red
	}
	return mark
}
