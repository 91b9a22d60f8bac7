package shared

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Title lines printed between rules at the top of the interactive flow.
var Title = []string{
	"   Claude Code - Permissions Setup Tool",
	"       Allow Common Commands Globally",
}

// CompleteTitle is printed between rules once the settings file is written.
const CompleteTitle = "              Setup Complete"

// RuleWidth is the width of the "=" rule around titles.
const RuleWidth = 50

// DefaultTerminalWidth is used when the width of stdout cannot be determined.
const DefaultTerminalWidth = 80

// GetTerminalWidth returns the terminal width, defaulting to 80 if unavailable.
func GetTerminalWidth() int {
	if width, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && width > 0 {
		return width
	}
	return DefaultTerminalWidth
}

// IsTerminal reports whether stdout is a terminal.
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// Rule returns a line of "=" characters.
func Rule() string {
	return strings.Repeat("=", RuleWidth)
}

// PrintBanner prints the title block in cyan between rules.
func PrintBanner(out io.Writer) {
	cyan := color.New(color.FgCyan, color.Bold).SprintFunc()

	fmt.Fprintln(out, Rule())
	for _, line := range Title {
		fmt.Fprintln(out, cyan(line))
	}
	fmt.Fprintln(out, Rule())
	fmt.Fprintln(out)
}

// PrintCompleteBanner prints the closing title block.
func PrintCompleteBanner(out io.Writer) {
	green := color.New(color.FgGreen, color.Bold).SprintFunc()

	fmt.Fprintln(out)
	fmt.Fprintln(out, Rule())
	fmt.Fprintln(out, green(CompleteTitle))
	fmt.Fprintln(out, Rule())
	fmt.Fprintln(out)
}

// Colors provides reusable color functions for CLI output.
type Colors struct {
	Cyan    func(a ...interface{}) string
	Green   func(a ...interface{}) string
	Yellow  func(a ...interface{}) string
	Red     func(a ...interface{}) string
	Blue    func(a ...interface{}) string
	Dim     func(a ...interface{}) string
	Magenta func(a ...interface{}) string
}

// NewColors creates a new Colors instance with standard terminal colors.
func NewColors() *Colors {
	return &Colors{
		Cyan:    color.New(color.FgCyan).SprintFunc(),
		Green:   color.New(color.FgGreen).SprintFunc(),
		Yellow:  color.New(color.FgYellow).SprintFunc(),
		Red:     color.New(color.FgRed).SprintFunc(),
		Blue:    color.New(color.FgBlue).SprintFunc(),
		Dim:     color.New(color.Faint).SprintFunc(),
		Magenta: color.New(color.FgMagenta).SprintFunc(),
	}
}
