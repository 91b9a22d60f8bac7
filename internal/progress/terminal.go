package progress

import (
	"io"
	"os"
	"strconv"

	"golang.org/x/term"
)

// Environment variables that turn off terminal features.
const (
	EnvNoColor = "NO_COLOR"
	EnvASCII   = "CLAUDE_ALLOW_ASCII"
)

var (
	// Spinner set 14 is braille dots.
	unicodeSymbols = ProgressSymbols{Checkmark: "✓", Failure: "✗", SpinnerSet: 14}
	// Spinner set 9 is | / - \
	asciiSymbols = ProgressSymbols{Checkmark: "[OK]", Failure: "[FAIL]", SpinnerSet: 9}
)

// DetectTerminalCapabilities reports what the apply step may draw on w.
// Anything other than an *os.File attached to a terminal gets plain output.
func DetectTerminalCapabilities(w io.Writer) TerminalCapabilities {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return TerminalCapabilities{}
	}

	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		width = 0
	}
	return ttyCapabilities(width, os.Getenv)
}

// ttyCapabilities applies the environment overrides to a terminal of the
// given width.
func ttyCapabilities(width int, getenv func(string) string) TerminalCapabilities {
	return TerminalCapabilities{
		IsTTY:           true,
		SupportsColor:   getenv(EnvNoColor) == "",
		SupportsUnicode: !isTrue(getenv(EnvASCII)),
		Width:           width,
	}
}

func isTrue(v string) bool {
	b, err := strconv.ParseBool(v)
	return err == nil && b
}

// SelectSymbols picks the result marks and spinner charset for caps.
func SelectSymbols(caps TerminalCapabilities) ProgressSymbols {
	if caps.SupportsUnicode {
		return unicodeSymbols
	}
	return asciiSymbols
}
