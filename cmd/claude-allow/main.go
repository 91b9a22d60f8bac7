// claude-allow - Allow common shell commands globally in Claude Code
// Author: Ariel Frischer
// Source: https://github.com/ariel-frischer/claude-allow

package main

import (
	"fmt"
	"os"

	"github.com/ariel-frischer/claude-allow/internal/cli"
	apperrors "github.com/ariel-frischer/claude-allow/internal/errors"
)

func main() {
	if err := cli.Execute(); err != nil {
		if apperrors.IsCLIError(err) {
			apperrors.PrintError(apperrors.AsCLIError(err))
		} else {
			fmt.Fprint(os.Stderr, apperrors.FormatSimpleError(err, apperrors.Runtime))
		}
		os.Exit(cli.ExitCode(err))
	}
}
