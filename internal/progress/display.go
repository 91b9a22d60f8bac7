package progress

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/briandowns/spinner"
)

// ProgressDisplay orchestrates the display of progress indicators
type ProgressDisplay struct {
	capabilities TerminalCapabilities
	out          io.Writer
	spinner      *spinner.Spinner
	symbols      ProgressSymbols
}

// NewProgressDisplay creates a progress display writing results to out.
// The spinner itself always draws on stderr.
func NewProgressDisplay(caps TerminalCapabilities, out io.Writer) *ProgressDisplay {
	return &ProgressDisplay{
		capabilities: caps,
		out:          out,
		symbols:      SelectSymbols(caps),
	}
}

// StartStep begins displaying progress for a step
func (p *ProgressDisplay) StartStep(step StepInfo) error {
	if err := step.Validate(); err != nil {
		return err
	}

	msg := buildStepMessage(step)

	if p.capabilities.IsTTY {
		// TTY mode: Start spinner animation
		p.spinner = spinner.New(
			spinner.CharSets[p.symbols.SpinnerSet],
			100*time.Millisecond,
		)
		p.spinner.Writer = os.Stderr
		p.spinner.Suffix = " " + msg
		p.spinner.Start()
	} else {
		// Non-interactive mode: Just print the message
		fmt.Fprintln(p.out, msg)
	}

	return nil
}

// CompleteStep stops the spinner and displays completion status
func (p *ProgressDisplay) CompleteStep(step StepInfo) {
	p.StopSpinner()

	mark := checkmark(p.symbols, p.capabilities.SupportsColor)
	counter := formatStepCounter(step.Number, step.TotalSteps)
	fmt.Fprintf(p.out, "%s %s %s\n", mark, counter, capitalize(step.Name))
}

// FailStep stops the spinner and displays failure status
func (p *ProgressDisplay) FailStep(step StepInfo, err error) {
	p.StopSpinner()

	mark := failureMark(p.symbols, p.capabilities.SupportsColor)
	counter := formatStepCounter(step.Number, step.TotalSteps)
	fmt.Fprintf(p.out, "%s %s %s failed: %v\n", mark, counter, capitalize(step.Name), err)
}

// StopSpinner stops the spinner without showing completion/failure
func (p *ProgressDisplay) StopSpinner() {
	if p.spinner != nil {
		p.spinner.Stop()
		p.spinner = nil
	}
}

// Run executes fn as the given step, reporting completion or failure.
// fn's error is returned unchanged.
func (p *ProgressDisplay) Run(step StepInfo, fn func() error) error {
	if err := p.StartStep(step); err != nil {
		return err
	}
	if err := fn(); err != nil {
		p.FailStep(step, err)
		return err
	}
	p.CompleteStep(step)
	return nil
}
