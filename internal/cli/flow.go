package cli

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/ariel-frischer/claude-allow/internal/catalog"
	"github.com/ariel-frischer/claude-allow/internal/claude"
	"github.com/ariel-frischer/claude-allow/internal/cli/shared"
	apperrors "github.com/ariel-frischer/claude-allow/internal/errors"
	"github.com/ariel-frischer/claude-allow/internal/health"
	"github.com/ariel-frischer/claude-allow/internal/permissions"
	"github.com/ariel-frischer/claude-allow/internal/progress"
	"github.com/ariel-frischer/claude-allow/internal/selection"
)

// State is a step of the interactive flow.
type State int

const (
	StateAwaitMode State = iota
	StateAwaitSelection
	StateAwaitConfirm
	StateApply
	StateDone
	StateCancelled
)

func (s State) String() string {
	switch s {
	case StateAwaitMode:
		return "await-mode"
	case StateAwaitSelection:
		return "await-selection"
	case StateAwaitConfirm:
		return "await-confirm"
	case StateApply:
		return "apply"
	case StateDone:
		return "done"
	case StateCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Terminal reports whether the flow stops in this state.
func (s State) Terminal() bool {
	return s == StateDone || s == StateCancelled
}

// FlowOptions configures a Flow.
type FlowOptions struct {
	In           io.Reader
	Out          io.Writer
	Catalog      *catalog.Catalog
	SettingsPath string

	// SkipConfirm proceeds without the final y/n prompt.
	SkipConfirm bool

	// Layout arranges tool lists. Prefix is set per list.
	Layout shared.ColumnLayout

	// Terminal selects spinner or plain progress output for the apply step.
	Terminal progress.TerminalCapabilities

	// Now stamps the backup file name. Defaults to time.Now.
	Now func() time.Time
}

// Flow runs the interactive setup as a linear state machine:
// AwaitMode, AwaitSelection, AwaitConfirm, Apply, then Done. Every prompt
// may move to Cancelled instead, which leaves the settings file untouched.
type Flow struct {
	opts     FlowOptions
	p        *shared.Printer
	c        *shared.Colors
	prompter *prompter
	resolver *selection.Resolver

	state    State
	settings *claude.Settings
	mode     permissions.Mode
	selected selection.Selection

	result     permissions.Result
	backupPath string

	save func(*claude.Settings) error
}

// NewFlow creates a Flow in StateAwaitMode.
func NewFlow(opts FlowOptions) *Flow {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Flow{
		opts:     opts,
		p:        shared.NewPrinter(opts.Out),
		c:        shared.NewColors(),
		prompter: newPrompter(opts.In, opts.Out),
		resolver: selection.NewResolver(opts.Catalog),
		state:    StateAwaitMode,
		save:     (*claude.Settings).Save,
	}
}

// State returns the current state.
func (f *Flow) State() State {
	return f.state
}

// Result returns the applied permissions. It is only meaningful in StateDone.
func (f *Flow) Result() permissions.Result {
	return f.result
}

// BackupPath returns the backup written during Apply, or "" if the settings
// file did not exist.
func (f *Flow) BackupPath() string {
	return f.backupPath
}

// Run prints the catalog and drives the flow to a terminal state.
// Cancellation is not an error. Errors are fatal and returned as CLI errors.
func (f *Flow) Run() error {
	shared.PrintBanner(f.p.Writer())
	if err := f.checkPrerequisites(); err != nil {
		return err
	}
	printIntro(f.p, f.c, f.opts.Catalog)

	for !f.state.Terminal() {
		var err error
		switch f.state {
		case StateAwaitMode:
			err = f.awaitMode()
		case StateAwaitSelection:
			err = f.awaitSelection()
		case StateAwaitConfirm:
			err = f.awaitConfirm()
		case StateApply:
			err = f.apply()
		default:
			err = apperrors.NewRuntimeError(fmt.Sprintf("unexpected state %s", f.state))
		}
		if errors.Is(err, errInputClosed) {
			f.cancel()
			continue
		}
		if err != nil {
			if !apperrors.IsCLIError(err) {
				return apperrors.Wrap(err, apperrors.Runtime)
			}
			return err
		}
	}
	return nil
}

func (f *Flow) checkPrerequisites() error {
	f.p.Info("Checking prerequisites...")
	report := health.RunHealthChecks(f.opts.SettingsPath)
	for _, c := range report.Failed() {
		if !c.Required {
			f.p.Warning("%s", c.Message)
		}
	}
	if !report.Passed {
		return prerequisitesError(report)
	}
	f.p.Success("Prerequisites check passed")
	f.p.Println()
	return nil
}

func (f *Flow) cancel() {
	f.p.Warning("Operation cancelled.")
	f.state = StateCancelled
}

// loadSettings reads the settings file. A malformed file is reported and
// replaced by empty settings; it is still backed up before the rewrite.
func (f *Flow) loadSettings() error {
	s, err := claude.Load(f.opts.SettingsPath)
	if err != nil {
		var parseErr *claude.ParseError
		if !errors.As(err, &parseErr) {
			return apperrors.SettingsNotReadable(f.opts.SettingsPath, err)
		}
		f.p.Warning("Error reading config: %v", parseErr.Err)
		s = claude.New(f.opts.SettingsPath)
	}
	if ignored := s.IgnoredAllowedTools(); len(ignored) > 0 {
		f.p.Warning("Ignoring %d non-string allowedTools entries; they are dropped when the file is rewritten", len(ignored))
	}
	f.settings = s
	return nil
}

func (f *Flow) awaitMode() error {
	if err := f.loadSettings(); err != nil {
		return err
	}

	existing := f.settings.AllowedTools()
	if len(existing) == 0 {
		f.mode = permissions.ReplaceMode()
		f.state = StateAwaitSelection
		return nil
	}

	for {
		f.p.Println()
		f.p.Warning("Existing permissions found in config (%d tools):", len(existing))
		printTools(f.p.Writer(), f.opts.Layout, "  →", existing)
		f.p.Println()

		choice, err := f.prompter.prompt(f.modeQuestion())
		if err != nil {
			return err
		}

		switch choice {
		case "1":
			f.p.Info("Will replace existing permissions")
			f.mode = permissions.ReplaceMode()
		case "2":
			f.p.Info("Will add to existing permissions")
			f.mode = permissions.MergeMode(existing)
		case "3":
			f.cancel()
			return nil
		default:
			f.p.Warning("Invalid choice. Please try again.")
			continue
		}
		f.state = StateAwaitSelection
		return nil
	}
}

func (f *Flow) modeQuestion() string {
	return fmt.Sprintf(`%s
  %s Replace existing permissions (clear and add new)
  %s Add to existing permissions (merge)
  %s Cancel

Enter your choice (1/2/3): `, f.c.Cyan("Do you want to:"), f.c.Green("1."), f.c.Green("2."), f.c.Green("3."))
}

func (f *Flow) awaitSelection() error {
	for {
		input, err := f.prompter.prompt("Enter your selection: ")
		if err != nil {
			return err
		}
		if input == "" {
			f.p.Warning("Please enter a selection.")
			continue
		}

		sel := f.resolver.Resolve(input)
		for _, w := range sel.Warnings {
			f.p.Warning("%s", w)
		}
		for _, n := range sel.Notes {
			f.p.Info("%s", n)
		}
		if sel.Empty() {
			f.p.Warning("No valid commands selected. Please try again.")
			continue
		}

		f.selected = sel
		printSelected(f.p, f.c, sel.Entries)
		f.state = StateAwaitConfirm
		return nil
	}
}

func (f *Flow) awaitConfirm() error {
	if f.opts.SkipConfirm {
		f.state = StateApply
		return nil
	}

	f.p.Println()
	answer, err := f.prompter.prompt("Proceed with allowing these commands globally? (y/n): ")
	if err != nil {
		return err
	}
	if !isYes(answer) {
		f.cancel()
		return nil
	}
	f.state = StateApply
	return nil
}

// apply creates the settings directory, backs up the current file and writes
// the new allow list. Any failure stops the run; the file is never written
// without a successful backup.
func (f *Flow) apply() error {
	f.p.Println()
	f.p.Info("Setting up global permissions...")

	display := progress.NewProgressDisplay(f.opts.Terminal, f.p.Writer())
	path := f.opts.SettingsPath
	const steps = 3

	err := display.Run(progress.StepInfo{Name: "creating settings directory", Number: 1, TotalSteps: steps}, func() error {
		if err := f.settings.EnsureDir(); err != nil {
			return apperrors.DirectoryNotCreatable(filepath.Dir(path), err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	err = display.Run(progress.StepInfo{Name: "backing up settings", Number: 2, TotalSteps: steps}, func() error {
		backup, err := f.settings.Backup(f.opts.Now())
		if err != nil {
			return apperrors.BackupFailed(path, err)
		}
		f.backupPath = backup
		return nil
	})
	if err != nil {
		return err
	}
	if f.backupPath != "" {
		f.p.Info("Backup created: %s", filepath.Base(f.backupPath))
	}

	f.result = permissions.Apply(f.mode, permissions.ToolStrings(f.selected.Entries))

	err = display.Run(progress.StepInfo{Name: "writing settings", Number: 3, TotalSteps: steps}, func() error {
		f.settings.SetAllowedTools(f.result.Tools)
		if err := f.save(f.settings); err != nil {
			return apperrors.SettingsNotWritable(path, f.backupPath, err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	for _, line := range f.result.Log() {
		f.p.Info("%s", line)
	}
	f.p.Success("Configuration updated successfully!")

	f.printResults()
	f.state = StateDone
	return nil
}

func (f *Flow) printResults() {
	shared.PrintCompleteBanner(f.p.Writer())
	f.p.Success("Global permissions have been configured!")
	f.p.Println()

	if f.result.Kind == permissions.Merge {
		f.p.Println("Added to existing permissions. All allowed commands in Claude Code CLI:")
	} else {
		f.p.Println("Replaced existing permissions. All allowed commands in Claude Code CLI:")
	}
	f.p.Println()
	printTools(f.p.Writer(), f.opts.Layout, "  ✓", f.result.Tools)
	f.p.Println()
	f.p.Println(f.c.Green("Summary:") + " " + f.result.Summary())

	f.p.Println()
	f.p.Println("Note: These permissions apply globally across all Claude Code sessions.")
	f.p.Println("To modify permissions later, you can:")
	f.p.Println("1. Run claude-allow again")
	f.p.Println("2. Manually edit: " + f.opts.SettingsPath)
	f.p.Println("3. Use claude config commands")
	f.p.Println()
	f.p.Info("Next time you use Claude Code CLI, these commands won't require permission prompts!")
}
