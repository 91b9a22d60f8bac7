// Package permissions maps selected catalog entries to Claude Code permission
// strings and reconciles them with the permissions already in the settings file.
package permissions

import (
	"fmt"
	"strings"

	"github.com/ariel-frischer/claude-allow/internal/catalog"
)

const (
	bashPrefix = "Bash("
	bashSuffix = ":*)"
)

// ToolString returns the permission string for an entry. MCP names are used
// verbatim; everything else becomes Bash(<name>:*).
func ToolString(e catalog.Entry) string {
	if e.IsMCP() {
		return e.Name
	}
	return bashPrefix + e.Name + bashSuffix
}

// ToolStrings maps entries to permission strings, preserving order.
func ToolStrings(entries []catalog.Entry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, ToolString(e))
	}
	return out
}

// DisplayName strips the Bash(...:*) wrapper for display. Other permission
// strings are returned unchanged.
func DisplayName(tool string) string {
	if len(tool) > len(bashPrefix)+len(bashSuffix) &&
		strings.HasPrefix(tool, bashPrefix) && strings.HasSuffix(tool, bashSuffix) {
		return tool[len(bashPrefix) : len(tool)-len(bashSuffix)]
	}
	return tool
}

// ModeKind selects how new permissions combine with existing ones.
type ModeKind int

const (
	// Replace discards existing permissions.
	Replace ModeKind = iota
	// Merge appends new permissions to the existing ones.
	Merge
)

// String returns a human-readable representation of the mode.
func (k ModeKind) String() string {
	switch k {
	case Replace:
		return "replace"
	case Merge:
		return "merge"
	default:
		return "unknown"
	}
}

// Mode is decided once per run, before the selection is resolved.
type Mode struct {
	Kind     ModeKind
	Existing []string
}

// ReplaceMode returns a mode that ignores any existing permissions.
func ReplaceMode() Mode {
	return Mode{Kind: Replace}
}

// MergeMode returns a mode that appends to existing.
func MergeMode(existing []string) Mode {
	cp := make([]string, len(existing))
	copy(cp, existing)
	return Mode{Kind: Merge, Existing: cp}
}

// Event records what happened to one new permission during a merge.
type Event struct {
	Tool  string
	Added bool
}

// Result is the reconciled permission list and what changed.
type Result struct {
	Kind ModeKind

	// Tools is the final list to persist.
	Tools []string

	// Existing is the number of permissions the merge started from.
	Existing int

	Added   []string
	Skipped []string
	Events  []Event
}

// Apply combines tools with the mode's existing permissions.
//
// Replace returns tools unchanged. Merge keeps the existing order and appends
// each tool that is not among the existing permissions. Membership is checked
// against the existing list only, so repeats within tools are all appended.
func Apply(mode Mode, tools []string) Result {
	if mode.Kind != Merge {
		final := make([]string, len(tools))
		copy(final, tools)
		return Result{
			Kind:  Replace,
			Tools: final,
			Added: append([]string(nil), tools...),
		}
	}

	res := Result{
		Kind:     Merge,
		Tools:    make([]string, 0, len(mode.Existing)+len(tools)),
		Existing: len(mode.Existing),
	}
	res.Tools = append(res.Tools, mode.Existing...)

	existing := make(map[string]bool, len(mode.Existing))
	for _, t := range mode.Existing {
		existing[t] = true
	}

	for _, t := range tools {
		if existing[t] {
			res.Skipped = append(res.Skipped, t)
			res.Events = append(res.Events, Event{Tool: t})
			continue
		}
		res.Tools = append(res.Tools, t)
		res.Added = append(res.Added, t)
		res.Events = append(res.Events, Event{Tool: t, Added: true})
	}

	return res
}

// Log renders the merge events, one line per new permission.
func (r Result) Log() []string {
	lines := make([]string, 0, len(r.Events))
	for _, ev := range r.Events {
		if ev.Added {
			lines = append(lines, "Adding new permission: "+ev.Tool)
		} else {
			lines = append(lines, "Skipping duplicate: "+ev.Tool)
		}
	}
	return lines
}

// Summary describes the outcome in one line.
func (r Result) Summary() string {
	if r.Kind == Merge {
		return fmt.Sprintf("%d existing + %d new = %d total tools", r.Existing, len(r.Added), len(r.Tools))
	}
	return fmt.Sprintf("%d tools configured", len(r.Tools))
}
