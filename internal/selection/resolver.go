// Package selection turns the free-form selection string typed at the
// "Enter your selection" prompt into an ordered list of catalog entries.
//
// Supported forms, checked in order:
//
//	custom:a,b,c   ad-hoc commands (caution), kept in typed order
//	all            every catalog entry
//	common         the first 40 entries
//	safe           entries with risk "safe"
//	mcp            the mcp__* wildcard entry
//	dev            developer tooling (git, npm, docker, ...)
//	system         system administration (systemctl, mount, ...)
//	1,3 5 8-12     1-based numbers and inclusive ranges
package selection

import (
	"fmt"
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"unicode"

	"github.com/ariel-frischer/claude-allow/internal/catalog"
)

// CustomPrefix introduces a comma-separated list of custom commands.
const CustomPrefix = "custom:"

// CommonCount is how many leading catalog entries the "common" preset selects.
const CommonCount = 40

var (
	numberPattern = regexp.MustCompile(`^\d+$`)
	rangePattern  = regexp.MustCompile(`^(\d+)-(\d+)$`)
)

// Preset is a named keyword selecting a fixed subset of the catalog.
type Preset struct {
	Name        string
	Description string
	selects     func(i int, e catalog.Entry) bool
}

var devCommands = nameSet("git", "npm", "yarn", "pip", "docker", "kubectl", "terraform", "ansible")

var systemCommands = nameSet("systemctl", "service", "mount", "umount", "fdisk", "ifconfig", "ip", "netstat")

// presets are matched in this order after the custom: prefix.
var presets = []Preset{
	{
		Name:        "all",
		Description: "select all commands",
		selects:     func(int, catalog.Entry) bool { return true },
	},
	{
		Name:        "common",
		Description: fmt.Sprintf("select most commonly used commands (1-%d)", CommonCount),
		selects:     func(i int, _ catalog.Entry) bool { return i < CommonCount },
	},
	{
		Name:        "safe",
		Description: "select only safe commands (green)",
		selects:     func(_ int, e catalog.Entry) bool { return e.Risk == catalog.RiskSafe },
	},
	{
		Name:        "mcp",
		Description: "allow all MCP server tools",
		selects:     func(_ int, e catalog.Entry) bool { return e.Name == catalog.MCPWildcard },
	},
	{
		Name:        "dev",
		Description: "select development-related commands",
		selects:     func(_ int, e catalog.Entry) bool { return devCommands[e.Name] },
	},
	{
		Name:        "system",
		Description: "select system administration commands",
		selects:     func(_ int, e catalog.Entry) bool { return systemCommands[e.Name] },
	},
}

// Presets returns the keyword presets in matching order.
func Presets() []Preset {
	out := make([]Preset, len(presets))
	copy(out, presets)
	return out
}

func nameSet(names ...string) map[string]bool {
	set := make(map[string]bool, len(names))
	for _, n := range names {
		set[n] = true
	}
	return set
}

// Selection is the outcome of resolving one input string.
type Selection struct {
	// Indices are catalog indices, or Len()+k for the k-th custom entry.
	// Sorted and unique except for custom selections, which keep typed order.
	Indices []int

	// Entries holds the entry for each index, in the same order.
	Entries []catalog.Entry

	// Warnings are recoverable problems found while parsing.
	Warnings []string

	// Notes are informational messages (e.g. custom commands accepted).
	Notes []string
}

// Empty reports whether nothing valid was selected.
func (s Selection) Empty() bool {
	return len(s.Indices) == 0
}

// Custom returns the custom entries of the selection in typed order.
func (s Selection) Custom() []catalog.Entry {
	var out []catalog.Entry
	for _, e := range s.Entries {
		if e.Origin == catalog.OriginCustom {
			out = append(out, e)
		}
	}
	return out
}

// Resolver resolves selection strings against a catalog.
type Resolver struct {
	catalog *catalog.Catalog
}

// NewResolver creates a Resolver for the given catalog.
func NewResolver(cat *catalog.Catalog) *Resolver {
	return &Resolver{catalog: cat}
}

// Resolve parses input and returns the selected entries. The result is empty
// when nothing valid was found; callers should re-prompt in that case.
func (r *Resolver) Resolve(input string) Selection {
	input = strings.TrimSpace(input)
	if input == "" {
		return Selection{}
	}

	if strings.HasPrefix(input, CustomPrefix) {
		return r.resolveCustom(strings.TrimPrefix(input, CustomPrefix))
	}

	for _, p := range presets {
		if input == p.Name {
			return r.fromIndices(r.catalog.Indices(p.selects), nil)
		}
	}

	return r.resolveManual(input)
}

// resolveCustom builds custom entries from a comma-separated list. Tokens are
// neither de-duplicated against each other nor against the catalog.
func (r *Resolver) resolveCustom(list string) Selection {
	var names []string
	for _, part := range strings.Split(list, ",") {
		if name := strings.TrimSpace(part); name != "" {
			names = append(names, name)
		}
	}

	if len(names) == 0 {
		return Selection{
			Warnings: []string{fmt.Sprintf("No custom commands provided after %q", CustomPrefix)},
		}
	}

	sel := Selection{
		Indices: make([]int, 0, len(names)),
		Entries: make([]catalog.Entry, 0, len(names)),
		Notes: []string{
			fmt.Sprintf("Added %d custom commands: %s", len(names), strings.Join(names, ", ")),
		},
	}
	offset := r.catalog.Len()
	for k, name := range names {
		sel.Indices = append(sel.Indices, offset+k)
		sel.Entries = append(sel.Entries, catalog.NewCustomEntry(name))
	}
	return sel
}

// resolveManual handles numbers and ranges separated by commas or whitespace.
// Invalid tokens produce warnings and are skipped.
func (r *Resolver) resolveManual(input string) Selection {
	n := r.catalog.Len()
	tokens := strings.FieldsFunc(input, func(c rune) bool {
		return c == ',' || unicode.IsSpace(c)
	})

	selected := make(map[int]bool)
	var warnings []string

	for _, tok := range tokens {
		switch {
		case numberPattern.MatchString(tok):
			num := atoi(tok)
			if num >= 1 && num <= n {
				selected[num-1] = true
			} else {
				warnings = append(warnings, fmt.Sprintf("Number %s is out of range (1-%d)", tok, n))
			}

		case rangePattern.MatchString(tok):
			m := rangePattern.FindStringSubmatch(tok)
			start, end := atoi(m[1]), atoi(m[2])
			if start >= 1 && end <= n && start <= end {
				for i := start; i <= end; i++ {
					selected[i-1] = true
				}
			} else {
				warnings = append(warnings, fmt.Sprintf("Range %s is invalid", tok))
			}

		default:
			warnings = append(warnings, fmt.Sprintf("Invalid input: %s", tok))
		}
	}

	indices := make([]int, 0, len(selected))
	for i := range selected {
		indices = append(indices, i)
	}
	sort.Ints(indices)

	return r.fromIndices(indices, warnings)
}

// fromIndices materializes catalog indices into a Selection.
func (r *Resolver) fromIndices(indices []int, warnings []string) Selection {
	sel := Selection{Warnings: warnings}
	for _, i := range indices {
		e, ok := r.catalog.At(i)
		if !ok {
			continue
		}
		sel.Indices = append(sel.Indices, i)
		sel.Entries = append(sel.Entries, e)
	}
	return sel
}

// atoi parses a string of ASCII digits, saturating at math.MaxInt so huge
// numbers fall out of range instead of failing.
func atoi(s string) int {
	v, err := strconv.Atoi(s)
	if err != nil {
		return math.MaxInt
	}
	return v
}
