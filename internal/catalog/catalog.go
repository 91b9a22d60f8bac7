// Package catalog defines the fixed set of shell commands claude-allow offers
// for global allow-listing, along with the custom entries a user can add at
// selection time.
//
// The catalog is built once at startup from the embedded catalog.yaml document
// and passed explicitly to the selection and permissions packages. A Catalog
// is immutable after construction.
package catalog

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// MCPPrefix marks tool names that are MCP permissions rather than shell commands.
const MCPPrefix = "mcp__"

// MCPWildcard is the catalog entry granting every MCP server tool.
const MCPWildcard = "mcp__*"

//go:embed catalog.yaml
var defaultDocument []byte

// RiskLevel classifies how much damage a command can do when run unattended.
type RiskLevel string

const (
	RiskSafe    RiskLevel = "safe"
	RiskCaution RiskLevel = "caution"
	RiskDanger  RiskLevel = "danger"
)

// Valid reports whether r is one of the known risk levels.
func (r RiskLevel) Valid() bool {
	switch r {
	case RiskSafe, RiskCaution, RiskDanger:
		return true
	default:
		return false
	}
}

// Origin records where an Entry came from.
type Origin int

const (
	// OriginCatalog marks an entry from the fixed catalog.
	OriginCatalog Origin = iota
	// OriginCustom marks an entry typed by the user after "custom:".
	OriginCustom
)

// String returns a human-readable representation of the origin.
func (o Origin) String() string {
	switch o {
	case OriginCatalog:
		return "catalog"
	case OriginCustom:
		return "custom"
	default:
		return "unknown"
	}
}

// Entry is a single command that can be allow-listed.
type Entry struct {
	Name        string
	Description string
	Risk        RiskLevel
	Origin      Origin
}

// IsMCP reports whether the entry names an MCP permission.
func (e Entry) IsMCP() bool {
	return strings.HasPrefix(e.Name, MCPPrefix)
}

// NewCustomEntry builds the entry for a user-supplied command.
// Custom commands are always classified as caution.
func NewCustomEntry(name string) Entry {
	return Entry{
		Name:        name,
		Description: "Custom command - " + name,
		Risk:        RiskCaution,
		Origin:      OriginCustom,
	}
}

// Catalog is an ordered, immutable list of catalog entries addressed by
// 0-based index.
type Catalog struct {
	entries []Entry
	index   map[string]int
}

// New builds a Catalog from entries. Every entry must have a non-empty unique
// name and a valid risk level. Origins are forced to OriginCatalog.
func New(entries []Entry) (*Catalog, error) {
	c := &Catalog{
		entries: make([]Entry, 0, len(entries)),
		index:   make(map[string]int, len(entries)),
	}

	for i, e := range entries {
		name := strings.TrimSpace(e.Name)
		if name == "" {
			return nil, fmt.Errorf("entry %d: name is required", i+1)
		}
		if !e.Risk.Valid() {
			return nil, fmt.Errorf("entry %d (%s): unknown risk level %q", i+1, name, e.Risk)
		}
		if prev, dup := c.index[name]; dup {
			return nil, fmt.Errorf("entry %d (%s): duplicate of entry %d", i+1, name, prev+1)
		}

		c.index[name] = len(c.entries)
		c.entries = append(c.entries, Entry{
			Name:        name,
			Description: e.Description,
			Risk:        e.Risk,
			Origin:      OriginCatalog,
		})
	}

	return c, nil
}

// document mirrors the layout of catalog.yaml.
type document struct {
	Commands []struct {
		Name        string `yaml:"name"`
		Description string `yaml:"description"`
		Risk        string `yaml:"risk"`
	} `yaml:"commands"`
}

// Parse builds a Catalog from a YAML document. Unknown fields are rejected.
func Parse(data []byte) (*Catalog, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var doc document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("catalog document is empty")
		}
		return nil, fmt.Errorf("parsing catalog: %w", err)
	}

	entries := make([]Entry, 0, len(doc.Commands))
	for _, c := range doc.Commands {
		entries = append(entries, Entry{
			Name:        c.Name,
			Description: c.Description,
			Risk:        RiskLevel(c.Risk),
		})
	}

	cat, err := New(entries)
	if err != nil {
		return nil, fmt.Errorf("building catalog: %w", err)
	}
	return cat, nil
}

// Default returns the catalog shipped with claude-allow.
func Default() (*Catalog, error) {
	return Parse(defaultDocument)
}

// Len returns the number of catalog entries.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// At returns the entry at 0-based index i.
func (c *Catalog) At(i int) (Entry, bool) {
	if i < 0 || i >= len(c.entries) {
		return Entry{}, false
	}
	return c.entries[i], true
}

// Entries returns a copy of all entries in catalog order.
func (c *Catalog) Entries() []Entry {
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// IndexOf returns the 0-based index of the entry with the given name.
func (c *Catalog) IndexOf(name string) (int, bool) {
	i, ok := c.index[name]
	return i, ok
}

// Indices returns, in ascending order, the indices of entries for which keep
// returns true.
func (c *Catalog) Indices(keep func(i int, e Entry) bool) []int {
	var out []int
	for i, e := range c.entries {
		if keep(i, e) {
			out = append(out, i)
		}
	}
	return out
}
