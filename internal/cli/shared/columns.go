package shared

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
)

// DefaultMinColumnWidth is the narrowest column PrintColumns uses.
const DefaultMinColumnWidth = 20

// ColumnLayout controls how PrintColumns arranges items.
type ColumnLayout struct {
	// Width is the terminal width in cells.
	Width int
	// MinColumnWidth is the lower bound on a column's width.
	MinColumnWidth int
	// Prefix starts every row, e.g. "  →" or "  ✓".
	Prefix string
}

// ColumnWidth returns the cell width of one column for items.
func (l ColumnLayout) ColumnWidth(items []string) int {
	widest := 0
	for _, item := range items {
		if w := runewidth.StringWidth(item); w > widest {
			widest = w
		}
	}
	minWidth := l.MinColumnWidth
	if minWidth <= 0 {
		minWidth = DefaultMinColumnWidth
	}
	return max(widest+2, minWidth)
}

// ColumnsPerRow returns how many columns of colWidth fit in the layout width.
// At least one column is always used.
func (l ColumnLayout) ColumnsPerRow(colWidth int) int {
	width := l.Width
	if width <= 0 {
		width = DefaultTerminalWidth
	}
	return max(1, (width-4)/colWidth)
}

// Rows splits items into padded rows. Trailing padding is trimmed.
func (l ColumnLayout) Rows(items []string) []string {
	if len(items) == 0 {
		return nil
	}
	colWidth := l.ColumnWidth(items)
	perRow := l.ColumnsPerRow(colWidth)

	rows := make([]string, 0, (len(items)+perRow-1)/perRow)
	for i := 0; i < len(items); i += perRow {
		end := min(i+perRow, len(items))
		var b strings.Builder
		for _, item := range items[i:end] {
			b.WriteString(runewidth.FillRight(item, colWidth-2))
		}
		rows = append(rows, strings.TrimSpace(b.String()))
	}
	return rows
}

// PrintColumns writes items in yellow, arranged in columns.
func PrintColumns(out io.Writer, layout ColumnLayout, items []string) {
	yellow := color.New(color.FgYellow).SprintFunc()
	for _, row := range layout.Rows(items) {
		fmt.Fprintf(out, "%s %s\n", layout.Prefix, yellow(row))
	}
}
