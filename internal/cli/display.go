package cli

import (
	"fmt"
	"io"

	"github.com/ariel-frischer/claude-allow/internal/catalog"
	"github.com/ariel-frischer/claude-allow/internal/cli/shared"
	"github.com/ariel-frischer/claude-allow/internal/permissions"
	"github.com/ariel-frischer/claude-allow/internal/selection"
	"github.com/mattn/go-runewidth"
)

// nameWidth is the padded width of the command name column.
const nameWidth = 12

// riskColor returns the color function for a risk level.
func riskColor(c *shared.Colors, risk catalog.RiskLevel) func(a ...interface{}) string {
	switch risk {
	case catalog.RiskDanger:
		return c.Red
	case catalog.RiskCaution:
		return c.Yellow
	default:
		return c.Green
	}
}

// riskIndicator returns the warning marker for a risk level, or "" for safe.
func riskIndicator(c *shared.Colors, risk catalog.RiskLevel) string {
	switch risk {
	case catalog.RiskDanger:
		return c.Red("⚠️  DANGER")
	case catalog.RiskCaution:
		return c.Yellow("⚠️  CAUTION")
	default:
		return ""
	}
}

// formatEntry renders "name         - description [indicator]".
func formatEntry(c *shared.Colors, e catalog.Entry) string {
	name := riskColor(c, e.Risk)(runewidth.FillRight(e.Name, nameWidth))
	line := fmt.Sprintf("%s - %s", name, e.Description)
	if ind := riskIndicator(c, e.Risk); ind != "" {
		line += " " + ind
	}
	return line
}

// printCatalog prints every catalog entry with its 1-based number.
func printCatalog(p *shared.Printer, c *shared.Colors, cat *catalog.Catalog) {
	p.Header("Available Commands to Allow Globally:")
	p.Println()
	for i, e := range cat.Entries() {
		num := c.Cyan(fmt.Sprintf("%3d.", i+1))
		p.Println(num + " " + formatEntry(c, e))
	}
}

// printLegend prints the risk color legend.
func printLegend(p *shared.Printer, c *shared.Colors) {
	p.Info("Color Legend:")
	p.Println()
	p.Println(fmt.Sprintf("  %s     - Safe commands (low risk)", c.Green("Green")))
	p.Println(fmt.Sprintf("  %s    - Caution commands (moderate risk) %s", c.Yellow("Yellow"), riskIndicator(c, catalog.RiskCaution)))
	p.Println(fmt.Sprintf("  %s       - Dangerous commands (high risk) %s", c.Red("Red"), riskIndicator(c, catalog.RiskDanger)))
}

// printSelectionOptions explains the accepted selection syntax.
func printSelectionOptions(p *shared.Printer, c *shared.Colors) {
	p.Info("Selection Options:")
	p.Println()
	p.Println("• Enter numbers separated by commas or spaces: 1,3,5 or 1 3 5")
	p.Println("• Enter ranges with dash: 1-10 or 1-5,8-12")
	for _, preset := range selection.Presets() {
		p.Println(fmt.Sprintf("• Enter '%s' to %s", preset.Name, preset.Description))
	}
	p.Println(fmt.Sprintf("• Enter %s followed by comma-separated commands (e.g. custom:docker,kubectl,helm)",
		c.Cyan("'"+selection.CustomPrefix+"'")))
}

// printIntro prints the catalog and selection help shown before the first prompt.
func printIntro(p *shared.Printer, c *shared.Colors, cat *catalog.Catalog) {
	printCatalog(p, c, cat)
	p.Println()
	p.Println(shared.Rule())
	printLegend(p, c)
	p.Println()
	printSelectionOptions(p, c)
	p.Println()
}

// printSelected lists the resolved selection.
func printSelected(p *shared.Printer, c *shared.Colors, entries []catalog.Entry) {
	p.Println()
	p.Info("Selected commands:")
	for _, e := range entries {
		p.Println("  " + formatEntry(c, e))
	}
}

// displayNames strips the Bash(...:*) wrapper from each tool.
func displayNames(tools []string) []string {
	out := make([]string, len(tools))
	for i, t := range tools {
		out[i] = permissions.DisplayName(t)
	}
	return out
}

// printTools prints permission strings in columns behind prefix.
func printTools(out io.Writer, layout shared.ColumnLayout, prefix string, tools []string) {
	layout.Prefix = prefix
	shared.PrintColumns(out, layout, displayNames(tools))
}

// printPresets prints the selection keywords as a table.
func printPresets(p *shared.Printer, c *shared.Colors) {
	p.Header("Selection keywords:")
	p.Println()
	for _, preset := range selection.Presets() {
		p.Println(fmt.Sprintf("  %s - %s", c.Cyan(runewidth.FillRight(preset.Name, 8)), preset.Description))
	}
	p.Println(fmt.Sprintf("  %s - comma-separated commands outside the catalog (caution)",
		c.Cyan(runewidth.FillRight(selection.CustomPrefix, 8))))
}
