// Package style provides shared UI styling primitives including status colors
// and icons for consistent visual presentation across the renderer.
package style

import "github.com/charmbracelet/lipgloss"

// Status Colors.
var (
	Green  = lipgloss.Color("#22A06B")
	Yellow = lipgloss.Color("#F59E0B")
	Red    = lipgloss.Color("#D93025")
	Blue   = lipgloss.Color("#3B82F6")
	Slate  = lipgloss.Color("#667085")
	Violet = lipgloss.Color("#C084FC")
	White  = lipgloss.Color("#FFFFFF")
)

// Status symbols.
const (
	SymbolOk          = "✔" // U+2714 - Heavy Check Mark
	SymbolChanged     = "⚙" // U+2699 - Gear
	SymbolSkipped     = "⏭" // U+23ED - Right-Pointing Double Triangle with Bar
	SymbolFailed      = "✘" // U+2718 - Heavy Ballot X
	SymbolUnreachable = "🖧" // U+1F5A7 - Three Networked Computers
)

// Line styles for the scrolling log.
var (
	Ok          = lipgloss.NewStyle().Foreground(Green)
	Changed     = lipgloss.NewStyle().Foreground(Yellow)
	Skipped     = lipgloss.NewStyle().Foreground(Blue)
	Failed      = lipgloss.NewStyle().Foreground(Red)
	Unreachable = lipgloss.NewStyle().Foreground(Red)
	Retried     = lipgloss.NewStyle().Foreground(Slate)

	TaskPath = lipgloss.NewStyle().Foreground(Slate).Italic(true)
	Result   = lipgloss.NewStyle().Foreground(Violet).Bold(true)

	Bold   = lipgloss.NewStyle().Bold(true)
	Italic = lipgloss.NewStyle().Italic(true)
	Banner = lipgloss.NewStyle().Bold(true)
	Time   = lipgloss.NewStyle().Foreground(Green)
)
