// Package style provides shared UI styling primitives including brand colors
// and icons for consistent console output.
package style

import "github.com/charmbracelet/lipgloss"

// Brand Colors.
var (
	Iris   = lipgloss.Color("#8B5CF6")
	Slate  = lipgloss.Color("#667085")
	Green  = lipgloss.Color("#22A06B")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
)

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Arrow   = ">>>"
	Skip    = "~"
)

// Text styles.
var (
	// Command renders an echoed command line.
	Command = lipgloss.NewStyle().Foreground(Iris).Bold(true)
	// Label renders the key of a summary line.
	Label = lipgloss.NewStyle().Foreground(Slate).Width(10)
	// Success renders a successful outcome.
	Success = lipgloss.NewStyle().Foreground(Green).Bold(true)
	// Failure renders a failed outcome.
	Failure = lipgloss.NewStyle().Foreground(Red).Bold(true)
)
