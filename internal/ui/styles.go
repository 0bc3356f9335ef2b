package ui

import "github.com/charmbracelet/lipgloss"

// Theme colors used throughout the UI
const (
	ColorAccent    = "86"  // Cyan/green - for titles, highlights
	ColorHighlight = "205" // Magenta - for popup borders, buttons
	ColorDanger    = "196" // Red - for error boxes
	ColorMuted     = "241" // Gray - for dimmed text, hints
	ColorText      = "252" // Light gray - for normal text
	ColorDim       = "238" // Dark gray - for the overlay backdrop
)

// Styles contains the styles for HUD windows and screen-level chrome.
var Styles = struct {
	Window   lipgloss.Style // HUD window frame
	Title    lipgloss.Style // Window title line
	Normal   lipgloss.Style // Body text
	Hint     lipgloss.Style // Help/hint text
	Backdrop lipgloss.Style // Content dimmed under an overlay
	Status   lipgloss.Style // Bottom status line
}{
	Window: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorAccent)).
		Padding(0, 1),
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	Normal: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	Hint: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Backdrop: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDim)).
		Faint(true),
	Status: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
}
