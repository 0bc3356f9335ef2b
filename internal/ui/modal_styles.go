package ui

import "github.com/charmbracelet/lipgloss"

// ModalStyles contains the styles for dialogs cloned from the popup template.
var ModalStyles = struct {
	BoxDefault   lipgloss.Style // win_popup frame
	BoxError     lipgloss.Style // win_error frame
	Title        lipgloss.Style
	TitleWarning lipgloss.Style
	Label        lipgloss.Style
	Button       lipgloss.Style
	ButtonFired  lipgloss.Style
}{
	BoxDefault: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorHighlight)).
		Padding(0, 1),
	BoxError: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorDanger)).
		Padding(0, 1),
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	TitleWarning: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorDanger)),
	Label: lipgloss.NewStyle(),
	Button: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true),
	ButtonFired: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
}

func titleStyle(class string) lipgloss.Style {
	switch class {
	case "win_error":
		return ModalStyles.TitleWarning
	case "win_popup":
		return ModalStyles.Title
	default:
		return Styles.Title
	}
}

func textStyle(class string) lipgloss.Style {
	switch class {
	case "win_error", "win_popup":
		return ModalStyles.Label
	default:
		return Styles.Normal
	}
}

// frameStyle picks the frame for a root's skin class.
func frameStyle(class string) lipgloss.Style {
	switch class {
	case "win_error":
		return ModalStyles.BoxError
	case "win_popup":
		return ModalStyles.BoxDefault
	default:
		return Styles.Window
	}
}
