package tui

import "github.com/charmbracelet/lipgloss"

// Color constants for the taskboard TUI theme
const (
	ColorBorder        = "#3A3F55" // grey-blue
	ColorPrimaryText   = "#E6EAF2" // titles, field labels, user input
	ColorSecondaryText = "#B1B8C7" // secondary text
	ColorDisabledText  = "#6D7383" // muted text, other-month days
	ColorHelpText      = "240"     // dark grey for key hints

	ColorAccentMain   = "#7C3AED" // active tab, selected row
	ColorAccentBright = "#A78BFA" // highlights, focused field

	ColorError   = "#EF4444"
	ColorSuccess = "#22C55E"
	ColorWarning = "#F59E0B"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorPrimaryText)).
			Bold(true)

	tabStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorSecondaryText)).
			Padding(0, 2)

	activeTabStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorPrimaryText)).
			Background(lipgloss.Color(ColorAccentMain)).
			Padding(0, 2)

	selectedRowStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(ColorPrimaryText)).
				Background(lipgloss.Color(ColorAccentMain))

	rowStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorSecondaryText))

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorDisabledText))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorHelpText))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorError))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorSuccess))

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorWarning))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(ColorBorder)).
			Padding(1, 2)

	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(ColorAccentBright)).
			Padding(1, 3)
)

func statusStyle(status string) lipgloss.Style {
	switch status {
	case "completed":
		return successStyle
	case "in_progress":
		return warningStyle
	default:
		return lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentBright))
	}
}
