package tui

import "github.com/charmbracelet/lipgloss"

// Colors
var (
	colorAccent  = lipgloss.Color("#5FAFD7") // steel blue for headers and cursor
	colorWhite   = lipgloss.Color("#FFFFFF")
	colorDim     = lipgloss.Color("#6B7280")
	colorRunning = lipgloss.Color("#10B981")
	colorStopped = lipgloss.Color("#F59E0B")
	colorRestart = lipgloss.Color("#A78BFA")
	colorError   = lipgloss.Color("#EF4444")
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorAccent)

	tabActiveStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorWhite).
			Underline(true)

	tabInactiveStyle = lipgloss.NewStyle().
				Foreground(colorDim)

	projectStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorAccent)

	selectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorWhite)

	itemStyle = lipgloss.NewStyle().
			Foreground(colorWhite)

	dimStyle = lipgloss.NewStyle().
			Foreground(colorDim)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorError).
			Bold(true)

	notifyInfoStyle = lipgloss.NewStyle().
			Foreground(colorRunning)

	notifyWarnStyle = lipgloss.NewStyle().
			Foreground(colorStopped)

	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorDim).
			Padding(0, 1)

	helpStyle = lipgloss.NewStyle().
			Foreground(colorDim)
)

// Status text styles
var (
	statusRunningStyle = lipgloss.NewStyle().Foreground(colorRunning)
	statusStoppedStyle = lipgloss.NewStyle().Foreground(colorStopped)
	statusRestartStyle = lipgloss.NewStyle().Foreground(colorRestart)
	statusOtherStyle   = lipgloss.NewStyle().Foreground(colorDim)
)

// cursorMarker returns the selection cursor for a row.
func cursorMarker(selected bool) string {
	if selected {
		return lipgloss.NewStyle().Foreground(colorAccent).Bold(true).Render("› ")
	}
	return "  "
}
