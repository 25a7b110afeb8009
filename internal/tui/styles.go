package tui

import "github.com/charmbracelet/lipgloss"

// Palette
var (
	colorAccent  = lipgloss.Color("62")  // Purple
	colorCursor  = lipgloss.Color("170") // Light purple
	colorNumber  = lipgloss.Color("205") // Pink
	colorText    = lipgloss.Color("252") // Light gray
	colorMuted   = lipgloss.Color("241") // Dark gray
	colorWarning = lipgloss.Color("228") // Yellow
	colorError   = lipgloss.Color("196") // Red
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)

	// Cue rows
	cursorRowStyle = lipgloss.NewStyle().Foreground(colorCursor).Bold(true)
	rowStyle       = lipgloss.NewStyle().Foreground(colorText)
	numberStyle    = lipgloss.NewStyle().Foreground(colorNumber).Bold(true)
	unsetStyle     = lipgloss.NewStyle().Foreground(colorMuted)
	outOfOrderMark = lipgloss.NewStyle().Foreground(colorWarning).Bold(true).Render("!")

	dimStyle   = lipgloss.NewStyle().Foreground(colorMuted)
	errorStyle = lipgloss.NewStyle().Foreground(colorError).Bold(true)
	hintStyle  = lipgloss.NewStyle().Foreground(colorMuted).MarginTop(1)

	helpOverlayStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorAccent).
				Padding(1, 2).
				MarginTop(1)
)
