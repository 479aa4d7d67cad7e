package tui

import "github.com/charmbracelet/lipgloss"

const (
	cellWidth = 5
	columns   = 4
)

var (
	displayStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Width(cellWidth*columns + columns - 1).
			Align(lipgloss.Right).
			Bold(true)

	displayErrorStyle = displayStyle.
				Foreground(lipgloss.Color("196"))

	buttonStyle = lipgloss.NewStyle().
			Width(cellWidth).
			Align(lipgloss.Center).
			MarginRight(1).
			Foreground(lipgloss.Color("252")).
			Background(lipgloss.Color("237"))

	operatorStyle = buttonStyle.
			Foreground(lipgloss.Color("214"))

	focusedStyle = buttonStyle.
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("63")).
			Bold(true)

	helpStyle = lipgloss.NewStyle().MarginTop(1)
)
