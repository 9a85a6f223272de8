package main

import "github.com/charmbracelet/lipgloss"

// Centralized style definitions for the TUI.
var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("4")) // blue

	// Field labels.
	labelStyle        = lipgloss.NewStyle().Bold(true)
	labelFocusedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2")) // green

	// Input borders.
	focusedBorder = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("2")) // green
	blurredBorder = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("8"))

	// Output panels.
	queryBlockStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("6")).PaddingLeft(1).PaddingRight(1) // cyan
	queryTextStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))

	// Unparsed replies render dimmed so it is visible that the blank-line
	// convention was not followed.
	unparsedNoteStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Faint(true) // amber

	// Spinner / status.
	spinnerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("5")) // magenta
	statusStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

	// Error block style. Failures render here, never in the query field.
	errorBlockStyle = lipgloss.NewStyle().
			PaddingLeft(1).
			BorderLeft(true).
			BorderStyle(lipgloss.ThickBorder()).
			BorderForeground(lipgloss.Color("1"))
	errorTextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1")) // red
)
