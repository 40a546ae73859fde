package cmd

import (
	"charm.land/lipgloss/v2"
)

// Palette shared by the read-view commands.
var (
	colorPrimary = lipgloss.Color("#0EA5E9") // Sky
	colorSuccess = lipgloss.Color("#22C55E") // Green
	colorError   = lipgloss.Color("#F43F5E") // Rose
	colorAccent  = lipgloss.Color("#F59E0B") // Amber
	colorDim     = lipgloss.Color("#94A3B8") // Slate
)

var (
	styleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	styleCorrect = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorSuccess)

	styleWrong = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorError)

	styleAccent = lipgloss.NewStyle().
			Foreground(colorAccent)

	styleHint = lipgloss.NewStyle().
			Foreground(colorDim).
			Italic(true)

	styleCode = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorAccent)
)
