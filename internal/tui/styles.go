package tui

import "github.com/charmbracelet/lipgloss"

// Color palette - keeping it minimal and accessible.
var (
	ColorPrimary   = lipgloss.Color("39")  // Blue
	ColorSecondary = lipgloss.Color("245") // Gray
	ColorSuccess   = lipgloss.Color("34")  // Green
	ColorWarning   = lipgloss.Color("214") // Orange
	ColorError     = lipgloss.Color("196") // Red
	ColorMuted     = lipgloss.Color("240") // Dark gray
	ColorText      = lipgloss.Color("252") // Light gray
)

// Styles for search output.
var (
	// File header, e.g. "src/a.js" or "src/a.js#3"
	PathStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	LineNumberStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	// Target occurrences inside matched lines
	HighlightStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorWarning)

	UnusedStyle = lipgloss.NewStyle().
			Foreground(ColorError)

	SummaryStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary)

	// Status styles
	SuccessStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError)

	WarningStyle = lipgloss.NewStyle().
			Foreground(ColorWarning)

	// Spinner styles
	SpinnerStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary)

	SpinnerMessageStyle = lipgloss.NewStyle().
				Foreground(ColorText)
)

// Symbols for visual feedback.
const (
	SymbolCheck   = "✓"
	SymbolCross   = "✗"
	SymbolBullet  = "•"
	SymbolWarning = "!"
)
