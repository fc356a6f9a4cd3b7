package cmd

import "github.com/charmbracelet/lipgloss"

// Color palette - consistent colors across all command output
var (
	successColor = lipgloss.Color("#5AF78E") // Green - generated files
	errorColor   = lipgloss.Color("#FF5C57") // Red - failures
	mutedColor   = lipgloss.Color("#6C7086") // Gray - summaries, detail columns
	primaryColor = lipgloss.Color("#00D7FF") // Cyan - headings
)

var (
	successStyle = lipgloss.NewStyle().Foreground(successColor)
	errorStyle   = lipgloss.NewStyle().Foreground(errorColor)
	mutedStyle   = lipgloss.NewStyle().Foreground(mutedColor)
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(primaryColor)
)

// Status icons
const (
	iconOK     = "✓"
	iconFailed = "✗"
)
