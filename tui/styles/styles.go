// Package styles provides Lipgloss styles for the TUI using the Ciapre colour palette.
package styles

import "github.com/charmbracelet/lipgloss"

// Color palette - Ciapre (warm, earthy) theme from Gogh
const (
	// DeepPurple is the main background colour
	DeepPurple = lipgloss.Color("#191C27")
	// DarkPurple is the bar background
	DarkPurple = lipgloss.Color("#181818")
	// Purple is the border/dim accent colour
	Purple = lipgloss.Color("#5C4F4B")
	// BrightPurple is used for highlights and the played part of the strip
	BrightPurple = lipgloss.Color("#724D7C")
	// Lavender is a secondary text colour
	Lavender = lipgloss.Color("#AEA47A")
	// LightLavender is the primary text colour
	LightLavender = lipgloss.Color("#F3DBB2")
	// Pink is used for headers and the playhead
	Pink = lipgloss.Color("#D33061")
	// Cyan marks the trim window and shortcuts
	Cyan = lipgloss.Color("#3097C6")
	// Amber marks TRIMMED mode
	Amber = lipgloss.Color("#CC8B3F")
	// Red is used for errors
	Red = lipgloss.Color("#AC3835")
	// Green is used for success messages
	Green = lipgloss.Color("#A6A75D")
)

// Highlight is the style for the selected clip row.
var Highlight = lipgloss.NewStyle().
	Background(BrightPurple).
	Foreground(LightLavender).
	Bold(true)

// PrimaryText is the style for primary text content
var PrimaryText = lipgloss.NewStyle().
	Foreground(LightLavender)

// SecondaryText is the style for less prominent text
var SecondaryText = lipgloss.NewStyle().
	Foreground(Lavender)

// Header is the style for box titles.
var Header = lipgloss.NewStyle().
	Foreground(Pink).
	Bold(true)

// Warning is the style for error messages
var Warning = lipgloss.NewStyle().
	Foreground(Red).
	Bold(true)

// Success is the style for success messages
var Success = lipgloss.NewStyle().
	Foreground(Green).
	Bold(true)

// ModeBadge returns the badge style for a view mode label.
func ModeBadge(trimmed bool) lipgloss.Style {
	s := lipgloss.NewStyle().Bold(true).Padding(0, 1).Foreground(DeepPurple)
	if trimmed {
		return s.Background(Amber)
	}
	return s.Background(Lavender)
}
