package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/user/trimview/pkg/timeutil"
	"github.com/user/trimview/tui/styles"
)

// StatusBarState holds the current playback state for the status bar.
type StatusBarState struct {
	// Paused indicates if the main window is paused
	Paused bool
	// TimePos is the main window position in seconds
	TimePos float64
	// Duration is the selected clip's duration in seconds
	Duration float64
	// Trimmed is true when the selected clip is in TRIMMED mode
	Trimmed bool
	// Label is the selected clip's label, e.g. "Video 2"
	Label string
	// Count is the number of loaded clips
	Count int
	// Audio indicates the audio-only window is running
	Audio bool
	// Connected is false while the main window is unreachable
	Connected bool
}

// ModeLabel returns RAW or TRIMMED.
func (s StatusBarState) ModeLabel() string {
	if s.Trimmed {
		return "TRIMMED"
	}
	return "RAW"
}

// StatusBar renders the one-line status bar across the top of the screen.
func StatusBar(state StatusBarState, width int) string {
	playIcon := "▶"
	if state.Paused {
		playIcon = "⏸"
	}

	left := fmt.Sprintf(" %s %s / %s ", playIcon,
		timeutil.FormatTime(state.TimePos), timeutil.FormatTime(state.Duration))
	left += styles.ModeBadge(state.Trimmed).Render(state.ModeLabel())

	var right string
	if state.Count > 0 {
		right = fmt.Sprintf("%s of %d", state.Label, state.Count)
	} else {
		right = "no clips"
	}
	if state.Audio {
		right += " ♪"
	}
	if !state.Connected {
		right += " ! mpv"
	}
	right += " "

	padding := width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 0 {
		padding = 0
	}

	return lipgloss.NewStyle().
		Background(styles.DarkPurple).
		Foreground(styles.LightLavender).
		Bold(true).
		Width(width).
		Render(left + strings.Repeat(" ", padding) + right)
}
