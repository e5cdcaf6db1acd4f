package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/user/trimview/tui/styles"
)

// ModeIndicator renders the input mode next to the preview sync phase.
// mode is one of "Normal", "Command", "Trim", "Add".
func ModeIndicator(mode, phase string, width int) string {
	textStyle := lipgloss.NewStyle().Foreground(styles.LightLavender)

	left := " " + mode
	right := "preview " + phase + " "

	innerW := width - 2
	pad := innerW - lipgloss.Width(left) - lipgloss.Width(right)
	if pad < 1 {
		pad = 1
	}

	return RenderInfoBox("Mode", []string{textStyle.Render(left + strings.Repeat(" ", pad) + right)}, width)
}
