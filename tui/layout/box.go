package layout

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/user/trimview/tui/styles"
)

// Container clips content to exactly Width columns and Height lines. When
// lines are cut off the last visible line says how many are hidden.
type Container struct {
	Width  int
	Height int
}

// Render returns content fitted to the container.
func (c Container) Render(content string) string {
	if c.Height <= 0 {
		return ""
	}
	lines := strings.Split(content, "\n")
	if hidden := len(lines) - c.Height; hidden > 0 {
		lines = lines[:c.Height]
		more := lipgloss.NewStyle().Foreground(styles.Purple).Render(fmt.Sprintf("↓ %d more", hidden+1))
		lines[c.Height-1] = more
	}
	lines = NormalizeLines(lines, c.Height)
	for i := range lines {
		lines[i] = PadToWidth(lines[i], c.Width)
	}
	return strings.Join(lines, "\n")
}

// PadToWidth truncates or right-pads s to exactly width cells. Escape
// sequences and wide runes are measured by display width.
func PadToWidth(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if lipgloss.Width(s) > width {
		s = ansi.Truncate(s, width, "")
	}
	if w := lipgloss.Width(s); w < width {
		s += strings.Repeat(" ", width-w)
	}
	return s
}

// NormalizeLines cuts or extends lines with blanks to exactly height entries.
func NormalizeLines(lines []string, height int) []string {
	out := make([]string, height)
	copy(out, lines)
	return out
}
