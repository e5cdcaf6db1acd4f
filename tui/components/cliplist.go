package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/user/trimview/tui/styles"
)

// ClipItem is one row of the clip list.
type ClipItem struct {
	// Label is the positional label, e.g. "Video 1"
	Label string
	// Name is the file name
	Name string
	// Window is the trim window as "H:MM:SS-H:MM:SS"
	Window string
	// Trimmed is true in TRIMMED mode
	Trimmed bool
	// Err is the last error reported for this clip
	Err string
}

// ClipListState holds the selection and scroll position of the clip list.
type ClipListState struct {
	Items         []ClipItem
	SelectedIndex int
	ScrollOffset  int
}

// ClipList renders the clip list. Each clip takes two lines: label and name,
// then window, mode and any error. height is in lines.
func ClipList(state ClipListState, width, height int) string {
	if len(state.Items) == 0 {
		emptyStyle := lipgloss.NewStyle().Foreground(styles.Purple).Italic(true)
		return emptyStyle.Render(" No clips. Press A to add files.")
	}

	visible := height / 2
	if visible < 1 {
		visible = 1
	}
	state.keepSelectionVisible(visible)

	var lines []string
	for row := 0; row < visible; row++ {
		i := state.ScrollOffset + row
		if i >= len(state.Items) {
			break
		}
		lines = append(lines, renderClipRow(state.Items[i], i == state.SelectedIndex, width)...)
	}
	return strings.Join(lines, "\n")
}

func (s *ClipListState) keepSelectionVisible(visible int) {
	if s.SelectedIndex < s.ScrollOffset {
		s.ScrollOffset = s.SelectedIndex
	} else if s.SelectedIndex >= s.ScrollOffset+visible {
		s.ScrollOffset = s.SelectedIndex - visible + 1
	}
	maxOffset := len(s.Items) - visible
	if maxOffset < 0 {
		maxOffset = 0
	}
	if s.ScrollOffset > maxOffset {
		s.ScrollOffset = maxOffset
	}
	if s.ScrollOffset < 0 {
		s.ScrollOffset = 0
	}
}

func renderClipRow(item ClipItem, selected bool, width int) []string {
	lineStyle := lipgloss.NewStyle().Foreground(styles.LightLavender).Width(width)
	dimStyle := lipgloss.NewStyle().Foreground(styles.Lavender).Width(width)
	if selected {
		lineStyle = styles.Highlight.Width(width)
		dimStyle = lineStyle.Bold(false)
	}

	marker := "  "
	if selected {
		marker = "▸ "
	}
	mode := "RAW"
	if item.Trimmed {
		mode = "TRIMMED"
	}

	first := ansi.Truncate(fmt.Sprintf("%s%-8s %s", marker, item.Label, item.Name), width, "…")
	second := fmt.Sprintf("  %s  %s", item.Window, mode)
	if item.Err != "" {
		second += "  " + lipgloss.NewStyle().Foreground(styles.Red).Render("! "+item.Err)
	}
	second = ansi.Truncate(second, width, "…")

	return []string{lineStyle.Render(first), dimStyle.Render(second)}
}

// MoveUp moves the selection up in the list.
func (s *ClipListState) MoveUp() {
	if s.SelectedIndex > 0 {
		s.SelectedIndex--
	}
}

// MoveDown moves the selection down in the list.
func (s *ClipListState) MoveDown() {
	if s.SelectedIndex < len(s.Items)-1 {
		s.SelectedIndex++
	}
}

// Select sets the selection, clamped to the list.
func (s *ClipListState) Select(i int) {
	if i >= len(s.Items) {
		i = len(s.Items) - 1
	}
	if i < 0 {
		i = 0
	}
	s.SelectedIndex = i
}
