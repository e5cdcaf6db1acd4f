package layout

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/user/trimview/tui/styles"
)

// Responsive layout constants.
const (
	MinTerminalWidth = 60 // below this width only the mini player is drawn
	ListMinWidth     = 28 // the clip list never gets narrower than this
	ListMaxWidth     = 48
)

// ComputeColumnWidths splits the terminal into the clip list on the left and
// the detail column on the right, separated by one border character.
func ComputeColumnWidths(termWidth int) (list, detail int) {
	usable := termWidth - 1
	if usable < 2 {
		return 0, 0
	}
	list = usable * 2 / 5
	if list < ListMinWidth {
		list = ListMinWidth
	}
	if list > ListMaxWidth {
		list = ListMaxWidth
	}
	if list > usable-1 {
		list = usable - 1
	}
	detail = usable - list
	return list, detail
}

// JoinColumns joins pre-rendered column strings side by side with border separators.
// Each column is normalized to the given height and padded to its width.
func JoinColumns(columns []string, widths []int, height int) string {
	borderStr := lipgloss.NewStyle().
		Foreground(styles.Purple).
		Render("│")

	colLines := make([][]string, len(columns))
	for i, col := range columns {
		colLines[i] = NormalizeLines(strings.Split(col, "\n"), height)
	}

	rows := make([]string, 0, height)
	for row := 0; row < height; row++ {
		parts := make([]string, 0, len(colLines))
		for i, lines := range colLines {
			parts = append(parts, PadToWidth(lines[row], widths[i]))
		}
		rows = append(rows, strings.Join(parts, borderStr))
	}

	return strings.Join(rows, "\n")
}
