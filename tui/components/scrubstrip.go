package components

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/user/trimview/pkg/timeutil"
	"github.com/user/trimview/tui/styles"
)

// ScrubStripHeight is the number of lines ScrubStrip renders.
const ScrubStripHeight = 6

// stripTimeWidth is the fixed width of the " H:MM:SS - H:MM:SS" label.
const stripTimeWidth = 20

// ScrubState is what the scrub strip shows: the trim window of the selected
// clip and where the preview currently is inside it.
type ScrubState struct {
	Start    float64
	End      float64
	Position float64
	// Seeded is false until the preview has reported its metadata.
	Seeded bool
	// Enabled is false when click-to-seek is turned off.
	Enabled bool
}

// StripLayout locates the clickable bar inside a rendered strip.
type StripLayout struct {
	// Left is the column of the first bar cell.
	Left int
	// Width is the number of bar cells.
	Width int
	// Rows are the strip lines, relative to its top, that accept clicks.
	Rows [2]int
}

// ScrubStripLayout returns the bar geometry for a strip of the given width.
func ScrubStripLayout(width int) StripLayout {
	barWidth := width - 4 - stripTimeWidth - 2
	if barWidth < 10 {
		barWidth = 10
	}
	return StripLayout{Left: 2, Width: barWidth, Rows: [2]int{2, 3}}
}

// Offset returns the cell offset of column x on the bar and whether x and the
// strip-relative row hit it. The last cell maps to offset Width-1.
func (l StripLayout) Offset(x, row int) (int, bool) {
	if row != l.Rows[0] && row != l.Rows[1] {
		return 0, false
	}
	off := x - l.Left
	if off < 0 || off >= l.Width {
		return 0, false
	}
	return off, true
}

// playhead returns the bar cell under the preview position. A window with no
// positive span pins the playhead to the first cell.
func (s ScrubState) playhead(barWidth int) int {
	span := s.End - s.Start
	if span <= 0 || math.IsNaN(span) {
		return 0
	}
	frac := (s.Position - s.Start) / span
	if math.IsNaN(frac) || frac < 0 {
		frac = 0
	}
	if frac > 1 {
		frac = 1
	}
	return int(math.Round(float64(barWidth-1) * frac))
}

// ScrubStrip renders the clickable strip spanning the trim window in a
// bordered container. Output is ScrubStripHeight lines.
func ScrubStrip(state ScrubState, width int) string {
	if width < 20 {
		return ""
	}
	layout := ScrubStripLayout(width)

	filledStyle := lipgloss.NewStyle().Foreground(styles.BrightPurple)
	unfilledStyle := lipgloss.NewStyle().Foreground(styles.Purple)
	timeStyle := lipgloss.NewStyle().Foreground(styles.LightLavender).Bold(true)
	posStyle := lipgloss.NewStyle().Foreground(styles.Pink).Bold(true)
	borderStyle := lipgloss.NewStyle().Foreground(styles.Purple)

	pos := state.playhead(layout.Width)

	var bar strings.Builder
	for i := 0; i < layout.Width; i++ {
		switch {
		case !state.Seeded:
			bar.WriteString(unfilledStyle.Render("┄"))
		case i < pos:
			bar.WriteString(filledStyle.Render("━"))
		case i == pos:
			bar.WriteString(posStyle.Render("╸"))
		default:
			bar.WriteString(unfilledStyle.Render("─"))
		}
	}

	timeDisplay := fmt.Sprintf(" %8s - %-8s", timeutil.FormatTime(state.Start), timeutil.FormatTime(state.End))
	barLine := " " + bar.String() + " " + timeStyle.Render(timeDisplay)

	var indicator strings.Builder
	indicator.WriteString(" ")
	if state.Seeded {
		indicator.WriteString(strings.Repeat(" ", pos))
		indicator.WriteString(posStyle.Render("▲ " + timeutil.FormatTime(state.Position)))
	}

	title := " Scrub "
	if !state.Enabled {
		title = " Scrub (click disabled) "
	}
	headerText := styles.Header.Render(title)
	boxInner := width - 2
	fillWidth := boxInner - 1 - lipgloss.Width(headerText)
	if fillWidth < 0 {
		fillWidth = 0
	}
	topLine := borderStyle.Render("╭─") + headerText + borderStyle.Render(strings.Repeat("─", fillWidth)+"╮")

	wrapLine := func(content string) string {
		if lipgloss.Width(content) > boxInner {
			content = ansi.Truncate(content, boxInner, "")
		}
		pad := boxInner - lipgloss.Width(content)
		return borderStyle.Render("│") + content + strings.Repeat(" ", pad) + borderStyle.Render("│")
	}
	emptyLine := wrapLine("")
	bottomLine := borderStyle.Render("╰" + strings.Repeat("─", boxInner) + "╯")

	return strings.Join([]string{
		topLine,
		emptyLine,
		wrapLine(barLine),
		wrapLine(indicator.String()),
		emptyLine,
		bottomLine,
	}, "\n")
}
