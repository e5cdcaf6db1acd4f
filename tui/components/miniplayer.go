package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/user/trimview/pkg/timeutil"
	"github.com/user/trimview/tui/styles"
)

// RenderMiniPlayer renders a compact playback card for narrow terminals,
// centred in termWidth.
func RenderMiniPlayer(state StatusBarState, termWidth int) string {
	textStyle := lipgloss.NewStyle().Foreground(styles.LightLavender)

	playState := "▶ Playing"
	if state.Paused {
		playState = "⏸ Paused"
	}
	statusLine := playState + "  " + styles.ModeBadge(state.Trimmed).Render(state.ModeLabel())
	timeLine := "Time: " + timeutil.FormatTime(state.TimePos) + " / " + timeutil.FormatTime(state.Duration)
	clipLine := state.Label
	if clipLine == "" {
		clipLine = "No clips loaded"
	}

	contentW := 0
	for _, l := range []string{statusLine, timeLine, clipLine} {
		if w := lipgloss.Width(l); w > contentW {
			contentW = w
		}
	}
	cardWidth := contentW + 4
	if minW := lipgloss.Width(" Playback ") + 7; cardWidth < minW {
		cardWidth = minW
	}

	card := tabBox("Playback", [][]string{
		{statusLine},
		{textStyle.Render(timeLine)},
		{textStyle.Render(clipLine)},
	}, cardWidth)

	if termWidth <= cardWidth {
		return card
	}
	padStr := strings.Repeat(" ", (termWidth-cardWidth)/2)
	lines := strings.Split(card, "\n")
	for i, l := range lines {
		lines[i] = padStr + l
	}

	warning := lipgloss.NewStyle().Foreground(styles.Lavender).Italic(true).Render("Mini player mode - resize for full view")
	warnPad := (termWidth - lipgloss.Width(warning)) / 2
	if warnPad < 0 {
		warnPad = 0
	}
	return strings.Join(lines, "\n") + "\n" + strings.Repeat(" ", warnPad) + warning
}
