package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/user/trimview/tui/styles"
)

type binding struct {
	key  string
	desc string
}

var helpGroups = []struct {
	title    string
	bindings []binding
}{
	{"Playback", []binding{
		{"Space", "Toggle play/pause"},
		{"T", "Toggle RAW / TRIMMED"},
		{"Click", "Scrub inside the trim window"},
		{"U", "Toggle the audio-only window"},
	}},
	{"Clips", []binding{
		{"K / ↑", "Select previous clip"},
		{"J / ↓", "Select next clip"},
		{"A", "Add files"},
		{"E", "Edit trim window"},
	}},
	{"Commands", []binding{
		{":start T", "Set trim start (H:MM:SS)"},
		{":end T", "Set trim end"},
		{":seek P", "Scrub to fraction P (0-1)"},
		{":toggle", "Toggle RAW / TRIMMED"},
		{":audio", "Toggle the audio-only window"},
		{"Esc", "Cancel command mode"},
		{"q", "Quit application"},
	}},
}

// HelpOverlay renders the help overlay showing all keybindings, centred in
// the given terminal size.
func HelpOverlay(width, height int) string {
	titleStyle := lipgloss.NewStyle().
		Foreground(styles.Cyan).
		Bold(true).
		Padding(0, 1)
	groupHeaderStyle := styles.Header.MarginTop(1)
	keyStyle := lipgloss.NewStyle().
		Foreground(styles.Lavender).
		Bold(true).
		Width(12)
	descStyle := lipgloss.NewStyle().
		Foreground(styles.LightLavender)

	lines := []string{titleStyle.Render("Keybindings"), ""}
	for _, group := range helpGroups {
		lines = append(lines, groupHeaderStyle.Render(group.title))
		for _, b := range group.bindings {
			lines = append(lines, "  "+keyStyle.Render(b.key)+descStyle.Render(b.desc))
		}
	}
	lines = append(lines, "", lipgloss.NewStyle().
		Foreground(styles.Lavender).
		Italic(true).
		Render("Press any key to close"))

	panel := lipgloss.NewStyle().
		Background(styles.DarkPurple).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.BrightPurple).
		Padding(1, 2).
		Render(strings.Join(lines, "\n"))

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, panel)
}
