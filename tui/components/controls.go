// Package components provides reusable TUI components.
package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/user/trimview/tui/styles"
)

// Control represents a single control with its display info.
type Control struct {
	Name     string
	Shortcut string
}

// ControlGroup represents a group of related controls with sub-group support.
// SubGroups allows the renderer to place horizontal dividers between sub-groups.
type ControlGroup struct {
	Name      string
	SubGroups [][]Control
}

// GetControlGroups returns the control groups for display.
func GetControlGroups() []ControlGroup {
	return []ControlGroup{
		{
			Name: "Playback",
			SubGroups: [][]Control{
				{
					{Name: "Play", Shortcut: "Space"},
					{Name: "Raw/Trim", Shortcut: "T"},
				},
				{
					{Name: "Scrub", Shortcut: "Click"},
					{Name: "Audio", Shortcut: "U"},
				},
			},
		},
		{
			Name: "Clips",
			SubGroups: [][]Control{
				{
					{Name: "Prev", Shortcut: "K / ↑"},
					{Name: "Next", Shortcut: "J / ↓"},
					{Name: "Add", Shortcut: "A"},
					{Name: "Trim", Shortcut: "E"},
				},
			},
		},
		{
			Name: "Views",
			SubGroups: [][]Control{
				{
					{Name: "Command", Shortcut: ":"},
					{Name: "Help", Shortcut: "?"},
					{Name: "Quit", Shortcut: "q"},
				},
			},
		},
	}
}

// RenderInfoBox renders a generic bordered box with a tab-style header and content lines.
// Content lines are rendered as-is (caller handles styling).
func RenderInfoBox(title string, contentLines []string, width int) string {
	if width < 4 {
		return ""
	}

	innerWidth := width - 2
	borderStyle := lipgloss.NewStyle().Foreground(styles.Purple)

	// Tab header: ╭─ Title ─────╮
	headerText := styles.Header.Render(" " + title + " ")
	fillWidth := innerWidth - 1 - lipgloss.Width(headerText)
	if fillWidth < 0 {
		fillWidth = 0
	}
	topLine := borderStyle.Render("╭─") + headerText + borderStyle.Render(strings.Repeat("─", fillWidth)+"╮")
	if lipgloss.Width(topLine) > width {
		topLine = ansi.Truncate(topLine, width, "")
	}

	renderedLines := []string{topLine}
	for _, line := range contentLines {
		if lipgloss.Width(line) > innerWidth {
			line = ansi.Truncate(line, innerWidth, "…")
		}
		pad := innerWidth - lipgloss.Width(line)
		renderedLines = append(renderedLines, borderStyle.Render("│")+line+strings.Repeat(" ", pad)+borderStyle.Render("│"))
	}

	renderedLines = append(renderedLines, borderStyle.Render("╰"+strings.Repeat("─", innerWidth)+"╯"))
	return strings.Join(renderedLines, "\n")
}

// tabBox draws the bracketed-tab box shared by control groups and the mini
// player. Sections are separated by horizontal dividers.
//
//	 ┌──────────┐
//	┌┤ Playback ├┐
//	│└──────────┘└────────────┐
//	│ Play    [ Space ]       │
//	├─────────────────────────┤
//	│ Scrub   [ Click ]       │
//	└─────────────────────────┘
func tabBox(title string, sections [][]string, width int) string {
	const (
		hBar = "─"
		vBar = "│"
		tl   = "┌"
		tr   = "┐"
		bl   = "└"
		br   = "┘"
		teeL = "├"
		teeR = "┤"
	)
	borderStyle := lipgloss.NewStyle().Foreground(styles.Purple)

	tabLabel := " " + title + " "
	tabInnerW := lipgloss.Width(tabLabel)
	innerW := width - 2

	line1 := " " + borderStyle.Render(tl+strings.Repeat(hBar, tabInnerW)+tr)
	line2 := borderStyle.Render(tl+teeR) + styles.Header.Render(tabLabel) + borderStyle.Render(teeL+tr)
	remainW := innerW - tabInnerW - 3
	if remainW < 0 {
		remainW = 0
	}
	line3 := borderStyle.Render(vBar + bl + strings.Repeat(hBar, tabInnerW) + br + bl + strings.Repeat(hBar, remainW) + tr)

	lines := []string{line1, line2, line3}
	for si, section := range sections {
		for _, content := range section {
			padRight := innerW - 2 - lipgloss.Width(content)
			if padRight < 0 {
				padRight = 0
			}
			row := borderStyle.Render(vBar) + " " + content + strings.Repeat(" ", padRight) + " " + borderStyle.Render(vBar)
			if lipgloss.Width(row) > width {
				row = ansi.Truncate(row, width, "")
			}
			lines = append(lines, row)
		}
		if si < len(sections)-1 {
			lines = append(lines, borderStyle.Render(teeL+strings.Repeat(hBar, innerW)+teeR))
		}
	}
	lines = append(lines, borderStyle.Render(bl+strings.Repeat(hBar, innerW)+br))

	return strings.Join(lines, "\n")
}

// RenderControlBox renders a control group inside a bordered box with tab header
// and horizontal dividers between sub-groups.
func RenderControlBox(group ControlGroup, width int) string {
	if width < 6 {
		return ""
	}

	nameStyle := lipgloss.NewStyle().Foreground(styles.LightLavender)
	shortcutStyle := lipgloss.NewStyle().Foreground(styles.Cyan).Bold(true)

	maxNameW := 0
	for _, sg := range group.SubGroups {
		for _, c := range sg {
			if len(c.Name) > maxNameW {
				maxNameW = len(c.Name)
			}
		}
	}

	sections := make([][]string, 0, len(group.SubGroups))
	for _, sg := range group.SubGroups {
		var rows []string
		for _, c := range sg {
			rows = append(rows, nameStyle.Render(fmt.Sprintf("%-*s", maxNameW, c.Name))+"  "+shortcutStyle.Render("[ "+c.Shortcut+" ]"))
		}
		sections = append(sections, rows)
	}
	return tabBox(group.Name, sections, width)
}
