package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/user/trimview/clip"
	"github.com/user/trimview/pkg/timeutil"
	"github.com/user/trimview/playback"
	"github.com/user/trimview/tui/components"
	"github.com/user/trimview/tui/layout"
	"github.com/user/trimview/tui/styles"
)

// minTerminalWidth is the narrowest terminal that gets the full layout.
const minTerminalWidth = layout.MinTerminalWidth

// columnsHeight is the height left for the two columns after the status bar,
// the scrub strip and the command line.
func (m *Model) columnsHeight() int {
	h := m.height - 2 - components.ScrubStripHeight
	if h < 4 {
		h = 4
	}
	return h
}

// stripTop is the screen row of the scrub strip's first line.
func (m *Model) stripTop() int {
	return 1 + m.columnsHeight()
}

func fmtWindow(start, end float64) string {
	return timeutil.FormatTime(start) + "-" + timeutil.FormatTime(end)
}

// View renders the current state of the model as a string.
func (m *Model) View() string {
	if m.quitting {
		return "Goodbye!\n"
	}
	if m.showHelp {
		return components.HelpOverlay(m.width, m.height)
	}

	m.syncStatusBar()
	statusBar := components.StatusBar(m.statusBar, m.width)

	switch m.mode {
	case ModeTrim:
		return statusBar + "\n\n" + m.trimForm.View()
	case ModeConfirm:
		return statusBar + "\n\n" + m.confirmForm.View()
	case ModePicker:
		title := styles.Header.Render(" Add video ") +
			styles.SecondaryText.Render(" enter to select, esc to cancel")
		return statusBar + "\n" + title + "\n\n" + m.picker.View()
	}

	if m.width > 0 && m.width < minTerminalWidth {
		return components.RenderMiniPlayer(m.statusBar, m.width)
	}

	listW, detailW := layout.ComputeColumnWidths(m.width)
	colHeight := m.columnsHeight()
	columns := layout.JoinColumns(
		[]string{m.renderClipColumn(listW, colHeight), m.renderDetailColumn(detailW, colHeight)},
		[]int{listW, detailW},
		colHeight,
	)

	strip := components.ScrubStrip(m.scrubState(), m.width)
	commandInput := components.CommandInput(m.commandInput, m.width)

	return statusBar + "\n" + columns + "\n" + strip + "\n" + commandInput
}

// syncStatusBar copies the selected clip's fields into the status bar.
func (m *Model) syncStatusBar() {
	m.statusBar.Count = m.store.Len()
	state, ok := m.selected()
	if !ok {
		m.statusBar.Label = ""
		m.statusBar.Trimmed = false
		return
	}
	m.statusBar.Label = clip.Label(m.list.SelectedIndex)
	m.statusBar.Trimmed = state.Mode == clip.ViewTrimmed
	if state.DurationKnown() {
		m.statusBar.Duration = state.Duration
	}
}

func (m *Model) phase(id string) playback.Phase {
	if c, ok := m.controllers[id]; ok {
		return c.Phase()
	}
	return playback.PhaseUnseeded
}

func (m *Model) scrubState() components.ScrubState {
	state, ok := m.selected()
	if !ok {
		return components.ScrubState{Enabled: m.cfg.Features.ClickScrub}
	}
	start, end := state.Window()
	return components.ScrubState{
		Start:    start,
		End:      end,
		Position: m.scrubPos,
		Seeded:   m.phase(state.Source.ID) != playback.PhaseUnseeded,
		Enabled:  m.cfg.Features.ClickScrub,
	}
}

// renderClipColumn renders the clip list inside an info box.
func (m *Model) renderClipColumn(width, height int) string {
	innerHeight := height - 2
	if innerHeight < 2 {
		innerHeight = 2
	}
	list := components.ClipList(m.list, width-2, innerHeight)
	box := components.RenderInfoBox("Clips", strings.Split(list, "\n"), width)
	return layout.Container{Width: width, Height: height}.Render(box)
}

// renderDetailColumn renders the selected clip card, the mode box and as
// many control boxes as fit.
func (m *Model) renderDetailColumn(width, height int) string {
	var lines []string

	state, ok := m.selected()
	if ok {
		lines = append(lines, strings.Split(m.renderClipCard(state, width), "\n")...)
		lines = append(lines, strings.Split(components.ModeIndicator(m.mode.String(), m.phase(state.Source.ID).String(), width), "\n")...)
	} else {
		lines = append(lines, styles.SecondaryText.Render(" Load videos with `trimview open FILE...` or press A."))
	}

	for _, group := range components.GetControlGroups() {
		box := strings.Split(components.RenderControlBox(group, width/2), "\n")
		if len(lines)+len(box) > height {
			break
		}
		lines = append(lines, box...)
	}

	return layout.Container{Width: width, Height: height}.Render(strings.Join(lines, "\n"))
}

func (m *Model) renderClipCard(state clip.State, width int) string {
	text := lipgloss.NewStyle().Foreground(styles.LightLavender)
	dim := lipgloss.NewStyle().Foreground(styles.Lavender)

	duration := "probing…"
	if state.DurationKnown() {
		duration = timeutil.FormatTime(state.Duration)
	}
	start, end := state.Window()

	lines := []string{
		text.Render(" " + state.Source.Name),
		dim.Render(" " + state.Source.Path),
		text.Render(fmt.Sprintf(" Duration: %s", duration)),
		text.Render(fmt.Sprintf(" Window:   %s (%s)", fmtWindow(start, end), timeutil.FormatTime(state.Span()))),
		text.Render(" Mode:     ") + styles.ModeBadge(state.Mode == clip.ViewTrimmed).Render(state.Mode.String()),
	}

	if params, err := m.adapter.Params(state); err != nil {
		lines = append(lines, styles.Warning.Render(" Frames:   empty segment"))
	} else {
		lines = append(lines, dim.Render(fmt.Sprintf(" Frames:   %d-%d (%d @ %gfps)",
			params.StartFrame, params.EndFrame, params.DurationInFrames, params.FrameRate)))
	}
	if msg := m.errs[state.Source.ID]; msg != "" {
		lines = append(lines, styles.Warning.Render(" ! "+msg))
	}

	return components.RenderInfoBox(clip.Label(m.list.SelectedIndex), lines, width)
}
