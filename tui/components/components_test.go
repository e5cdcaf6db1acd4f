package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScrubStripLayout(t *testing.T) {
	l := ScrubStripLayout(100)
	assert.Equal(t, 2, l.Left)
	assert.Equal(t, 100-4-stripTimeWidth-2, l.Width)

	// narrow strips keep a usable bar
	assert.Equal(t, 10, ScrubStripLayout(20).Width)
}

func TestStripLayoutOffset(t *testing.T) {
	l := ScrubStripLayout(100)

	off, ok := l.Offset(l.Left, l.Rows[0])
	require.True(t, ok)
	assert.Equal(t, 0, off)

	off, ok = l.Offset(l.Left+l.Width-1, l.Rows[1])
	require.True(t, ok)
	assert.Equal(t, l.Width-1, off)

	_, ok = l.Offset(l.Left+l.Width, l.Rows[0])
	assert.False(t, ok, "past the last cell")

	_, ok = l.Offset(l.Left-1, l.Rows[0])
	assert.False(t, ok, "before the first cell")

	_, ok = l.Offset(l.Left+3, 0)
	assert.False(t, ok, "border row")
}

func TestScrubPlayhead(t *testing.T) {
	tests := []struct {
		name  string
		state ScrubState
		want  int
	}{
		{"start", ScrubState{Start: 90, End: 170, Position: 90}, 0},
		{"end", ScrubState{Start: 90, End: 170, Position: 170}, 80},
		{"middle", ScrubState{Start: 90, End: 170, Position: 130}, 40},
		{"before window", ScrubState{Start: 90, End: 170, Position: 10}, 0},
		{"after window", ScrubState{Start: 90, End: 170, Position: 500}, 80},
		{"degenerate", ScrubState{Start: 100, End: 100, Position: 100}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.state.playhead(81))
		})
	}
}

func TestScrubStripRender(t *testing.T) {
	out := ScrubStrip(ScrubState{Start: 90, End: 170, Position: 130, Seeded: true, Enabled: true}, 80)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, ScrubStripHeight)
	for _, line := range lines {
		assert.Equal(t, 80, lipgloss.Width(line))
	}
	assert.Contains(t, out, " Scrub ")
	assert.Contains(t, out, "0:01:30")
	assert.Contains(t, out, "0:02:50")
	assert.Contains(t, out, "▲ 0:02:10")

	unseeded := ScrubStrip(ScrubState{Start: 90, End: 170}, 80)
	assert.Contains(t, unseeded, "┄")
	assert.NotContains(t, unseeded, "▲")

	disabled := ScrubStrip(ScrubState{Start: 90, End: 170, Seeded: true}, 80)
	assert.Contains(t, disabled, "click disabled")

	assert.Empty(t, ScrubStrip(ScrubState{}, 10))
}

func TestClipListRender(t *testing.T) {
	state := ClipListState{Items: []ClipItem{
		{Label: "Video 1", Name: "a.mp4", Window: "0:01:30-0:02:50"},
		{Label: "Video 2", Name: "b.mp4", Window: "0:01:40-0:01:40", Trimmed: true, Err: "trimmed segment has no frames"},
	}}

	out := ClipList(state, 60, 10)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[0], "▸ Video 1")
	assert.Contains(t, lines[1], "RAW")
	assert.Contains(t, lines[2], "b.mp4")
	assert.Contains(t, lines[3], "TRIMMED")
	assert.Contains(t, lines[3], "no frames")

	assert.Contains(t, ClipList(ClipListState{}, 60, 10), "No clips")
}

func TestClipListScrollsToSelection(t *testing.T) {
	state := ClipListState{}
	for _, name := range []string{"a", "b", "c", "d", "e"} {
		state.Items = append(state.Items, ClipItem{Label: "Video", Name: name + ".mp4"})
	}
	state.SelectedIndex = 4

	out := ClipList(state, 40, 4)
	assert.NotContains(t, out, "a.mp4")
	assert.Contains(t, out, "d.mp4")
	assert.Contains(t, out, "▸ Video    e.mp4")
}

func TestClipListSelection(t *testing.T) {
	state := ClipListState{Items: make([]ClipItem, 3)}

	state.MoveUp()
	assert.Equal(t, 0, state.SelectedIndex)

	state.MoveDown()
	state.MoveDown()
	state.MoveDown()
	assert.Equal(t, 2, state.SelectedIndex)

	state.Select(10)
	assert.Equal(t, 2, state.SelectedIndex)
	state.Select(-1)
	assert.Equal(t, 0, state.SelectedIndex)
}

func TestCommandInputEditing(t *testing.T) {
	var s CommandInputState
	s.Open()
	for _, r := range "sek" {
		s.InsertChar(r)
	}
	s.MoveCursorLeft()
	s.InsertChar('e')
	assert.Equal(t, "seek", s.Input)

	s.MoveCursorRight()
	s.Backspace()
	assert.Equal(t, "see", s.Input)

	s.CursorPos = 0
	s.Delete()
	assert.Equal(t, "ee", s.Input)
}

func TestCommandInputHistory(t *testing.T) {
	var s CommandInputState
	for _, cmd := range []string{"start 0:01:30", "toggle", "toggle", "  "} {
		s.Open()
		s.Input = cmd
		s.GetCommand()
	}
	assert.Equal(t, []string{"start 0:01:30", "toggle"}, s.History)
	assert.False(t, s.Active)

	s.Open()
	s.HistoryPrev()
	assert.Equal(t, "toggle", s.Input)
	assert.Equal(t, len("toggle"), s.CursorPos)
	s.HistoryPrev()
	assert.Equal(t, "start 0:01:30", s.Input)
	s.HistoryPrev()
	assert.Equal(t, "start 0:01:30", s.Input, "stays on the oldest entry")

	s.HistoryNext()
	assert.Equal(t, "toggle", s.Input)
	s.HistoryNext()
	assert.Empty(t, s.Input)
}

func TestCommandInputHistoryBounded(t *testing.T) {
	var s CommandInputState
	for i := 0; i < maxHistory+5; i++ {
		s.Input = strings.Repeat("x", i+1)
		s.GetCommand()
	}
	assert.Len(t, s.History, maxHistory)
	assert.Equal(t, strings.Repeat("x", 6), s.History[0])
}

func TestStatusBarRightSide(t *testing.T) {
	out := StatusBar(StatusBarState{Label: "Video 2", Count: 3, Connected: true, Audio: true}, 80)
	assert.Contains(t, out, "Video 2 of 3")
	assert.Contains(t, out, "♪")
	assert.NotContains(t, out, "! mpv")

	out = StatusBar(StatusBarState{}, 80)
	assert.Contains(t, out, "no clips")
	assert.Contains(t, out, "! mpv")
}

func TestRenderInfoBoxTruncates(t *testing.T) {
	out := RenderInfoBox("Clip", []string{strings.Repeat("long ", 40)}, 30)
	for _, line := range strings.Split(out, "\n") {
		assert.LessOrEqual(t, lipgloss.Width(line), 30)
	}
	assert.Contains(t, out, "Clip")
}
