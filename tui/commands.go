package tui

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/user/trimview/clip"
	"github.com/user/trimview/pkg/timeutil"
)

const commandHelp = "Commands: start T, end T, toggle, seek P, audio, add FILE..., probe, play, pause, quit"

// executeCommand parses and executes a command line. It returns a result
// message, a follow-up command and an error.
func (m *Model) executeCommand(line string) (string, tea.Cmd, error) {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return "", nil, nil
	}
	cmd, args := parts[0], parts[1:]

	switch cmd {
	case "start", "s", "end", "e":
		if len(args) != 1 {
			return "", nil, fmt.Errorf("%s requires a time argument (e.g., %s 1:30)", cmd, cmd)
		}
		t, err := timeutil.ParseTimeValue(args[0])
		if err != nil {
			if state, ok := m.selected(); ok {
				return "", m.reportErr(state, err), nil
			}
			return "", nil, err
		}
		bound := clip.Start
		if cmd == "end" || cmd == "e" {
			bound = clip.End
		}
		return "", m.applyTrim(bound, t), nil

	case "toggle", "t":
		return "", m.toggleViewMode(), nil

	case "seek":
		if len(args) != 1 {
			return "", nil, fmt.Errorf("seek requires a fraction between 0 and 1 (e.g., seek 0.5)")
		}
		p, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return "", nil, fmt.Errorf("invalid fraction: %s", args[0])
		}
		if cmd := m.scrubTo(p); cmd != nil {
			return "", cmd, nil
		}
		return "Scrubbed to " + timeutil.FormatTime(m.scrubPos), nil, nil

	case "audio", "u":
		return "", m.toggleAudio(), nil

	case "add", "a":
		if len(args) == 0 {
			return "", m.openPicker(), nil
		}
		cmd, n, err := m.addPaths(args)
		if err != nil {
			return "", nil, err
		}
		return fmt.Sprintf("Added %d clip(s)", n), cmd, nil

	case "probe":
		state, ok := m.selected()
		if !ok {
			return "", nil, fmt.Errorf("no clip selected")
		}
		return "Probing " + state.Source.Name, m.probeCmd(state.Source), nil

	case "play":
		if m.main == nil {
			return "", nil, fmt.Errorf("mpv is not running")
		}
		if err := m.main.Client.Play(); err != nil {
			return "", nil, err
		}
		return "Playing", nil, nil

	case "pause", "p":
		if m.main == nil {
			return "", nil, fmt.Errorf("mpv is not running")
		}
		if err := m.main.Client.Pause(); err != nil {
			return "", nil, err
		}
		return "Paused", nil, nil

	case "q", "quit":
		m.quitting = true
		return "", nil, nil

	case "help", "h":
		return commandHelp, nil, nil

	default:
		return "", nil, fmt.Errorf("unknown command: %s", cmd)
	}
}

// addPaths appends new clips in the given order, probes them and opens the
// windows if this is the first clip.
func (m *Model) addPaths(paths []string) (tea.Cmd, int, error) {
	clips, err := clip.FromPaths(paths, m.window)
	if err != nil {
		return nil, 0, err
	}
	m.store.Append(clips...)
	m.refreshList()

	cmds := make([]tea.Cmd, 0, len(clips)+1)
	for _, c := range clips {
		cmds = append(cmds, m.probeCmd(c.Source))
	}
	cmds = append(cmds, m.launchWindowsCmd())
	return tea.Batch(cmds...), len(clips), nil
}
