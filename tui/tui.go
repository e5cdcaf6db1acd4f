// Package tui is the interactive trim view: a clip list, the scrub strip and
// the mpv windows it drives.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/filepicker"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/user/trimview/clip"
	"github.com/user/trimview/config"
	"github.com/user/trimview/mpv"
	"github.com/user/trimview/playback"
	apperrors "github.com/user/trimview/pkg/errors"
	"github.com/user/trimview/pkg/timeutil"
	"github.com/user/trimview/segment"
	"github.com/user/trimview/tui/components"
	"github.com/user/trimview/tui/forms"
	"go.uber.org/zap"
)

const (
	// resultDisplayDuration is how long to show command results.
	resultDisplayDuration = 3 * time.Second
)

// tickMsg is sent on every tick interval. It is the time-update
// notification for the preview window.
type tickMsg time.Time

// clearResultMsg is sent to clear the command result message.
type clearResultMsg struct{}

// Launcher starts an mpv window. It is mpv.Launch outside tests.
type Launcher func(mpv.LaunchOptions) (*mpv.Instance, error)

// Options configures a Model.
type Options struct {
	Config *config.Config
	Logger *zap.Logger
	Prober *clip.Prober
	// Launch starts mpv windows. Nil runs without windows.
	Launch Launcher
}

// Model is the Bubbletea model for the TUI application.
type Model struct {
	cfg     *config.Config
	logger  *zap.Logger
	prober  *clip.Prober
	launch  Launcher
	tick    time.Duration
	window  clip.Window
	adapter segment.Adapter

	store       *clip.Store
	controllers map[string]*playback.Controller
	// errs holds the last error per clip ID
	errs map[string]string

	// session names this process's mpv sockets
	session        string
	main           *mpv.Instance
	preview        *mpv.Instance
	audio          *mpv.Instance
	player         segment.Player
	loadedID       string
	launching      bool
	audioLaunching bool

	mode         InputMode
	list         components.ClipListState
	statusBar    components.StatusBarState
	commandInput components.CommandInputState
	scrubPos     float64
	trimForm     *huh.Form
	trimResult   *forms.TrimFormResult
	confirmForm  *huh.Form
	discard      bool
	picker       filepicker.Model

	showHelp bool
	quitting bool
	width    int
	height   int
}

// NewModel creates a model over the given clips.
func NewModel(opts Options, clips []*clip.State) *Model {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	prober := opts.Prober
	if prober == nil {
		prober = clip.NewProber(cfg.ProbeTimeout(), logger)
	}
	window := clip.DefaultWindow
	if start, end, err := cfg.DefaultWindow(); err == nil {
		window = clip.Window{Start: start, End: end}
	}

	m := &Model{
		cfg:         cfg,
		logger:      logger.With(zap.String("component", "tui")),
		prober:      prober,
		launch:      opts.Launch,
		session:     uuid.New().String()[:8],
		tick:        time.Duration(cfg.Playback.TickIntervalMs) * time.Millisecond,
		window:      window,
		adapter:     segment.NewAdapter(cfg.Playback.FrameRate, cfg.Playback.CompositionWidth, cfg.Playback.CompositionHeight),
		store:       clip.NewStore(),
		controllers: make(map[string]*playback.Controller),
		errs:        make(map[string]string),
	}
	m.store.Append(clips...)
	m.refreshList()
	return m
}

// Init starts the ticker, probes every clip and opens the mpv windows.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.tickCmd()}
	for _, c := range m.store.Snapshot() {
		cmds = append(cmds, m.probeCmd(c.Source))
	}
	cmds = append(cmds, m.launchWindowsCmd())
	return tea.Batch(cmds...)
}

// tickCmd returns a command that sends a tickMsg after the tick interval.
func (m *Model) tickCmd() tea.Cmd {
	return tea.Tick(m.tick, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update handles messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.mode == ModePicker {
			var cmd tea.Cmd
			m.picker, cmd = m.picker.Update(msg)
			return m, cmd
		}
		return m, nil

	case tickMsg:
		m.pollSurfaces()
		return m, m.tickCmd()

	case clearResultMsg:
		m.commandInput.ClearResult()
		return m, nil

	case probeResultMsg:
		return m, m.handleProbeResult(msg)

	case windowsReadyMsg:
		return m, m.handleWindowsReady(msg)

	case audioReadyMsg:
		return m, m.handleAudioReady(msg)

	case tea.MouseMsg:
		if m.mode == ModeNormal && !m.showHelp {
			return m, m.handleMouse(msg)
		}
	}

	switch m.mode {
	case ModeTrim:
		return m, m.updateTrimForm(msg)
	case ModeConfirm:
		return m, m.updateConfirm(msg)
	case ModePicker:
		return m, m.updatePicker(msg)
	}

	if key, ok := msg.(tea.KeyMsg); ok {
		return m.handleKey(key)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Any key dismisses the help overlay
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	if m.mode == ModeCommand {
		return m.handleCommandInput(msg)
	}

	switch msg.String() {
	case "?":
		m.showHelp = true
	case "q", "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	case ":":
		m.mode = ModeCommand
		m.commandInput.Open()
	case " ":
		if m.main != nil && m.main.Client.IsConnected() {
			_ = m.main.Client.TogglePause()
		}
	case "j", "J", "down":
		m.list.MoveDown()
		m.loadSelected()
	case "k", "K", "up":
		m.list.MoveUp()
		m.loadSelected()
	case "t", "T":
		return m, m.toggleViewMode()
	case "e", "E":
		return m, m.openTrimForm()
	case "a", "A":
		return m, m.openPicker()
	case "u", "U":
		return m, m.toggleAudio()
	}
	return m, nil
}

// handleCommandInput handles key events when in command mode.
func (m *Model) handleCommandInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.commandInput.Clear()
		m.mode = ModeNormal
		return m, nil

	case "enter":
		line := m.commandInput.GetCommand()
		m.mode = ModeNormal
		if line == "" {
			return m, nil
		}
		result, cmd, err := m.executeCommand(line)
		if err != nil {
			return m, m.setResult("Error: "+err.Error(), true)
		}
		if m.quitting {
			return m, tea.Quit
		}
		if result == "" {
			return m, cmd
		}
		return m, tea.Batch(cmd, m.setResult(result, false))

	case "backspace":
		m.commandInput.Backspace()
	case "delete":
		m.commandInput.Delete()
	case "left":
		m.commandInput.MoveCursorLeft()
	case "right":
		m.commandInput.MoveCursorRight()
	case "up":
		m.commandInput.HistoryPrev()
	case "down":
		m.commandInput.HistoryNext()
	default:
		if msg.Type == tea.KeyRunes {
			for _, r := range msg.Runes {
				m.commandInput.InsertChar(r)
			}
		} else if msg.Type == tea.KeySpace {
			m.commandInput.InsertChar(' ')
		}
	}
	return m, nil
}

// handleMouse maps a left click on the scrub strip to click-to-seek.
func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return nil
	}
	if m.width < minTerminalWidth {
		return nil
	}
	layout := components.ScrubStripLayout(m.width)
	offset, ok := layout.Offset(msg.X, msg.Y-m.stripTop())
	if !ok {
		return nil
	}
	return m.scrubTo(playback.Fraction(float64(offset), float64(layout.Width-1)))
}

// scrubTo seeks every surface of the selected clip to fraction of its window.
func (m *Model) scrubTo(fraction float64) tea.Cmd {
	state, ok := m.selected()
	if !ok {
		return m.setResult("No clip selected", true)
	}
	t, err := m.controller(state.Source.ID).Click(state, fraction)
	if err != nil {
		return m.reportErr(state, err)
	}
	m.scrubPos = t
	m.clearErr(state.Source.ID)
	return nil
}

// toggleViewMode flips the selected clip between RAW and TRIMMED and applies
// the new mode to the main window.
func (m *Model) toggleViewMode() tea.Cmd {
	i := m.list.SelectedIndex
	if err := m.store.UpdateAt(i, clip.Update(clip.State.ToggleViewMode)); err != nil {
		return m.setResult("Error: "+err.Error(), true)
	}
	m.refreshList()
	state, _ := m.selected()
	if err := m.applyMode(state); err != nil {
		return m.reportErr(state, err)
	}
	m.clearErr(state.Source.ID)
	return m.setResult(clip.Label(i)+": "+state.Mode.String(), false)
}

// applyTrim stores a new window for the selected clip. The store is left
// untouched when either bound is rejected.
func (m *Model) applyTrim(bound clip.Bound, t timeutil.TimeValue) tea.Cmd {
	return m.applyWindow(func(s clip.State) (clip.State, error) {
		return s.WithTime(bound, t)
	})
}

func (m *Model) applyWindow(fn func(clip.State) (clip.State, error)) tea.Cmd {
	i := m.list.SelectedIndex
	if err := m.store.UpdateAt(i, fn); err != nil {
		if state, ok := m.selected(); ok {
			return m.reportErr(state, err)
		}
		return m.setResult("Error: "+err.Error(), true)
	}
	m.refreshList()
	state, _ := m.selected()
	m.afterTrimEdit(state)
	if err := state.Validate(); err != nil {
		return m.reportErr(state, err)
	}
	m.clearErr(state.Source.ID)
	start, end := state.Window()
	return m.setResult(clip.Label(i)+": "+fmtWindow(start, end), false)
}

// setResult shows msg in the command line and schedules its removal.
func (m *Model) setResult(msg string, isError bool) tea.Cmd {
	m.commandInput.SetResult(msg, isError)
	return tea.Tick(resultDisplayDuration, func(time.Time) tea.Msg {
		return clearResultMsg{}
	})
}

// reportErr records err against the clip's row and shows it.
func (m *Model) reportErr(state clip.State, err error) tea.Cmd {
	m.recordErr(state, err)
	return m.setResult("Error: "+err.Error(), true)
}

func (m *Model) recordErr(state clip.State, err error) {
	m.errs[state.Source.ID] = apperrors.GetMessage(err)
	m.logger.Warn("clip error",
		zap.String("clip", state.Source.Name),
		zap.Int("code", apperrors.GetCode(err)),
		zap.Error(err))
	m.refreshList()
}

func (m *Model) clearErr(id string) {
	if _, ok := m.errs[id]; ok {
		delete(m.errs, id)
		m.refreshList()
	}
}

// selected returns a copy of the selected clip.
func (m *Model) selected() (clip.State, bool) {
	c, err := m.store.At(m.list.SelectedIndex)
	if err != nil {
		return clip.State{}, false
	}
	return *c, true
}

// indexOf returns the store index of the clip with the given ID.
func (m *Model) indexOf(id string) (int, bool) {
	_, i, ok := lo.FindIndexOf(m.store.Snapshot(), func(c *clip.State) bool {
		return c.Source.ID == id
	})
	return i, ok
}

// refreshList rebuilds the list rows from the store.
func (m *Model) refreshList() {
	m.list.Items = lo.Map(m.store.Snapshot(), func(c *clip.State, i int) components.ClipItem {
		return components.ClipItem{
			Label:   clip.Label(i),
			Name:    c.Source.Name,
			Window:  c.Start.String() + "-" + c.End.String(),
			Trimmed: c.Mode == clip.ViewTrimmed,
			Err:     m.errs[c.Source.ID],
		}
	})
	m.list.Select(m.list.SelectedIndex)
}

// Close stops every mpv window the model launched.
func (m *Model) Close() {
	for _, inst := range []*mpv.Instance{m.audio, m.preview, m.main} {
		_ = inst.Close()
	}
	m.audio, m.preview, m.main = nil, nil, nil
}

// Run starts the Bubbletea program and stops the mpv windows on exit.
func Run(opts Options, clips []*clip.State) error {
	model := NewModel(opts, clips)
	defer model.Close()
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}
