package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/user/trimview/clip"
	"github.com/user/trimview/mpv"
	"github.com/user/trimview/playback"
	apperrors "github.com/user/trimview/pkg/errors"
	"github.com/user/trimview/segment"
	"go.uber.org/zap"
)

// probeResultMsg carries ffprobe's answer for one clip: the metadata-loaded
// notification.
type probeResultMsg struct {
	ID   string
	Meta clip.Metadata
	Err  error
}

// windowsReadyMsg reports the main and preview windows after launch.
type windowsReadyMsg struct {
	ID      string
	Main    *mpv.Instance
	Preview *mpv.Instance
	Err     error
}

// audioReadyMsg reports the audio-only window after launch.
type audioReadyMsg struct {
	ID    string
	Audio *mpv.Instance
	Err   error
}

func (m *Model) probeCmd(src clip.Source) tea.Cmd {
	prober := m.prober
	return func() tea.Msg {
		meta, err := prober.Probe(context.Background(), src.Path)
		return probeResultMsg{ID: src.ID, Meta: meta, Err: err}
	}
}

func (m *Model) handleProbeResult(msg probeResultMsg) tea.Cmd {
	i, ok := m.indexOf(msg.ID)
	if !ok {
		return nil
	}
	if msg.Err != nil {
		c, _ := m.store.At(i)
		m.recordErr(*c, msg.Err)
		return nil
	}
	before, err := m.store.At(i)
	if err != nil {
		return nil
	}
	_ = m.store.UpdateAt(i, clip.Update(func(s clip.State) clip.State {
		return s.WithDuration(msg.Meta.Duration)
	}))
	m.refreshList()
	if i != m.list.SelectedIndex {
		return nil
	}
	m.statusBar.Duration = msg.Meta.Duration
	// A clamped end moves the loop of a clip already playing TRIMMED.
	if state, ok := m.selected(); ok && state.Mode == clip.ViewTrimmed && state.End != before.End {
		m.afterTrimEdit(state)
	}
	return nil
}

func (m *Model) launchOptions(role mpv.Role, path string) mpv.LaunchOptions {
	return mpv.LaunchOptions{
		Binary:    m.cfg.Mpv.Binary,
		SocketDir: m.cfg.Mpv.SocketDir,
		Session:   m.session,
		Geometry:  m.cfg.Mpv.PreviewGeometry,
		Role:      role,
		Path:      path,
	}
}

// launchWindowsCmd opens the main and preview windows on the selected clip.
// It returns nil when there is no launcher, no clip, or a launch is pending.
func (m *Model) launchWindowsCmd() tea.Cmd {
	state, ok := m.selected()
	if m.launch == nil || !ok || m.launching || m.main != nil {
		return nil
	}
	m.launching = true
	launch := m.launch
	mainOpts := m.launchOptions(mpv.RoleMain, state.Source.Path)
	previewOpts := m.launchOptions(mpv.RolePreview, state.Source.Path)
	id := state.Source.ID

	return func() tea.Msg {
		main, err := launch(mainOpts)
		if err != nil {
			return windowsReadyMsg{ID: id, Err: err}
		}
		preview, err := launch(previewOpts)
		if err != nil {
			_ = main.Close()
			return windowsReadyMsg{ID: id, Err: err}
		}
		return windowsReadyMsg{ID: id, Main: main, Preview: preview}
	}
}

func (m *Model) handleWindowsReady(msg windowsReadyMsg) tea.Cmd {
	m.launching = false
	if msg.Err != nil {
		m.logger.Warn("mpv windows unavailable", zap.Error(msg.Err))
		return m.setResult("mpv unavailable: "+msg.Err.Error(), true)
	}
	m.main, m.preview = msg.Main, msg.Preview
	m.player = segment.NewLoopPlayer(m.main.Client, m.logger)
	// Controllers built before the windows existed hold no surfaces.
	m.controllers = make(map[string]*playback.Controller)
	m.loadedID = msg.ID
	// The windows were launched on msg.ID; load again only if the
	// selection moved while mpv started.
	m.loadSelected()
	return nil
}

// surface returns inst's client as a playback surface, or nil.
func surface(inst *mpv.Instance) playback.Surface {
	if inst == nil || inst.Client == nil {
		return nil
	}
	return inst.Client
}

// controller returns the sync controller for a clip, creating it on first use.
func (m *Model) controller(id string) *playback.Controller {
	if c, ok := m.controllers[id]; ok {
		return c
	}
	c := playback.NewController(surface(m.main), surface(m.preview),
		playback.WithFeatures(playback.Features{
			ClickScrub: m.cfg.Features.ClickScrub,
			Audio:      m.cfg.Features.Audio,
		}),
		playback.WithLogger(m.logger))
	m.controllers[id] = c
	return c
}

// loadSelected points every window at the selected clip. The preview stays
// unseeded until the next tick sees its metadata.
func (m *Model) loadSelected() {
	state, ok := m.selected()
	if !ok {
		return
	}
	m.statusBar.Duration = state.Duration
	if state.Source.ID == m.loadedID {
		return
	}
	if prev, ok := m.controllers[m.loadedID]; ok {
		prev.DetachAudio()
		prev.Reset()
	}
	m.loadedID = state.Source.ID
	ctrl := m.controller(state.Source.ID)
	ctrl.Reset()

	if m.player != nil {
		_ = m.player.Stop()
	}
	for _, inst := range []*mpv.Instance{m.main, m.preview, m.audio} {
		if inst == nil {
			continue
		}
		if err := inst.Client.LoadFile(state.Source.Path); err != nil {
			m.recordErr(state, apperrors.Wrap(apperrors.CodeSurfaceUnavailable, "load "+inst.Role.String(), err))
		}
	}
	if m.audio != nil {
		_ = ctrl.AttachAudio(m.audio.Client)
	}
}

// pollSurfaces runs on every tick. It refreshes the status bar, seeds the
// preview once its metadata is in and feeds its position to the controller.
func (m *Model) pollSurfaces() {
	m.statusBar.Connected = m.main != nil && m.main.Client.IsConnected()
	if m.statusBar.Connected {
		if paused, err := m.main.Client.GetPaused(); err == nil {
			m.statusBar.Paused = paused
		}
		if pos, err := m.main.Client.GetTimePos(); err == nil {
			m.statusBar.TimePos = pos
		}
	}
	m.statusBar.Audio = m.audio != nil

	state, ok := m.selected()
	if !ok {
		return
	}
	ctrl := m.controller(state.Source.ID)
	if ctrl.Phase() == playback.PhaseUnseeded {
		m.seedPreview(state, ctrl)
		return
	}
	if m.preview == nil {
		return
	}
	pos, err := m.preview.Client.Position()
	if err != nil {
		return
	}
	m.scrubPos = pos
	if _, err := ctrl.TimeUpdate(state, pos); err != nil {
		m.logger.Debug("preview loop failed", zap.Error(err))
	}
}

// seedPreview fires MetadataReady once the preview window reports a duration,
// or, without windows, once ffprobe has.
func (m *Model) seedPreview(state clip.State, ctrl *playback.Controller) {
	if m.preview != nil {
		if m.loadedID != state.Source.ID {
			return
		}
		d, err := m.preview.Client.GetDuration()
		if err != nil || d <= 0 {
			return
		}
		if !state.DurationKnown() {
			if i, ok := m.indexOf(state.Source.ID); ok {
				_ = m.store.UpdateAt(i, clip.Update(func(s clip.State) clip.State { return s.WithDuration(d) }))
				state, _ = m.selected()
				m.refreshList()
			}
		}
		m.statusBar.Duration = d
	} else if !state.DurationKnown() {
		return
	}

	if err := ctrl.MetadataReady(state); err != nil {
		m.recordErr(state, err)
		return
	}
	m.scrubPos, _ = state.Window()
	if state.Mode == clip.ViewTrimmed {
		if err := m.applyMode(state); err != nil {
			m.recordErr(state, err)
		}
	}
}

// applyMode hands the trim window to the segment player in TRIMMED mode and
// clears the loop in RAW mode. The preview runs only in TRIMMED mode, where
// its time updates wrap it back to the start. Without windows only the frame
// range is checked.
func (m *Model) applyMode(state clip.State) error {
	if state.Mode == clip.ViewRaw {
		m.setPreviewPlaying(false)
		if m.audio != nil {
			_ = m.audio.Client.ClearABLoop()
		}
		if m.player != nil {
			return m.player.Stop()
		}
		return nil
	}

	params, err := m.adapter.Params(state)
	if err != nil {
		m.setPreviewPlaying(false)
		if m.player != nil {
			_ = m.player.Stop()
		}
		return err
	}
	m.setPreviewPlaying(true)
	if m.audio != nil {
		_ = m.audio.Client.SetABLoop(params.StartSeconds(), params.EndSeconds())
	}
	if m.player == nil {
		return nil
	}
	return m.player.Play(params)
}

func (m *Model) setPreviewPlaying(playing bool) {
	if m.preview == nil {
		return
	}
	var err error
	if playing {
		err = m.preview.Client.Play()
	} else {
		err = m.preview.Client.Pause()
	}
	if err != nil {
		m.logger.Debug("preview pause state", zap.Bool("playing", playing), zap.Error(err))
	}
}

// afterTrimEdit re-seeds the preview at the new start and reapplies TRIMMED
// playback with the new window.
func (m *Model) afterTrimEdit(state clip.State) {
	ctrl := m.controller(state.Source.ID)
	if ctrl.Phase() != playback.PhaseUnseeded {
		if err := ctrl.MetadataReady(state); err != nil {
			m.recordErr(state, err)
		}
		m.scrubPos, _ = state.Window()
	}
	if state.Mode == clip.ViewTrimmed {
		if err := m.applyMode(state); err != nil {
			m.recordErr(state, err)
		}
	}
}

// toggleAudio opens or closes the audio-only window for the selected clip.
func (m *Model) toggleAudio() tea.Cmd {
	state, ok := m.selected()
	if !ok {
		return m.setResult("No clip selected", true)
	}
	if !m.cfg.Features.Audio {
		return m.reportErr(state, apperrors.ErrCapabilityDisabled.WithDetail("audio"))
	}
	if m.audio != nil {
		m.controller(state.Source.ID).DetachAudio()
		_ = m.audio.Close()
		m.audio = nil
		m.statusBar.Audio = false
		return m.setResult("Audio off", false)
	}
	if m.launch == nil {
		return m.reportErr(state, apperrors.ErrSurfaceUnavailable.WithDetail("audio"))
	}
	if m.audioLaunching {
		return m.setResult("Audio is starting", false)
	}

	m.audioLaunching = true
	launch := m.launch
	opts := m.launchOptions(mpv.RoleAudio, state.Source.Path)
	id := state.Source.ID
	return func() tea.Msg {
		inst, err := launch(opts)
		return audioReadyMsg{ID: id, Audio: inst, Err: err}
	}
}

func (m *Model) handleAudioReady(msg audioReadyMsg) tea.Cmd {
	m.audioLaunching = false
	state, ok := m.selected()
	if msg.Err != nil {
		if ok {
			return m.reportErr(state, msg.Err)
		}
		return nil
	}
	if !ok || state.Source.ID != msg.ID {
		// Selection moved on while mpv started.
		_ = msg.Audio.Close()
		return nil
	}
	if m.audio != nil {
		m.controller(msg.ID).DetachAudio()
		_ = m.audio.Close()
	}
	if err := m.controller(msg.ID).AttachAudio(msg.Audio.Client); err != nil {
		_ = msg.Audio.Close()
		m.audio = nil
		m.statusBar.Audio = false
		return m.reportErr(state, err)
	}
	m.audio = msg.Audio
	m.statusBar.Audio = true

	start, _ := state.Window()
	_ = m.audio.Client.Seek(start)
	if state.Mode == clip.ViewTrimmed {
		if err := m.applyMode(state); err != nil {
			m.recordErr(state, err)
		}
	}
	_ = m.audio.Client.Play()
	return m.setResult("Audio on", false)
}
