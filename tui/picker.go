package tui

import (
	"os"
	"path/filepath"

	"github.com/charmbracelet/bubbles/filepicker"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/user/trimview/clip"
	"github.com/user/trimview/tui/forms"
)

// openPicker shows the file picker, starting next to the selected clip.
func (m *Model) openPicker() tea.Cmd {
	fp := filepicker.New()
	fp.AllowedTypes = clip.VideoExtensions
	fp.CurrentDirectory, _ = os.Getwd()
	if state, ok := m.selected(); ok {
		fp.CurrentDirectory = filepath.Dir(state.Source.Path)
	}
	m.picker = fp
	m.mode = ModePicker

	// Size the picker for the current terminal straight away.
	var cmd tea.Cmd
	if m.height > 0 {
		m.picker, cmd = m.picker.Update(tea.WindowSizeMsg{Width: m.width, Height: m.height - 4})
	}
	return tea.Batch(m.picker.Init(), cmd)
}

func (m *Model) updatePicker(msg tea.Msg) tea.Cmd {
	if key, ok := msg.(tea.KeyMsg); ok && (key.String() == "esc" || key.String() == "q") {
		m.mode = ModeNormal
		return nil
	}

	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)

	if ok, path := m.picker.DidSelectFile(msg); ok {
		m.mode = ModeNormal
		add, _, err := m.addPaths([]string{path})
		if err != nil {
			return tea.Batch(cmd, m.setResult("Error: "+err.Error(), true))
		}
		return tea.Batch(cmd, add, m.setResult("Added "+filepath.Base(path), false))
	}
	if ok, path := m.picker.DidSelectDisabledFile(msg); ok {
		return tea.Batch(cmd, m.setResult(filepath.Base(path)+" is not a video file", true))
	}
	return cmd
}

// openTrimForm opens the six-field form for the selected clip's window.
func (m *Model) openTrimForm() tea.Cmd {
	state, ok := m.selected()
	if !ok {
		return m.setResult("No clip selected", true)
	}
	m.trimResult = forms.NewTrimFormResult(state.Start, state.End)
	m.trimForm = forms.NewTrimForm(clip.Label(m.list.SelectedIndex), m.trimResult)
	m.mode = ModeTrim
	return m.trimForm.Init()
}

func (m *Model) updateTrimForm(msg tea.Msg) tea.Cmd {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "esc" {
		if !m.trimResult.Changed() {
			m.closeTrimForm()
			return nil
		}
		m.discard = false
		m.confirmForm = forms.NewConfirmDiscardForm(m.trimResult, &m.discard)
		m.mode = ModeConfirm
		return m.confirmForm.Init()
	}

	fm, cmd := m.trimForm.Update(msg)
	if f, ok := fm.(*huh.Form); ok {
		m.trimForm = f
	}

	switch m.trimForm.State {
	case huh.StateCompleted:
		start, end, err := m.trimResult.Values()
		m.closeTrimForm()
		if err != nil {
			return m.setResult("Error: "+err.Error(), true)
		}
		return m.applyWindow(func(s clip.State) (clip.State, error) {
			s, err := s.WithTime(clip.Start, start)
			if err != nil {
				return s, err
			}
			return s.WithTime(clip.End, end)
		})
	case huh.StateAborted:
		m.closeTrimForm()
		return nil
	}
	return cmd
}

func (m *Model) updateConfirm(msg tea.Msg) tea.Cmd {
	fm, cmd := m.confirmForm.Update(msg)
	if f, ok := fm.(*huh.Form); ok {
		m.confirmForm = f
	}

	switch m.confirmForm.State {
	case huh.StateCompleted:
		m.confirmForm = nil
		if m.discard {
			m.closeTrimForm()
			return nil
		}
		m.mode = ModeTrim
		return nil
	case huh.StateAborted:
		m.confirmForm = nil
		m.mode = ModeTrim
		return nil
	}
	return cmd
}

func (m *Model) closeTrimForm() {
	m.trimForm = nil
	m.trimResult = nil
	m.confirmForm = nil
	m.mode = ModeNormal
}
