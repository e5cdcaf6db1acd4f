package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/user/trimview/tui/styles"
)

// CommandInputState holds the state for the command input component.
type CommandInputState struct {
	// Active indicates if command mode is active
	Active bool
	// Input is the current command input buffer
	Input string
	// CursorPos is the cursor position within the input
	CursorPos int
	// Result is the result message to display (success or error)
	Result string
	// IsError indicates if the result is an error message
	IsError bool
	// History holds executed commands, oldest first
	History []string
	// historyPos indexes History while browsing; len(History) means the live line
	historyPos int
}

// maxHistory bounds the number of remembered commands.
const maxHistory = 50

// CommandInput renders the bottom line: the ':' prompt while typing, else the
// last result, else an empty bar.
func CommandInput(state CommandInputState, width int) string {
	bar := lipgloss.NewStyle().Background(styles.DarkPurple).Width(width)

	switch {
	case state.Active:
		line := state.Input + "_"
		if state.CursorPos < len(state.Input) {
			line = state.Input[:state.CursorPos] + "_" + state.Input[state.CursorPos:]
		}
		prompt := lipgloss.NewStyle().Foreground(styles.Cyan).Bold(true).Render(":")
		return bar.Render(prompt + styles.PrimaryText.Render(line))
	case state.Result != "":
		result := styles.Success
		if state.IsError {
			result = styles.Warning
		}
		return bar.Render(" " + result.Render(state.Result))
	default:
		return bar.Render(" ")
	}
}

// InsertChar inserts a character at the current cursor position.
func (s *CommandInputState) InsertChar(c rune) {
	if s.CursorPos >= len(s.Input) {
		s.Input += string(c)
	} else {
		s.Input = s.Input[:s.CursorPos] + string(c) + s.Input[s.CursorPos:]
	}
	s.CursorPos++
}

// Backspace deletes the character before the cursor.
func (s *CommandInputState) Backspace() {
	if s.CursorPos > 0 && len(s.Input) > 0 {
		if s.CursorPos >= len(s.Input) {
			s.Input = s.Input[:len(s.Input)-1]
		} else {
			s.Input = s.Input[:s.CursorPos-1] + s.Input[s.CursorPos:]
		}
		s.CursorPos--
	}
}

// Delete deletes the character at the cursor.
func (s *CommandInputState) Delete() {
	if s.CursorPos < len(s.Input) {
		s.Input = s.Input[:s.CursorPos] + s.Input[s.CursorPos+1:]
	}
}

// MoveCursorLeft moves the cursor left.
func (s *CommandInputState) MoveCursorLeft() {
	if s.CursorPos > 0 {
		s.CursorPos--
	}
}

// MoveCursorRight moves the cursor right.
func (s *CommandInputState) MoveCursorRight() {
	if s.CursorPos < len(s.Input) {
		s.CursorPos++
	}
}

// Clear clears the input buffer and deactivates command mode.
func (s *CommandInputState) Clear() {
	s.Input = ""
	s.CursorPos = 0
	s.Active = false
}

// GetCommand returns the current command, records it in the history and
// clears the input.
func (s *CommandInputState) GetCommand() string {
	cmd := strings.TrimSpace(s.Input)
	if cmd != "" && (len(s.History) == 0 || s.History[len(s.History)-1] != cmd) {
		s.History = append(s.History, cmd)
		if len(s.History) > maxHistory {
			s.History = s.History[len(s.History)-maxHistory:]
		}
	}
	s.Clear()
	return cmd
}

// Open activates command mode with an empty line.
func (s *CommandInputState) Open() {
	s.Active = true
	s.Input = ""
	s.CursorPos = 0
	s.historyPos = len(s.History)
	s.ClearResult()
}

// HistoryPrev replaces the input with the previous history entry.
func (s *CommandInputState) HistoryPrev() {
	if s.historyPos <= 0 || len(s.History) == 0 {
		return
	}
	s.historyPos--
	s.setInput(s.History[s.historyPos])
}

// HistoryNext moves forward through the history, ending on an empty line.
func (s *CommandInputState) HistoryNext() {
	if s.historyPos >= len(s.History) {
		return
	}
	s.historyPos++
	if s.historyPos == len(s.History) {
		s.setInput("")
		return
	}
	s.setInput(s.History[s.historyPos])
}

func (s *CommandInputState) setInput(v string) {
	s.Input = v
	s.CursorPos = len(v)
}

// SetResult sets the result message.
func (s *CommandInputState) SetResult(msg string, isError bool) {
	s.Result = msg
	s.IsError = isError
}

// ClearResult clears the result message.
func (s *CommandInputState) ClearResult() {
	s.Result = ""
	s.IsError = false
}
