package tui

// InputMode selects which part of the screen receives key presses.
type InputMode int

const (
	// ModeNormal routes keys to the clip list and playback shortcuts.
	ModeNormal InputMode = iota
	// ModeCommand routes keys to the ':' command line.
	ModeCommand
	// ModeTrim routes messages to the trim window form.
	ModeTrim
	// ModeConfirm routes messages to the discard confirmation.
	ModeConfirm
	// ModePicker routes messages to the file picker.
	ModePicker
)

func (m InputMode) String() string {
	switch m {
	case ModeCommand:
		return "Command"
	case ModeTrim, ModeConfirm:
		return "Trim"
	case ModePicker:
		return "Add"
	default:
		return "Normal"
	}
}
