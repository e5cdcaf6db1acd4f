package forms

import (
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/user/trimview/tui/styles"
)

func fg(c lipgloss.Color) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(c)
}

func button(bg, text lipgloss.Color) lipgloss.Style {
	return lipgloss.NewStyle().Background(bg).Foreground(text).Padding(0, 1)
}

// Theme returns the huh theme for the trim and confirm forms. Only inputs,
// notes and confirm buttons are styled; the rest comes from huh.ThemeBase.
func Theme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused group: thick left rule, amber step note.
	f := &t.Focused
	f.Base = f.Base.BorderStyle(lipgloss.ThickBorder()).BorderLeft(true).
		BorderForeground(styles.BrightPurple).PaddingLeft(1)
	f.Title = fg(styles.Pink).Bold(true)
	f.Description = fg(styles.Lavender)
	f.NoteTitle = fg(styles.Amber).Bold(true)
	f.ErrorIndicator = fg(styles.Red).Bold(true)
	f.ErrorMessage = fg(styles.Red)
	f.TextInput.Cursor = fg(styles.Cyan)
	f.TextInput.Prompt = fg(styles.Cyan)
	f.TextInput.Placeholder = fg(styles.Purple)
	f.TextInput.Text = fg(styles.LightLavender).Bold(true)
	f.FocusedButton = button(styles.BrightPurple, styles.LightLavender).Bold(true)
	f.BlurredButton = button(styles.Purple, styles.Lavender)
	f.Next = f.FocusedButton

	b := &t.Blurred
	b.Base = b.Base.BorderStyle(lipgloss.HiddenBorder()).BorderLeft(true).PaddingLeft(1)
	b.Title = fg(styles.Lavender)
	b.Description = fg(styles.Purple)
	b.NoteTitle = fg(styles.Lavender)
	b.ErrorMessage = fg(styles.Red)
	b.TextInput.Prompt = fg(styles.Purple)
	b.TextInput.Text = fg(styles.Lavender)
	b.FocusedButton = button(styles.Purple, styles.Lavender)
	b.BlurredButton = button(styles.DeepPurple, styles.Purple)
	b.Next = b.FocusedButton

	return t
}
