// Package forms provides huh-based form components for the TUI.
package forms

import (
	"fmt"

	"github.com/charmbracelet/huh"
)

// NewConfirmDiscardForm asks whether to drop the window typed into the trim
// form. result supplies the typed values for the description; discard is
// bound to the answer.
func NewConfirmDiscardForm(result *TrimFormResult, discard *bool) *huh.Form {
	typed := "The typed window has not been applied."
	if start, end, err := result.Values(); err == nil {
		typed = fmt.Sprintf("%s - %s has not been applied.", start, end)
	}
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Discard trim edits?").
				Description(typed).
				Affirmative("Discard").
				Negative("Keep editing").
				Value(discard),
		),
	).WithTheme(Theme()).WithShowHelp(false)
}
