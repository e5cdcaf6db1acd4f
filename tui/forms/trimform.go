package forms

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/user/trimview/pkg/timeutil"
)

// TrimFormResult holds the six numeric fields of the trim form as typed.
type TrimFormResult struct {
	StartHours   string
	StartMinutes string
	StartSeconds string
	EndHours     string
	EndMinutes   string
	EndSeconds   string

	initial [6]string
}

// NewTrimFormResult pre-fills the fields from the current window.
func NewTrimFormResult(start, end timeutil.TimeValue) *TrimFormResult {
	r := &TrimFormResult{
		StartHours:   strconv.Itoa(start.Hours),
		StartMinutes: strconv.Itoa(start.Minutes),
		StartSeconds: strconv.Itoa(start.Seconds),
		EndHours:     strconv.Itoa(end.Hours),
		EndMinutes:   strconv.Itoa(end.Minutes),
		EndSeconds:   strconv.Itoa(end.Seconds),
	}
	r.initial = r.fields()
	return r
}

func (r *TrimFormResult) fields() [6]string {
	return [6]string{r.StartHours, r.StartMinutes, r.StartSeconds, r.EndHours, r.EndMinutes, r.EndSeconds}
}

// Changed reports whether any field differs from its pre-filled value.
func (r *TrimFormResult) Changed() bool {
	return r.fields() != r.initial
}

// Values parses the fields into start and end times. Every field must be an
// integer within its range.
func (r *TrimFormResult) Values() (start, end timeutil.TimeValue, err error) {
	parts := []struct {
		raw   string
		field timeutil.Field
		dst   *int
	}{
		{r.StartHours, timeutil.Hours, &start.Hours},
		{r.StartMinutes, timeutil.Minutes, &start.Minutes},
		{r.StartSeconds, timeutil.Seconds, &start.Seconds},
		{r.EndHours, timeutil.Hours, &end.Hours},
		{r.EndMinutes, timeutil.Minutes, &end.Minutes},
		{r.EndSeconds, timeutil.Seconds, &end.Seconds},
	}
	for _, p := range parts {
		v, perr := parseField(p.raw, p.field)
		if perr != nil {
			return timeutil.TimeValue{}, timeutil.TimeValue{}, perr
		}
		*p.dst = v
	}
	return start, end, nil
}

func parseField(raw string, f timeutil.Field) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("%s must be a number", f)
	}
	if !f.Valid(v) {
		return 0, fmt.Errorf("%s must be between 0 and %d", f, f.Max())
	}
	return v, nil
}

func fieldValidator(f timeutil.Field) func(string) error {
	return func(s string) error {
		_, err := parseField(s, f)
		return err
	}
}

// NewTrimForm creates the two-step trim window form for the clip named label.
// Each field is validated against its range as it is typed, so an accepted
// form always yields valid TimeValues.
func NewTrimForm(label string, result *TrimFormResult) *huh.Form {
	input := func(title string, f timeutil.Field, value *string) *huh.Input {
		return huh.NewInput().
			Title(title).
			Description(fmt.Sprintf("0-%d", f.Max())).
			CharLimit(2).
			Value(value).
			Validate(fieldValidator(f))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().Title("Trim "+label).Description("Step 1 of 2: Start"),
			input("Hours", timeutil.Hours, &result.StartHours),
			input("Minutes", timeutil.Minutes, &result.StartMinutes),
			input("Seconds", timeutil.Seconds, &result.StartSeconds),
		),
		huh.NewGroup(
			huh.NewNote().Title("Trim "+label).Description("Step 2 of 2: End"),
			input("Hours", timeutil.Hours, &result.EndHours),
			input("Minutes", timeutil.Minutes, &result.EndMinutes),
			input("Seconds", timeutil.Seconds, &result.EndSeconds),
		),
	).WithTheme(Theme()).WithShowHelp(true)
}
