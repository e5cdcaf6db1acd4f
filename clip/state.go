// Package clip holds the per-video trim state and the ordered store of clips.
package clip

import (
	"fmt"
	"math"

	apperrors "github.com/user/trimview/pkg/errors"
	"github.com/user/trimview/pkg/timeutil"
)

// ViewMode selects which surface shows a clip.
type ViewMode int

const (
	// ViewRaw shows the full-length file.
	ViewRaw ViewMode = iota
	// ViewTrimmed plays only the trim window, looping.
	ViewTrimmed
)

func (m ViewMode) String() string {
	if m == ViewTrimmed {
		return "TRIMMED"
	}
	return "RAW"
}

// Bound selects the start or end of the trim window.
type Bound int

const (
	Start Bound = iota
	End
)

func (b Bound) String() string {
	if b == End {
		return "end"
	}
	return "start"
}

var (
	// DefaultStart is the trim start given to newly loaded clips (1:30).
	DefaultStart = timeutil.TimeValue{Minutes: 1, Seconds: 30}
	// DefaultEnd is the trim end given to newly loaded clips (2:50).
	DefaultEnd = timeutil.TimeValue{Minutes: 2, Seconds: 50}
)

// Window is a start/end pair, used for the defaults applied at load time.
type Window struct {
	Start timeutil.TimeValue
	End   timeutil.TimeValue
}

// DefaultWindow is the window given to clips when no configuration overrides it.
var DefaultWindow = Window{Start: DefaultStart, End: DefaultEnd}

// Source is the handle to a clip's media. Every surface refers to the same
// Path; none of them owns the file.
type Source struct {
	ID   string
	Path string
	Name string
}

// State is one loaded video. Values are treated as immutable: every With*
// method returns a modified copy.
type State struct {
	Source Source
	// Duration is 0 until metadata has been discovered.
	Duration float64
	Start    timeutil.TimeValue
	End      timeutil.TimeValue
	Mode     ViewMode
}

// New returns a clip for src with the default trim window in RAW mode.
func New(src Source) *State {
	return NewWithWindow(src, DefaultStart, DefaultEnd)
}

// NewWithWindow returns a clip for src with the given trim window in RAW mode.
func NewWithWindow(src Source, start, end timeutil.TimeValue) *State {
	return &State{
		Source: src,
		Start:  start,
		End:    end,
		Mode:   ViewRaw,
	}
}

// Label returns the display label for the clip at index i.
func Label(i int) string {
	return fmt.Sprintf("Video %d", i+1)
}

// DurationKnown reports whether metadata has supplied a duration.
func (s State) DurationKnown() bool {
	return s.Duration > 0
}

// Window returns the trim window in seconds.
func (s State) Window() (start, end float64) {
	return s.Start.ToSeconds(), s.End.ToSeconds()
}

// Span returns end - start in seconds; it may be zero or negative.
func (s State) Span() float64 {
	start, end := s.Window()
	return end - start
}

// Time returns the start or end TimeValue.
func (s State) Time(b Bound) timeutil.TimeValue {
	if b == End {
		return s.End
	}
	return s.Start
}

// WithDuration records the discovered duration and clamps End to it.
// Negative or NaN durations leave the duration unknown.
func (s State) WithDuration(seconds float64) State {
	if math.IsNaN(seconds) || math.IsInf(seconds, 0) || seconds < 0 {
		seconds = 0
	}
	s.Duration = seconds
	return s.clampEnd()
}

// WithTimeField replaces one field of the start or end time. Values outside
// [0, field.Max()] are rejected and the state is returned unchanged.
func (s State) WithTimeField(b Bound, f timeutil.Field, value int) (State, error) {
	if !f.Valid(value) {
		return s, apperrors.ErrInvalidTimeField.WithDetail("%s %s=%d, want 0..%d", b, f, value, f.Max())
	}
	return s.set(b, s.Time(b).Set(f, value)), nil
}

// WithTime replaces the whole start or end time after checking every field.
func (s State) WithTime(b Bound, t timeutil.TimeValue) (State, error) {
	for _, f := range []timeutil.Field{timeutil.Hours, timeutil.Minutes, timeutil.Seconds} {
		if v := t.Get(f); !f.Valid(v) {
			return s, apperrors.ErrInvalidTimeField.WithDetail("%s %s=%d, want 0..%d", b, f, v, f.Max())
		}
	}
	return s.set(b, t), nil
}

// ToggleViewMode flips between RAW and TRIMMED.
func (s State) ToggleViewMode() State {
	if s.Mode == ViewTrimmed {
		s.Mode = ViewRaw
	} else {
		s.Mode = ViewTrimmed
	}
	return s
}

// WithViewMode sets the view mode.
func (s State) WithViewMode(m ViewMode) State {
	s.Mode = m
	return s
}

// Validate reports DegenerateWindow when end <= start. With a known duration
// End has already been clamped, so a start at or past the duration is
// reported the same way.
func (s State) Validate() error {
	start, end := s.Window()
	if end <= start {
		return apperrors.ErrDegenerateWindow.WithDetail("%s-%s", s.Start, s.End)
	}
	return nil
}

func (s State) set(b Bound, t timeutil.TimeValue) State {
	if b == End {
		s.End = t
	} else {
		s.Start = t
	}
	return s.clampEnd()
}

func (s State) clampEnd() State {
	if s.DurationKnown() && s.End.ToSeconds() > s.Duration {
		s.End = timeutil.FromSeconds(s.Duration)
	}
	return s
}
