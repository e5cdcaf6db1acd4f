// Package timeutil converts between structured H:M:S timestamps, scalar
// seconds and frame counts.
package timeutil

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	apperrors "github.com/user/trimview/pkg/errors"
)

// TimeValue is a structured timestamp as entered in the trim form.
// Field ranges are a UI concern; ToSeconds accepts any values.
type TimeValue struct {
	Hours   int
	Minutes int
	Seconds int
}

// Field names one component of a TimeValue.
type Field int

const (
	Hours Field = iota
	Minutes
	Seconds
)

// String returns the lowercase field name.
func (f Field) String() string {
	switch f {
	case Hours:
		return "hours"
	case Minutes:
		return "minutes"
	case Seconds:
		return "seconds"
	default:
		return fmt.Sprintf("field(%d)", int(f))
	}
}

// Max returns the largest value the field accepts: 23 for hours, 59 otherwise.
func (f Field) Max() int {
	if f == Hours {
		return 23
	}
	return 59
}

// Valid reports whether v is within [0, f.Max()].
func (f Field) Valid(v int) bool {
	return v >= 0 && v <= f.Max()
}

// ToSeconds returns hours*3600 + minutes*60 + seconds.
func (t TimeValue) ToSeconds() float64 {
	return float64(t.Hours*3600 + t.Minutes*60 + t.Seconds)
}

// Get returns the value of field f.
func (t TimeValue) Get(f Field) int {
	switch f {
	case Hours:
		return t.Hours
	case Minutes:
		return t.Minutes
	default:
		return t.Seconds
	}
}

// Set returns a copy of t with field f replaced by v.
func (t TimeValue) Set(f Field, v int) TimeValue {
	switch f {
	case Hours:
		t.Hours = v
	case Minutes:
		t.Minutes = v
	default:
		t.Seconds = v
	}
	return t
}

// Valid reports whether every field is within its range.
func (t TimeValue) Valid() bool {
	return Hours.Valid(t.Hours) && Minutes.Valid(t.Minutes) && Seconds.Valid(t.Seconds)
}

// String formats t as H:MM:SS.
func (t TimeValue) String() string {
	return fmt.Sprintf("%d:%02d:%02d", t.Hours, t.Minutes, t.Seconds)
}

// FromSeconds splits whole seconds into a TimeValue. Fractions are floored;
// negative and NaN input yield the zero value.
func FromSeconds(seconds float64) TimeValue {
	if math.IsNaN(seconds) || seconds <= 0 {
		return TimeValue{}
	}
	total := int(math.Floor(seconds))
	return TimeValue{
		Hours:   total / 3600,
		Minutes: (total % 3600) / 60,
		Seconds: total % 60,
	}
}

// ToFrames returns floor(seconds * fps).
func ToFrames(seconds, fps float64) int {
	return int(math.Floor(seconds * fps))
}

// FormatTime formats seconds as H:MM:SS (e.g. 0:01:30, 1:11:22).
func FormatTime(seconds float64) string {
	return FromSeconds(seconds).String()
}

// ParseTimeToSeconds parses a time string in HH:MM:SS, MM:SS, or raw seconds format.
// Colon forms go through ParseTimeValue, so their fields are range checked.
func ParseTimeToSeconds(timeStr string) (float64, error) {
	timeStr = strings.TrimSpace(timeStr)
	if strings.Contains(timeStr, ":") {
		t, err := ParseTimeValue(timeStr)
		if err != nil {
			return 0, err
		}
		return t.ToSeconds(), nil
	}
	secs, err := strconv.ParseFloat(timeStr, 64)
	if err != nil || math.IsNaN(secs) || math.IsInf(secs, 0) {
		return 0, formatError(timeStr)
	}
	return secs, nil
}

// ParseTimeValue parses H:M:S, M:S or raw seconds into a TimeValue.
// Colon forms keep their fields as written and reject a field outside its
// range with InvalidTimeField. Raw seconds are split with FromSeconds.
func ParseTimeValue(timeStr string) (TimeValue, error) {
	timeStr = strings.TrimSpace(timeStr)
	parts := strings.Split(timeStr, ":")
	if len(parts) == 1 {
		secs, err := ParseTimeToSeconds(timeStr)
		if err != nil {
			return TimeValue{}, err
		}
		if secs < 0 {
			return TimeValue{}, apperrors.ErrInvalidTimeField.WithDetail("seconds=%s, want >= 0", timeStr)
		}
		return FromSeconds(secs), nil
	}
	if len(parts) > 3 {
		return TimeValue{}, formatError(timeStr)
	}

	fields := []Field{Hours, Minutes, Seconds}[3-len(parts):]
	var t TimeValue
	for i, part := range parts {
		v, err := strconv.Atoi(part)
		if err != nil {
			return TimeValue{}, formatError(timeStr)
		}
		f := fields[i]
		if !f.Valid(v) {
			return TimeValue{}, apperrors.ErrInvalidTimeField.WithDetail("%s=%d, want 0..%d", f, v, f.Max())
		}
		t = t.Set(f, v)
	}
	return t, nil
}

func formatError(timeStr string) error {
	return fmt.Errorf("expected HH:MM:SS, MM:SS, or seconds, got '%s'", timeStr)
}
