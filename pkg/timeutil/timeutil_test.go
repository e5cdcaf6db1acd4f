package timeutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	apperrors "github.com/user/trimview/pkg/errors"
)

func TestToSeconds(t *testing.T) {
	tests := []struct {
		name string
		in   TimeValue
		want float64
	}{
		{"zero", TimeValue{}, 0},
		{"default start", TimeValue{0, 1, 30}, 90},
		{"default end", TimeValue{0, 2, 50}, 170},
		{"max", TimeValue{23, 59, 59}, 86399},
		{"out of range minutes accepted", TimeValue{0, 75, 0}, 4500},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.ToSeconds())
		})
	}
}

func TestScalarRoundTrip(t *testing.T) {
	for h := 0; h <= 23; h += 7 {
		for m := 0; m <= 59; m += 13 {
			for s := 0; s <= 59; s += 11 {
				tv := TimeValue{h, m, s}
				got := FromSeconds(tv.ToSeconds())
				assert.Equal(t, tv.ToSeconds(), got.ToSeconds(), "round trip of %s", tv)
				assert.Equal(t, tv, got)
			}
		}
	}
}

func TestFromSecondsEdgeCases(t *testing.T) {
	assert.Equal(t, TimeValue{}, FromSeconds(-5))
	assert.Equal(t, TimeValue{}, FromSeconds(math.NaN()))
	assert.Equal(t, TimeValue{0, 2, 10}, FromSeconds(130.9))
}

func TestToFrames(t *testing.T) {
	assert.Equal(t, 2700, ToFrames(90, 30))
	assert.Equal(t, 5100, ToFrames(170, 30))
	assert.Equal(t, 2400, ToFrames(80, 30))
	assert.Equal(t, 29, ToFrames(0.999, 30))
	assert.Equal(t, 0, ToFrames(0, 30))
}

func TestToFramesMonotonic(t *testing.T) {
	for _, fps := range []float64{23.976, 25, 30, 60} {
		prev := ToFrames(0, fps)
		for s := 0.0; s < 20; s += 0.037 {
			got := ToFrames(s, fps)
			assert.Equal(t, int(math.Floor(s*fps)), got)
			assert.GreaterOrEqual(t, got, prev)
			prev = got
		}
	}
}

func TestFieldRanges(t *testing.T) {
	assert.Equal(t, 23, Hours.Max())
	assert.Equal(t, 59, Minutes.Max())
	assert.Equal(t, 59, Seconds.Max())
	assert.True(t, Minutes.Valid(0))
	assert.False(t, Minutes.Valid(60))
	assert.False(t, Seconds.Valid(-1))
	assert.False(t, Hours.Valid(24))
}

func TestGetSet(t *testing.T) {
	tv := TimeValue{1, 2, 3}
	assert.Equal(t, TimeValue{1, 40, 3}, tv.Set(Minutes, 40))
	assert.Equal(t, TimeValue{1, 2, 3}, tv, "Set must not mutate the receiver")
	assert.Equal(t, 3, tv.Get(Seconds))
}

func TestFormatTime(t *testing.T) {
	assert.Equal(t, "0:01:30", FormatTime(90))
	assert.Equal(t, "1:11:22", FormatTime(4282))
	assert.Equal(t, "0:00:00", FormatTime(-3))
}

func TestParseTimeToSeconds(t *testing.T) {
	tests := []struct {
		in      string
		want    float64
		wantErr bool
	}{
		{"0:01:30", 90, false},
		{"2:50", 170, false},
		{"12.5", 12.5, false},
		{"abc", 0, true},
		{"1:2:3:4", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseTimeToSeconds(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseTimeValue(t *testing.T) {
	got, err := ParseTimeValue("0:02:50")
	require.NoError(t, err)
	assert.Equal(t, TimeValue{0, 2, 50}, got)

	got, err = ParseTimeValue("1:40")
	require.NoError(t, err)
	assert.Equal(t, TimeValue{0, 1, 40}, got)

	got, err = ParseTimeValue("130")
	require.NoError(t, err)
	assert.Equal(t, TimeValue{0, 2, 10}, got)
}

func TestParseTimeValueRejectsFields(t *testing.T) {
	tests := []string{"2:-30", "75:00", "1:60", "0:75:00", "24:00:00", "-1:00:00", "-4"}
	for _, in := range tests {
		t.Run(in, func(t *testing.T) {
			_, err := ParseTimeValue(in)
			assert.True(t, apperrors.Is(err, apperrors.CodeInvalidTimeField), "got %v", err)

			_, err = ParseTimeToSeconds(in)
			if in != "-4" {
				assert.Error(t, err)
			}
		})
	}
}

func TestParseTimeValueMalformed(t *testing.T) {
	for _, in := range []string{"", "abc", "1:2:3:4", "1:3x", "2:30.5"} {
		_, err := ParseTimeValue(in)
		assert.Error(t, err, in)
		assert.False(t, apperrors.Is(err, apperrors.CodeInvalidTimeField), in)
	}
}
