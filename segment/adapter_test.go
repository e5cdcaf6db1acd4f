package segment

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/user/trimview/clip"
	apperrors "github.com/user/trimview/pkg/errors"
	"github.com/user/trimview/pkg/timeutil"
)

func TestParamsDefaultWindow(t *testing.T) {
	state := clip.New(clip.Source{Name: "a.mp4"}).ToggleViewMode()

	p, err := NewAdapter(DefaultFrameRate, 0, 0).Params(state)
	require.NoError(t, err)
	assert.Equal(t, 2700, p.StartFrame)
	assert.Equal(t, 5100, p.EndFrame)
	assert.Equal(t, 2400, p.DurationInFrames)
	assert.Equal(t, 30.0, p.FrameRate)
	assert.Equal(t, DefaultWidth, p.Width)
	assert.Equal(t, DefaultHeight, p.Height)
	assert.Equal(t, "a.mp4", p.Source.Name)
}

func TestParamsFloorsFractionalFrameRates(t *testing.T) {
	state := *clip.NewWithWindow(clip.Source{}, timeutil.TimeValue{Seconds: 1}, timeutil.TimeValue{Seconds: 2})

	p, err := NewAdapter(29.97, 640, 360).Params(state)
	require.NoError(t, err)
	assert.Equal(t, 29, p.StartFrame)
	assert.Equal(t, 59, p.EndFrame)
	assert.Equal(t, 29, p.DurationInFrames)
	assert.Equal(t, 640, p.Width)
}

func TestParamsEmptySegment(t *testing.T) {
	tests := []struct {
		name       string
		start, end timeutil.TimeValue
	}{
		{"equal", timeutil.FromSeconds(100), timeutil.FromSeconds(100)},
		{"reversed", timeutil.FromSeconds(170), timeutil.FromSeconds(90)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := *clip.NewWithWindow(clip.Source{}, tt.start, tt.end)
			p, err := NewAdapter(DefaultFrameRate, 0, 0).Params(state)
			assert.True(t, errors.Is(err, apperrors.ErrEmptySegment))
			assert.Zero(t, p)
		})
	}
}

func TestZeroAdapterUsesDefaultFrameRate(t *testing.T) {
	p, err := Adapter{}.Params(*clip.New(clip.Source{}))
	require.NoError(t, err)
	assert.Equal(t, 30.0, p.FrameRate)
	assert.Equal(t, 2700, p.StartFrame)
}

// Upload, toggle to TRIMMED and hand the window to the player.
func TestUploadToSegmentEndToEnd(t *testing.T) {
	store := clip.NewStore()
	store.Append(clip.New(clip.Source{Name: "a.mp4"}), clip.New(clip.Source{Name: "b.mp4"}))
	require.NoError(t, store.UpdateAt(0, clip.Update(clip.State.ToggleViewMode)))

	c, err := store.At(0)
	require.NoError(t, err)
	require.Equal(t, clip.ViewTrimmed, c.Mode)

	p, err := NewAdapter(DefaultFrameRate, 0, 0).Params(*c)
	require.NoError(t, err)
	assert.Equal(t, [4]float64{2700, 5100, 2400, 30},
		[4]float64{float64(p.StartFrame), float64(p.EndFrame), float64(p.DurationInFrames), p.FrameRate})

	surface := &fakeLoop{}
	require.NoError(t, NewLoopPlayer(surface, nil).Play(p))
	assert.Equal(t, [2]float64{90, 170}, surface.loop)
}
