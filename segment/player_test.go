package segment

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLoop struct {
	seeks   []float64
	loop    [2]float64
	looping bool
	playing bool
	seekErr error
}

func (f *fakeLoop) Seek(seconds float64) error {
	if f.seekErr != nil {
		return f.seekErr
	}
	f.seeks = append(f.seeks, seconds)
	return nil
}

func (f *fakeLoop) SetABLoop(a, b float64) error {
	f.loop = [2]float64{a, b}
	f.looping = true
	return nil
}

func (f *fakeLoop) ClearABLoop() error {
	f.loop = [2]float64{}
	f.looping = false
	return nil
}

func (f *fakeLoop) Play() error {
	f.playing = true
	return nil
}

func TestLoopPlayerPlayAndStop(t *testing.T) {
	surface := &fakeLoop{}
	player := NewLoopPlayer(surface, nil)
	params := Params{StartFrame: 2700, EndFrame: 5100, DurationInFrames: 2400, FrameRate: 30}

	require.NoError(t, player.Play(params))
	assert.Equal(t, []float64{90}, surface.seeks)
	assert.Equal(t, [2]float64{90, 170}, surface.loop)
	assert.True(t, surface.playing)

	cur, ok := player.Current()
	assert.True(t, ok)
	assert.Equal(t, params, cur)

	require.NoError(t, player.Stop())
	assert.False(t, surface.looping)
	_, ok = player.Current()
	assert.False(t, ok)
}

func TestLoopPlayerRejectsEmptyParams(t *testing.T) {
	surface := &fakeLoop{}
	err := NewLoopPlayer(surface, nil).Play(Params{FrameRate: 30})
	assert.Error(t, err)
	assert.Empty(t, surface.seeks)
	assert.False(t, surface.looping)
}

func TestLoopPlayerSeekError(t *testing.T) {
	surface := &fakeLoop{seekErr: errors.New("mpv: not connected")}
	player := NewLoopPlayer(surface, nil)

	err := player.Play(Params{StartFrame: 30, EndFrame: 60, DurationInFrames: 30, FrameRate: 30})
	assert.ErrorContains(t, err, "not connected")
	assert.False(t, surface.looping)
	_, ok := player.Current()
	assert.False(t, ok)
}

var _ Player = (*LoopPlayer)(nil)
