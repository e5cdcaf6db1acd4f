// Package segment turns a clip's trim window into the frame parameters the
// segment player consumes.
package segment

import (
	"github.com/user/trimview/clip"
	apperrors "github.com/user/trimview/pkg/errors"
	"github.com/user/trimview/pkg/timeutil"
)

const (
	// DefaultFrameRate is the fixed frame rate used when none is configured.
	DefaultFrameRate = 30
	DefaultWidth     = 1280
	DefaultHeight    = 720
)

// Params is the input to a segment player.
type Params struct {
	Source           clip.Source
	StartFrame       int
	EndFrame         int
	DurationInFrames int
	FrameRate        float64
	Width            int
	Height           int
}

// StartSeconds converts StartFrame back to seconds.
func (p Params) StartSeconds() float64 {
	return float64(p.StartFrame) / p.FrameRate
}

// EndSeconds converts EndFrame back to seconds.
func (p Params) EndSeconds() float64 {
	return float64(p.EndFrame) / p.FrameRate
}

// Adapter derives Params at a fixed frame rate and composition size.
type Adapter struct {
	FrameRate float64
	Width     int
	Height    int
}

// NewAdapter returns an adapter. Non-positive values fall back to the defaults.
func NewAdapter(fps float64, width, height int) Adapter {
	if fps <= 0 {
		fps = DefaultFrameRate
	}
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}
	return Adapter{FrameRate: fps, Width: width, Height: height}
}

// Params computes the frame range of state's trim window. A window that
// resolves to zero or fewer frames fails with EmptySegment.
func (a Adapter) Params(state clip.State) (Params, error) {
	fps := a.FrameRate
	if fps <= 0 {
		fps = DefaultFrameRate
	}
	start, end := state.Window()
	p := Params{
		Source:           state.Source,
		StartFrame:       timeutil.ToFrames(start, fps),
		EndFrame:         timeutil.ToFrames(end, fps),
		DurationInFrames: timeutil.ToFrames(end-start, fps),
		FrameRate:        fps,
		Width:            a.Width,
		Height:           a.Height,
	}
	if p.DurationInFrames <= 0 {
		return Params{}, apperrors.ErrEmptySegment.WithDetail("%s-%s at %g fps", state.Start, state.End, fps)
	}
	return p, nil
}
