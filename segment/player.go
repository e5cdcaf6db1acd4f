package segment

import (
	"fmt"

	"go.uber.org/zap"
)

// Player plays a segment described by Params.
type Player interface {
	Play(p Params) error
	Stop() error
}

// LoopSurface is the subset of the mpv client the loop player drives.
type LoopSurface interface {
	Seek(seconds float64) error
	SetABLoop(a, b float64) error
	ClearABLoop() error
	Play() error
}

// LoopPlayer plays a segment as an A-B loop on an mpv window.
type LoopPlayer struct {
	surface LoopSurface
	logger  *zap.Logger
	current *Params
}

// NewLoopPlayer returns a player driving surface. A nil logger discards output.
func NewLoopPlayer(surface LoopSurface, logger *zap.Logger) *LoopPlayer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LoopPlayer{surface: surface, logger: logger}
}

// Play seeks to the segment start, loops [start, end] and unpauses.
func (p *LoopPlayer) Play(params Params) error {
	if params.DurationInFrames <= 0 || params.FrameRate <= 0 {
		return fmt.Errorf("play segment: %d frames at %g fps", params.DurationInFrames, params.FrameRate)
	}
	a, b := params.StartSeconds(), params.EndSeconds()
	if err := p.surface.Seek(a); err != nil {
		return fmt.Errorf("seek to segment start: %w", err)
	}
	if err := p.surface.SetABLoop(a, b); err != nil {
		return fmt.Errorf("set loop: %w", err)
	}
	if err := p.surface.Play(); err != nil {
		return fmt.Errorf("play: %w", err)
	}
	p.current = &params
	p.logger.Info("segment playing",
		zap.String("clip", params.Source.Name),
		zap.Int("start_frame", params.StartFrame),
		zap.Int("end_frame", params.EndFrame),
		zap.Float64("fps", params.FrameRate))
	return nil
}

// Stop clears the loop so the window plays the full file again.
func (p *LoopPlayer) Stop() error {
	if err := p.surface.ClearABLoop(); err != nil {
		return fmt.Errorf("clear loop: %w", err)
	}
	p.current = nil
	return nil
}

// Current returns the segment being looped, if any.
func (p *LoopPlayer) Current() (Params, bool) {
	if p.current == nil {
		return Params{}, false
	}
	return *p.current, true
}
