// Package playback keeps the full-length surface and the muted scrub preview
// aligned with a clip's trim window.
package playback

import (
	"math"

	"github.com/user/trimview/clip"
	apperrors "github.com/user/trimview/pkg/errors"
	"go.uber.org/zap"
)

// Surface is a playback position that can be read and set, in seconds.
type Surface interface {
	Position() (float64, error)
	Seek(seconds float64) error
}

// Phase is the scrub preview's position in the sync cycle.
type Phase int

const (
	// PhaseUnseeded means the preview has not reported metadata yet.
	PhaseUnseeded Phase = iota
	// PhaseSeeded means the preview sits inside the trim window.
	PhaseSeeded
	// PhaseSeeking is held while a click is applied to the surfaces.
	PhaseSeeking
)

func (p Phase) String() string {
	switch p {
	case PhaseSeeded:
		return "seeded"
	case PhaseSeeking:
		return "seeking"
	default:
		return "unseeded"
	}
}

// Features lists the optional capabilities of a controller.
type Features struct {
	ClickScrub bool
	Audio      bool
}

// Option configures a Controller.
type Option func(*Controller)

// WithFeatures sets the enabled capabilities. The default enables click-scrub only.
func WithFeatures(f Features) Option {
	return func(c *Controller) { c.features = f }
}

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option {
	return func(c *Controller) { c.logger = l }
}

// Controller syncs the surfaces of one clip. It is driven from the UI event
// loop; calls must not overlap.
type Controller struct {
	full     Surface
	preview  Surface
	audio    Surface
	features Features
	phase    Phase
	logger   *zap.Logger
}

// NewController returns a controller for the given surfaces. Either surface
// may be nil when its window is not open.
func NewController(full, preview Surface, opts ...Option) *Controller {
	c := &Controller{
		full:     full,
		preview:  preview,
		features: Features{ClickScrub: true},
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Phase returns the current phase.
func (c *Controller) Phase() Phase {
	return c.phase
}

// Features returns the enabled capabilities.
func (c *Controller) Features() Features {
	return c.features
}

// AttachAudio adds the audio-only surface. It fails when the audio capability
// is disabled.
func (c *Controller) AttachAudio(s Surface) error {
	if !c.features.Audio {
		return apperrors.ErrCapabilityDisabled.WithDetail("audio")
	}
	c.audio = s
	return nil
}

// DetachAudio drops the audio surface.
func (c *Controller) DetachAudio() {
	c.audio = nil
}

// Reset returns the controller to the unseeded phase, e.g. after the preview
// loaded a different file.
func (c *Controller) Reset() {
	c.phase = PhaseUnseeded
}

// MetadataReady seeds the preview at the trim start so it opens on the first
// frame of the window rather than frame zero.
func (c *Controller) MetadataReady(state clip.State) error {
	start, _ := state.Window()
	if c.preview != nil {
		if err := c.preview.Seek(start); err != nil {
			return err
		}
	}
	c.phase = PhaseSeeded
	c.logger.Debug("preview seeded", zap.String("clip", state.Source.Name), zap.Float64("start", start))
	return nil
}

// TimeUpdate handles a position report from the preview. In TRIMMED mode a
// position at or past the end sends the preview back to the start. It reports
// whether a reset happened. Reports before MetadataReady are ignored.
func (c *Controller) TimeUpdate(state clip.State, pos float64) (bool, error) {
	if c.phase != PhaseSeeded || state.Mode != clip.ViewTrimmed || c.preview == nil {
		return false, nil
	}
	start, end := state.Window()
	if pos < end {
		return false, nil
	}
	if err := c.preview.Seek(start); err != nil {
		return false, err
	}
	c.logger.Debug("preview looped", zap.Float64("pos", pos), zap.Float64("start", start))
	return true, nil
}

// Click seeks every surface to the time under a click at fraction of the
// scrub strip and returns that time.
func (c *Controller) Click(state clip.State, fraction float64) (float64, error) {
	if !c.features.ClickScrub {
		return 0, apperrors.ErrCapabilityDisabled.WithDetail("click-scrub")
	}
	start, end := state.Window()
	t := SeekTime(start, end, fraction)

	prev := c.phase
	c.phase = PhaseSeeking
	for _, s := range []Surface{c.full, c.preview, c.audio} {
		if s == nil {
			continue
		}
		if err := s.Seek(t); err != nil {
			c.phase = prev
			return t, err
		}
	}
	c.phase = PhaseSeeded
	c.logger.Debug("scrub", zap.Float64("fraction", fraction), zap.Float64("time", t))
	return t, nil
}

// SeekTime maps a strip fraction into the window [start, end]. The fraction
// is clamped to [0, 1]; a window with no positive span maps every fraction
// to start.
func SeekTime(start, end, fraction float64) float64 {
	span := end - start
	if span <= 0 || math.IsNaN(span) {
		return start
	}
	return start + clampUnit(fraction)*span
}

// Fraction converts an offset inside an element of the given width into a
// fraction in [0, 1]. A non-positive width yields 0.
func Fraction(offset, width float64) float64 {
	if width <= 0 || math.IsNaN(width) {
		return 0
	}
	return clampUnit(offset / width)
}

func clampUnit(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
