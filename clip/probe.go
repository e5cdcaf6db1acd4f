package clip

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	ffmpeg "github.com/u2takey/ffmpeg-go"
	apperrors "github.com/user/trimview/pkg/errors"
	"go.uber.org/zap"
)

// Metadata is what ffprobe reports about a clip's source.
type Metadata struct {
	Duration float64
	Width    int
	Height   int
	FPS      float64
}

// ProbeFunc runs ffprobe on a file and returns its JSON output.
type ProbeFunc func(path string, timeout time.Duration) (string, error)

func ffprobe(path string, timeout time.Duration) (string, error) {
	return ffmpeg.ProbeWithTimeout(path, timeout, ffmpeg.KwArgs{})
}

// Prober discovers clip durations; its result is the metadata-loaded event.
type Prober struct {
	Timeout time.Duration
	Logger  *zap.Logger
	probe   ProbeFunc
}

// NewProber returns a Prober backed by ffprobe.
func NewProber(timeout time.Duration, logger *zap.Logger) *Prober {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Prober{
		Timeout: timeout,
		Logger:  logger.With(zap.String("component", "probe")),
		probe:   ffprobe,
	}
}

// NewProberWith returns a Prober that runs fn instead of ffprobe.
func NewProberWith(fn ProbeFunc, timeout time.Duration, logger *zap.Logger) *Prober {
	p := NewProber(timeout, logger)
	p.probe = fn
	return p
}

// Probe reads metadata for path. ctx is checked before ffprobe starts; the
// probe itself is bounded by Timeout.
func (p *Prober) Probe(ctx context.Context, path string) (Metadata, error) {
	if err := ctx.Err(); err != nil {
		return Metadata{}, apperrors.Wrap(apperrors.CodeProbeFailed, "probe "+path, err)
	}

	out, err := p.probe(path, p.Timeout)
	if err != nil {
		p.Logger.Warn("ffprobe failed", zap.String("path", path), zap.Error(err))
		return Metadata{}, apperrors.Wrap(apperrors.CodeProbeFailed, "probe "+path, err)
	}

	md, err := parseProbe(out)
	if err != nil {
		return Metadata{}, apperrors.Wrap(apperrors.CodeProbeFailed, "parse ffprobe output", err)
	}
	p.Logger.Debug("probed",
		zap.String("path", path),
		zap.Float64("duration", md.Duration),
		zap.Int("width", md.Width),
		zap.Int("height", md.Height))
	return md, nil
}

// probeResult matches ffprobe JSON output structure
type probeResult struct {
	Format struct {
		Duration string `json:"duration"`
	} `json:"format"`
	Streams []struct {
		CodecType  string `json:"codec_type"`
		Width      int    `json:"width"`
		Height     int    `json:"height"`
		RFrameRate string `json:"r_frame_rate"`
		Duration   string `json:"duration"`
	} `json:"streams"`
}

func parseProbe(out string) (Metadata, error) {
	var probe probeResult
	if err := json.Unmarshal([]byte(out), &probe); err != nil {
		return Metadata{}, err
	}

	var md Metadata
	if d, err := strconv.ParseFloat(probe.Format.Duration, 64); err == nil {
		md.Duration = d
	}
	for _, stream := range probe.Streams {
		if stream.CodecType != "video" {
			continue
		}
		md.Width = stream.Width
		md.Height = stream.Height
		md.FPS = parseFrameRate(stream.RFrameRate)
		if md.Duration == 0 {
			if d, err := strconv.ParseFloat(stream.Duration, 64); err == nil {
				md.Duration = d
			}
		}
		break
	}
	return md, nil
}

// parseFrameRate parses frame rate from ffprobe format (e.g., "30/1")
func parseFrameRate(s string) float64 {
	parts := strings.Split(s, "/")
	if len(parts) != 2 {
		return 0
	}
	num, err1 := strconv.ParseFloat(parts[0], 64)
	den, err2 := strconv.ParseFloat(parts[1], 64)
	if err1 != nil || err2 != nil || den == 0 {
		return 0
	}
	return num / den
}
