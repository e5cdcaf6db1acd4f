package clip

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	apperrors "github.com/user/trimview/pkg/errors"
)

const sampleProbe = `{
  "streams": [
    {"codec_type": "audio", "duration": "300.0"},
    {"codec_type": "video", "width": 1920, "height": 1080, "r_frame_rate": "30000/1001"}
  ],
  "format": {"duration": "312.480000"}
}`

func fakeProber(out string, err error) *Prober {
	p := NewProber(time.Second, nil)
	p.probe = func(string, time.Duration) (string, error) { return out, err }
	return p
}

func TestProbeParsesMetadata(t *testing.T) {
	md, err := fakeProber(sampleProbe, nil).Probe(context.Background(), "/v/a.mp4")
	require.NoError(t, err)

	assert.Equal(t, 312.48, md.Duration)
	assert.Equal(t, 1920, md.Width)
	assert.Equal(t, 1080, md.Height)
	assert.InDelta(t, 29.97, md.FPS, 0.01)
}

func TestProbeFallsBackToStreamDuration(t *testing.T) {
	out := `{"streams":[{"codec_type":"video","duration":"42.5","r_frame_rate":"25/1"}],"format":{}}`
	md, err := fakeProber(out, nil).Probe(context.Background(), "/v/a.mp4")
	require.NoError(t, err)
	assert.Equal(t, 42.5, md.Duration)
	assert.Equal(t, 25.0, md.FPS)
}

func TestProbeErrors(t *testing.T) {
	_, err := fakeProber("", errors.New("exit status 1")).Probe(context.Background(), "/v/a.mp4")
	assert.True(t, apperrors.Is(err, apperrors.CodeProbeFailed))

	_, err = fakeProber("not json", nil).Probe(context.Background(), "/v/a.mp4")
	assert.True(t, apperrors.Is(err, apperrors.CodeProbeFailed))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = fakeProber(sampleProbe, nil).Probe(ctx, "/v/a.mp4")
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestParseFrameRate(t *testing.T) {
	assert.Equal(t, 30.0, parseFrameRate("30/1"))
	assert.Equal(t, 0.0, parseFrameRate("30"))
	assert.Equal(t, 0.0, parseFrameRate("30/0"))
}
