package cmd

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/user/trimview/clip"
	"github.com/user/trimview/log"
	apperrors "github.com/user/trimview/pkg/errors"
	"github.com/user/trimview/tui"
)

// execute runs the root command with a config that keeps logs in a temp dir.
// extra is appended to the config file.
func execute(t *testing.T, extra string, args ...string) (string, error) {
	t.Helper()

	original := log.Logger
	t.Cleanup(func() { log.Logger = original })

	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.toml")
	cfg := fmt.Sprintf("[log]\ndir = %q\n%s", filepath.Join(dir, "logs"), extra)
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfg), 0o644))

	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append([]string{"--config", cfgPath}, args...))
	err := root.Execute()
	return out.String(), err
}

func videoFile(t *testing.T, name string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte("not really a video"), 0o644))
	return path
}

func stubProber(t *testing.T, out string, err error) {
	t.Helper()
	original := newProber
	newProber = func(*app) *clip.Prober {
		return clip.NewProberWith(func(string, time.Duration) (string, error) {
			return out, err
		}, time.Second, nil)
	}
	t.Cleanup(func() { newProber = original })
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.Equal(t, "trimview version "+Version+"\n", out)
}

func TestFramesDefaultWindow(t *testing.T) {
	out, err := execute(t, "", "frames", videoFile(t, "match.mp4"))
	require.NoError(t, err)

	assert.Contains(t, out, "Source:       match.mp4\n")
	assert.Contains(t, out, "Window:       0:01:30 - 0:02:50\n")
	assert.Contains(t, out, "Frame rate:   30\n")
	assert.Contains(t, out, "Start frame:  2700\n")
	assert.Contains(t, out, "End frame:    5100\n")
	assert.Contains(t, out, "Duration:     2400 frames\n")
	assert.Contains(t, out, "Size:         1280x720\n")
}

func TestFramesFlags(t *testing.T) {
	out, err := execute(t, "", "frames", videoFile(t, "a.mp4"), "--start", "1:00", "--end", "0:02:00", "--fps", "25")
	require.NoError(t, err)
	assert.Contains(t, out, "Start frame:  1500\n")
	assert.Contains(t, out, "End frame:    3000\n")
	assert.Contains(t, out, "Duration:     1500 frames\n")
}

func TestFramesUsesConfigDefaults(t *testing.T) {
	extra := "[trim]\ndefault_start = \"0:00:10\"\ndefault_end = \"0:00:20\"\n[playback]\nframe_rate = 10.0\n"
	out, err := execute(t, extra, "frames", videoFile(t, "a.mp4"))
	require.NoError(t, err)
	assert.Contains(t, out, "Start frame:  100\n")
	assert.Contains(t, out, "End frame:    200\n")
}

func TestFramesDegenerateWindow(t *testing.T) {
	_, err := execute(t, "", "frames", videoFile(t, "a.mp4"), "--start", "0:01:40", "--end", "0:01:40")
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.CodeEmptySegment))
}

func TestFramesRejectsOutOfRangeField(t *testing.T) {
	_, err := execute(t, "", "frames", videoFile(t, "a.mp4"), "--start", "0:75:00")
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.CodeInvalidTimeField))
}

func TestFramesMissingFile(t *testing.T) {
	_, err := execute(t, "", "frames", filepath.Join(t.TempDir(), "missing.mp4"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "video file not found")
}

func TestFramesProbeClampsEnd(t *testing.T) {
	stubProber(t, `{"format":{"duration":"120.5"},"streams":[]}`, nil)

	out, err := execute(t, "", "frames", videoFile(t, "short.mp4"), "--probe")
	require.NoError(t, err)
	assert.Contains(t, out, "Window:       0:01:30 - 0:02:00\n")
	assert.Contains(t, out, "End frame:    3600\n")
}

func TestProbe(t *testing.T) {
	stubProber(t, `{"format":{"duration":"600.0"},"streams":[{"codec_type":"video","width":1920,"height":1080,"r_frame_rate":"25/1"}]}`, nil)

	out, err := execute(t, "", "probe", videoFile(t, "match.mp4"))
	require.NoError(t, err)
	assert.Contains(t, out, "FILE")
	assert.Contains(t, out, "match.mp4")
	assert.Contains(t, out, "0:10:00")
	assert.Contains(t, out, "1920x1080")
}

func TestProbeReportsFailures(t *testing.T) {
	stubProber(t, "", fmt.Errorf("exit status 1"))

	out, err := execute(t, "", "probe", videoFile(t, "bad.mp4"), filepath.Join(t.TempDir(), "missing.mp4"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "2 of 2 files could not be probed")
	assert.Contains(t, out, "error:")
}

func TestOpenBuildsClips(t *testing.T) {
	var gotOpts tui.Options
	var gotClips []*clip.State
	original := runTUI
	runTUI = func(opts tui.Options, clips []*clip.State) error {
		gotOpts = opts
		gotClips = clips
		return nil
	}
	t.Cleanup(func() { runTUI = original })

	extra := "[trim]\ndefault_start = \"0:00:05\"\ndefault_end = \"0:00:45\"\n[mpv]\nbinary = \"trimview-no-such-mpv\"\n"
	_, err := execute(t, extra, "open", videoFile(t, "a.mp4"), videoFile(t, "b.mov"))
	require.NoError(t, err)

	require.Len(t, gotClips, 2)
	assert.Equal(t, "a.mp4", gotClips[0].Source.Name)
	assert.Equal(t, "b.mov", gotClips[1].Source.Name)
	assert.Equal(t, 5.0, gotClips[0].Start.ToSeconds())
	assert.Equal(t, 45.0, gotClips[1].End.ToSeconds())
	assert.NotEqual(t, gotClips[0].Source.ID, gotClips[1].Source.ID)

	require.NotNil(t, gotOpts.Config)
	assert.NotNil(t, gotOpts.Prober)
	assert.Nil(t, gotOpts.Launch, "no mpv binary means no windows")
}

func TestDoctorReportsMissingMpv(t *testing.T) {
	out, err := execute(t, "[mpv]\nbinary = \"trimview-no-such-mpv\"\n", "doctor")
	require.Error(t, err)
	assert.Contains(t, out, "✗ trimview-no-such-mpv: NOT FOUND")
	assert.Contains(t, out, "Log file: ")
	assert.Contains(t, out, "https://mpv.io/installation/")
}

func TestInvalidConfig(t *testing.T) {
	_, err := execute(t, "[playback]\nframe_rate = -1.0\n", "version")
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.CodeInvalidConfig))
}

func TestConfigShow(t *testing.T) {
	out, err := execute(t, "[features]\naudio = true\n", "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "[features]")
	assert.Contains(t, out, "audio = true")
	assert.Contains(t, out, `default_start = "0:01:30"`)
}

func TestConfigInit(t *testing.T) {
	original := log.Logger
	t.Cleanup(func() { log.Logger = original })

	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "config.toml")

	run := func(args ...string) (string, error) {
		root := newRootCmd()
		var out bytes.Buffer
		root.SetOut(&out)
		root.SetErr(&out)
		root.SetArgs(append([]string{"--config", path}, args...))
		err := root.Execute()
		return out.String(), err
	}

	// Logs go to the default dir until the file exists; point them at dir.
	t.Setenv("XDG_CACHE_HOME", dir)
	t.Setenv("HOME", dir)

	_, err := run("config", "init")
	require.NoError(t, err)
	_, err = os.Stat(path)
	require.NoError(t, err)

	_, err = run("config", "init")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	_, err = run("config", "init", "--force")
	require.NoError(t, err)
}
