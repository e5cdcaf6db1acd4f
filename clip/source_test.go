package clip

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/user/trimview/pkg/timeutil"
)

func TestFromPaths(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.mp4")
	b := filepath.Join(dir, "b.mkv")
	require.NoError(t, os.WriteFile(a, nil, 0o644))
	require.NoError(t, os.WriteFile(b, nil, 0o644))

	window := Window{Start: timeutil.TimeValue{Seconds: 5}, End: timeutil.TimeValue{Seconds: 20}}
	clips, err := FromPaths([]string{b, a}, window)
	require.NoError(t, err)
	require.Len(t, clips, 2)

	assert.Equal(t, "b.mkv", clips[0].Source.Name)
	assert.Equal(t, "a.mp4", clips[1].Source.Name)
	assert.Equal(t, a, clips[1].Source.Path)
	assert.NotEmpty(t, clips[0].Source.ID)
	assert.NotEqual(t, clips[0].Source.ID, clips[1].Source.ID)
	assert.Equal(t, window.Start, clips[0].Start)
	assert.Equal(t, ViewRaw, clips[0].Mode)
}

func TestFromPathsRejectsBadInput(t *testing.T) {
	dir := t.TempDir()

	_, err := FromPaths([]string{filepath.Join(dir, "missing.mp4")}, DefaultWindow)
	assert.ErrorContains(t, err, "not found")

	_, err = FromPaths([]string{dir}, DefaultWindow)
	assert.ErrorContains(t, err, "directory")
}

func TestIsVideoFile(t *testing.T) {
	assert.True(t, IsVideoFile("/x/clip.MP4"))
	assert.True(t, IsVideoFile("match.mkv"))
	assert.False(t, IsVideoFile("notes.txt"))
	assert.False(t, IsVideoFile("noext"))
}
