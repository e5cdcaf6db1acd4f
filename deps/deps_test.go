package deps

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withLookPath(t *testing.T, found map[string]bool) {
	t.Helper()
	old := lookPath
	lookPath = func(name string) (string, error) {
		if found[name] {
			return "/usr/bin/" + name, nil
		}
		return "", errors.New("not found")
	}
	t.Cleanup(func() { lookPath = old })
}

func TestCheckAll(t *testing.T) {
	withLookPath(t, map[string]bool{"mpv": true})

	errs := CheckAll("")
	require.Len(t, errs, 1)

	var depErr *DependencyError
	require.True(t, errors.As(errs[0], &depErr))
	assert.Equal(t, "ffprobe", depErr.Name)
	assert.Equal(t, FfmpegInstallURL, depErr.InstallURL)
}

func TestCheckMpvCustomBinary(t *testing.T) {
	withLookPath(t, map[string]bool{"mpv": true})

	assert.NoError(t, CheckMpv("mpv"))
	err := CheckMpv("/opt/mpv-nightly")
	require.Error(t, err)
	assert.Contains(t, err.Error(), MpvInstallURL)
}

func TestCheckAllOrder(t *testing.T) {
	withLookPath(t, nil)

	errs := CheckAll("mpv-git")
	require.Len(t, errs, 2)
	assert.EqualError(t, errs[0], "mpv-git not found. Install from: "+MpvInstallURL)
	assert.EqualError(t, errs[1], "ffprobe not found. Install from: "+FfmpegInstallURL)
}
