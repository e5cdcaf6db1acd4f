// Package deps checks for the external binaries trimview shells out to.
package deps

import (
	"fmt"
	"os/exec"
)

const (
	MpvInstallURL    = "https://mpv.io/installation/"
	FfmpegInstallURL = "https://ffmpeg.org/download.html"
)

// lookPath is exec.LookPath, replaceable in tests.
var lookPath = exec.LookPath

// Dependency is an external binary and where to get it.
type Dependency struct {
	Binary     string
	InstallURL string
}

// Mpv returns the mpv dependency for binary. An empty binary means "mpv".
func Mpv(binary string) Dependency {
	if binary == "" {
		binary = "mpv"
	}
	return Dependency{Binary: binary, InstallURL: MpvInstallURL}
}

// Ffprobe is needed for duration discovery.
var Ffprobe = Dependency{Binary: "ffprobe", InstallURL: FfmpegInstallURL}

// DependencyError reports a binary missing from PATH.
type DependencyError struct {
	Name       string
	InstallURL string
}

func (e *DependencyError) Error() string {
	return fmt.Sprintf("%s not found. Install from: %s", e.Name, e.InstallURL)
}

// Check resolves d on PATH.
func (d Dependency) Check() error {
	if _, err := lookPath(d.Binary); err != nil {
		return &DependencyError{Name: d.Binary, InstallURL: d.InstallURL}
	}
	return nil
}

// CheckMpv checks that the configured mpv binary is available.
func CheckMpv(binary string) error {
	return Mpv(binary).Check()
}

// CheckFfprobe checks that ffprobe is available.
func CheckFfprobe() error {
	return Ffprobe.Check()
}

// CheckAll returns one error per missing dependency, mpv first.
func CheckAll(mpvBinary string) []error {
	var missing []error
	for _, d := range []Dependency{Mpv(mpvBinary), Ffprobe} {
		if err := d.Check(); err != nil {
			missing = append(missing, err)
		}
	}
	return missing
}
