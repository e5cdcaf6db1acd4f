package clip

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// VideoExtensions lists the file extensions offered by the file picker.
var VideoExtensions = []string{".mp4", ".mov", ".mkv", ".webm", ".avi", ".m4v"}

// NewSource resolves path and wraps it into a Source.
// It fails when the file is missing or is a directory. Codecs are not
// checked; unsupported media only shows up as playback errors in mpv.
func NewSource(path string) (Source, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return Source{}, fmt.Errorf("failed to resolve path: %w", err)
	}

	info, err := os.Stat(absPath)
	if os.IsNotExist(err) {
		return Source{}, fmt.Errorf("video file not found: %s", absPath)
	}
	if err != nil {
		return Source{}, fmt.Errorf("failed to access video file: %w", err)
	}
	if info.IsDir() {
		return Source{}, fmt.Errorf("path is a directory, not a video file: %s", absPath)
	}

	return Source{
		ID:   uuid.New().String(),
		Path: absPath,
		Name: filepath.Base(absPath),
	}, nil
}

// FromPaths wraps each path into a new clip using the given default window,
// preserving the selection order. The first bad path aborts the batch.
func FromPaths(paths []string, defaults Window) ([]*State, error) {
	clips := make([]*State, 0, len(paths))
	for _, p := range paths {
		src, err := NewSource(p)
		if err != nil {
			return nil, err
		}
		clips = append(clips, NewWithWindow(src, defaults.Start, defaults.End))
	}
	return clips, nil
}

// IsVideoFile reports whether path has one of VideoExtensions.
func IsVideoFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range VideoExtensions {
		if ext == e {
			return true
		}
	}
	return false
}
