// Package config loads trimview settings from a TOML file layered over
// built-in defaults.
package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	apperrors "github.com/user/trimview/pkg/errors"
	"github.com/user/trimview/pkg/timeutil"
)

type Config struct {
	Playback Playback `toml:"playback"`
	Trim     Trim     `toml:"trim"`
	Features Features `toml:"features"`
	Mpv      Mpv      `toml:"mpv"`
	Probe    Probe    `toml:"probe"`
	Log      Log      `toml:"log"`
}

type Playback struct {
	FrameRate         float64 `toml:"frame_rate"`
	CompositionWidth  int     `toml:"composition_width"`
	CompositionHeight int     `toml:"composition_height"`
	TickIntervalMs    int     `toml:"tick_interval_ms"`
}

// Trim holds the window applied to newly loaded clips, as H:MM:SS strings.
type Trim struct {
	DefaultStart string `toml:"default_start"`
	DefaultEnd   string `toml:"default_end"`
}

type Features struct {
	ClickScrub bool `toml:"click_scrub"`
	Audio      bool `toml:"audio"`
}

type Mpv struct {
	Binary          string `toml:"binary"`
	SocketDir       string `toml:"socket_dir"`
	PreviewGeometry string `toml:"preview_geometry"`
}

type Probe struct {
	TimeoutSeconds int `toml:"timeout_seconds"`
}

type Log struct {
	Dir string `toml:"dir"`
}

// resolveConfigPath finds the config file used when no path is given.
var resolveConfigPath = func() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "trimview", "config.toml"), nil
}

// DefaultPath returns where Load looks when no path is given.
func DefaultPath() (string, error) {
	return resolveConfigPath()
}

func defaultConfig() *Config {
	return &Config{
		Playback: Playback{
			FrameRate:         30,
			CompositionWidth:  1280,
			CompositionHeight: 720,
			TickIntervalMs:    100,
		},
		Trim: Trim{
			DefaultStart: "0:01:30",
			DefaultEnd:   "0:02:50",
		},
		Features: Features{
			ClickScrub: true,
			Audio:      false,
		},
		Mpv: Mpv{
			Binary:          "mpv",
			SocketDir:       os.TempDir(),
			PreviewGeometry: "480x270",
		},
		Probe: Probe{
			TimeoutSeconds: 10,
		},
	}
}

// Default returns a fresh copy of the built-in configuration.
func Default() *Config {
	return defaultConfig()
}

// Load decodes path over the defaults. An empty path falls back to the user
// config location; a missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := defaultConfig()

	if path == "" {
		resolved, err := resolveConfigPath()
		if err != nil {
			return cfg, nil
		}
		path = resolved
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, apperrors.Wrap(apperrors.CodeInvalidConfig, "decode "+path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration to path, creating parent directories.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return toml.NewEncoder(f).Encode(c)
}

// Validate checks value ranges and that the default window parses.
func (c *Config) Validate() error {
	if c.Playback.FrameRate <= 0 {
		return apperrors.ErrInvalidConfig.WithDetail("playback.frame_rate must be positive")
	}
	if c.Playback.CompositionWidth <= 0 || c.Playback.CompositionHeight <= 0 {
		return apperrors.ErrInvalidConfig.WithDetail("playback composition size must be positive")
	}
	if c.Playback.TickIntervalMs <= 0 {
		return apperrors.ErrInvalidConfig.WithDetail("playback.tick_interval_ms must be positive")
	}
	start, end, err := c.DefaultWindow()
	if err != nil {
		return err
	}
	if end.ToSeconds() <= start.ToSeconds() {
		return apperrors.ErrInvalidConfig.WithDetail("trim.default_end %q must be after trim.default_start %q",
			c.Trim.DefaultEnd, c.Trim.DefaultStart)
	}
	if c.Probe.TimeoutSeconds < 0 {
		return apperrors.ErrInvalidConfig.WithDetail("probe.timeout_seconds must not be negative")
	}
	return nil
}

// DefaultWindow parses the configured default trim window.
func (c *Config) DefaultWindow() (start, end timeutil.TimeValue, err error) {
	start, err = timeutil.ParseTimeValue(c.Trim.DefaultStart)
	if err != nil || !start.Valid() {
		return start, end, apperrors.ErrInvalidConfig.WithDetail("trim.default_start %q", c.Trim.DefaultStart)
	}
	end, err = timeutil.ParseTimeValue(c.Trim.DefaultEnd)
	if err != nil || !end.Valid() {
		return start, end, apperrors.ErrInvalidConfig.WithDetail("trim.default_end %q", c.Trim.DefaultEnd)
	}
	return start, end, nil
}

// ProbeTimeout returns the ffprobe timeout as a duration.
func (c *Config) ProbeTimeout() time.Duration {
	return time.Duration(c.Probe.TimeoutSeconds) * time.Second
}
