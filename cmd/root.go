package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/user/trimview/clip"
	"github.com/user/trimview/config"
	"github.com/user/trimview/deps"
	"github.com/user/trimview/log"
	"github.com/user/trimview/mpv"
	"github.com/user/trimview/tui"
	"go.uber.org/zap"
)

var Version = "0.1.0"

// runTUI starts the interactive view. Tests replace it.
var runTUI = tui.Run

// app carries what the persistent pre-run resolved for subcommands.
type app struct {
	configPath string
	verbose    bool
	cfg        *config.Config
}

// defaultWindow returns the configured trim window for new clips.
func (a *app) defaultWindow() clip.Window {
	start, end, err := a.cfg.DefaultWindow()
	if err != nil {
		return clip.DefaultWindow
	}
	return clip.Window{Start: start, End: end}
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "trimview",
		Short: "Trim-window previews for video clips",
		Long: `trimview loads video clips, lets you set a start/end trim window on each,
and keeps an mpv main window, a muted preview window and a looping segment
player in sync as you scrub and switch between the full video and the trim.

Features:
  - Per-clip trim windows in H:MM:SS
  - Click-to-seek scrub strip mapped onto the trim window
  - RAW / TRIMMED view toggle with A-B looping
  - Frame parameter export for the trimmed segment`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			a.cfg = cfg
			// The TUI owns the terminal, so only other commands log to stderr.
			return log.InitLogger(log.Options{
				Dir:     cfg.Log.Dir,
				Console: cmd.Name() != "open",
				Verbose: a.verbose,
			})
		},
	}
	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", "config file (default <user config>/trimview/config.toml)")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log debug output to stderr")

	rootCmd.AddCommand(
		newVersionCmd(),
		newOpenCmd(a),
		newDoctorCmd(a),
		newFramesCmd(a),
		newProbeCmd(a),
		newConfigCmd(a),
	)
	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "trimview version %s\n", Version)
		},
	}
}

func newOpenCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "open [video-file...]",
		Short: "Open video files in the trim view",
		Long: `Open one or more video files in the interactive trim view. Each file becomes
a clip with the configured default trim window. With no files, press A in the
view to pick some.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			clips, err := clip.FromPaths(args, a.defaultWindow())
			if err != nil {
				return err
			}

			logger := log.Named("open")
			for _, path := range args {
				if !clip.IsVideoFile(path) {
					logger.Warn("unrecognized video extension", zap.String("path", path))
				}
			}
			opts := tui.Options{
				Config: a.cfg,
				Logger: log.GetLogger(),
				Prober: clip.NewProber(a.cfg.ProbeTimeout(), log.GetLogger()),
				Launch: mpv.Launch,
			}
			if err := deps.CheckMpv(a.cfg.Mpv.Binary); err != nil {
				// Trim windows can still be edited without playback.
				logger.Warn("running without mpv", zap.Error(err))
				opts.Launch = nil
			}
			logger.Info("starting trim view", zap.Int("clips", len(clips)))
			return runTUI(opts, clips)
		},
	}
}

func newDoctorCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check system dependencies",
		Long:  `Check that the required system dependencies (mpv, ffprobe) are installed and available.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Checking dependencies...")
			fmt.Fprintln(out)

			mpvBinary := a.cfg.Mpv.Binary
			if mpvBinary == "" {
				mpvBinary = "mpv"
			}
			missing := make(map[string]*deps.DependencyError)
			for _, err := range deps.CheckAll(mpvBinary) {
				var depErr *deps.DependencyError
				if errors.As(err, &depErr) {
					missing[depErr.Name] = depErr
				}
			}
			for _, name := range []string{mpvBinary, "ffprobe"} {
				if depErr, ok := missing[name]; ok {
					fmt.Fprintf(out, "✗ %s: NOT FOUND\n", name)
					fmt.Fprintf(out, "  Install from: %s\n", depErr.InstallURL)
					continue
				}
				fmt.Fprintf(out, "✓ %s: OK\n", name)
			}

			if logPath, err := log.ResolveLogFilePath(a.cfg.Log.Dir); err == nil {
				fmt.Fprintf(out, "\nLog file: %s\n", logPath)
			}

			fmt.Fprintln(out)
			if len(missing) > 0 {
				return fmt.Errorf("%d dependencies missing", len(missing))
			}
			fmt.Fprintln(out, "All dependencies are installed!")
			return nil
		},
	}
}

func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
