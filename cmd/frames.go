package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/user/trimview/clip"
	"github.com/user/trimview/log"
	"github.com/user/trimview/pkg/timeutil"
	"github.com/user/trimview/segment"
	"go.uber.org/zap"
)

// newProber builds the prober used by frames and probe. Tests replace it.
var newProber = func(a *app) *clip.Prober {
	return clip.NewProber(a.cfg.ProbeTimeout(), log.GetLogger())
}

func newFramesCmd(a *app) *cobra.Command {
	var (
		start, end string
		fps        float64
		probe      bool
	)

	cmd := &cobra.Command{
		Use:   "frames <video-file>",
		Short: "Print segment frame parameters for a trim window",
		Long: `Print the frame range a segment player would receive for the given trim
window. Times are H:MM:SS, M:SS or seconds. With --probe, the end is clamped to
the probed duration first.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := clip.NewSource(args[0])
			if err != nil {
				return err
			}

			window := a.defaultWindow()
			if cmd.Flags().Changed("start") {
				if window.Start, err = timeutil.ParseTimeValue(start); err != nil {
					return fmt.Errorf("invalid --start: %w", err)
				}
			}
			if cmd.Flags().Changed("end") {
				if window.End, err = timeutil.ParseTimeValue(end); err != nil {
					return fmt.Errorf("invalid --end: %w", err)
				}
			}

			// Going through WithTime rejects out-of-range fields the same
			// way the trim form does.
			state := *clip.New(src)
			if state, err = state.WithTime(clip.Start, window.Start); err != nil {
				return err
			}
			if state, err = state.WithTime(clip.End, window.End); err != nil {
				return err
			}

			if probe {
				md, err := newProber(a).Probe(cmd.Context(), src.Path)
				if err != nil {
					return err
				}
				state = state.WithDuration(md.Duration)
			}

			if !cmd.Flags().Changed("fps") {
				fps = a.cfg.Playback.FrameRate
			}
			adapter := segment.NewAdapter(fps, a.cfg.Playback.CompositionWidth, a.cfg.Playback.CompositionHeight)
			params, err := adapter.Params(state)
			if err != nil {
				return err
			}
			log.Named("frames").Debug("segment params",
				zap.String("path", src.Path),
				zap.Int("start_frame", params.StartFrame),
				zap.Int("end_frame", params.EndFrame))

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintf(w, "Source:\t%s\n", src.Name)
			fmt.Fprintf(w, "Window:\t%s - %s\n", state.Start, state.End)
			fmt.Fprintf(w, "Frame rate:\t%g\n", params.FrameRate)
			fmt.Fprintf(w, "Start frame:\t%d\n", params.StartFrame)
			fmt.Fprintf(w, "End frame:\t%d\n", params.EndFrame)
			fmt.Fprintf(w, "Duration:\t%d frames\n", params.DurationInFrames)
			fmt.Fprintf(w, "Size:\t%dx%d\n", params.Width, params.Height)
			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&start, "start", "", "trim start (default from config)")
	cmd.Flags().StringVar(&end, "end", "", "trim end (default from config)")
	cmd.Flags().Float64Var(&fps, "fps", 0, "frame rate (default from config)")
	cmd.Flags().BoolVar(&probe, "probe", false, "clamp the end to the probed duration")
	return cmd
}

func newProbeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "probe <video-file>...",
		Short: "Print duration and stream info for video files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			prober := newProber(a)

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "FILE\tDURATION\tSIZE\tFPS")

			failed := 0
			for _, path := range args {
				src, err := clip.NewSource(path)
				if err == nil {
					var md clip.Metadata
					if md, err = prober.Probe(cmd.Context(), src.Path); err == nil {
						fmt.Fprintf(w, "%s\t%s\t%dx%d\t%g\n", src.Name,
							timeutil.FormatTime(md.Duration), md.Width, md.Height, md.FPS)
						continue
					}
				}
				failed++
				fmt.Fprintf(w, "%s\terror: %v\t\t\n", path, err)
			}
			if err := w.Flush(); err != nil {
				return err
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d files could not be probed", failed, len(args))
			}
			return nil
		},
	}
}
