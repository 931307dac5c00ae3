package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/himanshuyadav71/schedulicious-process-flow/internal/playback"
	"github.com/himanshuyadav71/schedulicious-process-flow/internal/report"
	"github.com/spf13/cobra"
)

func newPlayCmd() *cobra.Command {
	opts := &runOptions{}
	var interval time.Duration

	cmd := &cobra.Command{
		Use:   "play <workload-file>",
		Short: "Animate a cursor across the simulated timeline",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := simulate(args[0], opts)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("interval") {
				interval = cfg.PlaybackStepInterval
			}

			out := cmd.OutOrStdout()
			if err := report.Gantt(out, res.Timeline); err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			player := playback.Player{Interval: interval}
			err = player.Play(ctx, res, func(step playback.ExecutionStep) {
				running := "idle"
				if b, ok := playback.ActiveAt(res.Timeline, step.Time); ok && !b.Idle() {
					running = b.Name
				}
				fmt.Fprintf(out, "%s\nt=%-3d running=%s waiting=[%s] completed=[%s]\n",
					report.Cursor(res.Timeline, step.Time),
					step.Time, running,
					strings.Join(step.WaitingProcesses, " "),
					strings.Join(step.CompletedProcesses, " "))
			})
			if errors.Is(err, context.Canceled) {
				logger.Info("playback interrupted")
				return nil
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "%s\nt=%d done\n", report.Cursor(res.Timeline, res.TotalExecutionTime), res.TotalExecutionTime)
			return nil
		},
	}

	opts.bind(cmd)
	cmd.Flags().DurationVar(&interval, "interval", time.Second, "Time per simulated unit (default from config)")
	return cmd
}
