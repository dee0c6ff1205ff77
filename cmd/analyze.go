package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/ramanasai/smartstep/internal/countdown"
	"github.com/ramanasai/smartstep/internal/logger"
	"github.com/ramanasai/smartstep/internal/notify"
)

var (
	analyzeDuration string
	analyzeNoNotify bool
)

// analyzeCmd runs one force-distribution countdown in the terminal. Ctrl-C
// cancels it the same way the stop button does.
var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Run a timed force-distribution analysis",
	RunE: func(cmd *cobra.Command, args []string) error {
		digits, err := countdown.ParseDigits(analyzeDuration)
		if err != nil {
			return fmt.Errorf("--duration: %w", err)
		}
		log := logger.New(cmd.ErrOrStderr(), cfg.Log.Level, cfg.Log.Format)
		out := cmd.OutOrStdout()

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		done := make(chan countdown.Reason, 1)
		r := countdown.NewRunner(
			countdown.WithLogger(log),
			countdown.OnChange(func(s countdown.Snapshot) {
				if s.State == countdown.Running {
					fmt.Fprintf(out, "\r  %s ", s.Digits.Display())
				}
			}),
			countdown.OnFinish(func(_ countdown.Snapshot, why countdown.Reason) { done <- why }),
		)
		defer r.Close()

		info(out, "Analyzing for %s (ctrl-c to stop)", countdown.FromSeconds(max(digits.TotalSeconds(), 1)).Display())
		r.Edit(func(t *countdown.Timer) { t.SetDigits(digits) })
		snap := r.Toggle()

		var why countdown.Reason
		select {
		case why = <-done:
		case <-ctx.Done():
			r.Close()
			why = <-done
		}
		fmt.Fprintln(out)

		total := countdown.FromSeconds(int(snap.Total / time.Second)).Display()
		if why == countdown.ReasonCancelled {
			warning(out, "Analysis stopped.")
			return nil
		}
		success(out, "Analysis complete (%s).", total)
		if !analyzeNoNotify && cfg.Notifications.Enabled && cfg.Notifications.AnalysisDone {
			if err := notify.AnalysisDone(total); err != nil {
				log.Warn("analysis notification failed", "err", err)
			}
		}
		return nil
	},
}

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeDuration, "duration", "d", "0030", "duration as MMSS digits")
	analyzeCmd.Flags().BoolVar(&analyzeNoNotify, "no-notify", false, "skip the desktop notification")
}
