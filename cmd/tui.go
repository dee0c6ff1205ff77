package cmd

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/ramanasai/smartstep/internal/config"
	"github.com/ramanasai/smartstep/internal/countdown"
	"github.com/ramanasai/smartstep/internal/logger"
	"github.com/ramanasai/smartstep/internal/notify"
	"github.com/ramanasai/smartstep/internal/schedule"
	"github.com/ramanasai/smartstep/internal/ui"
)

// tuiCmd launches the Bubble Tea client.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Open the terminal client",
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := config.DataDir()
		if err != nil {
			return err
		}
		log, closeLog, err := logger.NewFile(filepath.Join(dir, "smartstep.log"), cfg.Log.Level, cfg.Log.Format)
		if err != nil {
			return err
		}
		defer closeLog()

		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()
		if cfg.Reminder.Enabled && os.Getenv("SMARTSTEP_NO_REMINDER") != "1" {
			go schedule.RunConfigured(ctx, cfg, func() {
				title, msg := notify.FormatStepReminder(cfg.Steps.Current, cfg.Steps.Objective)
				if err := notify.Info(title, msg); err != nil {
					log.Warn("reminder notification failed", "err", err)
				}
			})
		}

		opts := ui.Options{Config: cfg, Backend: newClient(), Logger: log}
		if cfg.Notifications.Enabled && cfg.Notifications.AnalysisDone {
			opts.OnAnalysisDone = func(s countdown.Snapshot) {
				display := countdown.FromSeconds(int(s.Total / time.Second)).Display()
				if err := notify.AnalysisDone(display); err != nil {
					log.Warn("analysis notification failed", "err", err)
				}
			}
		}
		log.Info("tui started", "server", cfg.Server.URL)
		return ui.Run(opts)
	},
}
