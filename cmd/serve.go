package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ramanasai/smartstep/internal/api"
	"github.com/ramanasai/smartstep/internal/logger"
	"github.com/ramanasai/smartstep/internal/store"
)

var serveAddr string

// serveCmd runs the HTTP backend until interrupted.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the backend API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		log := logger.New(cmd.ErrOrStderr(), cfg.Log.Level, cfg.Log.Format)
		addr := cfg.Server.Addr
		if serveAddr != "" {
			addr = serveAddr
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		st, err := store.Open(ctx, cfg)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		log.Info("store ready", "driver", cfg.Store.Driver)
		return api.NewServer(addr, st, log).Run(ctx)
	},
}

func init() {
	serveCmd.Flags().StringVarP(&serveAddr, "addr", "a", "", "listen address, overrides server.addr")
}
