package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/wirechat-client/internal/app"
	"github.com/vovakirdan/wirechat-client/internal/config"
	"github.com/vovakirdan/wirechat-client/internal/log"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		cfgPath   string
		overrides config.Config
	)

	cmd := &cobra.Command{
		Use:           "wirechat-client",
		Short:         "Terminal client for 1:1 wirechat messaging",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, _ []string) error {
			bootstrapLogger := log.New(overrides.LogLevel)
			cfg, path, err := config.Load(bootstrapLogger, cfgPath)
			if err != nil {
				return err
			}
			cfg.UpdateFrom(overrides)

			logger := log.New(cfg.LogLevel)
			logger.Info().
				Str("config", path).
				Str("server", cfg.ServerURL).
				Msg("starting wirechat client")

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			application, err := app.New(cfg, logger)
			if err != nil {
				return err
			}
			return application.Run(ctx)
		},
	}

	cmd.Flags().StringVar(&cfgPath, "config", "", "path to config file")
	cmd.Flags().StringVar(&overrides.ServerURL, "server", "", "websocket server URL")
	cmd.Flags().StringVar(&overrides.APIBaseURL, "api", "", "HTTP API base URL for the roster pull")
	cmd.Flags().StringVar(&overrides.ArchivePath, "archive", "", "sqlite file for the local message archive")
	cmd.Flags().StringVar(&overrides.LogLevel, "log-level", "", "log level (debug, info, warn, error)")
	cmd.Flags().DurationVar(&overrides.ReconnectDelay, "reconnect-delay", 0, "delay before reconnecting after logout")
	cmd.Flags().DurationVar(&overrides.NotifyDuration, "notify-duration", 0, "how long notifications stay visible")

	return cmd
}
