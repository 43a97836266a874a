package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the web interface and JSON API",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

var serveAddr string

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (overrides SERVER_ADDR)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	container, cleanup, err := bootstrap()
	if err != nil {
		return err
	}
	defer cleanup()

	logger := container.Logger
	logger.Info("Pitch generator starting...",
		zap.String("provider", container.Config.Provider),
		zap.String("log_level", container.Config.Logging.Level),
	)

	server, err := container.NewServer(serveAddr)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := server.Run(ctx); err != nil {
		logger.Error("Server error", zap.Error(err))
		return err
	}

	logger.Info("Shutdown complete")
	return nil
}
