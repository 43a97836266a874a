// Package main provides the pitchgen CLI: the web server and a one-shot generator.
package main

import (
	"context"
	stderrors "errors"
	"fmt"
	"os"
	"time"

	"github.com/kapu/pitch-ai-go/internal/app"
	"github.com/kapu/pitch-ai-go/internal/config"
	"github.com/kapu/pitch-ai-go/internal/util"
	"github.com/kapu/pitch-ai-go/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const buildTimeout = 30 * time.Second

var rootCmd = &cobra.Command{
	Use:           "pitchgen",
	Short:         "AI pitch script and logo generator",
	Long:          "pitchgen turns a business idea into a sectioned pitch script and a logo, using Gemini or OpenAI.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// bootstrap loads configuration and assembles the services shared by all commands.
func bootstrap() (*app.Container, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		if stderrors.Is(err, errors.ErrMissingCredential) {
			fmt.Fprintln(os.Stderr, "Set the API key in the environment or in a .env file.")
		}
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := util.NewLogger(cfg.Logging.Level, cfg.Logging.File, cfg.Logging.Format)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	cleanup := func() { _ = logger.Sync() }

	buildCtx, cancel := context.WithTimeout(context.Background(), buildTimeout)
	defer cancel()

	container, err := app.Build(buildCtx, cfg, logger)
	if err != nil {
		logger.Error("Failed to assemble application services", zap.Error(err))
		cleanup()
		return nil, nil, err
	}

	return container, cleanup, nil
}
