package app

import (
	"context"
	"fmt"

	"github.com/kapu/pitch-ai-go/internal/config"
	"github.com/kapu/pitch-ai-go/internal/prompt"
	"github.com/kapu/pitch-ai-go/internal/service/ai"
	"github.com/kapu/pitch-ai-go/internal/util"
	"github.com/kapu/pitch-ai-go/internal/web"
	"go.uber.org/zap"
)

// Container bundles the assembled services shared by the CLI commands.
type Container struct {
	Config    *config.Config
	Logger    *zap.Logger
	Client    ai.RemoteClient
	Generator *ai.Generator

	circuit web.CircuitReporter
}

// Build creates the provider client for cfg and wires the generator on top of it.
func Build(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config must not be nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger must not be nil")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	client, err := ai.NewRemoteClient(ctx, ai.ClientConfig{
		Provider:     cfg.Provider,
		GeminiAPIKey: cfg.Gemini.APIKey,
		OpenAIAPIKey: cfg.OpenAI.APIKey,
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create AI client: %w", err)
	}

	return BuildWithClient(cfg, client, logger)
}

// BuildWithClient wires the container around an existing remote client.
func BuildWithClient(cfg *config.Config, client ai.RemoteClient, logger *zap.Logger) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config must not be nil")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	c := &Container{Config: cfg, Logger: logger, Client: client}

	if cfg.CircuitBreaker.Enabled {
		newBreaker := func(call string) *util.CircuitBreaker {
			return util.NewCircuitBreaker(cfg.CircuitBreaker.FailureThreshold, cfg.CircuitBreaker.ResetTimeout,
				logger.With(zap.String("call", call)))
		}
		guarded := ai.NewGuardedClient(client, newBreaker("text"), newBreaker("image"), logger)
		c.Client = guarded
		c.circuit = guarded
		logger.Info("Circuit breaker enabled",
			zap.Int("threshold", cfg.CircuitBreaker.FailureThreshold),
			zap.Duration("reset_timeout", cfg.CircuitBreaker.ResetTimeout),
		)
	}

	textModel, imageModel := cfg.Models()
	generator, err := ai.NewGenerator(c.Client, prompt.DefaultPromptBuilder(), ai.GeneratorConfig{
		TextModel:  textModel,
		ImageModel: imageModel,
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create generator: %w", err)
	}
	c.Generator = generator

	logger.Info("AI provider configured",
		zap.String("provider", c.Client.Name()),
		zap.String("text_model", textModel),
		zap.String("image_model", imageModel),
	)

	return c, nil
}

// NewServer builds the HTTP server around the container's generator.
func (c *Container) NewServer(addr string) (*web.Server, error) {
	if c == nil || c.Generator == nil {
		return nil, fmt.Errorf("generator not initialized")
	}
	if addr == "" {
		addr = c.Config.Server.Addr
	}
	return web.NewServer(c.Generator, web.Options{Addr: addr, Circuit: c.circuit}, c.Logger)
}
