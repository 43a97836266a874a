package ai

import (
	"context"
	"fmt"

	"github.com/kapu/pitch-ai-go/internal/domain"
	"go.uber.org/zap"
)

// RemoteClient is the boundary to a generative-AI provider. Implementations
// make exactly one attempt per call and return the narrow generation error
// kinds from pkg/errors.
type RemoteClient interface {
	Name() string
	GenerateText(ctx context.Context, req domain.TextRequest) (string, error)
	GenerateImages(ctx context.Context, req domain.ImageRequest) ([]domain.GeneratedImage, error)
}

const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
)

var (
	errEmptyText = fmt.Errorf("empty pitch script")
	errNoImages  = fmt.Errorf("no image was generated")
)

type ClientConfig struct {
	Provider     string
	GeminiAPIKey string
	OpenAIAPIKey string
	// BaseURL overrides the provider endpoint; empty uses the public API.
	BaseURL string
}

// NewRemoteClient builds the client for cfg.Provider.
func NewRemoteClient(ctx context.Context, cfg ClientConfig, logger *zap.Logger) (RemoteClient, error) {
	switch cfg.Provider {
	case ProviderGemini:
		return NewGeminiClient(ctx, cfg.GeminiAPIKey, cfg.BaseURL, logger)
	case ProviderOpenAI:
		return NewOpenAIClient(cfg.OpenAIAPIKey, cfg.BaseURL, logger)
	default:
		return nil, fmt.Errorf("unknown AI provider %q", cfg.Provider)
	}
}
