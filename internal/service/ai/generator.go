package ai

import (
	"context"
	stderrors "errors"
	"fmt"
	"strings"

	"github.com/kapu/pitch-ai-go/internal/constants"
	"github.com/kapu/pitch-ai-go/internal/domain"
	"github.com/kapu/pitch-ai-go/internal/prompt"
	"github.com/kapu/pitch-ai-go/internal/util"
	"github.com/kapu/pitch-ai-go/pkg/errors"
	"github.com/sourcegraph/conc/pool"
	"go.uber.org/zap"
)

type GeneratorConfig struct {
	TextModel  string
	ImageModel string
}

// Generator produces a pitch script and a logo for one idea. Both remote
// calls run concurrently and both must succeed.
type Generator struct {
	client  RemoteClient
	prompts *prompt.PromptBuilder
	cfg     GeneratorConfig
	logger  *zap.Logger
}

func NewGenerator(client RemoteClient, prompts *prompt.PromptBuilder, cfg GeneratorConfig, logger *zap.Logger) (*Generator, error) {
	if client == nil {
		return nil, fmt.Errorf("remote client must not be nil")
	}
	if prompts == nil {
		prompts = prompt.DefaultPromptBuilder()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Generator{
		client:  client,
		prompts: prompts,
		cfg:     cfg,
		logger:  logger,
	}, nil
}

// Provider returns the name of the underlying remote client.
func (g *Generator) Provider() string {
	return g.client.Name()
}

// Generate runs the text and image generations for idea and waits for both
// to settle. Any failure, including an empty text or zero images, yields the
// combined generation error and no result. idea is expected to be trimmed
// and non-empty already.
//
// Cancelling ctx does not abort calls already in flight.
func (g *Generator) Generate(ctx context.Context, idea string) (*domain.GenerationResult, error) {
	logger := g.logger.With(
		zap.String("request_id", util.RequestID(ctx)),
		zap.String("provider", g.client.Name()),
	)
	callCtx := context.WithoutCancel(ctx)

	logger.Info("Generating pitch and logo",
		zap.String("idea", util.Preview(idea, constants.LogPreview.IdeaRunes)),
	)

	var (
		text   string
		images []domain.GeneratedImage
	)

	p := pool.New().WithErrors()
	p.Go(func() error {
		var err error
		text, err = g.generatePitchScript(callCtx, idea)
		return err
	})
	p.Go(func() error {
		var err error
		images, err = g.generateLogo(callCtx, idea)
		return err
	})

	if err := p.Wait(); err != nil {
		logger.Error("Error in generation process",
			zap.Bool("text_failed", stderrors.Is(err, errors.ErrTextGeneration)),
			zap.Bool("image_failed", stderrors.Is(err, errors.ErrImageGeneration)),
			zap.Error(err),
		)
		return nil, errors.NewCombinedGenerationError()
	}

	logger.Info("Generation completed",
		zap.Int("pitch_length", len(text)),
		zap.String("pitch_preview", util.Preview(text, constants.LogPreview.TextRunes)),
		zap.Int("logo_base64_length", len(images[0].Base64)),
	)

	return domain.NewGenerationResult(text, images[0].Base64), nil
}

func (g *Generator) generatePitchScript(ctx context.Context, idea string) (string, error) {
	promptText, err := g.prompts.RenderPitchScript(idea)
	if err != nil {
		return "", errors.NewTextGenerationError(g.client.Name(), g.cfg.TextModel, err)
	}

	text, err := g.client.GenerateText(ctx, domain.TextRequest{
		Model:  g.cfg.TextModel,
		Prompt: promptText,
	})
	if err != nil {
		return "", asKind(err, errors.ErrTextGeneration, func(cause error) error {
			return errors.NewTextGenerationError(g.client.Name(), g.cfg.TextModel, cause)
		})
	}
	if strings.TrimSpace(text) == "" {
		return "", errors.NewTextGenerationError(g.client.Name(), g.cfg.TextModel, errEmptyText)
	}

	return text, nil
}

func (g *Generator) generateLogo(ctx context.Context, idea string) ([]domain.GeneratedImage, error) {
	promptText, err := g.prompts.RenderLogo(idea)
	if err != nil {
		return nil, errors.NewImageGenerationError(g.client.Name(), g.cfg.ImageModel, err)
	}

	images, err := g.client.GenerateImages(ctx, domain.ImageRequest{
		Model:  g.cfg.ImageModel,
		Prompt: promptText,
		Config: domain.ImageConfig{
			Count:        constants.LogoImageConfig.Count,
			OutputFormat: constants.LogoImageConfig.OutputFormat,
			AspectRatio:  constants.LogoImageConfig.AspectRatio,
		},
	})
	if err != nil {
		return nil, asKind(err, errors.ErrImageGeneration, func(cause error) error {
			return errors.NewImageGenerationError(g.client.Name(), g.cfg.ImageModel, cause)
		})
	}
	if len(images) == 0 || images[0].Base64 == "" {
		return nil, errors.NewImageGenerationError(g.client.Name(), g.cfg.ImageModel, errNoImages)
	}

	return images, nil
}

// asKind keeps err when it already carries the kind, otherwise wraps it.
func asKind(err error, kind error, wrap func(error) error) error {
	if stderrors.Is(err, kind) {
		return err
	}
	return wrap(err)
}
