package ai

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/kapu/pitch-ai-go/internal/domain"
	"github.com/kapu/pitch-ai-go/pkg/errors"
	"go.uber.org/zap"
	"google.golang.org/genai"
)

// GeminiClient generates pitch text with Gemini and logos with Imagen.
type GeminiClient struct {
	client *genai.Client
	logger *zap.Logger
}

func NewGeminiClient(ctx context.Context, apiKey, baseURL string, logger *zap.Logger) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, errors.NewCredentialError(ProviderGemini, "GEMINI_API_KEY")
	}

	cfg := &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}
	if baseURL != "" {
		cfg.HTTPOptions = genai.HTTPOptions{BaseURL: baseURL}
	}

	client, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiClient{client: client, logger: logger}, nil
}

func (g *GeminiClient) Name() string {
	return "Gemini"
}

func (g *GeminiClient) GenerateText(ctx context.Context, req domain.TextRequest) (string, error) {
	g.logger.Debug("Generating pitch with Gemini", zap.String("model", req.Model))

	resp, err := g.client.Models.GenerateContent(ctx, req.Model, genai.Text(req.Prompt), nil)
	if err != nil {
		g.logger.Error("Gemini text generation failed", zap.String("model", req.Model), zap.Error(err))
		return "", errors.NewTextGenerationError(g.Name(), req.Model, err)
	}

	text := extractTextFromGeminiResponse(resp)
	if strings.TrimSpace(text) == "" {
		g.logger.Error("Gemini returned empty text", zap.String("model", req.Model))
		return "", errors.NewTextGenerationError(g.Name(), req.Model, fmt.Errorf("empty response from Gemini"))
	}

	g.logger.Debug("Gemini response received", zap.Int("length", len(text)))
	return text, nil
}

func (g *GeminiClient) GenerateImages(ctx context.Context, req domain.ImageRequest) ([]domain.GeneratedImage, error) {
	mimeType := "image/" + req.Config.OutputFormat

	g.logger.Debug("Generating logo with Imagen",
		zap.String("model", req.Model),
		zap.Int("count", req.Config.Count),
		zap.String("aspect_ratio", req.Config.AspectRatio),
	)

	resp, err := g.client.Models.GenerateImages(ctx, req.Model, req.Prompt, &genai.GenerateImagesConfig{
		NumberOfImages: int32(req.Config.Count),
		OutputMIMEType: mimeType,
		AspectRatio:    req.Config.AspectRatio,
	})
	if err != nil {
		g.logger.Error("Imagen generation failed", zap.String("model", req.Model), zap.Error(err))
		return nil, errors.NewImageGenerationError(g.Name(), req.Model, err)
	}
	if resp == nil {
		g.logger.Error("Imagen returned nil response", zap.String("model", req.Model))
		return nil, errors.NewImageGenerationError(g.Name(), req.Model, fmt.Errorf("nil response from Imagen"))
	}

	images := make([]domain.GeneratedImage, 0, len(resp.GeneratedImages))
	for _, generated := range resp.GeneratedImages {
		if generated == nil || generated.Image == nil || len(generated.Image.ImageBytes) == 0 {
			continue
		}
		imageMIME := generated.Image.MIMEType
		if imageMIME == "" {
			imageMIME = mimeType
		}
		images = append(images, domain.GeneratedImage{
			Base64:   base64.StdEncoding.EncodeToString(generated.Image.ImageBytes),
			MIMEType: imageMIME,
		})
	}

	if len(images) == 0 {
		g.logger.Error("Imagen returned no images", zap.String("model", req.Model))
		return nil, errors.NewImageGenerationError(g.Name(), req.Model, errNoImages)
	}

	g.logger.Debug("Imagen response received", zap.Int("images", len(images)))
	return images, nil
}

func extractTextFromGeminiResponse(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}

	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return ""
	}

	var texts []string
	for _, part := range candidate.Content.Parts {
		if part.Text != "" && !part.Thought {
			texts = append(texts, part.Text)
		}
	}

	return strings.Join(texts, "")
}
