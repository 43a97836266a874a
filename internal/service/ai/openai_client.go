package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/kapu/pitch-ai-go/internal/domain"
	"github.com/kapu/pitch-ai-go/pkg/errors"
	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"go.uber.org/zap"
)

// OpenAIClient generates pitch text with Chat Completions and logos with
// the Images API.
type OpenAIClient struct {
	client *openai.Client
	logger *zap.Logger
}

func NewOpenAIClient(apiKey, baseURL string, logger *zap.Logger) (*OpenAIClient, error) {
	if apiKey == "" {
		return nil, errors.NewCredentialError(ProviderOpenAI, "OPENAI_API_KEY")
	}

	opts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	// single attempt per call
	opts = append(opts, option.WithMaxRetries(0))

	client := openai.NewClient(opts...)
	return &OpenAIClient{client: &client, logger: logger}, nil
}

func (o *OpenAIClient) Name() string {
	return "OpenAI"
}

func (o *OpenAIClient) GenerateText(ctx context.Context, req domain.TextRequest) (string, error) {
	o.logger.Debug("Generating pitch with OpenAI", zap.String("model", req.Model))

	resp, err := o.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(req.Model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(req.Prompt),
		},
	})
	if err != nil {
		o.logger.Error("OpenAI text generation failed", zap.String("model", req.Model), zap.Error(err))
		return "", errors.NewTextGenerationError(o.Name(), req.Model, err)
	}

	if len(resp.Choices) == 0 || strings.TrimSpace(resp.Choices[0].Message.Content) == "" {
		o.logger.Error("OpenAI returned no usable choice", zap.String("model", req.Model))
		return "", errors.NewTextGenerationError(o.Name(), req.Model, fmt.Errorf("no choices in OpenAI response"))
	}

	text := resp.Choices[0].Message.Content
	o.logger.Debug("OpenAI response received",
		zap.Int("length", len(text)),
		zap.Int64("prompt_tokens", resp.Usage.PromptTokens),
		zap.Int64("completion_tokens", resp.Usage.CompletionTokens),
	)
	return text, nil
}

func (o *OpenAIClient) GenerateImages(ctx context.Context, req domain.ImageRequest) ([]domain.GeneratedImage, error) {
	params := openai.ImageGenerateParams{
		Prompt: req.Prompt,
		Model:  openai.ImageModel(req.Model),
		N:      openai.Int(int64(req.Config.Count)),
		Size:   openAIImageSize(req.Config.AspectRatio),
	}
	// gpt-image models always answer with base64 and take output_format;
	// dall-e models need response_format instead.
	if strings.HasPrefix(req.Model, "gpt-image") {
		params.OutputFormat = openai.ImageGenerateParamsOutputFormat(req.Config.OutputFormat)
	} else {
		params.ResponseFormat = openai.ImageGenerateParamsResponseFormatB64JSON
	}

	o.logger.Debug("Generating logo with OpenAI",
		zap.String("model", req.Model),
		zap.Int("count", req.Config.Count),
		zap.String("size", string(params.Size)),
	)

	resp, err := o.client.Images.Generate(ctx, params)
	if err != nil {
		o.logger.Error("OpenAI image generation failed", zap.String("model", req.Model), zap.Error(err))
		return nil, errors.NewImageGenerationError(o.Name(), req.Model, err)
	}

	images := make([]domain.GeneratedImage, 0, len(resp.Data))
	for _, img := range resp.Data {
		if img.B64JSON == "" {
			continue
		}
		images = append(images, domain.GeneratedImage{
			Base64:   img.B64JSON,
			MIMEType: "image/" + req.Config.OutputFormat,
		})
	}

	if len(images) == 0 {
		o.logger.Error("OpenAI returned no images", zap.String("model", req.Model))
		return nil, errors.NewImageGenerationError(o.Name(), req.Model, errNoImages)
	}

	o.logger.Debug("OpenAI image response received", zap.Int("images", len(images)))
	return images, nil
}

func openAIImageSize(aspectRatio string) openai.ImageGenerateParamsSize {
	switch aspectRatio {
	case "16:9", "3:2", "4:3":
		return openai.ImageGenerateParamsSize1536x1024
	case "9:16", "2:3", "3:4":
		return openai.ImageGenerateParamsSize1024x1536
	default:
		return openai.ImageGenerateParamsSize1024x1024
	}
}
