package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/kapu/pitch-ai-go/internal/domain"
	"github.com/kapu/pitch-ai-go/internal/util"
	"github.com/kapu/pitch-ai-go/pkg/errors"
	"go.uber.org/zap"
)

var errCircuitOpen = fmt.Errorf("AI service unavailable (circuit open)")

const (
	callText  = "text"
	callImage = "image"
)

// GuardedClient fails calls fast while the provider keeps failing. It does
// not retry: every call that passes a breaker is a single attempt. Blank
// text and missing images count as failures.
// Text and image calls are tracked by separate breakers.
type GuardedClient struct {
	next   RemoteClient
	text   *util.CircuitBreaker
	image  *util.CircuitBreaker
	logger *zap.Logger
}

func NewGuardedClient(next RemoteClient, text, image *util.CircuitBreaker, logger *zap.Logger) *GuardedClient {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GuardedClient{next: next, text: text, image: image, logger: logger}
}

func (g *GuardedClient) Name() string {
	return g.next.Name()
}

func (g *GuardedClient) GenerateText(ctx context.Context, req domain.TextRequest) (string, error) {
	if !g.text.CanExecute() {
		g.rejected(g.text, callText, req.Model)
		return "", errors.NewTextGenerationError(g.Name(), req.Model, errCircuitOpen)
	}

	text, err := g.next.GenerateText(ctx, req)
	if err == nil && strings.TrimSpace(text) == "" {
		err = errors.NewTextGenerationError(g.Name(), req.Model, errEmptyText)
	}
	record(g.text, err)
	if err != nil {
		return "", err
	}
	return text, nil
}

func (g *GuardedClient) GenerateImages(ctx context.Context, req domain.ImageRequest) ([]domain.GeneratedImage, error) {
	if !g.image.CanExecute() {
		g.rejected(g.image, callImage, req.Model)
		return nil, errors.NewImageGenerationError(g.Name(), req.Model, errCircuitOpen)
	}

	images, err := g.next.GenerateImages(ctx, req)
	if err == nil && (len(images) == 0 || images[0].Base64 == "") {
		err = errors.NewImageGenerationError(g.Name(), req.Model, errNoImages)
	}
	record(g.image, err)
	if err != nil {
		return nil, err
	}
	return images, nil
}

// CircuitStatus exposes both breaker states for health reporting.
func (g *GuardedClient) CircuitStatus() map[string]util.CircuitBreakerStatus {
	return map[string]util.CircuitBreakerStatus{
		callText:  g.text.GetStatus(),
		callImage: g.image.GetStatus(),
	}
}

func record(breaker *util.CircuitBreaker, err error) {
	if err != nil {
		breaker.RecordFailure()
		return
	}
	breaker.RecordSuccess()
}

func (g *GuardedClient) rejected(breaker *util.CircuitBreaker, kind, model string) {
	status := breaker.GetStatus()
	nextRetry := "unknown"
	if status.NextRetryTime != nil {
		nextRetry = status.NextRetryTime.Format("15:04:05")
	}
	g.logger.Error("AI service unavailable (Circuit OPEN)",
		zap.String("provider", g.Name()),
		zap.String("call", kind),
		zap.String("model", model),
		zap.Int("failure_count", status.FailureCount),
		zap.String("next_retry", nextRetry),
	)
}
