package ai

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/kapu/pitch-ai-go/internal/domain"
	"github.com/kapu/pitch-ai-go/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"google.golang.org/genai"
)

func newGeminiTestServer(t *testing.T, handler http.HandlerFunc) *GeminiClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := NewGeminiClient(context.Background(), "test-key", srv.URL, zap.NewNop())
	require.NoError(t, err)
	return client
}

func TestGeminiClientGenerateText(t *testing.T) {
	client := newGeminiTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		require.True(t, strings.HasSuffix(r.URL.Path, "models/gemini-2.5-flash:generateContent"), r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates": [{"content": {"role": "model", "parts": [{"text": "**Problema:** "}, {"text": "x"}]}}]}`))
	})

	text, err := client.GenerateText(context.Background(), domain.TextRequest{Model: "gemini-2.5-flash", Prompt: "p"})
	require.NoError(t, err)
	assert.Equal(t, "**Problema:** x", text)
}

func TestGeminiClientGenerateTextServerError(t *testing.T) {
	client := newGeminiTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error": {"code": 500, "message": "internal", "status": "INTERNAL"}}`))
	})

	_, err := client.GenerateText(context.Background(), domain.TextRequest{Model: "gemini-2.5-flash", Prompt: "p"})
	require.Error(t, err)
	assert.True(t, stderrors.Is(err, errors.ErrTextGeneration))
}

func TestGeminiClientGenerateImages(t *testing.T) {
	var body map[string]any
	client := newGeminiTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		require.True(t, strings.HasSuffix(r.URL.Path, "models/imagen-4.0-generate-001:predict"), r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"predictions": [{"bytesBase64Encoded": "AAAA", "mimeType": "image/png"}]}`))
	})

	images, err := client.GenerateImages(context.Background(), domain.ImageRequest{
		Model:  "imagen-4.0-generate-001",
		Prompt: "logo",
		Config: domain.ImageConfig{Count: 1, OutputFormat: "png", AspectRatio: "1:1"},
	})
	require.NoError(t, err)
	require.Len(t, images, 1)
	assert.Equal(t, "AAAA", images[0].Base64)
	assert.Equal(t, "image/png", images[0].MIMEType)

	params, ok := body["parameters"].(map[string]any)
	require.True(t, ok, "expected parameters in predict body: %v", body)
	assert.EqualValues(t, 1, params["sampleCount"])
	assert.Equal(t, "1:1", params["aspectRatio"])
}

func TestGeminiClientGenerateImagesEmpty(t *testing.T) {
	client := newGeminiTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"predictions": []}`))
	})

	images, err := client.GenerateImages(context.Background(), domain.ImageRequest{
		Model:  "imagen-4.0-generate-001",
		Prompt: "logo",
		Config: domain.ImageConfig{Count: 1, OutputFormat: "png", AspectRatio: "1:1"},
	})
	require.Error(t, err)
	assert.True(t, stderrors.Is(err, errors.ErrImageGeneration))
	assert.Nil(t, images)
}

func TestNewGeminiClientRequiresKey(t *testing.T) {
	_, err := NewGeminiClient(context.Background(), "", "", zap.NewNop())
	assert.True(t, stderrors.Is(err, errors.ErrMissingCredential))
}

func TestExtractTextSkipsThoughts(t *testing.T) {
	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{Parts: []*genai.Part{
				{Text: "thinking...", Thought: true},
				{Text: "**Solução:** y"},
			}},
		}},
	}
	assert.Equal(t, "**Solução:** y", extractTextFromGeminiResponse(resp))
	assert.Equal(t, "", extractTextFromGeminiResponse(nil))
}
