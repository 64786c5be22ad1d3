package embedding

import (
	"context"
	"fmt"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// DefaultModel is the default Gemini embedding model.
const DefaultModel = "text-embedding-004"

// DefaultTimeout bounds a single remote embedding call. On timeout the
// caller falls back to the neutral semantic subscore.
const DefaultTimeout = 15 * time.Second

// GeminiEmbedder produces embeddings via the Gemini API.
type GeminiEmbedder struct {
	client  *genai.Client
	model   string
	timeout time.Duration
}

// NewGeminiEmbedder creates an embedder backed by the Gemini API. An empty
// model selects DefaultModel; a non-positive timeout selects DefaultTimeout.
func NewGeminiEmbedder(ctx context.Context, apiKey, model string, timeout time.Duration) (*GeminiEmbedder, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if model == "" {
		model = DefaultModel
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiEmbedder{
		client:  client,
		model:   model,
		timeout: timeout,
	}, nil
}

// Embed returns the embedding vector for the given text. The call is
// bounded by the configured timeout.
func (e *GeminiEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	if text == "" {
		return nil, fmt.Errorf("text cannot be empty")
	}

	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	model := e.client.EmbeddingModel(e.model)
	resp, err := model.EmbedContent(ctx, genai.Text(text))
	if err != nil {
		return nil, fmt.Errorf("failed to generate embedding: %w", err)
	}
	if resp.Embedding == nil || len(resp.Embedding.Values) == 0 {
		return nil, fmt.Errorf("no embedding data returned")
	}

	return resp.Embedding.Values, nil
}

// Close releases resources held by the underlying client.
func (e *GeminiEmbedder) Close() error {
	if e.client != nil {
		return e.client.Close()
	}
	return nil
}
