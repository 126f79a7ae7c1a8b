package embedding

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"agenticdb/domain"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAIEmbeddingClient implements domain.Embedder using the OpenAI
// embeddings API.
type OpenAIEmbeddingClient struct {
	client *openai.Client
	model  openai.EmbeddingModel // e.g. text-embedding-3-large
}

// NewOpenAIEmbeddingClient creates a client for the given model. The API
// key is required; its absence is a startup failure, not a per-request
// error.
func NewOpenAIEmbeddingClient(apiKey, model string) (*OpenAIEmbeddingClient, error) {
	if apiKey == "" {
		return nil, errors.New("openai api key is not set")
	}
	if model == "" {
		return nil, errors.New("embedding model is not set")
	}
	return &OpenAIEmbeddingClient{
		client: openai.NewClient(apiKey),
		model:  openai.EmbeddingModel(model),
	}, nil
}

// Embed generates embeddings for the given texts. A rate-limit response
// from the API is mapped onto domain.ErrRateLimited and surfaced to the
// caller without retrying.
func (c *OpenAIEmbeddingClient) Embed(ctx context.Context, texts []string) ([]domain.Embedding, error) {
	if len(texts) == 0 {
		return nil, nil
	}

	resp, err := c.client.CreateEmbeddings(ctx, openai.EmbeddingRequest{
		Input: texts,
		Model: c.model,
	})
	if err != nil {
		var apiErr *openai.APIError
		if errors.As(err, &apiErr) && apiErr.HTTPStatusCode == http.StatusTooManyRequests {
			return nil, fmt.Errorf("%w: %v", domain.ErrRateLimited, err)
		}
		return nil, fmt.Errorf("failed to create embeddings: %w", err)
	}

	embeddings := make([]domain.Embedding, len(resp.Data))
	for i, data := range resp.Data {
		embeddings[i] = domain.Embedding(data.Embedding)
	}
	return embeddings, nil
}
