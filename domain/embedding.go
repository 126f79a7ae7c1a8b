package domain

import "context"

// Embedding is a numerical vector representation of text.
type Embedding []float32

// Embedder generates embeddings for document and query text. The store
// adapter uses it for both writes and similarity queries.
type Embedder interface {
	// Embed generates one embedding per input text, in input order.
	Embed(ctx context.Context, texts []string) ([]Embedding, error)
}
