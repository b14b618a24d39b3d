package services

import (
	"context"
	"fmt"
	"io"

	"github.com/semantic-product-search/pkg/schema/config"
)

// EmbeddingsService handles text embedding operations using a pluggable backend
type EmbeddingsService struct {
	embedder Embedder
}

// NewEmbeddingsService creates the embedder selected by cfg.EmbeddingProvider
func NewEmbeddingsService(ctx context.Context, cfg *config.Config) (*EmbeddingsService, error) {
	var embedder Embedder
	switch cfg.EmbeddingProvider {
	case config.ProviderVertex:
		vertex, err := NewVertexEmbedder(ctx, cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to create Vertex AI embedder: %w", err)
		}
		embedder = vertex
	case config.ProviderCohere:
		cohere, err := NewCohereEmbedder(cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to create Cohere embedder: %w", err)
		}
		embedder = cohere
	default:
		return nil, fmt.Errorf("unknown embedding provider: %s", cfg.EmbeddingProvider)
	}

	return NewEmbeddingsServiceWith(embedder), nil
}

// NewEmbeddingsServiceWith wraps an existing embedder
func NewEmbeddingsServiceWith(embedder Embedder) *EmbeddingsService {
	return &EmbeddingsService{embedder: embedder}
}

// EmbedQuery embeds a search query for retrieval
func (s *EmbeddingsService) EmbedQuery(ctx context.Context, query string) ([]float64, error) {
	return s.embedder.Embed(ctx, query, TaskTypeQuery)
}

// EmbedDocuments embeds product texts as retrieval documents
func (s *EmbeddingsService) EmbedDocuments(ctx context.Context, texts []string) ([][]float64, error) {
	return s.embedder.EmbedBatch(ctx, texts, TaskTypeDocument)
}

// Close releases the underlying embedder client, if it holds one
func (s *EmbeddingsService) Close() error {
	if c, ok := s.embedder.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
