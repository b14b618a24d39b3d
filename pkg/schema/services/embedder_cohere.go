package services

import (
	"context"
	"fmt"
	"strings"

	cohere "github.com/cohere-ai/cohere-go/v2"
	cohereclient "github.com/cohere-ai/cohere-go/v2/client"
	"github.com/cohere-ai/cohere-go/v2/option"
	"github.com/semantic-product-search/pkg/schema/config"
)

const (
	cohereBatchLimit = 96
)

// CohereEmbedder implements Embedder using the Cohere embed API
type CohereEmbedder struct {
	cfg    *config.Config
	client *cohereclient.Client
}

// NewCohereEmbedder creates a new Cohere embedder
func NewCohereEmbedder(cfg *config.Config) (*CohereEmbedder, error) {
	if cfg.CohereAPIKey == "" {
		return nil, fmt.Errorf("COHERE_APIKEY is required for Cohere embeddings")
	}

	opts := []option.RequestOption{option.WithToken(cfg.CohereAPIKey)}
	if cfg.CohereAPIURL != "" {
		opts = append(opts, option.WithBaseURL(strings.TrimRight(cfg.CohereAPIURL, "/")))
	}

	return &CohereEmbedder{
		cfg:    cfg,
		client: cohereclient.NewClient(opts...),
	}, nil
}

var taskTypeToInputType = map[TaskType]cohere.EmbedInputType{
	TaskTypeQuery:    cohere.EmbedInputTypeSearchQuery,
	TaskTypeDocument: cohere.EmbedInputTypeSearchDocument,
}

// Embed generates an embedding for a single text
func (e *CohereEmbedder) Embed(ctx context.Context, text string, taskType TaskType) ([]float64, error) {
	embeddings, err := e.EmbedBatch(ctx, []string{text}, taskType)
	if err != nil {
		return nil, err
	}
	if len(embeddings) == 0 {
		return nil, fmt.Errorf("no embeddings returned")
	}
	return embeddings[0], nil
}

// EmbedBatch generates embeddings for multiple texts
func (e *CohereEmbedder) EmbedBatch(ctx context.Context, texts []string, taskType TaskType) ([][]float64, error) {
	if len(texts) == 0 {
		return [][]float64{}, nil
	}

	inputType, ok := taskTypeToInputType[taskType]
	if !ok {
		inputType = cohere.EmbedInputTypeSearchDocument
	}

	return chunk(ctx, texts, cohereBatchLimit, func(ctx context.Context, batch []string) ([][]float64, error) {
		return e.embedBatchInternal(ctx, batch, inputType)
	})
}

func (e *CohereEmbedder) embedBatchInternal(ctx context.Context, texts []string, inputType cohere.EmbedInputType) ([][]float64, error) {
	resp, err := e.client.Embed(ctx, &cohere.EmbedRequest{
		Texts:     texts,
		Model:     cohere.String(e.cfg.CohereModel),
		InputType: inputType.Ptr(),
		Truncate:  cohere.EmbedRequestTruncateNone.Ptr(),
	})
	if err != nil {
		return nil, fmt.Errorf("cohere embed request failed: %w", err)
	}
	if resp == nil || resp.EmbeddingsFloats == nil {
		return nil, fmt.Errorf("cohere embed response has no float embeddings")
	}

	embeddings := resp.EmbeddingsFloats.Embeddings
	if len(embeddings) != len(texts) {
		return nil, fmt.Errorf("embedding count mismatch: got %d, want %d", len(embeddings), len(texts))
	}

	return embeddings, nil
}
