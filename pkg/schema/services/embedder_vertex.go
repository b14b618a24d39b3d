package services

import (
	"context"
	"fmt"

	aiplatform "cloud.google.com/go/aiplatform/apiv1"
	"cloud.google.com/go/aiplatform/apiv1/aiplatformpb"
	"github.com/semantic-product-search/pkg/schema/config"
	"google.golang.org/api/option"
	"google.golang.org/protobuf/types/known/structpb"
)

const (
	vertexBatchLimit = 250
)

// VertexEmbedder implements Embedder using Google Cloud Vertex AI
type VertexEmbedder struct {
	cfg      *config.Config
	client   *aiplatform.PredictionClient
	endpoint string
}

// NewVertexEmbedder creates a new Vertex AI embedder
func NewVertexEmbedder(ctx context.Context, cfg *config.Config) (*VertexEmbedder, error) {
	if cfg.GCPProjectID == "" {
		return nil, fmt.Errorf("GCP_PROJECT_ID is required for Vertex AI embeddings")
	}

	clientEndpoint := fmt.Sprintf("%s-aiplatform.googleapis.com:443", cfg.GCPLocation)
	client, err := aiplatform.NewPredictionClient(ctx, option.WithEndpoint(clientEndpoint))
	if err != nil {
		return nil, fmt.Errorf("failed to create Vertex AI client: %w", err)
	}

	endpoint := fmt.Sprintf("projects/%s/locations/%s/publishers/google/models/%s",
		cfg.GCPProjectID, cfg.GCPLocation, cfg.VertexModel)

	return &VertexEmbedder{
		cfg:      cfg,
		client:   client,
		endpoint: endpoint,
	}, nil
}

// Close closes the Vertex AI client
func (e *VertexEmbedder) Close() error {
	if e.client != nil {
		return e.client.Close()
	}
	return nil
}

// Embed generates an embedding for a single text
func (e *VertexEmbedder) Embed(ctx context.Context, text string, taskType TaskType) ([]float64, error) {
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
func (e *VertexEmbedder) EmbedBatch(ctx context.Context, texts []string, taskType TaskType) ([][]float64, error) {
	if len(texts) == 0 {
		return [][]float64{}, nil
	}

	return chunk(ctx, texts, vertexBatchLimit, func(ctx context.Context, batch []string) ([][]float64, error) {
		return e.embedBatchInternal(ctx, batch, taskType)
	})
}

func (e *VertexEmbedder) embedBatchInternal(ctx context.Context, texts []string, taskType TaskType) ([][]float64, error) {
	instances := make([]*structpb.Value, len(texts))
	for i, text := range texts {
		instance, err := structpb.NewStruct(map[string]interface{}{
			"content":   text,
			"task_type": string(taskType),
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create instance: %w", err)
		}
		instances[i] = structpb.NewStructValue(instance)
	}

	parameters, err := structpb.NewValue(map[string]interface{}{
		"outputDimensionality": e.cfg.EmbeddingDimensions,
		"autoTruncate":         false,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create parameters: %w", err)
	}

	req := &aiplatformpb.PredictRequest{
		Endpoint:   e.endpoint,
		Instances:  instances,
		Parameters: parameters,
	}

	resp, err := e.client.Predict(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("vertex AI prediction failed: %w", err)
	}

	return parsePredictions(resp.Predictions)
}

// parsePredictions reads predictions[i].embeddings.values
func parsePredictions(predictions []*structpb.Value) ([][]float64, error) {
	embeddings := make([][]float64, len(predictions))
	for i, prediction := range predictions {
		values := prediction.GetStructValue().GetFields()["embeddings"].
			GetStructValue().GetFields()["values"].
			GetListValue()
		if values == nil {
			return nil, fmt.Errorf("no embedding values in prediction at index %d", i)
		}

		embedding := make([]float64, len(values.GetValues()))
		for j, v := range values.GetValues() {
			embedding[j] = v.GetNumberValue()
		}
		embeddings[i] = embedding
	}

	return embeddings, nil
}
