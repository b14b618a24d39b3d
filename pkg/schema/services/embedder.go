package services

import "context"

// TaskType represents the retrieval role of the text being embedded
type TaskType string

const (
	TaskTypeQuery    TaskType = "RETRIEVAL_QUERY"
	TaskTypeDocument TaskType = "RETRIEVAL_DOCUMENT"
)

// Embedder defines the interface for text embedding operations
type Embedder interface {
	// Embed generates an embedding for a single text with the given task type
	Embed(ctx context.Context, text string, taskType TaskType) ([]float64, error)

	// EmbedBatch generates embeddings for multiple texts with the given task type
	EmbedBatch(ctx context.Context, texts []string, taskType TaskType) ([][]float64, error)
}

// chunk calls fn over consecutive slices of at most size texts and
// concatenates the results
func chunk(ctx context.Context, texts []string, size int, fn func(ctx context.Context, batch []string) ([][]float64, error)) ([][]float64, error) {
	if len(texts) <= size {
		return fn(ctx, texts)
	}

	all := make([][]float64, 0, len(texts))
	for i := 0; i < len(texts); i += size {
		end := i + size
		if end > len(texts) {
			end = len(texts)
		}
		batch, err := fn(ctx, texts[i:end])
		if err != nil {
			return nil, err
		}
		all = append(all, batch...)
	}
	return all, nil
}
