package app

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/semantic-product-search/internal/config"
	"github.com/semantic-product-search/internal/repository"
	"github.com/semantic-product-search/internal/repository/postgres"
	"github.com/semantic-product-search/internal/repository/weaviate"
	schemaconfig "github.com/semantic-product-search/pkg/schema/config"
	"github.com/semantic-product-search/pkg/schema/db"
	pkgservices "github.com/semantic-product-search/pkg/schema/services"
)

// OpenRepository connects to the vector backend selected by cfg.VectorBackend.
// The caller owns the returned repository and must Close it.
func OpenRepository(ctx context.Context, cfg *config.Config, schemaCfg *schemaconfig.Config, logger zerolog.Logger) (repository.ProductRepository, error) {
	switch cfg.VectorBackend {
	case config.BackendWeaviate:
		scheme, host, err := cfg.WeaviateHost()
		if err != nil {
			return nil, err
		}
		logger.Info().Str("host", host).Str("collection", cfg.CollectionName).Msg("using weaviate backend")
		repo, err := weaviate.NewProductRepository(weaviate.Config{
			Scheme:       scheme,
			Host:         host,
			APIKey:       cfg.WeaviateAPIKey,
			CohereAPIKey: cfg.CohereAPIKey,
			Collection:   cfg.CollectionName,
			Alpha:        cfg.HybridAlpha,
		}, logger)
		if err != nil {
			return nil, err
		}
		return repo, nil

	case config.BackendPgvector:
		logger.Info().
			Str("collection", cfg.CollectionName).
			Str("embedding_provider", schemaCfg.EmbeddingProvider).
			Msg("using pgvector backend")
		return openPgvector(ctx, cfg, schemaCfg, logger)

	default:
		return nil, fmt.Errorf("unknown vector backend: %s", cfg.VectorBackend)
	}
}

func openPgvector(ctx context.Context, cfg *config.Config, schemaCfg *schemaconfig.Config, logger zerolog.Logger) (repository.ProductRepository, error) {
	embeddings, err := pkgservices.NewEmbeddingsService(ctx, schemaCfg)
	if err != nil {
		return nil, err
	}

	pgDB, err := db.OpenPostgres(ctx, schemaCfg.PostgresURI)
	if err != nil {
		embeddings.Close()
		return nil, err
	}

	repo, err := postgres.NewProductRepository(pgDB, embeddings, postgres.Config{
		Collection: cfg.CollectionName,
		Dimensions: schemaCfg.EmbeddingDimensions,
		Alpha:      cfg.HybridAlpha,
	}, logger)
	if err != nil {
		pgDB.Close()
		embeddings.Close()
		return nil, err
	}
	return repo, nil
}
