package catalog

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/semantic-product-search/internal/models"
	"github.com/semantic-product-search/internal/repository"
)

// Seeder loads the sample catalog into the vector database
type Seeder struct {
	repo     repository.ProductRepository
	products []models.Product
	logger   zerolog.Logger
}

// NewSeeder creates a seeder for the sample catalog
func NewSeeder(repo repository.ProductRepository, logger zerolog.Logger) *Seeder {
	return &Seeder{
		repo:     repo,
		products: SampleProducts(),
		logger:   logger.With().Str("component", "seeder").Logger(),
	}
}

// Run ensures the schema exists and inserts the catalog as one batch.
// It returns the number of products inserted.
func (s *Seeder) Run(ctx context.Context) (int, error) {
	s.logger.Info().Msg("creating schema")
	if err := s.repo.EnsureSchema(ctx); err != nil {
		return 0, fmt.Errorf("ensure schema: %w", err)
	}

	s.logger.Info().Int("count", len(s.products)).Msg("inserting products")
	if err := s.repo.InsertMany(ctx, s.products); err != nil {
		return 0, fmt.Errorf("insert products: %w", err)
	}

	s.logger.Info().Int("count", len(s.products)).Msg("sample data generation complete")
	return len(s.products), nil
}

// Summary counts the catalog products per category, in catalog order
func Summary() []CategoryCount {
	counts := make([]CategoryCount, len(categories))
	for i, c := range categories {
		counts[i] = CategoryCount{Category: c.name, Count: len(c.products)}
	}
	return counts
}

// CategoryCount is one line of the dry-run summary
type CategoryCount struct {
	Category string
	Count    int
}
