package services

import (
	"context"
	"strings"

	"github.com/rs/zerolog"
	"github.com/semantic-product-search/internal/models"
	"github.com/semantic-product-search/internal/repository"
)

// ProductSearchService chooses between hybrid search and the plain listing
type ProductSearchService struct {
	repo   repository.ProductRepository
	limit  int
	logger zerolog.Logger
}

// NewProductSearchService creates a new product search service
func NewProductSearchService(repo repository.ProductRepository, limit int, logger zerolog.Logger) *ProductSearchService {
	return &ProductSearchService{
		repo:   repo,
		limit:  limit,
		logger: logger.With().Str("component", "product_search").Logger(),
	}
}

// Find runs a hybrid search for query, or lists products when query is blank.
// A blank query never reaches the search backend.
func (s *ProductSearchService) Find(ctx context.Context, query string) ([]models.Product, error) {
	q := strings.TrimSpace(query)
	if q == "" {
		s.logger.Debug().Int("limit", s.limit).Msg("listing products")
		return s.repo.ListAll(ctx, s.limit)
	}

	s.logger.Debug().Str("query", q).Int("limit", s.limit).Msg("searching products")
	return s.repo.Search(ctx, q, s.limit)
}
