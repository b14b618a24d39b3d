package repository

import (
	"context"
	"errors"

	"github.com/semantic-product-search/internal/models"
)

// ErrInvalidLimit is returned when a read is asked for fewer than one record
var ErrInvalidLimit = errors.New("limit must be at least 1")

// ProductRepository is the gateway to the external vector database
type ProductRepository interface {
	// EnsureSchema creates the product collection unless it already exists
	EnsureSchema(ctx context.Context) error

	// InsertMany submits products as a single batch
	InsertMany(ctx context.Context, products []models.Product) error

	// Search runs a hybrid (lexical + vector) query and returns up to limit products
	Search(ctx context.Context, query string, limit int) ([]models.Product, error)

	// ListAll returns up to limit products without ranking
	ListAll(ctx context.Context, limit int) ([]models.Product, error)

	// Ping reports whether the database is ready to serve requests
	Ping(ctx context.Context) error

	// Close releases the connection
	Close() error
}
