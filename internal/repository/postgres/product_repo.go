package postgres

import (
	"context"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/pgvector/pgvector-go"
	"github.com/rs/zerolog"
	"github.com/semantic-product-search/internal/models"
	"github.com/semantic-product-search/internal/repository"
)

// Ensure ProductRepository implements repository.ProductRepository
var _ repository.ProductRepository = (*ProductRepository)(nil)

const (
	insertBatchSize = 500
)

var tableNamePattern = regexp.MustCompile(`^[a-z_][a-z0-9_]*$`)

// Embeddings turns text into vectors for the embedding column
type Embeddings interface {
	EmbedQuery(ctx context.Context, query string) ([]float64, error)
	EmbedDocuments(ctx context.Context, texts []string) ([][]float64, error)
}

// Config holds pgvector table settings
type Config struct {
	Collection string  // table name, lowercased
	Dimensions int     // embedding column size
	Alpha      float64 // hybrid weighting, 1 = pure vector
}

// ProductRepository implements repository.ProductRepository for PostgreSQL with pgvector
type ProductRepository struct {
	db         *sqlx.DB
	embeddings Embeddings
	table      string
	dimensions int
	alpha      float64
	logger     zerolog.Logger
}

type productRow struct {
	models.Product
	Embedding pgvector.Vector `db:"embedding"`
}

// NewProductRepository creates a new PostgreSQL product repository
func NewProductRepository(db *sqlx.DB, embeddings Embeddings, cfg Config, logger zerolog.Logger) (*ProductRepository, error) {
	table, err := tableName(cfg.Collection)
	if err != nil {
		return nil, err
	}
	if cfg.Dimensions < 1 {
		return nil, fmt.Errorf("embedding dimensions must be at least 1, got %d", cfg.Dimensions)
	}

	return &ProductRepository{
		db:         db,
		embeddings: embeddings,
		table:      table,
		dimensions: cfg.Dimensions,
		alpha:      cfg.Alpha,
		logger:     logger.With().Str("component", "pgvector").Str("table", table).Logger(),
	}, nil
}

// tableName maps a collection name onto a plain lowercase identifier
func tableName(collection string) (string, error) {
	name := strings.ToLower(collection)
	if !tableNamePattern.MatchString(name) {
		return "", fmt.Errorf("invalid collection name for postgres table: %q", collection)
	}
	return name, nil
}

// Close closes the database handle and the embedding client, if it holds one
func (r *ProductRepository) Close() error {
	var errs []error
	if c, ok := r.embeddings.(io.Closer); ok {
		errs = append(errs, c.Close())
	}
	if r.db != nil {
		errs = append(errs, r.db.Close())
	}
	return errors.Join(errs...)
}

// Ping verifies the database connection
func (r *ProductRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

// EnsureSchema creates the vector extension, product table and indexes
func (r *ProductRepository) EnsureSchema(ctx context.Context) error {
	var exists bool
	if err := r.db.GetContext(ctx, &exists, `SELECT to_regclass($1) IS NOT NULL`, r.table); err != nil {
		return fmt.Errorf("check table %s: %w", r.table, err)
	}
	if exists {
		r.logger.Info().Msg("table already exists")
		return nil
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin schema transaction: %w", err)
	}
	defer tx.Rollback()

	for _, stmt := range r.schemaStatements() {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			r.logger.Error().Err(err).Msg("error creating table")
			return fmt.Errorf("create table %s: %w", r.table, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit schema: %w", err)
	}

	r.logger.Info().Int("dimensions", r.dimensions).Msg("table created")
	return nil
}

func (r *ProductRepository) schemaStatements() []string {
	table := pq.QuoteIdentifier(r.table)
	return []string{
		`CREATE EXTENSION IF NOT EXISTS vector`,
		fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				id          BIGSERIAL PRIMARY KEY,
				name        TEXT NOT NULL,
				description TEXT NOT NULL,
				price       NUMERIC(10, 2) NOT NULL,
				category    TEXT NOT NULL,
				brand       TEXT NOT NULL,
				image_url   TEXT NOT NULL,
				embedding   vector(%d) NOT NULL,
				search      tsvector GENERATED ALWAYS AS (
					to_tsvector('english', name || ' ' || description)
				) STORED
			)`, table, r.dimensions),
		fmt.Sprintf(`CREATE INDEX IF NOT EXISTS %s ON %s USING hnsw (embedding vector_cosine_ops)`,
			pq.QuoteIdentifier(r.table+"_embedding_idx"), table),
		fmt.Sprintf(`CREATE INDEX IF NOT EXISTS %s ON %s USING gin (search)`,
			pq.QuoteIdentifier(r.table+"_search_idx"), table),
	}
}

// InsertMany embeds product descriptions and inserts all rows in one transaction
func (r *ProductRepository) InsertMany(ctx context.Context, products []models.Product) error {
	if len(products) == 0 {
		return nil
	}

	texts := make([]string, len(products))
	for i, p := range products {
		texts[i] = p.Description
	}

	vectors, err := r.embeddings.EmbedDocuments(ctx, texts)
	if err != nil {
		r.logger.Error().Err(err).Int("count", len(products)).Msg("error embedding products")
		return fmt.Errorf("embed products: %w", err)
	}
	if len(vectors) != len(products) {
		return fmt.Errorf("embedding count mismatch: got %d, want %d", len(vectors), len(products))
	}

	rows := make([]productRow, len(products))
	for i, p := range products {
		rows[i] = productRow{Product: p, Embedding: pgvector.NewVector(float32Slice(vectors[i]))}
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin insert transaction: %w", err)
	}
	defer tx.Rollback()

	query := fmt.Sprintf(`
		INSERT INTO %s (name, description, price, category, brand, image_url, embedding)
		VALUES (:name, :description, :price, :category, :brand, :image_url, :embedding)
	`, pq.QuoteIdentifier(r.table))

	for start := 0; start < len(rows); start += insertBatchSize {
		end := start + insertBatchSize
		if end > len(rows) {
			end = len(rows)
		}
		if _, err := tx.NamedExecContext(ctx, query, rows[start:end]); err != nil {
			r.logger.Error().Err(err).Int("count", len(products)).Msg("error inserting products")
			return fmt.Errorf("insert products: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit products: %w", err)
	}

	r.logger.Info().Int("count", len(products)).Msg("inserted products")
	return nil
}

// Search blends cosine similarity with full-text rank, both computed by Postgres
func (r *ProductRepository) Search(ctx context.Context, query string, limit int) ([]models.Product, error) {
	if limit < 1 {
		return nil, repository.ErrInvalidLimit
	}

	embedding, err := r.embeddings.EmbedQuery(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}

	products := []models.Product{}
	err = r.db.SelectContext(ctx, &products, fmt.Sprintf(`
		SELECT name, description, price, category, brand, image_url
		FROM %s, plainto_tsquery('english', $2) AS q
		ORDER BY $3::float8 * (1 - (embedding <=> $1::vector))
		       + (1 - $3::float8) * ts_rank_cd(search, q) DESC
		LIMIT $4
	`, pq.QuoteIdentifier(r.table)), pgvector.NewVector(float32Slice(embedding)), query, r.alpha, limit)
	if err != nil {
		return nil, fmt.Errorf("hybrid search products: %w", err)
	}
	return products, nil
}

// ListAll returns products in insertion order
func (r *ProductRepository) ListAll(ctx context.Context, limit int) ([]models.Product, error) {
	if limit < 1 {
		return nil, repository.ErrInvalidLimit
	}

	products := []models.Product{}
	err := r.db.SelectContext(ctx, &products, fmt.Sprintf(`
		SELECT name, description, price, category, brand, image_url
		FROM %s
		ORDER BY id
		LIMIT $1
	`, pq.QuoteIdentifier(r.table)), limit)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return products, nil
}

// float32Slice converts []float64 to []float32 for pgvector
func float32Slice(f64 []float64) []float32 {
	f32 := make([]float32, len(f64))
	for i, v := range f64 {
		f32[i] = float32(v)
	}
	return f32
}
