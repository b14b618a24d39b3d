package weaviate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/rs/zerolog"
	"github.com/semantic-product-search/internal/models"
	"github.com/semantic-product-search/internal/repository"
	"github.com/shopspring/decimal"
	wv "github.com/weaviate/weaviate-go-client/v5/weaviate"
	"github.com/weaviate/weaviate-go-client/v5/weaviate/auth"
	"github.com/weaviate/weaviate-go-client/v5/weaviate/fault"
	"github.com/weaviate/weaviate-go-client/v5/weaviate/graphql"
	wvmodels "github.com/weaviate/weaviate/entities/models"
)

// Ensure ProductRepository implements repository.ProductRepository
var _ repository.ProductRepository = (*ProductRepository)(nil)

const (
	vectorizer      = "text2vec-cohere"
	vectorizerModel = "embed-english-v3.0"
)

// Config holds Weaviate connection settings
type Config struct {
	Scheme       string  // "http" or "https"
	Host         string  // host:port
	APIKey       string  // optional Weaviate API key
	CohereAPIKey string  // forwarded to the text2vec-cohere module
	Collection   string  // e.g., "Product"
	Alpha        float64 // hybrid weighting, 1 = pure vector
}

// ProductRepository implements repository.ProductRepository using Weaviate
type ProductRepository struct {
	client     *wv.Client
	httpClient *http.Client
	collection string
	alpha      float64
	logger     zerolog.Logger
}

// NewProductRepository creates a new Weaviate product repository
func NewProductRepository(cfg Config, logger zerolog.Logger) (*ProductRepository, error) {
	headers := map[string]string{}
	if cfg.CohereAPIKey != "" {
		headers["X-Cohere-Api-Key"] = cfg.CohereAPIKey
	}

	clientCfg := wv.Config{
		Host:    cfg.Host,
		Scheme:  cfg.Scheme,
		Headers: headers,
	}

	// The client accepts either an auth config or its own HTTP client, not both
	var httpClient *http.Client
	if cfg.APIKey != "" {
		clientCfg.AuthConfig = auth.ApiKey{Value: cfg.APIKey}
	} else {
		httpClient = &http.Client{}
		clientCfg.ConnectionClient = httpClient
	}

	client, err := wv.NewClient(clientCfg)
	if err != nil {
		return nil, fmt.Errorf("create weaviate client: %w", err)
	}

	return &ProductRepository{
		client:     client,
		httpClient: httpClient,
		collection: cfg.Collection,
		alpha:      cfg.Alpha,
		logger:     logger.With().Str("component", "weaviate").Str("collection", cfg.Collection).Logger(),
	}, nil
}

// Close releases idle connections held by the client
func (r *ProductRepository) Close() error {
	if r.httpClient != nil {
		r.httpClient.CloseIdleConnections()
	}
	return nil
}

// Ping checks the Weaviate readiness endpoint
func (r *ProductRepository) Ping(ctx context.Context) error {
	ready, err := r.client.Misc().ReadyChecker().Do(ctx)
	if err != nil {
		return fmt.Errorf("weaviate readiness: %w", err)
	}
	if !ready {
		return fmt.Errorf("weaviate is not ready")
	}
	return nil
}

// EnsureSchema creates the product collection if it does not exist
func (r *ProductRepository) EnsureSchema(ctx context.Context) error {
	exists, err := r.client.Schema().ClassExistenceChecker().WithClassName(r.collection).Do(ctx)
	if err != nil {
		return fmt.Errorf("check collection %s: %w", r.collection, err)
	}
	if exists {
		r.logger.Info().Msg("collection already exists")
		return nil
	}

	err = r.client.Schema().ClassCreator().WithClass(classDefinition(r.collection)).Do(ctx)
	if err != nil {
		if isAlreadyExists(err) {
			r.logger.Info().Msg("collection created concurrently")
			return nil
		}
		r.logger.Error().Err(err).
			Msg("error creating collection; make sure the Cohere API key is configured for the Weaviate instance")
		return fmt.Errorf("create collection %s: %w", r.collection, err)
	}

	r.logger.Info().Msg("collection created")
	return nil
}

// InsertMany adds products through the objects batcher
func (r *ProductRepository) InsertMany(ctx context.Context, products []models.Product) error {
	if len(products) == 0 {
		return nil
	}

	objects := make([]*wvmodels.Object, len(products))
	for i, p := range products {
		objects[i] = &wvmodels.Object{
			Class:      r.collection,
			Properties: p.Fields(),
		}
	}

	resp, err := r.client.Batch().ObjectsBatcher().WithObjects(objects...).Do(ctx)
	if err != nil {
		r.logger.Error().Err(err).Int("count", len(products)).Msg("error inserting products")
		return fmt.Errorf("batch insert: %w", err)
	}
	if err := batchError(resp); err != nil {
		r.logger.Error().Err(err).Int("count", len(products)).Msg("error inserting products")
		return err
	}

	r.logger.Info().Int("count", len(products)).Msg("inserted products")
	return nil
}

// Search performs a hybrid query against the collection
func (r *ProductRepository) Search(ctx context.Context, query string, limit int) ([]models.Product, error) {
	if limit < 1 {
		return nil, repository.ErrInvalidLimit
	}

	hybrid := r.client.GraphQL().HybridArgumentBuilder().
		WithQuery(query).
		WithAlpha(float32(r.alpha))

	resp, err := r.client.GraphQL().Get().
		WithClassName(r.collection).
		WithFields(productFields()...).
		WithHybrid(hybrid).
		WithLimit(limit).
		Do(ctx)
	if err != nil {
		return nil, fmt.Errorf("hybrid search: %w", err)
	}

	products, err := decodeProducts(resp, r.collection)
	if err != nil {
		return nil, fmt.Errorf("hybrid search: %w", err)
	}
	return products, nil
}

// ListAll fetches up to limit objects without ranking
func (r *ProductRepository) ListAll(ctx context.Context, limit int) ([]models.Product, error) {
	if limit < 1 {
		return nil, repository.ErrInvalidLimit
	}

	resp, err := r.client.GraphQL().Get().
		WithClassName(r.collection).
		WithFields(productFields()...).
		WithLimit(limit).
		Do(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch products: %w", err)
	}

	products, err := decodeProducts(resp, r.collection)
	if err != nil {
		return nil, fmt.Errorf("fetch products: %w", err)
	}
	return products, nil
}

// classDefinition describes the product collection and its vectorizer
func classDefinition(collection string) *wvmodels.Class {
	return &wvmodels.Class{
		Class:       collection,
		Description: "Supermarket products with semantic search capabilities",
		Vectorizer:  vectorizer,
		ModuleConfig: map[string]interface{}{
			vectorizer: map[string]interface{}{
				"model":    vectorizerModel,
				"truncate": "NONE",
			},
		},
		Properties: []*wvmodels.Property{
			{Name: "name", DataType: []string{"text"}, Description: "Product name"},
			{Name: "description", DataType: []string{"text"}, Description: "Product description for semantic search"},
			{Name: "price", DataType: []string{"number"}, Description: "Product price"},
			{Name: "category", DataType: []string{"text"}, Description: "Product category"},
			{Name: "brand", DataType: []string{"text"}, Description: "Product brand"},
			{Name: "image_url", DataType: []string{"text"}, Description: "Product image URL"},
		},
	}
}

func productFields() []graphql.Field {
	fields := make([]graphql.Field, len(models.ProductFields))
	for i, name := range models.ProductFields {
		fields[i] = graphql.Field{Name: name}
	}
	return fields
}

// decodeProducts extracts Get.<collection> objects from a GraphQL response
func decodeProducts(resp *wvmodels.GraphQLResponse, collection string) ([]models.Product, error) {
	if resp == nil {
		return nil, fmt.Errorf("empty response")
	}
	if len(resp.Errors) > 0 {
		msgs := make([]string, 0, len(resp.Errors))
		for _, e := range resp.Errors {
			if e != nil {
				msgs = append(msgs, e.Message)
			}
		}
		return nil, fmt.Errorf("graphql: %s", strings.Join(msgs, "; "))
	}

	get, ok := resp.Data["Get"].(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("unexpected response: missing Get")
	}

	raw := get[collection]
	if raw == nil {
		return []models.Product{}, nil
	}
	items, ok := raw.([]interface{})
	if !ok {
		return nil, fmt.Errorf("unexpected response: %s is not a list", collection)
	}

	products := make([]models.Product, 0, len(items))
	for i, item := range items {
		props, ok := item.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("unexpected object at index %d", i)
		}
		price, err := toDecimal(props["price"])
		if err != nil {
			return nil, fmt.Errorf("price at index %d: %w", i, err)
		}
		products = append(products, models.Product{
			Name:        toString(props["name"]),
			Description: toString(props["description"]),
			Price:       price,
			Category:    toString(props["category"]),
			Brand:       toString(props["brand"]),
			ImageURL:    toString(props["image_url"]),
		})
	}
	return products, nil
}

// batchError folds per-object failures of a batch response into one error
func batchError(resp []wvmodels.ObjectsGetResponse) error {
	var msgs []string
	for _, obj := range resp {
		if obj.Result == nil || obj.Result.Errors == nil {
			continue
		}
		for _, item := range obj.Result.Errors.Error {
			if item != nil {
				msgs = append(msgs, item.Message)
			}
		}
	}
	if len(msgs) == 0 {
		return nil
	}
	return fmt.Errorf("batch insert: %d object errors, first: %s", len(msgs), msgs[0])
}

func isAlreadyExists(err error) bool {
	var clientErr *fault.WeaviateClientError
	if errors.As(err, &clientErr) {
		return strings.Contains(strings.ToLower(clientErr.Msg), "already exists")
	}
	return strings.Contains(strings.ToLower(err.Error()), "already exists")
}

func toString(v interface{}) string {
	s, _ := v.(string)
	return s
}

func toDecimal(v interface{}) (decimal.Decimal, error) {
	switch n := v.(type) {
	case nil:
		return decimal.Zero, nil
	case float64:
		return decimal.NewFromFloat(n), nil
	case json.Number:
		return decimal.NewFromString(n.String())
	default:
		return decimal.Zero, fmt.Errorf("unexpected type %T", v)
	}
}
