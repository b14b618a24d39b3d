package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/semantic-product-search/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockProductRepository is a mock implementation of repository.ProductRepository.
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) EnsureSchema(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockProductRepository) InsertMany(ctx context.Context, products []models.Product) error {
	return m.Called(ctx, products).Error(0)
}

func (m *MockProductRepository) Search(ctx context.Context, query string, limit int) ([]models.Product, error) {
	args := m.Called(ctx, query, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockProductRepository) ListAll(ctx context.Context, limit int) ([]models.Product, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockProductRepository) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockProductRepository) Close() error {
	return m.Called().Error(0)
}

func TestSampleProducts(t *testing.T) {
	products := SampleProducts()
	require.Len(t, products, 72)

	perCategory := map[string]int{}
	names := map[string]bool{}
	for _, p := range products {
		assert.NotEmpty(t, p.Name)
		assert.NotEmpty(t, p.Description)
		assert.NotEmpty(t, p.Brand)
		assert.True(t, p.Price.IsPositive(), "%s has price %s", p.Name, p.Price)
		assert.Equal(t, PlaceholderImage, p.ImageURL)
		assert.False(t, names[p.Name], "duplicate product %s", p.Name)
		names[p.Name] = true
		perCategory[p.Category]++
	}

	assert.Equal(t, []string{"Fruits", "Vegetables", "Dairy", "Meat", "Beverages", "Snacks", "Bakery", "Frozen"}, categoryNames())
	for _, c := range categoryNames() {
		assert.Equal(t, 9, perCategory[c], c)
	}
}

func TestSampleProductsFields(t *testing.T) {
	first := SampleProducts()[0]

	assert.Equal(t, "Organic Red Apples", first.Name)
	assert.Equal(t, "Fruits", first.Category)
	assert.Equal(t, "Nature's Best", first.Brand)
	assert.Equal(t, "4.99", first.Price.StringFixed(2))

	fields := first.Fields()
	assert.Len(t, fields, len(models.ProductFields))
	for _, f := range models.ProductFields {
		assert.Contains(t, fields, f)
	}
	assert.Equal(t, 4.99, fields["price"])
}

func TestSummary(t *testing.T) {
	summary := Summary()

	require.Len(t, summary, 8)
	total := 0
	for _, c := range summary {
		total += c.Count
	}
	assert.Equal(t, len(SampleProducts()), total)
	assert.Equal(t, CategoryCount{Category: "Fruits", Count: 9}, summary[0])
}

func TestSeederRun(t *testing.T) {
	repo := new(MockProductRepository)
	var calls []string
	repo.On("EnsureSchema", mock.Anything).Return(nil).Run(func(mock.Arguments) {
		calls = append(calls, "EnsureSchema")
	})
	repo.On("InsertMany", mock.Anything, mock.MatchedBy(func(p []models.Product) bool { return len(p) == 72 })).
		Return(nil).Run(func(mock.Arguments) {
		calls = append(calls, "InsertMany")
	})

	count, err := NewSeeder(repo, zerolog.Nop()).Run(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 72, count)
	assert.Equal(t, []string{"EnsureSchema", "InsertMany"}, calls)
	repo.AssertExpectations(t)
}

func TestSeederRunSchemaFailureAborts(t *testing.T) {
	repo := new(MockProductRepository)
	repo.On("EnsureSchema", mock.Anything).Return(errors.New("vectorizer not configured"))

	count, err := NewSeeder(repo, zerolog.Nop()).Run(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "vectorizer not configured")
	assert.Zero(t, count)
	repo.AssertNotCalled(t, "InsertMany", mock.Anything, mock.Anything)
}

func TestSeederRunInsertFailureIsReturned(t *testing.T) {
	repo := new(MockProductRepository)
	repo.On("EnsureSchema", mock.Anything).Return(nil)
	repo.On("InsertMany", mock.Anything, mock.Anything).Return(errors.New("batch rejected"))

	count, err := NewSeeder(repo, zerolog.Nop()).Run(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "batch rejected")
	assert.Zero(t, count)
}
