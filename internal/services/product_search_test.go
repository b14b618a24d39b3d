package services

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/semantic-product-search/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

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

var apples = []models.Product{
	{Name: "Organic Red Apples", Category: "Fruits", Price: decimal.RequireFromString("4.99")},
}

func TestFindSearchesNonBlankQuery(t *testing.T) {
	repo := new(MockProductRepository)
	repo.On("Search", mock.Anything, "apples", 20).Return(apples, nil)

	svc := NewProductSearchService(repo, 20, zerolog.Nop())
	products, err := svc.Find(context.Background(), "  apples ")

	require.NoError(t, err)
	assert.Equal(t, apples, products)
	repo.AssertExpectations(t)
	repo.AssertNotCalled(t, "ListAll", mock.Anything, mock.Anything)
}

func TestFindBlankQueryListsProducts(t *testing.T) {
	for _, query := range []string{"", "   ", "\t\n"} {
		repo := new(MockProductRepository)
		repo.On("ListAll", mock.Anything, 20).Return(apples, nil)

		svc := NewProductSearchService(repo, 20, zerolog.Nop())
		products, err := svc.Find(context.Background(), query)

		require.NoError(t, err)
		assert.Equal(t, apples, products)
		repo.AssertNotCalled(t, "Search", mock.Anything, mock.Anything, mock.Anything)
	}
}

func TestFindUsesConfiguredLimit(t *testing.T) {
	repo := new(MockProductRepository)
	repo.On("ListAll", mock.Anything, 5).Return([]models.Product{}, nil)

	svc := NewProductSearchService(repo, 5, zerolog.Nop())
	_, err := svc.Find(context.Background(), "")

	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestFindReturnsRepositoryErrors(t *testing.T) {
	repo := new(MockProductRepository)
	repo.On("Search", mock.Anything, "milk", 20).Return(nil, errors.New("weaviate unavailable"))

	svc := NewProductSearchService(repo, 20, zerolog.Nop())
	products, err := svc.Find(context.Background(), "milk")

	assert.Error(t, err)
	assert.Nil(t, products)
}
