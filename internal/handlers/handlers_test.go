package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/semantic-product-search/internal/models"
	"github.com/semantic-product-search/internal/web"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockProductFinder struct {
	mock.Mock
}

func (m *MockProductFinder) Find(ctx context.Context, query string) ([]models.Product, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Product), args.Error(1)
}

type MockPinger struct {
	mock.Mock
}

func (m *MockPinger) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func newTestServer(t *testing.T, finder ProductFinder, db Pinger) *echo.Echo {
	t.Helper()

	renderer, err := web.NewRenderer()
	require.NoError(t, err)

	e := echo.New()
	e.Renderer = renderer
	root := e.Group("")
	NewPageHandler(finder, "Grocery Search", zerolog.Nop()).RegisterRoutes(root)
	NewHealthHandler(db, "weaviate").RegisterRoutes(root)
	return e
}

func serve(e *echo.Echo, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func postSearch(query string) *http.Request {
	form := url.Values{"query": {query}}
	req := httptest.NewRequest(http.MethodPost, "/search", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	return req
}

func TestHome(t *testing.T) {
	e := newTestServer(t, new(MockProductFinder), new(MockPinger))

	rec := serve(e, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "<title>Grocery Search</title>")
	assert.Contains(t, rec.Body.String(), `name="query"`)
}

func TestSearchRedirects(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		location string
	}{
		{name: "single word", query: "apples", location: "/products?q=apples"},
		{name: "trimmed", query: "  apples  ", location: "/products?q=apples"},
		{name: "escaped", query: "milk & eggs", location: "/products?q=milk+%26+eggs"},
		{name: "blank", query: "   ", location: "/products"},
		{name: "empty", query: "", location: "/products"},
	}

	e := newTestServer(t, new(MockProductFinder), new(MockPinger))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(e, postSearch(tt.query))

			assert.Equal(t, http.StatusSeeOther, rec.Code)
			assert.Equal(t, tt.location, rec.Header().Get(echo.HeaderLocation))
		})
	}
}

func TestProductsWithQuery(t *testing.T) {
	finder := new(MockProductFinder)
	finder.On("Find", mock.Anything, "apples").Return([]models.Product{
		{Name: "Organic Red Apples", Brand: "Nature's Best", Category: "Fruits", Price: decimal.RequireFromString("4.99")},
	}, nil)

	e := newTestServer(t, finder, new(MockPinger))
	rec := serve(e, httptest.NewRequest(http.MethodGet, "/products?q=apples", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Organic Red Apples")
	assert.Contains(t, rec.Body.String(), "$4.99")
	assert.Contains(t, rec.Body.String(), `value="apples"`)
	finder.AssertExpectations(t)
}

func TestProductsWithoutQuery(t *testing.T) {
	finder := new(MockProductFinder)
	finder.On("Find", mock.Anything, "").Return([]models.Product{
		{Name: "Whole Milk", Category: "Dairy", Price: decimal.RequireFromString("3.49")},
	}, nil)

	e := newTestServer(t, finder, new(MockPinger))
	rec := serve(e, httptest.NewRequest(http.MethodGet, "/products", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Whole Milk")
	finder.AssertExpectations(t)
}

func TestProductsBlankQueryLists(t *testing.T) {
	finder := new(MockProductFinder)
	finder.On("Find", mock.Anything, "").Return([]models.Product{
		{Name: "Whole Milk", Category: "Dairy", Price: decimal.RequireFromString("3.49")},
	}, nil)

	e := newTestServer(t, finder, new(MockPinger))
	rec := serve(e, httptest.NewRequest(http.MethodGet, "/products?q=%20", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Whole Milk")
	finder.AssertExpectations(t)
	finder.AssertNotCalled(t, "Find", mock.Anything, " ")
}

func TestProductsFailureRendersEmptyList(t *testing.T) {
	finder := new(MockProductFinder)
	finder.On("Find", mock.Anything, "apples").Return(nil, errors.New("connection refused"))

	e := newTestServer(t, finder, new(MockPinger))
	rec := serve(e, httptest.NewRequest(http.MethodGet, "/products?q=apples", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "No products found.")
	assert.NotContains(t, rec.Body.String(), "connection refused")
}

func TestHealth(t *testing.T) {
	e := newTestServer(t, new(MockProductFinder), new(MockPinger))

	rec := serve(e, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	var resp HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "healthy", resp.Status)
}

func TestDatabaseHealth(t *testing.T) {
	t.Run("connected", func(t *testing.T) {
		db := new(MockPinger)
		db.On("Ping", mock.Anything).Return(nil)
		e := newTestServer(t, new(MockProductFinder), db)

		rec := serve(e, httptest.NewRequest(http.MethodGet, "/health/db", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		var resp DatabaseHealthResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, DatabaseHealthResponse{Status: "connected", Database: "weaviate"}, resp)
	})

	t.Run("unreachable", func(t *testing.T) {
		db := new(MockPinger)
		db.On("Ping", mock.Anything).Return(errors.New("weaviate is not ready"))
		e := newTestServer(t, new(MockProductFinder), db)

		rec := serve(e, httptest.NewRequest(http.MethodGet, "/health/db", nil))

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		var resp DatabaseHealthResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "error", resp.Status)
		assert.Equal(t, "weaviate is not ready", resp.Error)
	})
}
