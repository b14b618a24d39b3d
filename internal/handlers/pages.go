package handlers

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/semantic-product-search/internal/models"
)

// ProductFinder returns the products for a page, searching when query is non-blank
type ProductFinder interface {
	Find(ctx context.Context, query string) ([]models.Product, error)
}

// PageHandler serves the search form and the results page
type PageHandler struct {
	finder ProductFinder
	title  string
	logger zerolog.Logger
}

// NewPageHandler creates a new page handler
func NewPageHandler(finder ProductFinder, title string, logger zerolog.Logger) *PageHandler {
	return &PageHandler{
		finder: finder,
		title:  title,
		logger: logger,
	}
}

// Home handles GET /
func (h *PageHandler) Home(c echo.Context) error {
	return c.Render(http.StatusOK, "index.html", models.HomePage{Title: h.title})
}

// Search handles POST /search by redirecting to the results page
func (h *PageHandler) Search(c echo.Context) error {
	query := strings.TrimSpace(c.FormValue("query"))
	if query == "" {
		return c.Redirect(http.StatusSeeOther, "/products")
	}
	return c.Redirect(http.StatusSeeOther, "/products?q="+url.QueryEscape(query))
}

// Products handles GET /products
func (h *PageHandler) Products(c echo.Context) error {
	query := strings.TrimSpace(c.QueryParam("q"))

	products, err := h.finder.Find(c.Request().Context(), query)
	if err != nil {
		// Render an empty page rather than failing the request
		h.logger.Error().Err(err).Str("query", query).Msg("product lookup failed")
		products = []models.Product{}
	}

	return c.Render(http.StatusOK, "products.html", models.ProductsPage{
		Title:    h.title,
		Query:    query,
		Products: products,
	})
}

// RegisterRoutes registers page routes
func (h *PageHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/", h.Home)
	g.POST("/search", h.Search)
	g.GET("/products", h.Products)
}
