package handlers

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
)

// Pinger reports whether the vector database is reachable
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler handles health check endpoints
type HealthHandler struct {
	db      Pinger
	backend string
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(db Pinger, backend string) *HealthHandler {
	return &HealthHandler{
		db:      db,
		backend: backend,
	}
}

// HealthResponse is the response for basic health check
type HealthResponse struct {
	Status string `json:"status"`
}

// DatabaseHealthResponse is the response for database health check
type DatabaseHealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Error    string `json:"error,omitempty"`
}

// Health handles GET /health
func (h *HealthHandler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, HealthResponse{
		Status: "healthy",
	})
}

// DatabaseHealth handles GET /health/db
func (h *HealthHandler) DatabaseHealth(c echo.Context) error {
	if err := h.db.Ping(c.Request().Context()); err != nil {
		return c.JSON(http.StatusServiceUnavailable, DatabaseHealthResponse{
			Status:   "error",
			Database: h.backend,
			Error:    err.Error(),
		})
	}

	return c.JSON(http.StatusOK, DatabaseHealthResponse{
		Status:   "connected",
		Database: h.backend,
	})
}

// RegisterRoutes registers health check routes
func (h *HealthHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/health", h.Health)
	g.GET("/health/db", h.DatabaseHealth)
}
