package config

import (
	"encoding/json"
	"fmt"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"
	"sync"
)

// Supported vector backends
const (
	BackendWeaviate = "weaviate"
	BackendPgvector = "pgvector"
)

// Config holds all application configuration
type Config struct {
	// App Settings
	AppTitle string
	Port     string

	// CORS
	CORSOrigins []string

	// Logging
	LogLevel  string
	LogFormat string // "json" or "console"

	// Vector Backend: "weaviate" or "pgvector"
	VectorBackend  string
	CollectionName string
	HybridAlpha    float64
	ResultLimit    int

	// Weaviate settings (used when VectorBackend = "weaviate")
	WeaviateURL    string
	WeaviateAPIKey string
	CohereAPIKey   string
}

var (
	config *Config
	once   sync.Once
)

// GetConfig returns the singleton configuration instance
func GetConfig() *Config {
	once.Do(func() {
		config = loadConfig()
	})
	return config
}

func loadConfig() *Config {
	return &Config{
		AppTitle:    getEnv("APP_TITLE", "Weaviate Semantic Search"),
		Port:        getEnv("PORT", "8000"),
		CORSOrigins: parseCORSOrigins(getEnv("CORS_ORIGINS", "http://localhost:8000")),

		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "json"),

		VectorBackend:  getEnv("VECTOR_BACKEND", BackendWeaviate),
		CollectionName: getEnv("COLLECTION_NAME", "Product"),
		HybridAlpha:    getEnvFloat("HYBRID_ALPHA", 1),
		ResultLimit:    getEnvInt("RESULT_LIMIT", 20),

		WeaviateURL:    getEnv("WEAVIATE_URL", "http://localhost:8080"),
		WeaviateAPIKey: getEnv("WEAVIATE_API_KEY", ""),
		CohereAPIKey:   getEnv("COHERE_APIKEY", ""),
	}
}

// Validate checks the configuration for values the server cannot start with
func (c *Config) Validate() error {
	port, err := strconv.Atoi(c.Port)
	if err != nil || port < 1 || port > 65535 {
		return fmt.Errorf("invalid port: %q", c.Port)
	}

	switch c.VectorBackend {
	case BackendWeaviate:
		if _, _, err := c.WeaviateHost(); err != nil {
			return err
		}
	case BackendPgvector:
	default:
		return fmt.Errorf("invalid vector backend: %s (must be %s or %s)", c.VectorBackend, BackendWeaviate, BackendPgvector)
	}

	if c.CollectionName == "" {
		return fmt.Errorf("collection name is required")
	}

	if c.HybridAlpha < 0 || c.HybridAlpha > 1 {
		return fmt.Errorf("hybrid alpha must be between 0 and 1, got %v", c.HybridAlpha)
	}

	if c.ResultLimit < 1 {
		return fmt.Errorf("result limit must be at least 1")
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.LogLevel] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.LogLevel)
	}

	if c.LogFormat != "json" && c.LogFormat != "console" {
		return fmt.Errorf("invalid log format: %s (must be json or console)", c.LogFormat)
	}

	return nil
}

// WeaviateHost splits WeaviateURL into the scheme and host:port pair the
// Weaviate client expects. A missing port defaults to 8080.
func (c *Config) WeaviateHost() (scheme, host string, err error) {
	raw := c.WeaviateURL
	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", "", fmt.Errorf("invalid weaviate url %q: %w", c.WeaviateURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", "", fmt.Errorf("invalid weaviate url %q: unsupported scheme %q", c.WeaviateURL, u.Scheme)
	}
	if u.Hostname() == "" {
		return "", "", fmt.Errorf("invalid weaviate url %q: missing host", c.WeaviateURL)
	}

	port := u.Port()
	if port == "" {
		port = "8080"
	}
	return u.Scheme, net.JoinHostPort(u.Hostname(), port), nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		i, err := strconv.Atoi(value)
		if err != nil {
			return defaultValue
		}
		return i
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return defaultValue
		}
		return f
	}
	return defaultValue
}

func parseCORSOrigins(value string) []string {
	var origins []string
	if err := json.Unmarshal([]byte(value), &origins); err == nil {
		return origins
	}
	parts := strings.Split(value, ",")
	origins = make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
