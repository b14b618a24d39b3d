package config

import (
	"os"
	"strconv"
	"sync"
)

// Embedding providers
const (
	ProviderCohere = "cohere"
	ProviderVertex = "vertex"
)

// Config holds configuration for database and embedding operations
type Config struct {
	// PostgreSQL
	PostgresURI string

	// Embeddings
	EmbeddingProvider   string // "cohere" or "vertex"
	EmbeddingDimensions int

	// Cohere (when EmbeddingProvider = "cohere")
	CohereAPIURL string
	CohereAPIKey string
	CohereModel  string

	// Vertex AI (when EmbeddingProvider = "vertex")
	GCPProjectID string
	GCPLocation  string
	VertexModel  string
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
		// PostgreSQL
		PostgresURI: getEnv("POSTGRES_URI", ""),

		// Embeddings
		EmbeddingProvider:   getEnv("EMBEDDING_PROVIDER", ProviderCohere),
		EmbeddingDimensions: getEnvInt("EMBEDDING_DIMENSIONS", 1024),

		// Cohere
		CohereAPIURL: getEnv("COHERE_API_URL", "https://api.cohere.com"),
		CohereAPIKey: getEnv("COHERE_APIKEY", ""),
		CohereModel:  getEnv("COHERE_MODEL", "embed-english-v3.0"),

		// Vertex AI
		GCPProjectID: getEnv("GCP_PROJECT_ID", ""),
		GCPLocation:  getEnv("GCP_LOCATION", "us-central1"),
		VertexModel:  getEnv("VERTEX_MODEL", "text-embedding-005"),
	}
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
