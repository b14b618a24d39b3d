package config

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		AppTitle:       "Weaviate Semantic Search",
		Port:           "8000",
		LogLevel:       "info",
		LogFormat:      "json",
		VectorBackend:  BackendWeaviate,
		CollectionName: "Product",
		HybridAlpha:    1,
		ResultLimit:    20,
		WeaviateURL:    "http://localhost:8080",
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "VECTOR_BACKEND", "WEAVIATE_URL", "RESULT_LIMIT", "HYBRID_ALPHA", "COLLECTION_NAME"} {
		t.Setenv(key, "")
	}

	cfg := loadConfig()

	assert.Equal(t, "8000", cfg.Port)
	assert.Equal(t, BackendWeaviate, cfg.VectorBackend)
	assert.Equal(t, "http://localhost:8080", cfg.WeaviateURL)
	assert.Equal(t, 20, cfg.ResultLimit)
	assert.Equal(t, 1.0, cfg.HybridAlpha)
	assert.Equal(t, "Product", cfg.CollectionName)
	require.NoError(t, cfg.Validate())
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("VECTOR_BACKEND", BackendPgvector)
	t.Setenv("RESULT_LIMIT", "5")
	t.Setenv("HYBRID_ALPHA", "0.75")
	t.Setenv("COHERE_APIKEY", "secret")
	t.Setenv("CORS_ORIGINS", `["http://a.test","http://b.test"]`)

	cfg := loadConfig()

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, BackendPgvector, cfg.VectorBackend)
	assert.Equal(t, 5, cfg.ResultLimit)
	assert.Equal(t, 0.75, cfg.HybridAlpha)
	assert.Equal(t, "secret", cfg.CohereAPIKey)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSOrigins)
}

func TestLoadConfigIgnoresMalformedNumbers(t *testing.T) {
	t.Setenv("RESULT_LIMIT", "lots")
	t.Setenv("HYBRID_ALPHA", "half")

	cfg := loadConfig()

	assert.Equal(t, 20, cfg.ResultLimit)
	assert.Equal(t, 1.0, cfg.HybridAlpha)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{name: "valid", mutate: func(c *Config) {}},
		{name: "pgvector backend", mutate: func(c *Config) { c.VectorBackend = BackendPgvector }},
		{name: "bad port", mutate: func(c *Config) { c.Port = "http" }, wantErr: "invalid port"},
		{name: "port out of range", mutate: func(c *Config) { c.Port = "70000" }, wantErr: "invalid port"},
		{name: "unknown backend", mutate: func(c *Config) { c.VectorBackend = "qdrant" }, wantErr: "invalid vector backend"},
		{name: "bad weaviate url", mutate: func(c *Config) { c.WeaviateURL = "ftp://db" }, wantErr: "unsupported scheme"},
		{name: "empty collection", mutate: func(c *Config) { c.CollectionName = "" }, wantErr: "collection name"},
		{name: "alpha too large", mutate: func(c *Config) { c.HybridAlpha = 1.5 }, wantErr: "hybrid alpha"},
		{name: "zero limit", mutate: func(c *Config) { c.ResultLimit = 0 }, wantErr: "result limit"},
		{name: "bad log level", mutate: func(c *Config) { c.LogLevel = "trace" }, wantErr: "invalid log level"},
		{name: "bad log format", mutate: func(c *Config) { c.LogFormat = "xml" }, wantErr: "invalid log format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestWeaviateHost(t *testing.T) {
	tests := []struct {
		url        string
		wantScheme string
		wantHost   string
	}{
		{url: "http://localhost:8080", wantScheme: "http", wantHost: "localhost:8080"},
		{url: "http://127.0.0.1", wantScheme: "http", wantHost: "127.0.0.1:8080"},
		{url: "https://weaviate.internal:443", wantScheme: "https", wantHost: "weaviate.internal:443"},
		{url: "weaviate:9000", wantScheme: "http", wantHost: "weaviate:9000"},
		{url: "weaviate", wantScheme: "http", wantHost: "weaviate:8080"},
		{url: "http://[::1]:8080", wantScheme: "http", wantHost: "[::1]:8080"},
		{url: "http://[fd00::5]", wantScheme: "http", wantHost: "[fd00::5]:8080"},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			cfg := validConfig()
			cfg.WeaviateURL = tt.url

			scheme, host, err := cfg.WeaviateHost()
			require.NoError(t, err)
			assert.Equal(t, tt.wantScheme, scheme)
			assert.Equal(t, tt.wantHost, host)
		})
	}
}

func TestNewLoggerLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerWithWriter(&buf, "warn", "json")

	logger.Info().Msg("hidden")
	logger.Warn().Msg("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestNewLoggerFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerWithWriter(&buf, "chatty", "json")

	logger.Debug().Msg("debug line")
	logger.Info().Msg("info line")

	assert.NotContains(t, buf.String(), "debug line")
	assert.Contains(t, buf.String(), "info line")
}
