package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "./data/vector_index.json", cfg.IndexPath)
	assert.Equal(t, int64(20240501), cfg.DatasetSeed)
	assert.Equal(t, "ap-southeast-2", cfg.AWSRegion)
	assert.Equal(t, "amazon.titan-embed-text-v2:0", cfg.BedrockEmbeddingModelID)
	assert.Equal(t, 3, cfg.RetrievalTopK)
	assert.Equal(t, 10*time.Second, cfg.RetrievalTimeout)
	assert.Equal(t, 30*time.Second, cfg.GenerationTimeout)
	assert.Equal(t, 2000, cfg.MaxInputChars)
	assert.Equal(t, "memory", cfg.HistoryBackend)
	assert.Equal(t, 24*time.Hour, cfg.HistoryTTL)
	assert.Nil(t, cfg.CORSAllowedOrigins)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("BEDROCK_MODEL_ID", "anthropic.claude-3-haiku-20240307-v1:0")
	t.Setenv("RETRIEVAL_TOP_K", "5")
	t.Setenv("RETRIEVAL_TIMEOUT", "2s")
	t.Setenv("HISTORY_BACKEND", "Redis")
	t.Setenv("REDIS_TLS", "true")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example ,")

	cfg := Load()

	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "anthropic.claude-3-haiku-20240307-v1:0", cfg.BedrockModelID)
	assert.Equal(t, 5, cfg.RetrievalTopK)
	assert.Equal(t, 2*time.Second, cfg.RetrievalTimeout)
	assert.Equal(t, "redis", cfg.HistoryBackend, "backend name is normalized")
	assert.True(t, cfg.RedisTLS)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			BedrockModelID:          "anthropic.claude-3-haiku-20240307-v1:0",
			BedrockEmbeddingModelID: "amazon.titan-embed-text-v2:0",
			DataDir:                 "./data",
			IndexPath:               "./data/vector_index.json",
			HistoryBackend:          "memory",
			RetrievalTopK:           3,
			MaxInputChars:           2000,
		}
	}

	require.NoError(t, valid().Validate())

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantMsg string
	}{
		{"missing model", func(c *Config) { c.BedrockModelID = "" }, "BEDROCK_MODEL_ID"},
		{"missing embedding model", func(c *Config) { c.BedrockEmbeddingModelID = " " }, "BEDROCK_EMBEDDING_MODEL_ID"},
		{"missing index path", func(c *Config) { c.IndexPath = "" }, "INDEX_PATH"},
		{"unknown history backend", func(c *Config) { c.HistoryBackend = "dynamo" }, "HISTORY_BACKEND"},
		{"non-positive top k", func(c *Config) { c.RetrievalTopK = 0 }, "RETRIEVAL_TOP_K"},
		{"non-positive input cap", func(c *Config) { c.MaxInputChars = -1 }, "MAX_INPUT_CHARS"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestValidate_CollectsAllErrors(t *testing.T) {
	cfg := &Config{HistoryBackend: "memory", RetrievalTopK: 3, MaxInputChars: 100}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "BEDROCK_MODEL_ID")
	assert.Contains(t, err.Error(), "DATA_DIR")
	assert.Contains(t, err.Error(), "INDEX_PATH")
}
