package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds application configuration
type Config struct {
	Port     string
	Env      string
	LogLevel string

	// Dataset and knowledge base locations
	DataDir      string
	IndexPath    string
	DatasetSeed  int64
	NumBookings  int
	NumCustomers int

	// AWS / Bedrock
	AWSRegion               string
	AWSAccessKeyID          string
	AWSSecretAccessKey      string
	AWSEndpointOverride     string
	BedrockModelID          string
	BedrockEmbeddingModelID string

	// Gemini fallback provider (optional)
	GeminiAPIKey  string
	GeminiModelID string

	// Pipeline tuning
	RetrievalTopK     int
	RetrievalTimeout  time.Duration
	GenerationTimeout time.Duration
	Temperature       float64
	MaxOutputTokens   int
	MaxInputChars     int

	// Session history
	HistoryBackend string // "memory" or "redis"
	HistoryTTL     time.Duration
	RedisAddr      string
	RedisPassword  string
	RedisTLS       bool

	CORSAllowedOrigins []string
}

// Load reads configuration from environment variables
func Load() *Config {
	return &Config{
		Port:     getEnv("PORT", "8080"),
		Env:      getEnv("ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),

		DataDir:      getEnv("DATA_DIR", "./data"),
		IndexPath:    getEnv("INDEX_PATH", "./data/vector_index.json"),
		DatasetSeed:  getEnvAsInt64("DATASET_SEED", 20240501),
		NumBookings:  getEnvAsInt("NUM_BOOKINGS", 50),
		NumCustomers: getEnvAsInt("NUM_CUSTOMERS", 20),

		AWSRegion:               getEnv("AWS_REGION", "ap-southeast-2"),
		AWSAccessKeyID:          getEnv("AWS_ACCESS_KEY_ID", ""),
		AWSSecretAccessKey:      getEnv("AWS_SECRET_ACCESS_KEY", ""),
		AWSEndpointOverride:     getEnv("AWS_ENDPOINT_OVERRIDE", ""),
		BedrockModelID:          getEnv("BEDROCK_MODEL_ID", ""),
		BedrockEmbeddingModelID: getEnv("BEDROCK_EMBEDDING_MODEL_ID", "amazon.titan-embed-text-v2:0"),

		GeminiAPIKey:  getEnv("GEMINI_API_KEY", ""),
		GeminiModelID: getEnv("GEMINI_MODEL_ID", "gemini-2.5-flash"),

		RetrievalTopK:     getEnvAsInt("RETRIEVAL_TOP_K", 3),
		RetrievalTimeout:  getEnvAsDuration("RETRIEVAL_TIMEOUT", 10*time.Second),
		GenerationTimeout: getEnvAsDuration("GENERATION_TIMEOUT", 30*time.Second),
		Temperature:       getEnvAsFloat("LLM_TEMPERATURE", 0.2),
		MaxOutputTokens:   getEnvAsInt("LLM_MAX_OUTPUT_TOKENS", 800),
		MaxInputChars:     getEnvAsInt("MAX_INPUT_CHARS", 2000),

		HistoryBackend: strings.ToLower(strings.TrimSpace(getEnv("HISTORY_BACKEND", "memory"))),
		HistoryTTL:     getEnvAsDuration("HISTORY_TTL", 24*time.Hour),
		RedisAddr:      getEnv("REDIS_ADDR", "redis:6379"),
		RedisPassword:  getEnv("REDIS_PASSWORD", ""),
		RedisTLS:       getEnvAsBool("REDIS_TLS", false),

		CORSAllowedOrigins: splitAndTrim(getEnv("CORS_ALLOWED_ORIGINS", "")),
	}
}

// Validate checks for configuration that would leave the service unable to
// answer a single message. These are deployment defects and must fail at
// startup, never per-message.
func (c *Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.BedrockModelID) == "" {
		errs = append(errs, errors.New("config: BEDROCK_MODEL_ID is required"))
	}
	if strings.TrimSpace(c.BedrockEmbeddingModelID) == "" {
		errs = append(errs, errors.New("config: BEDROCK_EMBEDDING_MODEL_ID is required"))
	}
	if strings.TrimSpace(c.DataDir) == "" {
		errs = append(errs, errors.New("config: DATA_DIR is required"))
	}
	if strings.TrimSpace(c.IndexPath) == "" {
		errs = append(errs, errors.New("config: INDEX_PATH is required"))
	}
	if c.HistoryBackend != "memory" && c.HistoryBackend != "redis" {
		errs = append(errs, fmt.Errorf("config: unknown HISTORY_BACKEND %q", c.HistoryBackend))
	}
	if c.RetrievalTopK <= 0 {
		errs = append(errs, fmt.Errorf("config: RETRIEVAL_TOP_K must be positive, got %d", c.RetrievalTopK))
	}
	if c.MaxInputChars <= 0 {
		errs = append(errs, fmt.Errorf("config: MAX_INPUT_CHARS must be positive, got %d", c.MaxInputChars))
	}
	return errors.Join(errs...)
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt retrieves an environment variable as an integer or returns a default value
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseInt(valueStr, 10, 64); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseFloat(valueStr, 64); err == nil {
		return value
	}
	return defaultValue
}

// getEnvAsBool retrieves an environment variable as a boolean or returns a default value
func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	if value, err := time.ParseDuration(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func splitAndTrim(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if v := strings.TrimSpace(p); v != "" {
			out = append(out, v)
		}
	}
	return out
}
