package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/nztours/travel-ai-platform/cmd/mainconfig"
	"github.com/nztours/travel-ai-platform/internal/api/router"
	appconfig "github.com/nztours/travel-ai-platform/internal/config"
	"github.com/nztours/travel-ai-platform/internal/conversation"
	"github.com/nztours/travel-ai-platform/internal/dataset"
	"github.com/nztours/travel-ai-platform/internal/observability/metrics"
	"github.com/nztours/travel-ai-platform/internal/webchat"
	"github.com/nztours/travel-ai-platform/pkg/logging"
)

func main() {
	// Load .env if present; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := appconfig.Load()

	logger := logging.New(cfg.LogLevel)
	logger.Info("starting travel-ai-platform API server",
		"env", cfg.Env,
		"port", cfg.Port,
	)

	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()

	awsCfg, err := mainconfig.LoadAWSConfig(ctx, cfg)
	if err != nil {
		logger.Error("failed to load AWS config", "error", err)
		os.Exit(1)
	}
	bedrockClient := bedrockruntime.NewFromConfig(awsCfg)

	var llm conversation.LLMClient = conversation.NewBedrockLLMClient(bedrockClient)
	if cfg.GeminiAPIKey != "" {
		gemini, err := conversation.NewGeminiLLMClient(ctx, cfg.GeminiAPIKey, cfg.GeminiModelID)
		if err != nil {
			logger.Error("failed to create gemini fallback client", "error", err)
			os.Exit(1)
		}
		defer gemini.Close()
		llm = conversation.NewFallbackLLMClient(llm, gemini, logger)
	}

	embedder := conversation.NewBedrockEmbeddingClient(bedrockClient)
	store := conversation.NewMemoryVectorStore(embedder, cfg.BedrockEmbeddingModelID, logger)

	// Load or build the knowledge index before accepting traffic.
	err = conversation.EnsureIndex(ctx, store, cfg.IndexPath, logger, func() ([]conversation.Document, error) {
		ds := dataset.Generate(dataset.GeneratorConfig{
			Seed:         cfg.DatasetSeed,
			NumBookings:  cfg.NumBookings,
			NumCustomers: cfg.NumCustomers,
			Now:          time.Now().UTC(),
		})
		return dataset.Documents(ds)
	})
	if err != nil {
		logger.Error("failed to prepare vector index", "error", err)
		os.Exit(1)
	}

	var history conversation.HistoryStore = conversation.NewMemoryHistoryStore()
	if cfg.HistoryBackend == "redis" {
		redisClient := mainconfig.NewRedisClient(cfg)
		if err := redisClient.Ping(ctx).Err(); err != nil {
			logger.Error("failed to connect to redis", "addr", cfg.RedisAddr, "error", err)
			os.Exit(1)
		}
		history = conversation.NewRedisHistoryStore(redisClient, cfg.HistoryTTL, nil)
		logger.Info("using redis session history", "addr", cfg.RedisAddr)
	}

	conversationMetrics := metrics.NewConversationMetrics(nil)

	guardrails := conversation.NewGuardrails(cfg.MaxInputChars)
	classifier := conversation.NewIntentClassifier(llm, cfg.BedrockModelID, logger)
	responder := conversation.NewResponder(store, llm, conversation.ResponderConfig{
		ModelID:           cfg.BedrockModelID,
		TopK:              cfg.RetrievalTopK,
		RetrievalTimeout:  cfg.RetrievalTimeout,
		GenerationTimeout: cfg.GenerationTimeout,
		Temperature:       float32(cfg.Temperature),
		MaxOutputTokens:   int32(cfg.MaxOutputTokens),
	}, conversationMetrics, logger)

	service := conversation.NewService(guardrails, classifier, responder, store, history, conversationMetrics, logger)

	conversationHandler := conversation.NewHandler(service, logger)
	webchatHandler := webchat.NewHandler(service, logger)

	r := router.New(&router.Config{
		Logger:              logger,
		ConversationHandler: conversationHandler,
		WebchatHandler:      webchatHandler,
		MetricsHandler:      promhttp.Handler(),
		CORSAllowedOrigins:  cfg.CORSAllowedOrigins,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	logger.Info("server stopped")
}
