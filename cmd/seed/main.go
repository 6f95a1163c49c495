package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"github.com/joho/godotenv"

	"github.com/nztours/travel-ai-platform/cmd/mainconfig"
	appconfig "github.com/nztours/travel-ai-platform/internal/config"
	"github.com/nztours/travel-ai-platform/internal/conversation"
	"github.com/nztours/travel-ai-platform/internal/dataset"
	"github.com/nztours/travel-ai-platform/pkg/logging"
)

// seed generates the synthetic travel datasets as JSON files and, with
// -build-index, embeds them into the persisted vector index so the API
// server starts without any model calls.
func main() {
	buildIndex := flag.Bool("build-index", false, "embed documents and persist the vector index")
	flag.Parse()

	_ = godotenv.Load()

	cfg := appconfig.Load()
	logger := logging.NewText(cfg.LogLevel)

	ds := dataset.Generate(dataset.GeneratorConfig{
		Seed:         cfg.DatasetSeed,
		NumBookings:  cfg.NumBookings,
		NumCustomers: cfg.NumCustomers,
		Now:          time.Now().UTC(),
	})

	if err := ds.WriteFiles(cfg.DataDir); err != nil {
		logger.Error("failed to write dataset files", "error", err)
		os.Exit(1)
	}
	logger.Info("dataset files written",
		"dir", cfg.DataDir,
		"flights", len(ds.Flights),
		"tour_packages", len(ds.TourPackages),
		"bookings", len(ds.Bookings),
		"customers", len(ds.Customers),
	)

	if !*buildIndex {
		return
	}

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

	embedder := conversation.NewBedrockEmbeddingClient(bedrockruntime.NewFromConfig(awsCfg))
	store := conversation.NewMemoryVectorStore(embedder, cfg.BedrockEmbeddingModelID, logger)

	err = conversation.EnsureIndex(ctx, store, cfg.IndexPath, logger, func() ([]conversation.Document, error) {
		return dataset.Documents(ds)
	})
	if err != nil {
		logger.Error("failed to build vector index", "error", err)
		os.Exit(1)
	}
	logger.Info("vector index ready", "path", cfg.IndexPath, "documents", store.Len())
}
