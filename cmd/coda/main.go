package main

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/ewilliams-labs/coda/internal/adapters/dataset"
	"github.com/ewilliams-labs/coda/internal/adapters/history"
	"github.com/ewilliams-labs/coda/internal/adapters/spotify"
	"github.com/ewilliams-labs/coda/internal/auth"
	"github.com/ewilliams-labs/coda/internal/config"
	"github.com/ewilliams-labs/coda/internal/core/services"
)

// outputDir receives the three dataset artifacts.
const outputDir = "data"

func main() {
	if len(os.Args) != 3 {
		fmt.Fprintln(os.Stderr, "usage: coda <streaming-history.json> <credentials.json>")
		os.Exit(2)
	}

	logger, err := zap.NewDevelopment()
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	if err := run(os.Args[1], os.Args[2], logger); err != nil {
		logger.Fatal("run failed", zap.Error(err))
	}
}

func run(historyPath, credsPath string, logger *zap.Logger) error {
	ctx := context.Background()

	// 1. Configuration
	creds, err := config.LoadCredentials(credsPath)
	if err != nil {
		return err
	}

	// 2. Access token (cached, refreshed, or interactive on first run)
	token, err := auth.NewAuthenticator(creds, logger).Token(ctx)
	if err != nil {
		return err
	}

	// 3. Driven adapters
	historySource := history.NewLoader(historyPath)
	catalog := spotify.NewClient(nil, spotify.DefaultBaseURL, token, logger)
	datasets := dataset.NewWriter(outputDir)

	// 4. Core pipeline
	return services.NewPipeline(historySource, catalog, datasets, logger).Run(ctx)
}
