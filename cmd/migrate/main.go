package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/pedroramon/hotel-backend/internal/config"
	"github.com/pedroramon/hotel-backend/internal/logger"
	"github.com/pedroramon/hotel-backend/internal/postgres"
)

func main() {
	// Parse command line flags
	dryRun := flag.Bool("dry-run", false, "Print migration SQL without executing it")
	flag.Parse()

	// Load configuration
	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := logger.NewLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}

	logger.Infow("Connecting to database", "driver", cfg.Postgres.Driver, "host", cfg.Postgres.Host)

	db, err := postgres.NewDB(cfg, logger)
	if err != nil {
		logger.Fatalw("Failed to connect to database", "error", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if *dryRun {
		logger.Info("Dry run mode - printing migration SQL without executing")
		if err := postgres.WriteTo(ctx, db, os.Stdout); err != nil {
			logger.Fatalw("Failed to generate migration SQL", "error", err)
		}
	} else {
		logger.Info("Running database migrations...")
		if err := postgres.Migrate(ctx, db, logger); err != nil {
			logger.Fatalw("Failed to create schema resources", "error", err)
		}
		logger.Info("Migration completed successfully")
	}

	fmt.Println("Migration process completed")
}
