// Gadget Armoury - Field Equipment Inventory Service
//
// This is the main entry point for the Gadget Armoury API. The armoury
// tracks field gadgets through their lifecycle: creation with generated
// codenames, deployment, decommissioning, and confirmed self-destruction.
// Access requires a registered agent account and a JWT bearer token.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/nerrad567/gadget-armoury/migrations"

	"github.com/nerrad567/gadget-armoury/internal/api"
	"github.com/nerrad567/gadget-armoury/internal/auth"
	"github.com/nerrad567/gadget-armoury/internal/gadget"
	"github.com/nerrad567/gadget-armoury/internal/infrastructure/config"
	"github.com/nerrad567/gadget-armoury/internal/infrastructure/database"
	"github.com/nerrad567/gadget-armoury/internal/infrastructure/logging"
)

// Version information - set at build time via ldflags
// Example: go build -ldflags "-X main.version=1.0.0 -X main.commit=abc123"
var (
	version = "dev"     // Semantic version (e.g., "1.0.0")
	commit  = "unknown" // Git commit hash
	date    = "unknown" // Build date
)

// Default configuration file path
const defaultConfigPath = "configs/config.yaml"

func main() {
	// Create a context that cancels on interrupt signals (Ctrl+C, SIGTERM)
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run is the actual application logic, separated from main for testability.
func run(ctx context.Context) error {
	// Use default logger until config is loaded
	log := logging.Default()
	log.Info("starting Gadget Armoury",
		"version", version,
		"commit", commit,
		"build_date", date,
	)

	// Load configuration
	configPath := getConfigPath()
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	log.Info("configuration loaded", "path", configPath)

	// Reinitialise logger with config settings
	log = logging.New(cfg.Logging, version)
	log.Info("logger initialised",
		"level", cfg.Logging.Level,
		"format", cfg.Logging.Format,
	)

	// Open database
	db, err := database.Open(ctx, database.Config{
		Path:        cfg.Database.Path,
		WALMode:     cfg.Database.WALMode,
		BusyTimeout: cfg.Database.BusyTimeout,
	})
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer func() {
		log.Info("closing database")
		if closeErr := db.Close(); closeErr != nil {
			log.Error("error closing database", "error", closeErr)
		}
	}()
	log.Info("database connected", "path", cfg.Database.Path)

	// Run migrations
	if migrateErr := db.Migrate(ctx); migrateErr != nil {
		return fmt.Errorf("running migrations: %w", migrateErr)
	}
	log.Info("database migrations complete")

	// Wire the gadget lifecycle service
	codes := gadget.NewCodeStore()
	gadgetSvc := gadget.NewService(gadget.NewSQLiteRepository(db.DB), codes)

	// User accounts
	userRepo := auth.NewUserRepository(db.DB)
	userCount, err := userRepo.Count(ctx)
	if err != nil {
		return fmt.Errorf("counting users: %w", err)
	}
	log.Info("user accounts loaded", "count", userCount)

	// Start API server
	server, err := api.New(api.Deps{
		Config:   cfg.API,
		Security: cfg.Security,
		Logger:   log,
		Gadgets:  gadgetSvc,
		Codes:    codes,
		Users:    userRepo,
		Version:  version,
	})
	if err != nil {
		return fmt.Errorf("creating API server: %w", err)
	}
	if err := server.Start(ctx); err != nil {
		return fmt.Errorf("starting API server: %w", err)
	}
	defer func() {
		if closeErr := server.Close(); closeErr != nil {
			log.Error("error closing API server", "error", closeErr)
		}
	}()
	log.Info("API server started", "host", cfg.API.Host, "port", cfg.API.Port)

	// Wait for shutdown signal
	<-ctx.Done()
	log.Info("shutdown signal received")

	return nil
}

// getConfigPath returns the configuration file path.
// Uses ARMOURY_CONFIG environment variable if set, otherwise default.
func getConfigPath() string {
	if path := os.Getenv("ARMOURY_CONFIG"); path != "" {
		return path
	}
	return defaultConfigPath
}
