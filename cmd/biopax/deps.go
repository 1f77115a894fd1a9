package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/ersonp/biopax-core/internal/application/handlers"
	"github.com/ersonp/biopax-core/internal/domain/services"
	"github.com/ersonp/biopax-core/internal/infrastructure/archive/sqlite"
	"github.com/ersonp/biopax-core/internal/infrastructure/config"
	"github.com/ersonp/biopax-core/internal/infrastructure/logging"
)

// Deps holds high-level dependencies for commands. Only handlers are
// exposed - services and repositories are internal.
type Deps struct {
	Config         *config.Config
	Log            *slog.Logger
	ArchiveHandler *handlers.ArchiveHandler
}

// withDeps loads config and builds dependencies, then calls the
// provided function. It handles cleanup automatically.
func withDeps(fn func(*Deps) error) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting current directory: %w", err)
	}

	cfg, err := config.Load(cwd)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.NewLogger(os.Stderr, logging.ParseLevel(cfg.Log.Level))

	archive, err := sqlite.NewRepository(cfg.Archive)
	if err != nil {
		return fmt.Errorf("creating archive repository: %w", err)
	}
	defer archive.Close()

	ctx := context.Background()
	if err := archive.EnsureSchema(ctx); err != nil {
		return fmt.Errorf("ensuring archive schema: %w", err)
	}

	archiveService := services.NewArchiveService(archive)

	deps := &Deps{
		Config:         cfg,
		Log:            logger,
		ArchiveHandler: handlers.NewArchiveHandler(archiveService),
	}

	return fn(deps)
}
