package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"corpus-builder/core/config"
	"corpus-builder/core/database"
	"corpus-builder/core/logger"
	"corpus-builder/core/metadata"
	"corpus-builder/core/relational"
	"corpus-builder/core/tree"
	"corpus-builder/feature/persist"

	"go.uber.org/zap"
)

var configDir string

// env bundles what every command builds from the configuration.
type env struct {
	cfg    *config.Config
	logger *zap.Logger
}

func loadEnv() (*env, error) {
	cfg, err := config.LoadConfig(configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return &env{cfg: cfg, logger: logg}, nil
}

// backends are the three sources, with the relational one opened lazily.
type backends struct {
	handle *database.Handle
	db     relational.Client
	api    metadata.Client
	tree   tree.Client
}

func (e *env) backends() backends {
	handle := database.NewHandle(e.cfg.Database)
	return backends{
		handle: handle,
		db:     relational.NewClient(handle),
		api:    metadata.NewClient(e.cfg.Metadata),
		tree:   tree.NewClient(e.cfg.Tree),
	}
}

func (e *env) store(opts persist.Options) *persist.Store {
	return persist.NewStore(e.cfg.Pipeline.OutputDir, opts, e.logger)
}

// signalContext is cancelled on SIGINT or SIGTERM.
func signalContext(parent context.Context) (context.Context, context.CancelFunc) {
	if parent == nil {
		parent = context.Background()
	}
	return signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
}
