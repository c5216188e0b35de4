package integrity

import (
	"context"
	"errors"
	"fmt"

	"corpus-builder/core/database"
	"corpus-builder/core/relational"
	"corpus-builder/core/storage"
	"corpus-builder/feature/publish"

	"go.uber.org/zap"
)

// ErrNoDatabase is returned by schema checks when no relational backend is configured.
var ErrNoDatabase = errors.New("relational backend not configured")

// SchemaReport describes whether the relational backend can serve every query.
type SchemaReport struct {
	Driver  string              `json:"driver"`
	Matched bool                `json:"matched"`
	Missing map[string][]string `json:"missing"`
}

// Service handles integrity checks.
type Service struct {
	client storage.Client
	cfg    storage.Config
	handle *database.Handle
	logger *zap.Logger
}

// NewService creates a new integrity service. handle may be nil.
func NewService(client storage.Client, cfg storage.Config, handle *database.Handle, logger *zap.Logger) *Service {
	return &Service{
		client: client,
		cfg:    cfg,
		handle: handle,
		logger: logger,
	}
}

// CheckStructure returns the corpus folders missing from the bucket.
func (s *Service) CheckStructure(ctx context.Context) ([]string, error) {
	return publish.CheckStructure(ctx, s.client, s.cfg)
}

// FixStructure creates the missing folders.
func (s *Service) FixStructure(ctx context.Context, missing []string) error {
	return publish.FixStructure(ctx, s.client, s.cfg, s.logger, missing)
}

// CheckSchema compares the relational backend against the columns the queries need.
func (s *Service) CheckSchema() (*SchemaReport, error) {
	if s.handle == nil {
		return nil, ErrNoDatabase
	}
	db, err := s.handle.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to open relational backend: %w", err)
	}

	missing, err := relational.CheckSchema(db)
	if err != nil {
		return nil, err
	}
	return &SchemaReport{
		Driver:  db.Dialector.Name(),
		Matched: len(missing) == 0,
		Missing: missing,
	}, nil
}
