package inspect

import (
	"context"
	"time"

	"corpus-builder/core/reconcile"

	"go.uber.org/zap"
)

// Service runs cached reconciliations through an adapter.
type Service struct {
	spec   *reconcile.Spec
	logger *zap.Logger
}

// NewService creates a Service. A zero ttl disables caching.
func NewService(adapter reconcile.Adapter, ttl time.Duration, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{spec: &reconcile.Spec{Adapter: adapter, CacheTTL: ttl}, logger: logger}
}

// Inspect reports on a single entity.
func (s *Service) Inspect(ctx context.Context, id int) (*reconcile.Result, error) {
	return reconcile.ReconcileOne(ctx, s.spec, id)
}

// InspectMany reports on several entities, sorted by ID.
func (s *Service) InspectMany(ctx context.Context, ids []int) ([]reconcile.Result, error) {
	return reconcile.ReconcileMany(ctx, s.spec, ids)
}
