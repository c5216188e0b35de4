package corpus

import (
	"context"
	"time"

	"corpus-builder/feature/persist"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates the corpus read feature.
func NewFeature(store *persist.Store, ttl time.Duration, logger *zap.Logger) *Feature {
	svc := NewService(store, ttl, logger)
	return &Feature{service: svc, handler: NewHandler(svc)}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "corpus"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}

// Watch keeps the cached aggregates in sync with the corpus directory.
func (f *Feature) Watch(ctx context.Context) (<-chan struct{}, error) {
	return f.service.Watch(ctx)
}
