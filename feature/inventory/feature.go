package inventory

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature wires the inventory sync service into the feature loader.
type Feature struct {
	service *Service
	logger  *zap.Logger
}

// NewFeature creates the inventory sync feature.
func NewFeature(service *Service, l *zap.Logger) *Feature {
	return &Feature{service: service, logger: l}
}

// Name returns the feature name.
func (f *Feature) Name() string {
	return "inventory"
}

// IsEnabled reports whether the feature should be loaded.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the feature routes on the application router.
func (f *Feature) Load(app fiber.Router) error {
	NewHandler(f.service, f.logger).RegisterRoutes(app)
	return nil
}
