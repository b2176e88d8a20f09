package phrase

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates a new Phrase feature. An empty phrase set is a fatal
// configuration error and is surfaced here, before the server starts.
func NewFeature(phrases []string, logger *zap.Logger) (*Feature, error) {
	svc, err := NewService(phrases, logger)
	if err != nil {
		return nil, err
	}
	h := NewHandler(svc)
	return &Feature{service: svc, handler: h}, nil
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "phrase"
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
