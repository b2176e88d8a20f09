package phrase

import (
	"phrase-agent/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Response is the JSON body returned by the phrase endpoint.
type Response struct {
	Random bool   `json:"random"`
	Phrase string `json:"phrase"`
}

// Handler handles HTTP requests for phrases.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the phrase routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/phrase", h.HandlePhrase)
}

// HandlePhrase returns the agent's catch-phrase.
// The 'random' query parameter selects random mode; only the exact value
// "true" enables it, and with repeated parameters the first value wins.
func (h *Handler) HandlePhrase(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	randomize := c.Query("random") == "true"
	selected := h.service.Select(randomize)

	l.Info("Serving phrase", zap.Bool("random", randomize))

	return c.JSON(Response{
		Random: randomize,
		Phrase: selected,
	})
}
