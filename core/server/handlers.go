package server

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// NotFoundHandler returns the fallback handler for unmatched routes.
// It must be registered after every feature route.
func NotFoundHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": fmt.Sprintf("No route found matching %s", c.Path()),
		})
	}
}

// ErrorHandler returns the Fiber error handler used as the single boundary
// where handler failures are converted into HTTP responses. The process
// keeps serving subsequent requests.
func ErrorHandler(logg *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		logg.Error("Handler failed", zap.String("path", c.Path()), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).
			SendString("Server Error. " + err.Error())
	}
}
