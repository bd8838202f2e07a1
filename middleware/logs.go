package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
)

// RequestLogger logs one structured line per request. Health checks are
// skipped.
func RequestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Path() == "/health" {
			return c.Next()
		}

		start := time.Now()
		err := c.Next()

		entry := log.WithFields(log.Fields{
			"method":  c.Method(),
			"path":    c.Path(),
			"status":  c.Response().StatusCode(),
			"latency": time.Since(start).String(),
			"ip":      c.IP(),
		})
		if err != nil {
			entry.WithError(err).Error("request failed")
			return err
		}
		if c.Response().StatusCode() >= fiber.StatusInternalServerError {
			entry.Error("request")
		} else {
			entry.Info("request")
		}
		return nil
	}
}
