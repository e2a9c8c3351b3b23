package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"geoshare/pkg/logger"
)

// LoggerMiddleware logs every request with its latency and status.
func LoggerMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		logger.API("request", c.Method()+" "+c.Path(), map[string]interface{}{
			"status":  c.Response().StatusCode(),
			"latency": time.Since(start).String(),
			"ip":      c.IP(),
		})
		return err
	}
}
