package handlers

import (
	"github.com/gofiber/fiber/v2"

	"geoshare/domain/apperr"
	"geoshare/pkg/logger"
	"geoshare/pkg/utils"
)

// respondServiceError maps a service error onto the HTTP surface. Password
// required gets its own marker so clients can show a prompt instead of a
// generic 401.
func respondServiceError(c *fiber.Ctx, err error) error {
	switch apperr.KindOf(err) {
	case apperr.KindNotFound:
		return utils.NotFoundResponse(c, err.Error())
	case apperr.KindForbidden:
		return utils.ErrorResponse(c, fiber.StatusForbidden, err.Error())
	case apperr.KindConflict:
		return utils.ErrorResponse(c, fiber.StatusConflict, err.Error())
	case apperr.KindPasswordRequired:
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success":          false,
			"error":            err.Error(),
			"require_password": true,
		})
	case apperr.KindUnauthorized:
		return utils.UnauthorizedResponse(c, err.Error())
	}

	logger.Error(logger.CategoryAPI, "service_error", "Unhandled service error", err, map[string]interface{}{
		"path":   c.Path(),
		"method": c.Method(),
	})
	return utils.InternalErrorResponse(c, "An unexpected error occurred")
}
