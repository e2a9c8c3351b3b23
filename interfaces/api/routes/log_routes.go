package routes

import (
	"github.com/gofiber/fiber/v2"

	"geoshare/interfaces/api/handlers"
)

// SetupLogRoutes sets up log-related routes
func SetupLogRoutes(api fiber.Router, h *handlers.Handlers) {
	admin := api.Group("/admin")

	// Log endpoints (protected by admin token in header or query param)
	admin.Get("/logs", h.Log.GetLogs)
	admin.Get("/logs/files", h.Log.GetLogFiles)
}
