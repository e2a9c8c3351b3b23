package routes

import (
	"github.com/gofiber/fiber/v2"

	"geoshare/interfaces/api/handlers"
	"geoshare/interfaces/api/middleware"
	"geoshare/pkg/config"
)

func SetupRoutes(app *fiber.App, h *handlers.Handlers, cfg *config.Config) {
	SetupHealthRoutes(app, h.Health)

	api := app.Group("/api/v1")

	// Public share endpoints stay outside the rate limited group so a hot
	// link cannot lock its viewers out.
	SetupPublicShareRoutes(api, h)

	api.Use(middleware.RateLimiter(&cfg.RateLimit))

	SetupAuthRoutes(api, h, cfg)
	SetupPhotoRoutes(api, h, cfg)
	SetupAlbumRoutes(api, h, cfg)
	SetupShareRoutes(api, h, cfg)
	SetupLogRoutes(api, h)
}
