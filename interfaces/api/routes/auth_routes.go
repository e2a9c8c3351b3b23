package routes

import (
	"github.com/gofiber/fiber/v2"

	"geoshare/interfaces/api/handlers"
	"geoshare/interfaces/api/middleware"
	"geoshare/pkg/config"
)

func SetupAuthRoutes(api fiber.Router, h *handlers.Handlers, cfg *config.Config) {
	auth := api.Group("/auth")

	auth.Post("/register", middleware.AuthRateLimiter(), h.Auth.Register)
	auth.Post("/login", middleware.AuthRateLimiter(), h.Auth.Login)

	auth.Get("/me", middleware.Protected(cfg.JWT.Secret), h.Auth.GetCurrentUser)
}
