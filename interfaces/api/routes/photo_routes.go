package routes

import (
	"github.com/gofiber/fiber/v2"

	"geoshare/interfaces/api/handlers"
	"geoshare/interfaces/api/middleware"
	"geoshare/pkg/config"
)

func SetupPhotoRoutes(api fiber.Router, h *handlers.Handlers, cfg *config.Config) {
	photos := api.Group("/photos", middleware.Protected(cfg.JWT.Secret))

	photos.Post("/", h.Photo.Upload)
	photos.Get("/", h.Photo.List)
	photos.Get("/:id", h.Photo.Get)
	photos.Put("/:id", h.Photo.Update)
	photos.Delete("/:id", h.Photo.Delete)
}
