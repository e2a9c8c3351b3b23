package routes

import (
	"github.com/gofiber/fiber/v2"

	"geoshare/interfaces/api/handlers"
	"geoshare/interfaces/api/middleware"
	"geoshare/pkg/config"
)

func SetupAlbumRoutes(api fiber.Router, h *handlers.Handlers, cfg *config.Config) {
	albums := api.Group("/albums", middleware.Protected(cfg.JWT.Secret))

	albums.Get("/", h.Album.List)
	albums.Post("/", h.Album.Create)
	albums.Get("/containing/:photoId", h.Album.Containing)
	albums.Get("/:id", h.Album.Get)
	albums.Put("/:id", h.Album.Update)
	albums.Delete("/:id", h.Album.Delete)
	albums.Post("/:id/photos", h.Album.AddPhotos)
	albums.Delete("/:id/photos/:photoId", h.Album.RemovePhoto)
}
