package routes

import (
	"github.com/gofiber/fiber/v2"

	"geoshare/interfaces/api/handlers"
	"geoshare/interfaces/api/middleware"
	"geoshare/pkg/config"
)

func SetupShareRoutes(api fiber.Router, h *handlers.Handlers, cfg *config.Config) {
	shares := api.Group("/shares", middleware.Protected(cfg.JWT.Secret))

	shares.Post("/photo", h.Share.CreatePhotoShare)
	shares.Post("/album", h.Share.CreateAlbumShare)
	shares.Get("/", h.Share.List)
	shares.Get("/target/:type/:targetId", h.Share.ActiveForTarget)
	shares.Get("/:id", h.Share.Get)
	shares.Put("/:id/deactivate", h.Share.Deactivate)
	shares.Delete("/:id", h.Share.Delete)
}

// SetupPublicShareRoutes wires the account-less share endpoints.
func SetupPublicShareRoutes(api fiber.Router, h *handlers.Handlers) {
	public := api.Group("/public")

	public.Get("/share/:code", h.Share.GetInfo)
	public.Post("/share/:code/view", h.Share.View)
}
