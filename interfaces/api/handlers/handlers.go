package handlers

import (
	"gorm.io/gorm"

	"geoshare/domain/repositories"
	"geoshare/domain/services"
	"geoshare/pkg/config"
)

// Services contains all the services needed for handlers
type Services struct {
	AuthService      services.AuthService
	PhotoService     services.PhotoService
	AlbumService     services.AlbumService
	ShareLinkService services.ShareLinkService
}

// Repositories contains repositories needed for some handlers
type Repositories struct {
	PhotoRepository repositories.PhotoRepository
}

// Handlers contains all HTTP handlers
type Handlers struct {
	Auth   *AuthHandler
	Photo  *PhotoHandler
	Album  *AlbumHandler
	Share  *ShareHandler
	Health *HealthHandler
	Log    *LogHandler
}

// NewHandlers creates a new instance of Handlers with all dependencies
func NewHandlers(svcs *Services, repos *Repositories, db *gorm.DB, cache services.Cache, cfg *config.Config) *Handlers {
	return &Handlers{
		Auth:   NewAuthHandler(svcs.AuthService),
		Photo:  NewPhotoHandler(svcs.PhotoService, svcs.AlbumService),
		Album:  NewAlbumHandler(svcs.AlbumService, repos.PhotoRepository),
		Share:  NewShareHandler(svcs.ShareLinkService, cfg),
		Health: NewHealthHandler(db, cache),
		Log:    NewLogHandler(cfg),
	}
}
