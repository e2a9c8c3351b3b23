package services

import (
	"context"

	"github.com/google/uuid"

	"geoshare/domain/models"
)

type AlbumService interface {
	// ListAlbums returns the owner's albums newest first, membership not resolved.
	ListAlbums(ctx context.Context, ownerID uuid.UUID) ([]models.Album, error)
	// GetAlbum returns the album with its member photos resolved in order.
	// Member ids that no longer resolve to a photo are dropped.
	GetAlbum(ctx context.Context, id, ownerID uuid.UUID) (*models.Album, []models.Photo, error)
	CreateAlbum(ctx context.Context, ownerID uuid.UUID, name, description string) (*models.Album, error)
	UpdateAlbum(ctx context.Context, id, ownerID uuid.UUID, name, description string, coverPhotoID *uuid.UUID) (*models.Album, error)
	DeleteAlbum(ctx context.Context, id, ownerID uuid.UUID) error
	AddPhoto(ctx context.Context, albumID, photoID, ownerID uuid.UUID) (*models.Album, error)
	// AddPhotos is best effort: photos that are missing or not owned by the
	// caller are skipped without failing the batch.
	AddPhotos(ctx context.Context, albumID uuid.UUID, photoIDs []uuid.UUID, ownerID uuid.UUID) (*models.Album, error)
	RemovePhoto(ctx context.Context, albumID, photoID, ownerID uuid.UUID) (*models.Album, error)
	AlbumsContaining(ctx context.Context, photoID, ownerID uuid.UUID) ([]models.Album, error)
}
