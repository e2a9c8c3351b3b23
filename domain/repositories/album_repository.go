package repositories

import (
	"context"

	"github.com/google/uuid"

	"geoshare/domain/models"
)

// AlbumRepository is the album collection of the backing store.
// Get methods return (nil, nil) when no record matches.
type AlbumRepository interface {
	Create(ctx context.Context, album *models.Album) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Album, error)
	GetByIDAndOwner(ctx context.Context, id, ownerID uuid.UUID) (*models.Album, error)
	GetByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Album, error)
	ExistsByNameAndOwner(ctx context.Context, name string, ownerID uuid.UUID) (bool, error)
	GetByMemberPhoto(ctx context.Context, photoID uuid.UUID) ([]models.Album, error)
	Update(ctx context.Context, id uuid.UUID, album *models.Album) error
	Delete(ctx context.Context, id uuid.UUID) error
}
