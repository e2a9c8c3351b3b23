package repositories

import (
	"context"

	"github.com/google/uuid"

	"geoshare/domain/models"
)

// PhotoRepository is the photo collection of the backing store.
// Get methods return (nil, nil) when no record matches.
type PhotoRepository interface {
	Create(ctx context.Context, photo *models.Photo) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Photo, error)
	GetByIDAndOwner(ctx context.Context, id, ownerID uuid.UUID) (*models.Photo, error)
	GetByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Photo, error)
	Update(ctx context.Context, id uuid.UUID, photo *models.Photo) error
	Delete(ctx context.Context, id uuid.UUID) error
}
