package repositories

import (
	"context"

	"github.com/google/uuid"

	"geoshare/domain/models"
)

// ShareLinkRepository is the share-link collection of the backing store.
// Get methods return (nil, nil) when no record matches.
type ShareLinkRepository interface {
	// Create must fail with a duplicate-key error when the share code is
	// already taken; the service relies on that for collision retries.
	Create(ctx context.Context, link *models.ShareLink) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.ShareLink, error)
	GetByShareCode(ctx context.Context, code string) (*models.ShareLink, error)
	GetByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.ShareLink, error)
	GetActiveByTarget(ctx context.Context, targetID uuid.UUID, shareType models.ShareType, ownerID uuid.UUID) ([]models.ShareLink, error)
	Update(ctx context.Context, id uuid.UUID, link *models.ShareLink) error
	Delete(ctx context.Context, id uuid.UUID) error
}
