package repositories

import (
	"context"

	"github.com/google/uuid"

	"geoshare/domain/models"
)

// UserRepository is the user collection of the backing store.
// Get methods return (nil, nil) when no record matches.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	Update(ctx context.Context, id uuid.UUID, user *models.User) error
}
