package services

import (
	"context"

	"github.com/google/uuid"

	"geoshare/domain/models"
)

type AuthService interface {
	Register(ctx context.Context, email, username, password string) (string, *models.User, error)
	Login(ctx context.Context, login, password string) (string, *models.User, error)
	GetCurrentUser(ctx context.Context, userID uuid.UUID) (*models.User, error)
}

// PasswordHasher is the one-way password primitive used for account and
// share-link passwords.
type PasswordHasher interface {
	Hash(plain string) (string, error)
	Verify(plain, digest string) bool
}

// TokenIssuer mints signed access tokens for authenticated users.
type TokenIssuer interface {
	Issue(userID uuid.UUID, username string) (string, error)
}
