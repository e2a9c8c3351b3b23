package services

import (
	"context"

	"github.com/google/uuid"

	"geoshare/domain/models"
)

type CreateShareLinkInput struct {
	Title       string
	Description string
	// Password enables protection when non-empty; it is hashed before storage.
	Password string
	// ExpiresInHours sets an expiry when positive; nil means the link never expires.
	ExpiresInHours *int
}

// SharedContent is a share link joined with the content it points at.
// For album links, AlbumPhotos holds the resolved members in album order
// with dangling ids dropped.
type SharedContent struct {
	Link        *models.ShareLink
	Photo       *models.Photo
	Album       *models.Album
	AlbumPhotos []models.Photo
}

type ShareLinkService interface {
	CreatePhotoShareLink(ctx context.Context, photoID, ownerID uuid.UUID, in CreateShareLinkInput) (*models.ShareLink, error)
	CreateAlbumShareLink(ctx context.Context, albumID, ownerID uuid.UUID, in CreateShareLinkInput) (*models.ShareLink, error)

	// GetShareLinkInfo returns the link metadata for an accessible code without
	// touching the view count and without requiring a password.
	GetShareLinkInfo(ctx context.Context, code string) (*models.ShareLink, error)
	// ViewSharedContent verifies the password when the link is protected,
	// increments the view count exactly once and resolves the content.
	ViewSharedContent(ctx context.Context, code, password string) (*SharedContent, error)

	ListForOwner(ctx context.Context, ownerID uuid.UUID) ([]models.ShareLink, error)
	GetForOwner(ctx context.Context, id, ownerID uuid.UUID) (*SharedContent, error)
	Deactivate(ctx context.Context, id, ownerID uuid.UUID) error
	Delete(ctx context.Context, id, ownerID uuid.UUID) error
	ActiveLinksForTarget(ctx context.Context, targetID uuid.UUID, shareType models.ShareType, ownerID uuid.UUID) ([]models.ShareLink, error)
}
