package dto

import (
	"time"

	"github.com/google/uuid"
)

type AlbumResponse struct {
	ID            uuid.UUID   `json:"id"`
	Name          string      `json:"name"`
	Description   string      `json:"description,omitempty"`
	CoverPhotoID  *uuid.UUID  `json:"cover_photo_id,omitempty"`
	CoverPhotoURL string      `json:"cover_photo_url,omitempty"`
	PhotoIDs      []uuid.UUID `json:"photo_ids"`
	PhotoCount    int         `json:"photo_count"`
	// Photos is populated only on detail views.
	Photos    []PhotoResponse `json:"photos,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

type AlbumListResponse struct {
	Albums []AlbumResponse `json:"albums"`
	Total  int             `json:"total"`
}

type CreateAlbumRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=100"`
	Description string `json:"description" validate:"max=2000"`
}

type UpdateAlbumRequest struct {
	Name         string     `json:"name" validate:"required,min=1,max=100"`
	Description  string     `json:"description" validate:"max=2000"`
	CoverPhotoID *uuid.UUID `json:"cover_photo_id"`
}

// AddAlbumPhotosRequest adds a single photo or a batch. Exactly one of the
// fields is expected; when both are present the batch wins.
type AddAlbumPhotosRequest struct {
	PhotoID  *uuid.UUID  `json:"photo_id"`
	PhotoIDs []uuid.UUID `json:"photo_ids"`
}
