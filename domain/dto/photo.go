package dto

import (
	"time"

	"github.com/google/uuid"
)

// PhotoResponse is the outward photo projection. The owner id stays internal.
type PhotoResponse struct {
	ID           uuid.UUID  `json:"id"`
	FileName     string     `json:"file_name"`
	URL          string     `json:"url"`
	ThumbnailURL string     `json:"thumbnail_url,omitempty"`
	Latitude     *float64   `json:"latitude,omitempty"`
	Longitude    *float64   `json:"longitude,omitempty"`
	TakenAt      *time.Time `json:"taken_at,omitempty"`
	Description  string     `json:"description,omitempty"`
	UploadedAt   time.Time  `json:"uploaded_at"`
}

type PhotoListResponse struct {
	Photos []PhotoResponse `json:"photos"`
	Total  int             `json:"total"`
}

type UpdatePhotoRequest struct {
	Description string `json:"description" validate:"max=2000"`
}
