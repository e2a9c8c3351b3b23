package models

import (
	"time"

	"github.com/google/uuid"
)

// Photo is a single uploaded image. Immutable after creation except Description.
// Albums and share links reference photos by id, never embed them.
type Photo struct {
	ID      uuid.UUID `gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	OwnerID uuid.UUID `gorm:"type:uuid;not null;index"`

	FileName     string `gorm:"not null"`
	URL          string `gorm:"not null"`
	ThumbnailURL string

	// GPS metadata extracted from EXIF (null when the image carries none)
	Latitude  *float64
	Longitude *float64
	TakenAt   *time.Time

	Description string

	UploadedAt time.Time
	UpdatedAt  time.Time
}

func (Photo) TableName() string {
	return "photos"
}
