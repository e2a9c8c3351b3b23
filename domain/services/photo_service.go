package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"geoshare/domain/models"
)

type UploadPhotoInput struct {
	FileName    string
	ContentType string
	Data        []byte
	Description string
}

// PhotoMetadata is what can be recovered from an image file itself.
// Every field is optional; images without geodata yield all nils.
type PhotoMetadata struct {
	Latitude  *float64
	Longitude *float64
	TakenAt   *time.Time
}

// MetadataExtractor pulls embedded metadata out of image bytes.
// Extraction is best effort and must never fail the upload.
type MetadataExtractor interface {
	Extract(data []byte) PhotoMetadata
}

// FileStorage stores original and derived image files under string keys and
// serves them over public URLs. ThumbnailURL serves a downscaled variant of
// the same file.
type FileStorage interface {
	Upload(ctx context.Context, key, contentType string, data []byte) error
	Delete(ctx context.Context, key string) error
	PublicURL(key string) string
	ThumbnailURL(key string) string
}

type PhotoService interface {
	Upload(ctx context.Context, ownerID uuid.UUID, in UploadPhotoInput) (*models.Photo, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Photo, error)
	Get(ctx context.Context, id, ownerID uuid.UUID) (*models.Photo, error)
	UpdateDescription(ctx context.Context, id, ownerID uuid.UUID, description string) (*models.Photo, error)
	Delete(ctx context.Context, id, ownerID uuid.UUID) error
}
