package serviceimpl

import (
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"

	"geoshare/domain/apperr"
	"geoshare/domain/models"
	"geoshare/domain/repositories"
	"geoshare/domain/services"
	"geoshare/pkg/logger"
)

type PhotoServiceImpl struct {
	photoRepo repositories.PhotoRepository
	albumRepo repositories.AlbumRepository
	storage   services.FileStorage
	extractor services.MetadataExtractor
	now       func() time.Time
}

func NewPhotoService(
	photoRepo repositories.PhotoRepository,
	albumRepo repositories.AlbumRepository,
	storage services.FileStorage,
	extractor services.MetadataExtractor,
	now func() time.Time,
) services.PhotoService {
	if now == nil {
		now = time.Now
	}
	return &PhotoServiceImpl{
		photoRepo: photoRepo,
		albumRepo: albumRepo,
		storage:   storage,
		extractor: extractor,
		now:       now,
	}
}

// Upload stores the image, extracts embedded GPS metadata and creates the
// photo record. Missing or unreadable metadata never fails the upload.
func (s *PhotoServiceImpl) Upload(ctx context.Context, ownerID uuid.UUID, in services.UploadPhotoInput) (*models.Photo, error) {
	if len(in.Data) == 0 {
		return nil, apperr.Conflict("empty file")
	}

	id := uuid.New()
	key := storageKey(ownerID, id, in.FileName)

	if err := s.storage.Upload(ctx, key, in.ContentType, in.Data); err != nil {
		return nil, fmt.Errorf("failed to store photo: %w", err)
	}

	meta := s.extractor.Extract(in.Data)

	now := s.now()
	photo := &models.Photo{
		ID:           id,
		OwnerID:      ownerID,
		FileName:     in.FileName,
		URL:          s.storage.PublicURL(key),
		ThumbnailURL: s.storage.ThumbnailURL(key),
		Latitude:     meta.Latitude,
		Longitude:    meta.Longitude,
		TakenAt:      meta.TakenAt,
		Description:  in.Description,
		UploadedAt:   now,
		UpdatedAt:    now,
	}

	if err := s.photoRepo.Create(ctx, photo); err != nil {
		// Best effort; the record is the source of truth, an orphaned
		// file is harmless.
		_ = s.storage.Delete(ctx, key)
		return nil, fmt.Errorf("failed to create photo: %w", err)
	}

	logger.Photo("photo_uploaded", "Photo uploaded", map[string]interface{}{
		"photo_id":  photo.ID.String(),
		"owner_id":  ownerID.String(),
		"file_name": photo.FileName,
		"has_gps":   meta.Latitude != nil && meta.Longitude != nil,
	})
	return photo, nil
}

func (s *PhotoServiceImpl) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Photo, error) {
	photos, err := s.photoRepo.GetByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list photos: %w", err)
	}
	return photos, nil
}

func (s *PhotoServiceImpl) Get(ctx context.Context, id, ownerID uuid.UUID) (*models.Photo, error) {
	return s.findOwned(ctx, id, ownerID)
}

func (s *PhotoServiceImpl) UpdateDescription(ctx context.Context, id, ownerID uuid.UUID, description string) (*models.Photo, error) {
	photo, err := s.findOwned(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}

	photo.Description = description
	photo.UpdatedAt = s.now()
	if err := s.photoRepo.Update(ctx, photo.ID, photo); err != nil {
		return nil, fmt.Errorf("failed to update photo: %w", err)
	}
	return photo, nil
}

// Delete removes the photo record, its stored file and its membership in
// every album of the owner, re-picking covers as members disappear.
func (s *PhotoServiceImpl) Delete(ctx context.Context, id, ownerID uuid.UUID) error {
	photo, err := s.findOwned(ctx, id, ownerID)
	if err != nil {
		return err
	}

	albums, err := s.albumRepo.GetByMemberPhoto(ctx, photo.ID)
	if err != nil {
		return fmt.Errorf("failed to find albums containing photo: %w", err)
	}
	for i := range albums {
		album := &albums[i]
		if !album.RemovePhoto(photo.ID) {
			continue
		}
		album.UpdatedAt = s.now()
		if err := s.albumRepo.Update(ctx, album.ID, album); err != nil {
			return fmt.Errorf("failed to detach photo from album: %w", err)
		}
	}

	if err := s.photoRepo.Delete(ctx, photo.ID); err != nil {
		return fmt.Errorf("failed to delete photo: %w", err)
	}

	// Storage cleanup after the record is gone; a leftover file only
	// wastes space.
	if key := storageKeyFromURL(photo.URL); key != "" {
		_ = s.storage.Delete(ctx, key)
	}

	logger.Photo("photo_deleted", "Photo deleted", map[string]interface{}{
		"photo_id":       photo.ID.String(),
		"owner_id":       ownerID.String(),
		"albums_updated": len(albums),
	})
	return nil
}

func (s *PhotoServiceImpl) findOwned(ctx context.Context, id, ownerID uuid.UUID) (*models.Photo, error) {
	photo, err := s.photoRepo.GetByIDAndOwner(ctx, id, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load photo: %w", err)
	}
	if photo == nil {
		return nil, apperr.NotFound("photo not found")
	}
	return photo, nil
}

// storageKey namespaces files per owner and photo id so re-uploads of the
// same file name never collide.
func storageKey(ownerID, photoID uuid.UUID, fileName string) string {
	ext := strings.ToLower(path.Ext(fileName))
	return fmt.Sprintf("photos/%s/%s%s", ownerID, photoID, ext)
}

// storageKeyFromURL recovers the storage key from a public URL.
func storageKeyFromURL(url string) string {
	idx := strings.Index(url, "/photos/")
	if idx < 0 {
		return ""
	}
	return url[idx+1:]
}
