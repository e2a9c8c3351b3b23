package serviceimpl

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"geoshare/domain/apperr"
	"geoshare/domain/models"
	"geoshare/domain/repositories"
	"geoshare/domain/services"
	"geoshare/pkg/logger"
)

// AlbumServiceImpl owns the album↔photo membership relation and the cover
// photo policy. It holds no mutable state beyond its collaborators; the
// store is the only synchronization point, last writer wins.
type AlbumServiceImpl struct {
	albumRepo repositories.AlbumRepository
	photoRepo repositories.PhotoRepository
	now       func() time.Time
}

func NewAlbumService(
	albumRepo repositories.AlbumRepository,
	photoRepo repositories.PhotoRepository,
	now func() time.Time,
) services.AlbumService {
	if now == nil {
		now = time.Now
	}
	return &AlbumServiceImpl{
		albumRepo: albumRepo,
		photoRepo: photoRepo,
		now:       now,
	}
}

// ListAlbums returns the owner's albums newest first without resolving members.
func (s *AlbumServiceImpl) ListAlbums(ctx context.Context, ownerID uuid.UUID) ([]models.Album, error) {
	albums, err := s.albumRepo.GetByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list albums: %w", err)
	}
	return albums, nil
}

// GetAlbum returns the album with its member photos resolved in membership
// order. Ownership is folded into the lookup so non-owners cannot tell an
// absent album from someone else's.
func (s *AlbumServiceImpl) GetAlbum(ctx context.Context, id, ownerID uuid.UUID) (*models.Album, []models.Photo, error) {
	album, err := s.findOwned(ctx, id, ownerID)
	if err != nil {
		return nil, nil, err
	}

	photos, err := s.resolvePhotos(ctx, album.PhotoIDs)
	if err != nil {
		return nil, nil, err
	}
	return album, photos, nil
}

func (s *AlbumServiceImpl) CreateAlbum(ctx context.Context, ownerID uuid.UUID, name, description string) (*models.Album, error) {
	exists, err := s.albumRepo.ExistsByNameAndOwner(ctx, name, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to check album name: %w", err)
	}
	if exists {
		return nil, apperr.Conflict("an album with this name already exists")
	}

	now := s.now()
	album := &models.Album{
		ID:          uuid.New(),
		Name:        name,
		Description: description,
		OwnerID:     ownerID,
		PhotoIDs:    models.UUIDList{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.albumRepo.Create(ctx, album); err != nil {
		// The unique index on (owner_id, name) closes the race the
		// pre-check leaves open.
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return nil, apperr.Conflict("an album with this name already exists")
		}
		return nil, fmt.Errorf("failed to create album: %w", err)
	}

	logger.Album("album_created", "Album created", map[string]interface{}{
		"album_id": album.ID.String(),
		"name":     album.Name,
		"owner_id": ownerID.String(),
	})
	return album, nil
}

// UpdateAlbum renames or re-describes the album. Renaming to a name used by
// another album of the same owner is a conflict; renaming to the current
// name is allowed. A supplied cover photo id is set verbatim without a
// membership check.
func (s *AlbumServiceImpl) UpdateAlbum(ctx context.Context, id, ownerID uuid.UUID, name, description string, coverPhotoID *uuid.UUID) (*models.Album, error) {
	album, err := s.findOwned(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}

	if album.Name != name {
		exists, err := s.albumRepo.ExistsByNameAndOwner(ctx, name, ownerID)
		if err != nil {
			return nil, fmt.Errorf("failed to check album name: %w", err)
		}
		if exists {
			return nil, apperr.Conflict("an album with this name already exists")
		}
	}

	album.Name = name
	album.Description = description
	if coverPhotoID != nil {
		album.CoverPhotoID = coverPhotoID
	}
	album.UpdatedAt = s.now()

	if err := s.albumRepo.Update(ctx, album.ID, album); err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return nil, apperr.Conflict("an album with this name already exists")
		}
		return nil, fmt.Errorf("failed to update album: %w", err)
	}

	logger.Album("album_updated", "Album updated", map[string]interface{}{
		"album_id": album.ID.String(),
		"name":     album.Name,
	})
	return album, nil
}

// DeleteAlbum removes the album. Share links pointing at it are left
// dangling and fail resolution at read time.
func (s *AlbumServiceImpl) DeleteAlbum(ctx context.Context, id, ownerID uuid.UUID) error {
	album, err := s.findOwned(ctx, id, ownerID)
	if err != nil {
		return err
	}

	if err := s.albumRepo.Delete(ctx, album.ID); err != nil {
		return fmt.Errorf("failed to delete album: %w", err)
	}

	logger.Album("album_deleted", "Album deleted", map[string]interface{}{
		"album_id": album.ID.String(),
		"name":     album.Name,
	})
	return nil
}

// AddPhoto adds a photo the caller owns to the album. Adding a member twice
// is a no-op. The first photo of a coverless album becomes its cover.
func (s *AlbumServiceImpl) AddPhoto(ctx context.Context, albumID, photoID, ownerID uuid.UUID) (*models.Album, error) {
	album, err := s.findOwned(ctx, albumID, ownerID)
	if err != nil {
		return nil, err
	}

	photo, err := s.photoRepo.GetByID(ctx, photoID)
	if err != nil {
		return nil, fmt.Errorf("failed to load photo: %w", err)
	}
	if photo == nil {
		return nil, apperr.NotFound("photo not found")
	}
	if photo.OwnerID != ownerID {
		return nil, apperr.Forbidden("photo does not belong to you")
	}

	changed := album.AddPhoto(photoID)
	if album.CoverPhotoID == nil {
		album.CoverPhotoID = &photoID
		changed = true
	}

	if changed {
		album.UpdatedAt = s.now()
		if err := s.albumRepo.Update(ctx, album.ID, album); err != nil {
			return nil, fmt.Errorf("failed to update album: %w", err)
		}
		logger.Album("photo_added", "Photo added to album", map[string]interface{}{
			"album_id": album.ID.String(),
			"photo_id": photoID.String(),
		})
	}
	return album, nil
}

// AddPhotos adds a batch best effort: each photo is validated on its own and
// silently skipped when missing or not owned by the caller. The cover is
// assigned once, at the end, if still unset.
func (s *AlbumServiceImpl) AddPhotos(ctx context.Context, albumID uuid.UUID, photoIDs []uuid.UUID, ownerID uuid.UUID) (*models.Album, error) {
	album, err := s.findOwned(ctx, albumID, ownerID)
	if err != nil {
		return nil, err
	}

	added := 0
	for _, photoID := range photoIDs {
		photo, err := s.photoRepo.GetByID(ctx, photoID)
		if err != nil {
			return nil, fmt.Errorf("failed to load photo: %w", err)
		}
		if photo == nil || photo.OwnerID != ownerID {
			continue
		}
		if album.AddPhoto(photoID) {
			added++
		}
	}

	changed := added > 0
	if album.CoverPhotoID == nil && len(album.PhotoIDs) > 0 {
		cover := album.PhotoIDs[0]
		album.CoverPhotoID = &cover
		changed = true
	}

	if changed {
		album.UpdatedAt = s.now()
		if err := s.albumRepo.Update(ctx, album.ID, album); err != nil {
			return nil, fmt.Errorf("failed to update album: %w", err)
		}
		logger.Album("photos_added", "Photos added to album", map[string]interface{}{
			"album_id":  album.ID.String(),
			"requested": len(photoIDs),
			"added":     added,
		})
	}
	return album, nil
}

// RemovePhoto removes a photo from the album. Removing a non-member is a
// no-op. Removing the cover re-picks the first remaining member, or clears
// the cover when the album becomes empty.
func (s *AlbumServiceImpl) RemovePhoto(ctx context.Context, albumID, photoID, ownerID uuid.UUID) (*models.Album, error) {
	album, err := s.findOwned(ctx, albumID, ownerID)
	if err != nil {
		return nil, err
	}

	if album.RemovePhoto(photoID) {
		album.UpdatedAt = s.now()
		if err := s.albumRepo.Update(ctx, album.ID, album); err != nil {
			return nil, fmt.Errorf("failed to update album: %w", err)
		}
		logger.Album("photo_removed", "Photo removed from album", map[string]interface{}{
			"album_id": album.ID.String(),
			"photo_id": photoID.String(),
		})
	}
	return album, nil
}

// AlbumsContaining returns the caller's albums that contain the photo. The
// backing lookup is broader than one owner, so filtering here is mandatory.
func (s *AlbumServiceImpl) AlbumsContaining(ctx context.Context, photoID, ownerID uuid.UUID) ([]models.Album, error) {
	albums, err := s.albumRepo.GetByMemberPhoto(ctx, photoID)
	if err != nil {
		return nil, fmt.Errorf("failed to find albums containing photo: %w", err)
	}

	owned := make([]models.Album, 0, len(albums))
	for _, album := range albums {
		if album.OwnerID == ownerID {
			owned = append(owned, album)
		}
	}
	return owned, nil
}

// findOwned loads an album by id and owner in a single check so absence and
// foreign ownership are indistinguishable to the caller.
func (s *AlbumServiceImpl) findOwned(ctx context.Context, id, ownerID uuid.UUID) (*models.Album, error) {
	album, err := s.albumRepo.GetByIDAndOwner(ctx, id, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load album: %w", err)
	}
	if album == nil {
		return nil, apperr.NotFound("album not found")
	}
	return album, nil
}

// resolvePhotos maps member ids to photos in order, dropping ids that no
// longer resolve. A missing member never fails the parent projection.
func (s *AlbumServiceImpl) resolvePhotos(ctx context.Context, ids models.UUIDList) ([]models.Photo, error) {
	photos := make([]models.Photo, 0, len(ids))
	for _, id := range ids {
		photo, err := s.photoRepo.GetByID(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve photo: %w", err)
		}
		if photo == nil {
			continue
		}
		photos = append(photos, *photo)
	}
	return photos, nil
}
