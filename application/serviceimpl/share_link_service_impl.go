package serviceimpl

import (
	"context"
	"encoding/json"
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

const (
	shareCodeLength      = 8
	shareCodeMaxAttempts = 5
	shareInfoCacheTTL    = 5 * time.Minute
	shareInfoCachePrefix = "share:info:"
)

// ShareLinkServiceImpl runs the share-link lifecycle: code generation,
// password gating, lazy expiry and view counting. The cache is optional;
// a nil cache disables it without changing behavior.
type ShareLinkServiceImpl struct {
	shareLinkRepo repositories.ShareLinkRepository
	photoRepo     repositories.PhotoRepository
	albumRepo     repositories.AlbumRepository
	hasher        services.PasswordHasher
	cache         services.Cache
	now           func() time.Time
}

func NewShareLinkService(
	shareLinkRepo repositories.ShareLinkRepository,
	photoRepo repositories.PhotoRepository,
	albumRepo repositories.AlbumRepository,
	hasher services.PasswordHasher,
	cache services.Cache,
	now func() time.Time,
) services.ShareLinkService {
	if now == nil {
		now = time.Now
	}
	return &ShareLinkServiceImpl{
		shareLinkRepo: shareLinkRepo,
		photoRepo:     photoRepo,
		albumRepo:     albumRepo,
		hasher:        hasher,
		cache:         cache,
		now:           now,
	}
}

// CreatePhotoShareLink creates a link to a photo the caller owns. Title
// defaults to the photo's file name; the description is taken verbatim.
func (s *ShareLinkServiceImpl) CreatePhotoShareLink(ctx context.Context, photoID, ownerID uuid.UUID, in services.CreateShareLinkInput) (*models.ShareLink, error) {
	photo, err := s.photoRepo.GetByIDAndOwner(ctx, photoID, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load photo: %w", err)
	}
	if photo == nil {
		return nil, apperr.NotFound("photo not found")
	}

	if in.Title == "" {
		in.Title = photo.FileName
	}
	return s.create(ctx, models.ShareTypePhoto, photoID, ownerID, in)
}

// CreateAlbumShareLink creates a link to an album the caller owns. Title
// defaults to the album name, description to the album description.
func (s *ShareLinkServiceImpl) CreateAlbumShareLink(ctx context.Context, albumID, ownerID uuid.UUID, in services.CreateShareLinkInput) (*models.ShareLink, error) {
	album, err := s.albumRepo.GetByIDAndOwner(ctx, albumID, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load album: %w", err)
	}
	if album == nil {
		return nil, apperr.NotFound("album not found")
	}

	if in.Title == "" {
		in.Title = album.Name
	}
	if in.Description == "" {
		in.Description = album.Description
	}
	return s.create(ctx, models.ShareTypeAlbum, albumID, ownerID, in)
}

func (s *ShareLinkServiceImpl) create(ctx context.Context, shareType models.ShareType, targetID, ownerID uuid.UUID, in services.CreateShareLinkInput) (*models.ShareLink, error) {
	now := s.now()
	link := &models.ShareLink{
		ID:          uuid.New(),
		Type:        shareType,
		TargetID:    targetID,
		OwnerID:     ownerID,
		Title:       in.Title,
		Description: in.Description,
		Active:      true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if in.Password != "" {
		digest, err := s.hasher.Hash(in.Password)
		if err != nil {
			return nil, fmt.Errorf("failed to hash share password: %w", err)
		}
		link.Password = digest
		link.PasswordProtected = true
	}

	if in.ExpiresInHours != nil && *in.ExpiresInHours > 0 {
		expiresAt := now.Add(time.Duration(*in.ExpiresInHours) * time.Hour)
		link.ExpiresAt = &expiresAt
	}

	// The unique index on share_code arbitrates collisions; we just retry
	// with a fresh code.
	for attempt := 0; attempt < shareCodeMaxAttempts; attempt++ {
		link.ShareCode = uuid.New().String()[:shareCodeLength]
		err := s.shareLinkRepo.Create(ctx, link)
		if err == nil {
			logger.Share("share_link_created", "Share link created", map[string]interface{}{
				"share_id":   link.ID.String(),
				"share_code": link.ShareCode,
				"type":       string(link.Type),
				"target_id":  targetID.String(),
			})
			return link, nil
		}
		if !errors.Is(err, repositories.ErrDuplicateKey) {
			return nil, fmt.Errorf("failed to create share link: %w", err)
		}
	}
	return nil, apperr.Conflict("could not allocate a unique share code")
}

// GetShareLinkInfo returns the public metadata of an accessible link. It is
// the pre-view probe: no password check, no view count change. Results are
// served from cache when one is configured.
func (s *ShareLinkServiceImpl) GetShareLinkInfo(ctx context.Context, code string) (*models.ShareLink, error) {
	if cached := s.cacheGet(ctx, code); cached != nil {
		if cached.IsAccessible(s.now()) {
			return cached, nil
		}
		// Stale entry for a link that expired since it was cached.
		s.cacheInvalidate(ctx, code)
	}

	link, err := s.findAccessible(ctx, code)
	if err != nil {
		return nil, err
	}

	s.cachePut(ctx, link)
	return link, nil
}

// ViewSharedContent resolves a share code to its content. Protected links
// require the password up front: an empty password yields a
// password-required error, a wrong one an unauthorized error. The view count
// moves once the gate passes, even when the target has since been deleted.
func (s *ShareLinkServiceImpl) ViewSharedContent(ctx context.Context, code, password string) (*services.SharedContent, error) {
	link, err := s.findAccessible(ctx, code)
	if err != nil {
		return nil, err
	}

	if link.PasswordProtected {
		if password == "" {
			return nil, apperr.PasswordRequired("this share link requires a password")
		}
		if !s.hasher.Verify(password, link.Password) {
			return nil, apperr.Unauthorized("invalid password")
		}
	}

	link.ViewCount++
	link.UpdatedAt = s.now()
	if err := s.shareLinkRepo.Update(ctx, link.ID, link); err != nil {
		return nil, fmt.Errorf("failed to record view: %w", err)
	}
	s.cacheInvalidate(ctx, code)

	content, err := s.resolveContent(ctx, link)
	if err != nil {
		return nil, err
	}

	logger.Share("share_link_viewed", "Share link viewed", map[string]interface{}{
		"share_code": link.ShareCode,
		"view_count": link.ViewCount,
	})
	return content, nil
}

func (s *ShareLinkServiceImpl) ListForOwner(ctx context.Context, ownerID uuid.UUID) ([]models.ShareLink, error) {
	links, err := s.shareLinkRepo.GetByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list share links: %w", err)
	}
	return links, nil
}

// GetForOwner returns one of the caller's links with its content resolved.
// No password gate and no view count change apply to the owner.
func (s *ShareLinkServiceImpl) GetForOwner(ctx context.Context, id, ownerID uuid.UUID) (*services.SharedContent, error) {
	link, err := s.findOwned(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}
	return s.resolveContent(ctx, link)
}

// Deactivate turns the link off. Deactivation is permanent; there is no
// reactivate operation.
func (s *ShareLinkServiceImpl) Deactivate(ctx context.Context, id, ownerID uuid.UUID) error {
	link, err := s.findOwned(ctx, id, ownerID)
	if err != nil {
		return err
	}

	if link.Active {
		link.Active = false
		link.UpdatedAt = s.now()
		if err := s.shareLinkRepo.Update(ctx, link.ID, link); err != nil {
			return fmt.Errorf("failed to deactivate share link: %w", err)
		}
	}
	s.cacheInvalidate(ctx, link.ShareCode)

	logger.Share("share_link_deactivated", "Share link deactivated", map[string]interface{}{
		"share_id":   link.ID.String(),
		"share_code": link.ShareCode,
	})
	return nil
}

func (s *ShareLinkServiceImpl) Delete(ctx context.Context, id, ownerID uuid.UUID) error {
	link, err := s.findOwned(ctx, id, ownerID)
	if err != nil {
		return err
	}

	if err := s.shareLinkRepo.Delete(ctx, link.ID); err != nil {
		return fmt.Errorf("failed to delete share link: %w", err)
	}
	s.cacheInvalidate(ctx, link.ShareCode)

	logger.Share("share_link_deleted", "Share link deleted", map[string]interface{}{
		"share_id":   link.ID.String(),
		"share_code": link.ShareCode,
	})
	return nil
}

// ActiveLinksForTarget lists the caller's active links pointing at one photo
// or album. Expired-but-active links are included; expiry shows up as a
// projection flag, not a filter.
func (s *ShareLinkServiceImpl) ActiveLinksForTarget(ctx context.Context, targetID uuid.UUID, shareType models.ShareType, ownerID uuid.UUID) ([]models.ShareLink, error) {
	links, err := s.shareLinkRepo.GetActiveByTarget(ctx, targetID, shareType, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list share links for target: %w", err)
	}
	return links, nil
}

// findAccessible resolves a public code to an accessible link. Unknown,
// deactivated and expired codes are indistinguishable to the caller.
func (s *ShareLinkServiceImpl) findAccessible(ctx context.Context, code string) (*models.ShareLink, error) {
	link, err := s.shareLinkRepo.GetByShareCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to load share link: %w", err)
	}
	if link == nil || !link.IsAccessible(s.now()) {
		return nil, apperr.NotFound("share link not found or no longer available")
	}
	return link, nil
}

// findOwned resolves an id for its owner. Unlike public codes, owner-facing
// calls distinguish an absent link from someone else's.
func (s *ShareLinkServiceImpl) findOwned(ctx context.Context, id, ownerID uuid.UUID) (*models.ShareLink, error) {
	link, err := s.shareLinkRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load share link: %w", err)
	}
	if link == nil {
		return nil, apperr.NotFound("share link not found")
	}
	if link.OwnerID != ownerID {
		return nil, apperr.Forbidden("you do not have permission to manage this share link")
	}
	return link, nil
}

// resolveContent joins the link with its target. A deleted target leaves the
// content absent; the link itself is still served.
func (s *ShareLinkServiceImpl) resolveContent(ctx context.Context, link *models.ShareLink) (*services.SharedContent, error) {
	content := &services.SharedContent{Link: link}

	switch link.Type {
	case models.ShareTypePhoto:
		photo, err := s.photoRepo.GetByID(ctx, link.TargetID)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve shared photo: %w", err)
		}
		content.Photo = photo

	case models.ShareTypeAlbum:
		album, err := s.albumRepo.GetByID(ctx, link.TargetID)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve shared album: %w", err)
		}
		if album == nil {
			break
		}
		content.Album = album

		photos := make([]models.Photo, 0, len(album.PhotoIDs))
		for _, photoID := range album.PhotoIDs {
			photo, err := s.photoRepo.GetByID(ctx, photoID)
			if err != nil {
				return nil, fmt.Errorf("failed to resolve album photo: %w", err)
			}
			if photo == nil {
				continue
			}
			photos = append(photos, *photo)
		}
		content.AlbumPhotos = photos

	default:
		return nil, fmt.Errorf("unknown share type %q", link.Type)
	}

	return content, nil
}

// cachedShareInfo is the cache representation of public link metadata.
// The password digest is never cached.
type cachedShareInfo struct {
	ID                uuid.UUID        `json:"id"`
	ShareCode         string           `json:"share_code"`
	Type              models.ShareType `json:"type"`
	TargetID          uuid.UUID        `json:"target_id"`
	OwnerID           uuid.UUID        `json:"owner_id"`
	Title             string           `json:"title"`
	Description       string           `json:"description"`
	PasswordProtected bool             `json:"password_protected"`
	ExpiresAt         *time.Time       `json:"expires_at"`
	Active            bool             `json:"active"`
	ViewCount         int              `json:"view_count"`
	CreatedAt         time.Time        `json:"created_at"`
	UpdatedAt         time.Time        `json:"updated_at"`
}

func (s *ShareLinkServiceImpl) cacheGet(ctx context.Context, code string) *models.ShareLink {
	if s.cache == nil {
		return nil
	}
	raw, err := s.cache.Get(ctx, shareInfoCachePrefix+code)
	if err != nil || raw == "" {
		return nil
	}
	var info cachedShareInfo
	if err := json.Unmarshal([]byte(raw), &info); err != nil {
		return nil
	}
	return &models.ShareLink{
		ID:                info.ID,
		ShareCode:         info.ShareCode,
		Type:              info.Type,
		TargetID:          info.TargetID,
		OwnerID:           info.OwnerID,
		Title:             info.Title,
		Description:       info.Description,
		PasswordProtected: info.PasswordProtected,
		ExpiresAt:         info.ExpiresAt,
		Active:            info.Active,
		ViewCount:         info.ViewCount,
		CreatedAt:         info.CreatedAt,
		UpdatedAt:         info.UpdatedAt,
	}
}

func (s *ShareLinkServiceImpl) cachePut(ctx context.Context, link *models.ShareLink) {
	if s.cache == nil {
		return
	}
	info := cachedShareInfo{
		ID:                link.ID,
		ShareCode:         link.ShareCode,
		Type:              link.Type,
		TargetID:          link.TargetID,
		OwnerID:           link.OwnerID,
		Title:             link.Title,
		Description:       link.Description,
		PasswordProtected: link.PasswordProtected,
		ExpiresAt:         link.ExpiresAt,
		Active:            link.Active,
		ViewCount:         link.ViewCount,
		CreatedAt:         link.CreatedAt,
		UpdatedAt:         link.UpdatedAt,
	}
	raw, err := json.Marshal(info)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, shareInfoCachePrefix+link.ShareCode, string(raw), shareInfoCacheTTL); err != nil {
		logger.Cache("cache_set_failed", "Failed to cache share info", map[string]interface{}{
			"share_code": link.ShareCode,
			"error":      err.Error(),
		})
	}
}

func (s *ShareLinkServiceImpl) cacheInvalidate(ctx context.Context, code string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, shareInfoCachePrefix+code); err != nil {
		logger.Cache("cache_delete_failed", "Failed to invalidate share info", map[string]interface{}{
			"share_code": code,
			"error":      err.Error(),
		})
	}
}
