package postgres

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"geoshare/domain/models"
	"geoshare/domain/repositories"
)

type ShareLinkRepositoryImpl struct {
	db *gorm.DB
}

func NewShareLinkRepository(db *gorm.DB) repositories.ShareLinkRepository {
	return &ShareLinkRepositoryImpl{db: db}
}

func (r *ShareLinkRepositoryImpl) Create(ctx context.Context, link *models.ShareLink) error {
	return translateErr(r.db.WithContext(ctx).Create(link).Error)
}

func (r *ShareLinkRepositoryImpl) GetByID(ctx context.Context, id uuid.UUID) (*models.ShareLink, error) {
	var link models.ShareLink
	found, err := firstOrNil(r.db.WithContext(ctx).Where("id = ?", id).First(&link).Error)
	if err != nil || !found {
		return nil, err
	}
	return &link, nil
}

func (r *ShareLinkRepositoryImpl) GetByShareCode(ctx context.Context, code string) (*models.ShareLink, error) {
	var link models.ShareLink
	found, err := firstOrNil(r.db.WithContext(ctx).Where("share_code = ?", code).First(&link).Error)
	if err != nil || !found {
		return nil, err
	}
	return &link, nil
}

func (r *ShareLinkRepositoryImpl) GetByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.ShareLink, error) {
	var links []models.ShareLink
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&links).Error
	return links, err
}

// GetActiveByTarget returns the active links for one target. Expired links
// are included as long as they have not been deactivated.
func (r *ShareLinkRepositoryImpl) GetActiveByTarget(ctx context.Context, targetID uuid.UUID, shareType models.ShareType, ownerID uuid.UUID) ([]models.ShareLink, error) {
	var links []models.ShareLink
	err := r.db.WithContext(ctx).
		Where("target_id = ? AND type = ? AND owner_id = ? AND active = true", targetID, shareType, ownerID).
		Order("created_at DESC").
		Find(&links).Error
	return links, err
}

func (r *ShareLinkRepositoryImpl) Update(ctx context.Context, id uuid.UUID, link *models.ShareLink) error {
	return translateErr(r.db.WithContext(ctx).Model(&models.ShareLink{}).Where("id = ?", id).Select("*").Omit("id", "created_at").Updates(link).Error)
}

func (r *ShareLinkRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.ShareLink{}).Error
}
