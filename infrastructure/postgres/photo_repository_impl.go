package postgres

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"geoshare/domain/models"
	"geoshare/domain/repositories"
)

type PhotoRepositoryImpl struct {
	db *gorm.DB
}

func NewPhotoRepository(db *gorm.DB) repositories.PhotoRepository {
	return &PhotoRepositoryImpl{db: db}
}

func (r *PhotoRepositoryImpl) Create(ctx context.Context, photo *models.Photo) error {
	return translateErr(r.db.WithContext(ctx).Create(photo).Error)
}

func (r *PhotoRepositoryImpl) GetByID(ctx context.Context, id uuid.UUID) (*models.Photo, error) {
	var photo models.Photo
	found, err := firstOrNil(r.db.WithContext(ctx).Where("id = ?", id).First(&photo).Error)
	if err != nil || !found {
		return nil, err
	}
	return &photo, nil
}

func (r *PhotoRepositoryImpl) GetByIDAndOwner(ctx context.Context, id, ownerID uuid.UUID) (*models.Photo, error) {
	var photo models.Photo
	found, err := firstOrNil(r.db.WithContext(ctx).Where("id = ? AND owner_id = ?", id, ownerID).First(&photo).Error)
	if err != nil || !found {
		return nil, err
	}
	return &photo, nil
}

func (r *PhotoRepositoryImpl) GetByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Photo, error) {
	var photos []models.Photo
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("uploaded_at DESC").
		Find(&photos).Error
	return photos, err
}

func (r *PhotoRepositoryImpl) Update(ctx context.Context, id uuid.UUID, photo *models.Photo) error {
	return translateErr(r.db.WithContext(ctx).Model(&models.Photo{}).Where("id = ?", id).Select("*").Omit("id", "uploaded_at").Updates(photo).Error)
}

func (r *PhotoRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Photo{}).Error
}
