package postgres

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"geoshare/domain/models"
	"geoshare/domain/repositories"
)

type AlbumRepositoryImpl struct {
	db *gorm.DB
}

func NewAlbumRepository(db *gorm.DB) repositories.AlbumRepository {
	return &AlbumRepositoryImpl{db: db}
}

func (r *AlbumRepositoryImpl) Create(ctx context.Context, album *models.Album) error {
	return translateErr(r.db.WithContext(ctx).Create(album).Error)
}

func (r *AlbumRepositoryImpl) GetByID(ctx context.Context, id uuid.UUID) (*models.Album, error) {
	var album models.Album
	found, err := firstOrNil(r.db.WithContext(ctx).Where("id = ?", id).First(&album).Error)
	if err != nil || !found {
		return nil, err
	}
	return &album, nil
}

func (r *AlbumRepositoryImpl) GetByIDAndOwner(ctx context.Context, id, ownerID uuid.UUID) (*models.Album, error) {
	var album models.Album
	found, err := firstOrNil(r.db.WithContext(ctx).Where("id = ? AND owner_id = ?", id, ownerID).First(&album).Error)
	if err != nil || !found {
		return nil, err
	}
	return &album, nil
}

func (r *AlbumRepositoryImpl) GetByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Album, error) {
	var albums []models.Album
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&albums).Error
	return albums, err
}

func (r *AlbumRepositoryImpl) ExistsByNameAndOwner(ctx context.Context, name string, ownerID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Album{}).
		Where("name = ? AND owner_id = ?", name, ownerID).
		Count(&count).Error
	return count > 0, err
}

// GetByMemberPhoto finds albums whose membership list contains the photo,
// using jsonb containment so the denormalized list stays queryable.
func (r *AlbumRepositoryImpl) GetByMemberPhoto(ctx context.Context, photoID uuid.UUID) ([]models.Album, error) {
	member, err := json.Marshal([]uuid.UUID{photoID})
	if err != nil {
		return nil, err
	}

	var albums []models.Album
	err = r.db.WithContext(ctx).
		Where("photo_ids @> ?", string(member)).
		Order("created_at DESC").
		Find(&albums).Error
	return albums, err
}

func (r *AlbumRepositoryImpl) Update(ctx context.Context, id uuid.UUID, album *models.Album) error {
	return translateErr(r.db.WithContext(ctx).Model(&models.Album{}).Where("id = ?", id).Select("*").Omit("id", "created_at").Updates(album).Error)
}

func (r *AlbumRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Album{}).Error
}
