package postgres

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"geoshare/domain/models"
	"geoshare/domain/repositories"
)

type UserRepositoryImpl struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) repositories.UserRepository {
	return &UserRepositoryImpl{db: db}
}

func (r *UserRepositoryImpl) Create(ctx context.Context, user *models.User) error {
	return translateErr(r.db.WithContext(ctx).Create(user).Error)
}

func (r *UserRepositoryImpl) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	var user models.User
	found, err := firstOrNil(r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error)
	if err != nil || !found {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	found, err := firstOrNil(r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error)
	if err != nil || !found {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	found, err := firstOrNil(r.db.WithContext(ctx).Where("username = ?", username).First(&user).Error)
	if err != nil || !found {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) Update(ctx context.Context, id uuid.UUID, user *models.User) error {
	return translateErr(r.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", id).Select("*").Omit("id", "created_at").Updates(user).Error)
}
