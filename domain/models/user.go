package models

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID       uuid.UUID `gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Email    string    `gorm:"uniqueIndex;not null"`
	Username string    `gorm:"uniqueIndex;not null"`
	Password string    // bcrypt digest
	IsActive bool      `gorm:"default:true"`

	LastLogin *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time

	// Relations
	Photos []Photo `gorm:"foreignKey:OwnerID"`
	Albums []Album `gorm:"foreignKey:OwnerID"`
}

func (User) TableName() string {
	return "users"
}
