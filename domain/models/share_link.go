package models

import (
	"time"

	"github.com/google/uuid"
)

type ShareType string

const (
	ShareTypePhoto ShareType = "PHOTO"
	ShareTypeAlbum ShareType = "ALBUM"
)

// ShareLink grants account-less access to a photo or album through a short
// public code. Access may be password protected and time limited. Expiry is
// evaluated lazily on every read; nothing sweeps expired links.
type ShareLink struct {
	ID uuid.UUID `gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`

	// Public identifier used in share URLs, distinct from the record id.
	// The unique index is what makes concurrent code generation safe.
	ShareCode string    `gorm:"uniqueIndex;not null;size:16"`
	Type      ShareType `gorm:"not null;index:idx_share_links_target"`
	TargetID  uuid.UUID `gorm:"type:uuid;not null;index:idx_share_links_target"`
	OwnerID   uuid.UUID `gorm:"type:uuid;not null;index"`

	Title       string `gorm:"not null"`
	Description string

	// bcrypt digest, empty when the link is open
	Password          string `gorm:"column:password"`
	PasswordProtected bool   `gorm:"default:false"`

	ExpiresAt *time.Time
	Active    bool `gorm:"default:true"`
	ViewCount int  `gorm:"default:0"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (ShareLink) TableName() string {
	return "share_links"
}

// IsExpired reports whether the link has passed its expiry at the given instant.
// A link without ExpiresAt never expires.
func (s *ShareLink) IsExpired(now time.Time) bool {
	if s.ExpiresAt == nil {
		return false
	}
	return now.After(*s.ExpiresAt)
}

// IsAccessible is the accessibility predicate: active and not expired.
func (s *ShareLink) IsAccessible(now time.Time) bool {
	return s.Active && !s.IsExpired(now)
}
