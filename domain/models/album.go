package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// UUIDList stores an ordered list of photo ids as a jsonb column.
// Membership is denormalized: the album keeps references, not foreign keys,
// so a photo deleted elsewhere leaves a dangling id that readers skip.
type UUIDList []uuid.UUID

func (l UUIDList) Value() (driver.Value, error) {
	if l == nil {
		l = UUIDList{}
	}
	return json.Marshal(l)
}

func (l *UUIDList) Scan(value interface{}) error {
	if value == nil {
		*l = UUIDList{}
		return nil
	}
	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported type for UUIDList: %T", value)
	}
	return json.Unmarshal(data, l)
}

func (UUIDList) GormDataType() string {
	return "jsonb"
}

// Album groups photos owned by a single user. Name is unique per owner.
type Album struct {
	ID          uuid.UUID `gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Name        string    `gorm:"not null;index:idx_albums_owner_name,unique"`
	Description string
	OwnerID     uuid.UUID `gorm:"type:uuid;not null;index;index:idx_albums_owner_name,unique"`

	// Cover photo shown as the album thumbnail. Must be a member of PhotoIDs or nil.
	CoverPhotoID *uuid.UUID `gorm:"type:uuid"`

	// Ordered membership list, insertion order preserved, no duplicates.
	PhotoIDs UUIDList `gorm:"type:jsonb;not null;default:'[]'"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Album) TableName() string {
	return "albums"
}

func (a *Album) PhotoCount() int {
	return len(a.PhotoIDs)
}

// Contains reports whether the photo is already a member.
func (a *Album) Contains(photoID uuid.UUID) bool {
	for _, id := range a.PhotoIDs {
		if id == photoID {
			return true
		}
	}
	return false
}

// AddPhoto appends the photo to the membership list. Adding an existing
// member is a no-op. Returns true when the list changed.
func (a *Album) AddPhoto(photoID uuid.UUID) bool {
	if a.Contains(photoID) {
		return false
	}
	a.PhotoIDs = append(a.PhotoIDs, photoID)
	return true
}

// RemovePhoto removes the photo from the membership list. Removing the
// current cover re-picks it: first remaining member, or nil when empty.
// Returns true when the list changed.
func (a *Album) RemovePhoto(photoID uuid.UUID) bool {
	idx := -1
	for i, id := range a.PhotoIDs {
		if id == photoID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false
	}
	a.PhotoIDs = append(a.PhotoIDs[:idx], a.PhotoIDs[idx+1:]...)

	if a.CoverPhotoID != nil && *a.CoverPhotoID == photoID {
		if len(a.PhotoIDs) == 0 {
			a.CoverPhotoID = nil
		} else {
			cover := a.PhotoIDs[0]
			a.CoverPhotoID = &cover
		}
	}
	return true
}
