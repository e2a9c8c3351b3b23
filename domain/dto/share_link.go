package dto

import (
	"time"

	"github.com/google/uuid"

	"geoshare/domain/models"
)

// ShareLinkResponse is the outward share-link projection. The password
// digest is never part of it.
type ShareLinkResponse struct {
	ID                uuid.UUID        `json:"id"`
	ShareCode         string           `json:"share_code"`
	ShareURL          string           `json:"share_url"`
	Type              models.ShareType `json:"type"`
	TargetID          uuid.UUID        `json:"target_id"`
	Title             string           `json:"title"`
	Description       string           `json:"description,omitempty"`
	PasswordProtected bool             `json:"password_protected"`
	ExpiresAt         *time.Time       `json:"expires_at,omitempty"`
	Active            bool             `json:"active"`
	Expired           bool             `json:"expired"`
	ViewCount         int              `json:"view_count"`
	CreatedAt         time.Time        `json:"created_at"`

	// Content, populated on view/detail projections only
	Photo  *PhotoResponse  `json:"photo,omitempty"`
	Album  *AlbumResponse  `json:"album,omitempty"`
	Photos []PhotoResponse `json:"photos,omitempty"`
}

// ShareLinkInfoResponse is the public pre-view projection: enough for a
// client to decide whether to prompt for a password, nothing more.
type ShareLinkInfoResponse struct {
	ID                uuid.UUID        `json:"id"`
	ShareCode         string           `json:"share_code"`
	Type              models.ShareType `json:"type"`
	Title             string           `json:"title"`
	Description       string           `json:"description,omitempty"`
	PasswordProtected bool             `json:"password_protected"`
	ViewCount         int              `json:"view_count"`
}

type ShareLinkListResponse struct {
	Links []ShareLinkResponse `json:"links"`
	Total int                 `json:"total"`
}

type CreateShareRequest struct {
	TargetID       uuid.UUID `json:"target_id" validate:"required"`
	Title          string    `json:"title" validate:"max=200"`
	Description    string    `json:"description" validate:"max=2000"`
	Password       string    `json:"password" validate:"max=72"`
	ExpiresInHours *int      `json:"expires_in_hours" validate:"omitempty,gt=0"`
}

type ViewShareRequest struct {
	Password string `json:"password"`
}
