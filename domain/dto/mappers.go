package dto

import (
	"time"

	"geoshare/domain/models"
)

func UserToUserResponse(user *models.User) *UserResponse {
	if user == nil {
		return nil
	}
	return &UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		Username:  user.Username,
		IsActive:  user.IsActive,
		LastLogin: user.LastLogin,
		CreatedAt: user.CreatedAt,
	}
}

func PhotoToPhotoResponse(photo *models.Photo) *PhotoResponse {
	if photo == nil {
		return nil
	}
	return &PhotoResponse{
		ID:           photo.ID,
		FileName:     photo.FileName,
		URL:          photo.URL,
		ThumbnailURL: photo.ThumbnailURL,
		Latitude:     photo.Latitude,
		Longitude:    photo.Longitude,
		TakenAt:      photo.TakenAt,
		Description:  photo.Description,
		UploadedAt:   photo.UploadedAt,
	}
}

func PhotosToPhotoResponses(photos []models.Photo) []PhotoResponse {
	responses := make([]PhotoResponse, len(photos))
	for i, photo := range photos {
		responses[i] = *PhotoToPhotoResponse(&photo)
	}
	return responses
}

// AlbumToResponse builds the cheap album summary. coverPhotoURL may be empty
// when the cover id no longer resolves; the dangle is tolerated.
func AlbumToResponse(album *models.Album, coverPhotoURL string) *AlbumResponse {
	if album == nil {
		return nil
	}
	return &AlbumResponse{
		ID:            album.ID,
		Name:          album.Name,
		Description:   album.Description,
		CoverPhotoID:  album.CoverPhotoID,
		CoverPhotoURL: coverPhotoURL,
		PhotoIDs:      album.PhotoIDs,
		PhotoCount:    album.PhotoCount(),
		CreatedAt:     album.CreatedAt,
		UpdatedAt:     album.UpdatedAt,
	}
}

func AlbumToResponseWithPhotos(album *models.Album, coverPhotoURL string, photos []models.Photo) *AlbumResponse {
	resp := AlbumToResponse(album, coverPhotoURL)
	if resp == nil {
		return nil
	}
	resp.Photos = PhotosToPhotoResponses(photos)
	return resp
}

// ShareLinkToResponse builds the owner-facing projection. Expired is
// computed at projection time; it is never persisted as a state change.
func ShareLinkToResponse(link *models.ShareLink, frontendURL string, now time.Time) *ShareLinkResponse {
	if link == nil {
		return nil
	}
	return &ShareLinkResponse{
		ID:                link.ID,
		ShareCode:         link.ShareCode,
		ShareURL:          frontendURL + "/share/" + link.ShareCode,
		Type:              link.Type,
		TargetID:          link.TargetID,
		Title:             link.Title,
		Description:       link.Description,
		PasswordProtected: link.PasswordProtected,
		ExpiresAt:         link.ExpiresAt,
		Active:            link.Active,
		Expired:           link.IsExpired(now),
		ViewCount:         link.ViewCount,
		CreatedAt:         link.CreatedAt,
	}
}

func ShareLinksToResponses(links []models.ShareLink, frontendURL string, now time.Time) []ShareLinkResponse {
	responses := make([]ShareLinkResponse, len(links))
	for i, link := range links {
		responses[i] = *ShareLinkToResponse(&link, frontendURL, now)
	}
	return responses
}

func ShareLinkToInfoResponse(link *models.ShareLink) *ShareLinkInfoResponse {
	if link == nil {
		return nil
	}
	return &ShareLinkInfoResponse{
		ID:                link.ID,
		ShareCode:         link.ShareCode,
		Type:              link.Type,
		Title:             link.Title,
		Description:       link.Description,
		PasswordProtected: link.PasswordProtected,
		ViewCount:         link.ViewCount,
	}
}
