package serviceimpl

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"geoshare/domain/apperr"
	"geoshare/domain/models"
	"geoshare/domain/services"
)

type photoFixture struct {
	clock     *fixedClock
	photoRepo *memPhotoRepo
	albumRepo *memAlbumRepo
	storage   *memStorage
	owner     uuid.UUID
}

func newPhotoService(meta services.PhotoMetadata) (*photoFixture, services.PhotoService) {
	f := &photoFixture{
		clock:     newFixedClock(),
		photoRepo: &memPhotoRepo{},
		albumRepo: &memAlbumRepo{},
		storage:   newMemStorage(),
		owner:     uuid.New(),
	}
	svc := NewPhotoService(f.photoRepo, f.albumRepo, f.storage, staticExtractor{meta: meta}, f.clock.Now)
	return f, svc
}

func floatPtr(v float64) *float64 {
	return &v
}

func TestUploadWithGPSMetadata(t *testing.T) {
	taken := time.Date(2025, 4, 12, 9, 30, 0, 0, time.UTC)
	f, svc := newPhotoService(services.PhotoMetadata{
		Latitude:  floatPtr(35.0116),
		Longitude: floatPtr(135.7681),
		TakenAt:   &taken,
	})
	ctx := context.Background()

	photo, err := svc.Upload(ctx, f.owner, services.UploadPhotoInput{
		FileName:    "kyoto.jpg",
		ContentType: "image/jpeg",
		Data:        []byte("jpeg bytes"),
		Description: "station",
	})
	require.NoError(t, err)

	assert.Equal(t, "kyoto.jpg", photo.FileName)
	assert.Equal(t, "station", photo.Description)
	require.NotNil(t, photo.Latitude)
	assert.InDelta(t, 35.0116, *photo.Latitude, 1e-9)
	require.NotNil(t, photo.TakenAt)
	assert.Equal(t, taken, *photo.TakenAt)
	assert.Contains(t, photo.URL, photo.ID.String())
	assert.Equal(t, photo.URL+"?width=320", photo.ThumbnailURL)

	// The file landed in storage under the photo's key.
	assert.Len(t, f.storage.files, 1)
}

func TestUploadWithoutMetadata(t *testing.T) {
	f, svc := newPhotoService(services.PhotoMetadata{})
	ctx := context.Background()

	photo, err := svc.Upload(ctx, f.owner, services.UploadPhotoInput{
		FileName:    "scan.png",
		ContentType: "image/png",
		Data:        []byte("png bytes"),
	})
	require.NoError(t, err)

	assert.Nil(t, photo.Latitude)
	assert.Nil(t, photo.Longitude)
	assert.Nil(t, photo.TakenAt)
}

func TestUploadEmptyFile(t *testing.T) {
	f, svc := newPhotoService(services.PhotoMetadata{})

	_, err := svc.Upload(context.Background(), f.owner, services.UploadPhotoInput{
		FileName: "empty.jpg",
	})
	require.Error(t, err)
	assert.Empty(t, f.storage.files)
}

func TestGetPhotoOwnerFolded(t *testing.T) {
	f, svc := newPhotoService(services.PhotoMetadata{})
	ctx := context.Background()

	photo, err := svc.Upload(ctx, f.owner, services.UploadPhotoInput{
		FileName: "a.jpg",
		Data:     []byte("x"),
	})
	require.NoError(t, err)

	got, err := svc.Get(ctx, photo.ID, f.owner)
	require.NoError(t, err)
	assert.Equal(t, photo.ID, got.ID)

	_, err = svc.Get(ctx, photo.ID, uuid.New())
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
}

func TestUpdateDescription(t *testing.T) {
	f, svc := newPhotoService(services.PhotoMetadata{})
	ctx := context.Background()

	photo, err := svc.Upload(ctx, f.owner, services.UploadPhotoInput{
		FileName: "a.jpg",
		Data:     []byte("x"),
	})
	require.NoError(t, err)

	updated, err := svc.UpdateDescription(ctx, photo.ID, f.owner, "new text")
	require.NoError(t, err)
	assert.Equal(t, "new text", updated.Description)

	stored, err := f.photoRepo.GetByID(ctx, photo.ID)
	require.NoError(t, err)
	assert.Equal(t, "new text", stored.Description)
}

func TestDeletePhotoDetachesFromAlbums(t *testing.T) {
	f, svc := newPhotoService(services.PhotoMetadata{})
	ctx := context.Background()

	photo, err := svc.Upload(ctx, f.owner, services.UploadPhotoInput{
		FileName: "a.jpg",
		Data:     []byte("x"),
	})
	require.NoError(t, err)
	other, err := svc.Upload(ctx, f.owner, services.UploadPhotoInput{
		FileName: "b.jpg",
		Data:     []byte("y"),
	})
	require.NoError(t, err)

	cover := photo.ID
	album := models.Album{
		ID:           uuid.New(),
		Name:         "Trip",
		OwnerID:      f.owner,
		CoverPhotoID: &cover,
		PhotoIDs:     models.UUIDList{photo.ID, other.ID},
	}
	require.NoError(t, f.albumRepo.Create(ctx, &album))

	require.NoError(t, svc.Delete(ctx, photo.ID, f.owner))

	// Record, file and album membership are all gone; the cover moved on.
	gone, err := f.photoRepo.GetByID(ctx, photo.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)
	assert.Len(t, f.storage.files, 1)

	stored, err := f.albumRepo.GetByID(ctx, album.ID)
	require.NoError(t, err)
	assert.Equal(t, models.UUIDList{other.ID}, stored.PhotoIDs)
	require.NotNil(t, stored.CoverPhotoID)
	assert.Equal(t, other.ID, *stored.CoverPhotoID)
}
