package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlbumAddPhoto(t *testing.T) {
	album := Album{PhotoIDs: UUIDList{}}
	p1 := uuid.New()

	assert.True(t, album.AddPhoto(p1))
	assert.False(t, album.AddPhoto(p1), "re-adding a member must be a no-op")
	assert.Equal(t, UUIDList{p1}, album.PhotoIDs)
	assert.True(t, album.Contains(p1))
}

func TestAlbumRemovePhotoKeepsOrder(t *testing.T) {
	p1, p2, p3 := uuid.New(), uuid.New(), uuid.New()
	album := Album{PhotoIDs: UUIDList{p1, p2, p3}}

	assert.True(t, album.RemovePhoto(p2))
	assert.Equal(t, UUIDList{p1, p3}, album.PhotoIDs)
	assert.False(t, album.RemovePhoto(p2), "removing a non-member must be a no-op")
}

func TestAlbumRemoveCoverRepicks(t *testing.T) {
	p1, p2 := uuid.New(), uuid.New()
	album := Album{PhotoIDs: UUIDList{p1, p2}, CoverPhotoID: &p1}

	require.True(t, album.RemovePhoto(p1))
	require.NotNil(t, album.CoverPhotoID)
	assert.Equal(t, p2, *album.CoverPhotoID)

	require.True(t, album.RemovePhoto(p2))
	assert.Nil(t, album.CoverPhotoID)
}

func TestUUIDListRoundTrip(t *testing.T) {
	list := UUIDList{uuid.New(), uuid.New()}

	value, err := list.Value()
	require.NoError(t, err)

	var scanned UUIDList
	require.NoError(t, scanned.Scan(value))
	assert.Equal(t, list, scanned)
}

func TestUUIDListScanNil(t *testing.T) {
	var list UUIDList
	require.NoError(t, list.Scan(nil))
	assert.Empty(t, list)
	assert.NotNil(t, list)
}
