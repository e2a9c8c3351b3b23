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

type shareFixture struct {
	clock     *fixedClock
	shareRepo *memShareLinkRepo
	photoRepo *memPhotoRepo
	albumRepo *memAlbumRepo
	cache     *memCache
	svc       services.ShareLinkService
	owner     uuid.UUID
}

func newShareFixture(t *testing.T) *shareFixture {
	t.Helper()
	clock := newFixedClock()
	shareRepo := &memShareLinkRepo{}
	photoRepo := &memPhotoRepo{}
	albumRepo := &memAlbumRepo{}
	cache := newMemCache()
	return &shareFixture{
		clock:     clock,
		shareRepo: shareRepo,
		photoRepo: photoRepo,
		albumRepo: albumRepo,
		cache:     cache,
		svc:       NewShareLinkService(shareRepo, photoRepo, albumRepo, plainHasher{}, cache, clock.Now),
		owner:     uuid.New(),
	}
}

func (f *shareFixture) addPhoto(t *testing.T, name string) models.Photo {
	t.Helper()
	p := newPhoto(f.owner, name)
	p.Description = "taken somewhere"
	require.NoError(t, f.photoRepo.Create(context.Background(), &p))
	return p
}

func (f *shareFixture) addAlbum(t *testing.T, name string, photoIDs ...uuid.UUID) models.Album {
	t.Helper()
	a := models.Album{
		ID:          uuid.New(),
		Name:        name,
		Description: "an album",
		OwnerID:     f.owner,
		PhotoIDs:    models.UUIDList(photoIDs),
	}
	if len(photoIDs) > 0 {
		cover := photoIDs[0]
		a.CoverPhotoID = &cover
	}
	require.NoError(t, f.albumRepo.Create(context.Background(), &a))
	return a
}

func hours(n int) *int {
	return &n
}

func TestCreatePhotoShareLinkDefaults(t *testing.T) {
	f := newShareFixture(t)
	ctx := context.Background()
	photo := f.addPhoto(t, "sunset.jpg")

	link, err := f.svc.CreatePhotoShareLink(ctx, photo.ID, f.owner, services.CreateShareLinkInput{})
	require.NoError(t, err)

	assert.Len(t, link.ShareCode, 8)
	assert.Equal(t, models.ShareTypePhoto, link.Type)
	assert.Equal(t, photo.ID, link.TargetID)
	assert.Equal(t, "sunset.jpg", link.Title)
	assert.Equal(t, "", link.Description, "photo shares keep the caller's description verbatim")
	assert.False(t, link.PasswordProtected)
	assert.Nil(t, link.ExpiresAt)
	assert.True(t, link.Active)
	assert.Equal(t, 0, link.ViewCount)

	withText, err := f.svc.CreatePhotoShareLink(ctx, photo.ID, f.owner, services.CreateShareLinkInput{
		Description: "for the group chat",
	})
	require.NoError(t, err)
	assert.Equal(t, "for the group chat", withText.Description)
}

func TestCreateAlbumShareLinkDefaults(t *testing.T) {
	f := newShareFixture(t)
	ctx := context.Background()
	album := f.addAlbum(t, "Kyoto")

	link, err := f.svc.CreateAlbumShareLink(ctx, album.ID, f.owner, services.CreateShareLinkInput{
		Title: "My Kyoto pics",
	})
	require.NoError(t, err)

	assert.Equal(t, models.ShareTypeAlbum, link.Type)
	assert.Equal(t, "My Kyoto pics", link.Title)
	assert.Equal(t, "an album", link.Description)
}

func TestCreateShareLinkForForeignTarget(t *testing.T) {
	f := newShareFixture(t)
	ctx := context.Background()
	photo := f.addPhoto(t, "sunset.jpg")

	_, err := f.svc.CreatePhotoShareLink(ctx, photo.ID, uuid.New(), services.CreateShareLinkInput{})
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
}

func TestCreateShareLinkWithPasswordAndExpiry(t *testing.T) {
	f := newShareFixture(t)
	ctx := context.Background()
	photo := f.addPhoto(t, "sunset.jpg")

	link, err := f.svc.CreatePhotoShareLink(ctx, photo.ID, f.owner, services.CreateShareLinkInput{
		Password:       "s3cret",
		ExpiresInHours: hours(24),
	})
	require.NoError(t, err)

	assert.True(t, link.PasswordProtected)
	assert.NotEqual(t, "s3cret", link.Password)
	require.NotNil(t, link.ExpiresAt)
	assert.Equal(t, f.clock.Now().Add(24*time.Hour), *link.ExpiresAt)
}

func TestViewSharedPhoto(t *testing.T) {
	f := newShareFixture(t)
	ctx := context.Background()
	photo := f.addPhoto(t, "sunset.jpg")
	link, err := f.svc.CreatePhotoShareLink(ctx, photo.ID, f.owner, services.CreateShareLinkInput{})
	require.NoError(t, err)

	content, err := f.svc.ViewSharedContent(ctx, link.ShareCode, "")
	require.NoError(t, err)
	require.NotNil(t, content.Photo)
	assert.Equal(t, photo.ID, content.Photo.ID)
	assert.Nil(t, content.Album)
	assert.Equal(t, 1, content.Link.ViewCount)

	// Each successful view counts.
	content, err = f.svc.ViewSharedContent(ctx, link.ShareCode, "")
	require.NoError(t, err)
	assert.Equal(t, 2, content.Link.ViewCount)
}

func TestViewSharedAlbumResolvesMembers(t *testing.T) {
	f := newShareFixture(t)
	ctx := context.Background()
	p1 := f.addPhoto(t, "a.jpg")
	p2 := f.addPhoto(t, "b.jpg")
	album := f.addAlbum(t, "Kyoto", p1.ID, p2.ID)

	link, err := f.svc.CreateAlbumShareLink(ctx, album.ID, f.owner, services.CreateShareLinkInput{})
	require.NoError(t, err)

	// One member disappears; the view still succeeds without it.
	require.NoError(t, f.photoRepo.Delete(ctx, p1.ID))

	content, err := f.svc.ViewSharedContent(ctx, link.ShareCode, "")
	require.NoError(t, err)
	require.NotNil(t, content.Album)
	require.Len(t, content.AlbumPhotos, 1)
	assert.Equal(t, p2.ID, content.AlbumPhotos[0].ID)
}

func TestViewPasswordGate(t *testing.T) {
	f := newShareFixture(t)
	ctx := context.Background()
	photo := f.addPhoto(t, "sunset.jpg")
	link, err := f.svc.CreatePhotoShareLink(ctx, photo.ID, f.owner, services.CreateShareLinkInput{
		Password: "s3cret",
	})
	require.NoError(t, err)

	// No password: the caller is told to supply one.
	_, err = f.svc.ViewSharedContent(ctx, link.ShareCode, "")
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindPasswordRequired))

	// Wrong password: rejected outright.
	_, err = f.svc.ViewSharedContent(ctx, link.ShareCode, "nope")
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindUnauthorized))

	// Failed attempts never count as views.
	stored, err := f.shareRepo.GetByShareCode(ctx, link.ShareCode)
	require.NoError(t, err)
	assert.Equal(t, 0, stored.ViewCount)

	content, err := f.svc.ViewSharedContent(ctx, link.ShareCode, "s3cret")
	require.NoError(t, err)
	assert.Equal(t, 1, content.Link.ViewCount)
}

func TestExpiredLinkIsInaccessible(t *testing.T) {
	f := newShareFixture(t)
	ctx := context.Background()
	photo := f.addPhoto(t, "sunset.jpg")
	link, err := f.svc.CreatePhotoShareLink(ctx, photo.ID, f.owner, services.CreateShareLinkInput{
		ExpiresInHours: hours(2),
	})
	require.NoError(t, err)

	// Still inside the window.
	f.clock.Advance(time.Hour)
	_, err = f.svc.ViewSharedContent(ctx, link.ShareCode, "")
	require.NoError(t, err)

	// Past the window: same answer as an unknown code.
	f.clock.Advance(2 * time.Hour)
	_, err = f.svc.ViewSharedContent(ctx, link.ShareCode, "")
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))

	_, err = f.svc.GetShareLinkInfo(ctx, link.ShareCode)
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
}

func TestDeactivateIsPermanent(t *testing.T) {
	f := newShareFixture(t)
	ctx := context.Background()
	photo := f.addPhoto(t, "sunset.jpg")
	link, err := f.svc.CreatePhotoShareLink(ctx, photo.ID, f.owner, services.CreateShareLinkInput{})
	require.NoError(t, err)

	require.NoError(t, f.svc.Deactivate(ctx, link.ID, f.owner))

	_, err = f.svc.ViewSharedContent(ctx, link.ShareCode, "")
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))

	// The owner still sees the deactivated link in the listing.
	links, err := f.svc.ListForOwner(ctx, f.owner)
	require.NoError(t, err)
	require.Len(t, links, 1)
	assert.False(t, links[0].Active)
}

func TestOwnerCallsDiscloseForeignLinks(t *testing.T) {
	f := newShareFixture(t)
	ctx := context.Background()
	photo := f.addPhoto(t, "sunset.jpg")
	link, err := f.svc.CreatePhotoShareLink(ctx, photo.ID, f.owner, services.CreateShareLinkInput{})
	require.NoError(t, err)
	stranger := uuid.New()

	// An existing link owned by someone else is forbidden, not hidden.
	_, err = f.svc.GetForOwner(ctx, link.ID, stranger)
	assert.True(t, apperr.IsKind(err, apperr.KindForbidden))

	err = f.svc.Deactivate(ctx, link.ID, stranger)
	assert.True(t, apperr.IsKind(err, apperr.KindForbidden))

	err = f.svc.Delete(ctx, link.ID, stranger)
	assert.True(t, apperr.IsKind(err, apperr.KindForbidden))

	// An id that matches nothing stays not found.
	_, err = f.svc.GetForOwner(ctx, uuid.New(), stranger)
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))

	// The stranger changed nothing.
	stored, err := f.shareRepo.GetByID(ctx, link.ID)
	require.NoError(t, err)
	assert.True(t, stored.Active)
}

func TestViewDanglingShareLink(t *testing.T) {
	f := newShareFixture(t)
	ctx := context.Background()
	photo := f.addPhoto(t, "sunset.jpg")
	link, err := f.svc.CreatePhotoShareLink(ctx, photo.ID, f.owner, services.CreateShareLinkInput{})
	require.NoError(t, err)

	require.NoError(t, f.photoRepo.Delete(ctx, photo.ID))

	// The view succeeds with absent content and still counts.
	content, err := f.svc.ViewSharedContent(ctx, link.ShareCode, "")
	require.NoError(t, err)
	assert.Nil(t, content.Photo)
	assert.Equal(t, 1, content.Link.ViewCount)

	stored, err := f.shareRepo.GetByShareCode(ctx, link.ShareCode)
	require.NoError(t, err)
	assert.Equal(t, 1, stored.ViewCount)
}

func TestViewDanglingAlbumShareLink(t *testing.T) {
	f := newShareFixture(t)
	ctx := context.Background()
	album := f.addAlbum(t, "Kyoto")
	link, err := f.svc.CreateAlbumShareLink(ctx, album.ID, f.owner, services.CreateShareLinkInput{})
	require.NoError(t, err)

	require.NoError(t, f.albumRepo.Delete(ctx, album.ID))

	content, err := f.svc.ViewSharedContent(ctx, link.ShareCode, "")
	require.NoError(t, err)
	assert.Nil(t, content.Album)
	assert.Empty(t, content.AlbumPhotos)
	assert.Equal(t, 1, content.Link.ViewCount)
}

func TestGetShareLinkInfoUsesCache(t *testing.T) {
	f := newShareFixture(t)
	ctx := context.Background()
	photo := f.addPhoto(t, "sunset.jpg")
	link, err := f.svc.CreatePhotoShareLink(ctx, photo.ID, f.owner, services.CreateShareLinkInput{})
	require.NoError(t, err)

	info, err := f.svc.GetShareLinkInfo(ctx, link.ShareCode)
	require.NoError(t, err)
	assert.Equal(t, link.ShareCode, info.ShareCode)
	assert.Equal(t, 1, f.cache.sets)

	// Second probe is served from cache; view count untouched either way.
	info, err = f.svc.GetShareLinkInfo(ctx, link.ShareCode)
	require.NoError(t, err)
	assert.Equal(t, 0, info.ViewCount)
	assert.Equal(t, 1, f.cache.sets)

	// A view invalidates the cached entry.
	_, err = f.svc.ViewSharedContent(ctx, link.ShareCode, "")
	require.NoError(t, err)
	assert.Equal(t, 1, f.cache.deletes)

	info, err = f.svc.GetShareLinkInfo(ctx, link.ShareCode)
	require.NoError(t, err)
	assert.Equal(t, 1, info.ViewCount)
}

func TestShareLinkServiceWithoutCache(t *testing.T) {
	f := newShareFixture(t)
	f.svc = NewShareLinkService(f.shareRepo, f.photoRepo, f.albumRepo, plainHasher{}, nil, f.clock.Now)
	ctx := context.Background()

	photo := f.addPhoto(t, "sunset.jpg")
	link, err := f.svc.CreatePhotoShareLink(ctx, photo.ID, f.owner, services.CreateShareLinkInput{})
	require.NoError(t, err)

	_, err = f.svc.GetShareLinkInfo(ctx, link.ShareCode)
	require.NoError(t, err)
	content, err := f.svc.ViewSharedContent(ctx, link.ShareCode, "")
	require.NoError(t, err)
	assert.Equal(t, 1, content.Link.ViewCount)
}

func TestActiveLinksForTargetKeepsExpired(t *testing.T) {
	f := newShareFixture(t)
	ctx := context.Background()
	photo := f.addPhoto(t, "sunset.jpg")

	open, err := f.svc.CreatePhotoShareLink(ctx, photo.ID, f.owner, services.CreateShareLinkInput{})
	require.NoError(t, err)
	expiring, err := f.svc.CreatePhotoShareLink(ctx, photo.ID, f.owner, services.CreateShareLinkInput{
		ExpiresInHours: hours(1),
	})
	require.NoError(t, err)
	deactivated, err := f.svc.CreatePhotoShareLink(ctx, photo.ID, f.owner, services.CreateShareLinkInput{})
	require.NoError(t, err)
	require.NoError(t, f.svc.Deactivate(ctx, deactivated.ID, f.owner))

	f.clock.Advance(2 * time.Hour)

	// Active is the only filter; an expired link still shows up for its
	// owner, a deactivated one never does.
	links, err := f.svc.ActiveLinksForTarget(ctx, photo.ID, models.ShareTypePhoto, f.owner)
	require.NoError(t, err)
	require.Len(t, links, 2)
	ids := []uuid.UUID{links[0].ID, links[1].ID}
	assert.Contains(t, ids, open.ID)
	assert.Contains(t, ids, expiring.ID)
}

func TestGetForOwnerResolvesContent(t *testing.T) {
	f := newShareFixture(t)
	ctx := context.Background()
	photo := f.addPhoto(t, "sunset.jpg")
	link, err := f.svc.CreatePhotoShareLink(ctx, photo.ID, f.owner, services.CreateShareLinkInput{
		Password: "s3cret",
	})
	require.NoError(t, err)

	// The owner needs no password and causes no view.
	content, err := f.svc.GetForOwner(ctx, link.ID, f.owner)
	require.NoError(t, err)
	require.NotNil(t, content.Photo)
	assert.Equal(t, 0, content.Link.ViewCount)
}

func TestDeleteShareLink(t *testing.T) {
	f := newShareFixture(t)
	ctx := context.Background()
	photo := f.addPhoto(t, "sunset.jpg")
	link, err := f.svc.CreatePhotoShareLink(ctx, photo.ID, f.owner, services.CreateShareLinkInput{})
	require.NoError(t, err)

	require.NoError(t, f.svc.Delete(ctx, link.ID, f.owner))

	_, err = f.svc.ViewSharedContent(ctx, link.ShareCode, "")
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))

	err = f.svc.Delete(ctx, link.ID, f.owner)
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
}
