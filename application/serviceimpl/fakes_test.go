package serviceimpl

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"geoshare/domain/models"
	"geoshare/domain/repositories"
	"geoshare/domain/services"
)

// fixedClock returns a now func pinned to t, advanceable from tests.
type fixedClock struct {
	t time.Time
}

func newFixedClock() *fixedClock {
	return &fixedClock{t: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fixedClock) Now() time.Time {
	return c.t
}

func (c *fixedClock) Advance(d time.Duration) {
	c.t = c.t.Add(d)
}

// memUserRepo is an in-memory UserRepository.
type memUserRepo struct {
	users []models.User
}

func (r *memUserRepo) Create(_ context.Context, user *models.User) error {
	for _, u := range r.users {
		if u.Email == user.Email || u.Username == user.Username {
			return repositories.ErrDuplicateKey
		}
	}
	r.users = append(r.users, *user)
	return nil
}

func (r *memUserRepo) GetByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			out := u
			return &out, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			out := u
			return &out, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) GetByUsername(_ context.Context, username string) (*models.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			out := u
			return &out, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) Update(_ context.Context, id uuid.UUID, user *models.User) error {
	for i := range r.users {
		if r.users[i].ID == id {
			r.users[i] = *user
			return nil
		}
	}
	return fmt.Errorf("user %s not found", id)
}

// memPhotoRepo is an in-memory PhotoRepository.
type memPhotoRepo struct {
	photos []models.Photo
}

func (r *memPhotoRepo) Create(_ context.Context, photo *models.Photo) error {
	r.photos = append(r.photos, *photo)
	return nil
}

func (r *memPhotoRepo) GetByID(_ context.Context, id uuid.UUID) (*models.Photo, error) {
	for _, p := range r.photos {
		if p.ID == id {
			out := p
			return &out, nil
		}
	}
	return nil, nil
}

func (r *memPhotoRepo) GetByIDAndOwner(_ context.Context, id, ownerID uuid.UUID) (*models.Photo, error) {
	for _, p := range r.photos {
		if p.ID == id && p.OwnerID == ownerID {
			out := p
			return &out, nil
		}
	}
	return nil, nil
}

func (r *memPhotoRepo) GetByOwner(_ context.Context, ownerID uuid.UUID) ([]models.Photo, error) {
	var out []models.Photo
	for _, p := range r.photos {
		if p.OwnerID == ownerID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *memPhotoRepo) Update(_ context.Context, id uuid.UUID, photo *models.Photo) error {
	for i := range r.photos {
		if r.photos[i].ID == id {
			r.photos[i] = *photo
			return nil
		}
	}
	return fmt.Errorf("photo %s not found", id)
}

func (r *memPhotoRepo) Delete(_ context.Context, id uuid.UUID) error {
	for i := range r.photos {
		if r.photos[i].ID == id {
			r.photos = append(r.photos[:i], r.photos[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("photo %s not found", id)
}

// memAlbumRepo is an in-memory AlbumRepository enforcing the per-owner
// unique name the way the database index would.
type memAlbumRepo struct {
	albums []models.Album
}

func (r *memAlbumRepo) Create(_ context.Context, album *models.Album) error {
	for _, a := range r.albums {
		if a.OwnerID == album.OwnerID && a.Name == album.Name {
			return repositories.ErrDuplicateKey
		}
	}
	r.albums = append(r.albums, *album)
	return nil
}

func (r *memAlbumRepo) GetByID(_ context.Context, id uuid.UUID) (*models.Album, error) {
	for _, a := range r.albums {
		if a.ID == id {
			out := a
			return &out, nil
		}
	}
	return nil, nil
}

func (r *memAlbumRepo) GetByIDAndOwner(_ context.Context, id, ownerID uuid.UUID) (*models.Album, error) {
	for _, a := range r.albums {
		if a.ID == id && a.OwnerID == ownerID {
			out := a
			return &out, nil
		}
	}
	return nil, nil
}

func (r *memAlbumRepo) GetByOwner(_ context.Context, ownerID uuid.UUID) ([]models.Album, error) {
	var out []models.Album
	for _, a := range r.albums {
		if a.OwnerID == ownerID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *memAlbumRepo) ExistsByNameAndOwner(_ context.Context, name string, ownerID uuid.UUID) (bool, error) {
	for _, a := range r.albums {
		if a.OwnerID == ownerID && a.Name == name {
			return true, nil
		}
	}
	return false, nil
}

func (r *memAlbumRepo) GetByMemberPhoto(_ context.Context, photoID uuid.UUID) ([]models.Album, error) {
	var out []models.Album
	for _, a := range r.albums {
		if a.Contains(photoID) {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *memAlbumRepo) Update(_ context.Context, id uuid.UUID, album *models.Album) error {
	for _, a := range r.albums {
		if a.ID != id && a.OwnerID == album.OwnerID && a.Name == album.Name {
			return repositories.ErrDuplicateKey
		}
	}
	for i := range r.albums {
		if r.albums[i].ID == id {
			r.albums[i] = *album
			return nil
		}
	}
	return fmt.Errorf("album %s not found", id)
}

func (r *memAlbumRepo) Delete(_ context.Context, id uuid.UUID) error {
	for i := range r.albums {
		if r.albums[i].ID == id {
			r.albums = append(r.albums[:i], r.albums[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("album %s not found", id)
}

// memShareLinkRepo is an in-memory ShareLinkRepository with a unique share
// code constraint.
type memShareLinkRepo struct {
	links []models.ShareLink
}

func (r *memShareLinkRepo) Create(_ context.Context, link *models.ShareLink) error {
	for _, l := range r.links {
		if l.ShareCode == link.ShareCode {
			return repositories.ErrDuplicateKey
		}
	}
	r.links = append(r.links, *link)
	return nil
}

func (r *memShareLinkRepo) GetByID(_ context.Context, id uuid.UUID) (*models.ShareLink, error) {
	for _, l := range r.links {
		if l.ID == id {
			out := l
			return &out, nil
		}
	}
	return nil, nil
}

func (r *memShareLinkRepo) GetByShareCode(_ context.Context, code string) (*models.ShareLink, error) {
	for _, l := range r.links {
		if l.ShareCode == code {
			out := l
			return &out, nil
		}
	}
	return nil, nil
}

func (r *memShareLinkRepo) GetByOwner(_ context.Context, ownerID uuid.UUID) ([]models.ShareLink, error) {
	var out []models.ShareLink
	for _, l := range r.links {
		if l.OwnerID == ownerID {
			out = append(out, l)
		}
	}
	return out, nil
}

func (r *memShareLinkRepo) GetActiveByTarget(_ context.Context, targetID uuid.UUID, shareType models.ShareType, ownerID uuid.UUID) ([]models.ShareLink, error) {
	var out []models.ShareLink
	for _, l := range r.links {
		if l.Active && l.TargetID == targetID && l.Type == shareType && l.OwnerID == ownerID {
			out = append(out, l)
		}
	}
	return out, nil
}

func (r *memShareLinkRepo) Update(_ context.Context, id uuid.UUID, link *models.ShareLink) error {
	for i := range r.links {
		if r.links[i].ID == id {
			r.links[i] = *link
			return nil
		}
	}
	return fmt.Errorf("share link %s not found", id)
}

func (r *memShareLinkRepo) Delete(_ context.Context, id uuid.UUID) error {
	for i := range r.links {
		if r.links[i].ID == id {
			r.links = append(r.links[:i], r.links[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("share link %s not found", id)
}

// plainHasher is a transparent PasswordHasher for tests.
type plainHasher struct{}

func (plainHasher) Hash(plain string) (string, error) {
	return "hashed:" + plain, nil
}

func (plainHasher) Verify(plain, digest string) bool {
	return digest == "hashed:"+plain
}

// staticTokens issues predictable tokens.
type staticTokens struct{}

func (staticTokens) Issue(userID uuid.UUID, username string) (string, error) {
	return "token:" + userID.String(), nil
}

// memCache is an in-memory services.Cache that records its traffic.
type memCache struct {
	entries map[string]string
	sets    int
	deletes int
}

func newMemCache() *memCache {
	return &memCache{entries: map[string]string{}}
}

func (c *memCache) Get(_ context.Context, key string) (string, error) {
	return c.entries[key], nil
}

func (c *memCache) Set(_ context.Context, key, value string, _ time.Duration) error {
	c.entries[key] = value
	c.sets++
	return nil
}

func (c *memCache) Delete(_ context.Context, key string) error {
	delete(c.entries, key)
	c.deletes++
	return nil
}

// memStorage is an in-memory services.FileStorage.
type memStorage struct {
	files map[string][]byte
}

func newMemStorage() *memStorage {
	return &memStorage{files: map[string][]byte{}}
}

func (s *memStorage) Upload(_ context.Context, key, _ string, data []byte) error {
	s.files[key] = data
	return nil
}

func (s *memStorage) Delete(_ context.Context, key string) error {
	delete(s.files, key)
	return nil
}

func (s *memStorage) PublicURL(key string) string {
	return "https://cdn.example.test/" + key
}

func (s *memStorage) ThumbnailURL(key string) string {
	return "https://cdn.example.test/" + key + "?width=320"
}

// staticExtractor returns a fixed metadata result.
type staticExtractor struct {
	meta services.PhotoMetadata
}

func (e staticExtractor) Extract(_ []byte) services.PhotoMetadata {
	return e.meta
}

func newPhoto(ownerID uuid.UUID, name string) models.Photo {
	return models.Photo{
		ID:       uuid.New(),
		OwnerID:  ownerID,
		FileName: name,
		URL:      "https://cdn.example.test/photos/" + name,
	}
}
