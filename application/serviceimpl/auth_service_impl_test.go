package serviceimpl

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"geoshare/domain/apperr"
	"geoshare/domain/services"
)

func newAuthService() (services.AuthService, *memUserRepo, *fixedClock) {
	clock := newFixedClock()
	repo := &memUserRepo{}
	return NewAuthService(repo, plainHasher{}, staticTokens{}, clock.Now), repo, clock
}

func TestRegister(t *testing.T) {
	svc, repo, clock := newAuthService()
	ctx := context.Background()

	token, user, err := svc.Register(ctx, "Ann@Example.com", "Ann", "hunter2")
	require.NoError(t, err)

	assert.Equal(t, "token:"+user.ID.String(), token)
	assert.Equal(t, "ann@example.com", user.Email)
	assert.Equal(t, "ann", user.Username)
	assert.Equal(t, "hashed:hunter2", user.Password)
	assert.True(t, user.IsActive)
	assert.Equal(t, clock.Now(), user.CreatedAt)

	stored, err := repo.GetByEmail(ctx, "ann@example.com")
	require.NoError(t, err)
	require.NotNil(t, stored)
}

func TestRegisterDuplicate(t *testing.T) {
	svc, _, _ := newAuthService()
	ctx := context.Background()

	_, _, err := svc.Register(ctx, "ann@example.com", "ann", "hunter2")
	require.NoError(t, err)

	_, _, err = svc.Register(ctx, "ann@example.com", "other", "hunter2")
	assert.True(t, apperr.IsKind(err, apperr.KindConflict))

	_, _, err = svc.Register(ctx, "other@example.com", "ann", "hunter2")
	assert.True(t, apperr.IsKind(err, apperr.KindConflict))
}

func TestLoginByEmailAndUsername(t *testing.T) {
	svc, _, clock := newAuthService()
	ctx := context.Background()

	_, registered, err := svc.Register(ctx, "ann@example.com", "ann", "hunter2")
	require.NoError(t, err)

	token, user, err := svc.Login(ctx, "ann@example.com", "hunter2")
	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)
	assert.NotEmpty(t, token)
	require.NotNil(t, user.LastLogin)
	assert.Equal(t, clock.Now(), *user.LastLogin)

	_, user, err = svc.Login(ctx, "ANN", "hunter2")
	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)
}

func TestLoginFailuresAreUniform(t *testing.T) {
	svc, _, _ := newAuthService()
	ctx := context.Background()

	_, _, err := svc.Register(ctx, "ann@example.com", "ann", "hunter2")
	require.NoError(t, err)

	_, _, err = svc.Login(ctx, "ann", "wrong")
	assert.True(t, apperr.IsKind(err, apperr.KindUnauthorized))

	_, _, err = svc.Login(ctx, "nobody", "hunter2")
	assert.True(t, apperr.IsKind(err, apperr.KindUnauthorized))
}

func TestLoginDisabledAccount(t *testing.T) {
	svc, repo, _ := newAuthService()
	ctx := context.Background()

	_, user, err := svc.Register(ctx, "ann@example.com", "ann", "hunter2")
	require.NoError(t, err)

	user.IsActive = false
	require.NoError(t, repo.Update(ctx, user.ID, user))

	_, _, err = svc.Login(ctx, "ann", "hunter2")
	assert.True(t, apperr.IsKind(err, apperr.KindForbidden))
}

func TestGetCurrentUser(t *testing.T) {
	svc, _, _ := newAuthService()
	ctx := context.Background()

	_, registered, err := svc.Register(ctx, "ann@example.com", "ann", "hunter2")
	require.NoError(t, err)

	user, err := svc.GetCurrentUser(ctx, registered.ID)
	require.NoError(t, err)
	assert.Equal(t, "ann", user.Username)

	_, err = svc.GetCurrentUser(ctx, uuid.New())
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
}
