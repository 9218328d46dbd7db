package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ahmad-Raza810/blog-application/internal/apperrors"
	"github.com/Ahmad-Raza810/blog-application/internal/auth"
)

type authFixture struct {
	users  *fakeUserRepo
	tokens *fakeTokenRepo
	svc    AuthService
}

func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()
	users := newFakeUserRepo()
	tokens := newFakeTokenRepo()
	manager := auth.NewTokenManager([]byte("test-secret"), 15*time.Minute)
	refresh := NewRefreshTokenService(tokens, 7*24*time.Hour)
	return &authFixture{
		users:  users,
		tokens: tokens,
		svc:    NewAuthService(users, refresh, manager),
	}
}

func (f *authFixture) register(t *testing.T, email, password string) {
	t.Helper()
	_, err := f.svc.Register(context.Background(), "Test User", email, password)
	require.NoError(t, err)
}

func TestRegister(t *testing.T) {
	f := newAuthFixture(t)

	user, err := f.svc.Register(context.Background(), "Ada", "ada@example.com", "s3cret")
	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "Ada", user.Name)
	assert.Equal(t, "ada@example.com", user.Email)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	f := newAuthFixture(t)
	f.register(t, "ada@example.com", "s3cret")

	_, err := f.svc.Register(context.Background(), "Ada Again", "ada@example.com", "other")
	assert.ErrorIs(t, err, apperrors.ErrEmailTaken)
}

func TestLogin(t *testing.T) {
	f := newAuthFixture(t)
	f.register(t, "ada@example.com", "s3cret")

	pair, err := f.svc.Login(context.Background(), "ada@example.com", "s3cret")
	require.NoError(t, err)

	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)
	assert.True(t, pair.AccessExpiry.Before(pair.RefreshExpiry),
		"access token should expire before the refresh token")
}

func TestLoginBadCredentials(t *testing.T) {
	f := newAuthFixture(t)
	f.register(t, "ada@example.com", "s3cret")

	// Unknown email and wrong password must be indistinguishable.
	_, err := f.svc.Login(context.Background(), "nobody@example.com", "s3cret")
	assert.ErrorIs(t, err, apperrors.ErrBadCredentials)

	_, err = f.svc.Login(context.Background(), "ada@example.com", "wrong")
	assert.ErrorIs(t, err, apperrors.ErrBadCredentials)
}

func TestRefreshRotatesToken(t *testing.T) {
	f := newAuthFixture(t)
	f.register(t, "ada@example.com", "s3cret")

	pair, err := f.svc.Login(context.Background(), "ada@example.com", "s3cret")
	require.NoError(t, err)

	rotated, err := f.svc.Refresh(context.Background(), pair.RefreshToken)
	require.NoError(t, err)

	assert.NotEmpty(t, rotated.AccessToken)
	assert.NotEqual(t, pair.RefreshToken, rotated.RefreshToken,
		"refresh must hand out a new token string")

	// The old token string is dead after the rotation.
	_, err = f.svc.Refresh(context.Background(), pair.RefreshToken)
	assert.ErrorIs(t, err, apperrors.ErrRefreshTokenInvalid)
}

func TestRefreshUnknownToken(t *testing.T) {
	f := newAuthFixture(t)

	callsBefore := f.tokens.calls
	_, err := f.svc.Refresh(context.Background(), "never-issued")
	assert.ErrorIs(t, err, apperrors.ErrRefreshTokenInvalid)
	// The lookup is the only storage access; nothing was rotated.
	assert.Equal(t, callsBefore+1, f.tokens.calls)
}

func TestRefreshExpiredToken(t *testing.T) {
	users := newFakeUserRepo()
	tokens := newFakeTokenRepo()
	manager := auth.NewTokenManager([]byte("test-secret"), 15*time.Minute)

	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }
	refresh := NewRefreshTokenServiceWithClock(tokens, time.Hour, clock)
	svc := NewAuthService(users, refresh, manager)

	user, err := svc.Register(context.Background(), "Ada", "ada@example.com", "s3cret")
	require.NoError(t, err)

	token, err := refresh.Generate(context.Background(), user.ID)
	require.NoError(t, err)

	now = now.Add(2 * time.Hour)

	_, err = svc.Refresh(context.Background(), token.Token)
	assert.ErrorIs(t, err, apperrors.ErrRefreshTokenExpired)
	assert.Equal(t, 0, tokens.countForUser(user.ID), "expired row is purged")
}

func TestLogout(t *testing.T) {
	f := newAuthFixture(t)
	f.register(t, "ada@example.com", "s3cret")

	pair, err := f.svc.Login(context.Background(), "ada@example.com", "s3cret")
	require.NoError(t, err)

	user, err := f.users.FindByEmail(context.Background(), "ada@example.com")
	require.NoError(t, err)

	msg, err := f.svc.Logout(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, LogoutSuccess, msg)

	_, err = f.svc.Refresh(context.Background(), pair.RefreshToken)
	assert.ErrorIs(t, err, apperrors.ErrRefreshTokenInvalid)
}

func TestLogoutWithoutIdentity(t *testing.T) {
	f := newAuthFixture(t)

	callsBefore := f.tokens.calls
	msg, err := f.svc.Logout(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, LogoutAlreadyLoggedOut, msg)
	assert.Equal(t, callsBefore, f.tokens.calls, "anonymous logout must not touch storage")
}

func TestProfile(t *testing.T) {
	f := newAuthFixture(t)

	created, err := f.svc.Register(context.Background(), "Ada", "ada@example.com", "s3cret")
	require.NoError(t, err)

	profile, err := f.svc.Profile(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Email, profile.Email)

	_, err = f.svc.Profile(context.Background(), "missing-id")
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
}
