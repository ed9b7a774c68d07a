package service

import (
	"context"
	"os"
	"testing"

	"moodmate-be/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// fakeProfileStore satisfies IProfileStore without touching disk.
type fakeProfileStore struct {
	images map[string][]byte
}

func newFakeProfileStore() *fakeProfileStore {
	return &fakeProfileStore{images: map[string][]byte{}}
}

func (s *fakeProfileStore) Save(username string, image []byte) (string, error) {
	s.images[username] = image
	return username + ".png", nil
}

func (s *fakeProfileStore) Load(username string) ([]byte, error) {
	if img, ok := s.images[username]; ok {
		return img, nil
	}
	return nil, os.ErrNotExist
}

func TestRegisterHashesPassword(t *testing.T) {
	factory, _, users := newFakeFactory()
	sessions, _ := newTestSession(false)
	svc := NewAuthService(factory, sessions, newFakeProfileStore(), nopLogger{})

	res, err := svc.Register(context.Background(), &dto.RegisterRequest{Username: "alice", Password: "s3cret"})
	require.NoError(t, err)
	assert.Equal(t, "alice", res.Username)

	require.Len(t, users.users, 1)
	stored := users.users[0].Password
	assert.NotEqual(t, "s3cret", stored)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored), []byte("s3cret")))
}

func TestRegisterRejectsDuplicateUsername(t *testing.T) {
	factory, _, _ := newFakeFactory()
	sessions, _ := newTestSession(false)
	svc := NewAuthService(factory, sessions, newFakeProfileStore(), nopLogger{})

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{Username: "alice", Password: "one"})
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), &dto.RegisterRequest{Username: "alice", Password: "two"})
	assert.ErrorIs(t, err, ErrUsernameTaken)
}

func TestLoginIssuesSessionAndToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	factory, _, _ := newFakeFactory()
	sessions, _ := newTestSession(false)
	svc := NewAuthService(factory, sessions, newFakeProfileStore(), nopLogger{})

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{Username: "alice", Password: "s3cret"})
	require.NoError(t, err)

	res, err := svc.Login(context.Background(), &dto.LoginRequest{Username: "alice", Password: "s3cret"})
	require.NoError(t, err)
	assert.NotEmpty(t, res.Token)
	assert.NotEmpty(t, res.SessionId)
	assert.Equal(t, "alice", res.Username)
	assert.Equal(t, "alice", res.DisplayName)

	state, found := sessions.Get(res.SessionId)
	require.True(t, found)
	assert.True(t, state.Authenticated)
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	factory, _, _ := newFakeFactory()
	sessions, _ := newTestSession(false)
	svc := NewAuthService(factory, sessions, newFakeProfileStore(), nopLogger{})

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{Username: "alice", Password: "s3cret"})
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), &dto.LoginRequest{Username: "alice", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), &dto.LoginRequest{Username: "nobody", Password: "s3cret"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogoutKeepsSessionAsGuest(t *testing.T) {
	factory, _, _ := newFakeFactory()
	sessions, state := newTestSession(true)
	svc := NewAuthService(factory, sessions, newFakeProfileStore(), nopLogger{})

	require.NoError(t, svc.Logout(state.ID))

	got, found := sessions.Get(state.ID)
	require.True(t, found)
	assert.False(t, got.Authenticated)
	assert.Zero(t, got.UserID)
	// Transcript survives the logout
	assert.NotEmpty(t, got.Messages)
}
