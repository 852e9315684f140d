// File: services/auth_service_test.go
package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"courtside/models"
)

type fakeUserStore struct {
	users map[string]models.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: map[string]models.User{}}
}

func (f *fakeUserStore) GetByEmail(_ context.Context, email string) (*models.User, error) {
	u, ok := f.users[email]
	if !ok {
		return nil, models.ErrUserNotFound
	}
	return &u, nil
}

func (f *fakeUserStore) Create(_ context.Context, user *models.User) error {
	user.ID = int64(len(f.users) + 1)
	f.users[user.Email] = *user
	return nil
}

func (f *fakeUserStore) add(t *testing.T, fullName, email, password string, enabled bool) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	f.users[email] = models.User{
		ID:           int64(len(f.users) + 1),
		FullName:     fullName,
		Email:        email,
		PasswordHash: string(hash),
		Enabled:      enabled,
	}
}

func newAuthService(store UserStore) *AuthService {
	return NewAuthService(store, NewTokenService("test-secret", time.Hour))
}

func TestLogin_Success(t *testing.T) {
	store := newFakeUserStore()
	store.add(t, "Coach Carter", "coach@example.org", "hoops", true)
	svc := newAuthService(store)

	resp, err := svc.Login(context.Background(), "coach@example.org", "hoops")
	require.NoError(t, err)
	assert.Equal(t, "Coach Carter", resp.FullName)
	assert.Equal(t, "coach@example.org", resp.Email)
	assert.NotEmpty(t, resp.Token)

	email, err := svc.Verify(context.Background(), resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "coach@example.org", email)
}

func TestLogin_UnknownEmail(t *testing.T) {
	svc := newAuthService(newFakeUserStore())

	_, err := svc.Login(context.Background(), "nobody@example.org", "hoops")
	assert.ErrorIs(t, err, models.ErrInvalidCredentials)
}

func TestLogin_WrongPassword(t *testing.T) {
	store := newFakeUserStore()
	store.add(t, "Coach Carter", "coach@example.org", "hoops", true)
	svc := newAuthService(store)

	_, err := svc.Login(context.Background(), "coach@example.org", "wrong")
	assert.ErrorIs(t, err, models.ErrInvalidCredentials)
}

func TestLogin_DisabledAccount(t *testing.T) {
	store := newFakeUserStore()
	store.add(t, "Coach Carter", "coach@example.org", "hoops", false)
	svc := newAuthService(store)

	_, err := svc.Login(context.Background(), "coach@example.org", "hoops")
	assert.ErrorIs(t, err, models.ErrInvalidCredentials)
}

func TestVerify_DisabledAccount(t *testing.T) {
	store := newFakeUserStore()
	store.add(t, "Coach Carter", "coach@example.org", "hoops", true)
	svc := newAuthService(store)

	resp, err := svc.Login(context.Background(), "coach@example.org", "hoops")
	require.NoError(t, err)

	// Disable the account after the token was issued.
	u := store.users["coach@example.org"]
	u.Enabled = false
	store.users["coach@example.org"] = u

	_, err = svc.Verify(context.Background(), resp.Token)
	assert.ErrorIs(t, err, models.ErrInvalidToken)
}

func TestVerify_DeletedAccount(t *testing.T) {
	store := newFakeUserStore()
	store.add(t, "Coach Carter", "coach@example.org", "hoops", true)
	svc := newAuthService(store)

	resp, err := svc.Login(context.Background(), "coach@example.org", "hoops")
	require.NoError(t, err)

	delete(store.users, "coach@example.org")

	_, err = svc.Verify(context.Background(), resp.Token)
	assert.ErrorIs(t, err, models.ErrInvalidToken)
}
