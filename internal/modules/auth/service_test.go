package auth

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/sharebite/sharebite-backend/internal/modules/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fakeUserRepo struct {
	users map[string]*user.User
}

func (f *fakeUserRepo) CreateUser(ctx context.Context, u *user.User) error {
	f.users[u.Email] = u
	return nil
}

func (f *fakeUserRepo) GetUserByEmail(ctx context.Context, email string) (*user.User, error) {
	u, ok := f.users[email]
	if !ok {
		return nil, fmt.Errorf("user not found")
	}
	return u, nil
}

func (f *fakeUserRepo) GetUserByID(ctx context.Context, id string) (*user.User, error) {
	for _, u := range f.users {
		if u.ID.String() == id {
			return u, nil
		}
	}
	return nil, fmt.Errorf("user not found")
}

func seededService(t *testing.T, role user.Role) (Service, *user.User) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.MinCost)
	require.NoError(t, err)

	u := &user.User{
		ID:           uuid.New(),
		Email:        "amy@example.com",
		PasswordHash: string(hash),
		Name:         "Amy",
		Role:         role,
	}
	repo := &fakeUserRepo{users: map[string]*user.User{u.Email: u}}
	return NewService(repo, []byte("test-secret")), u
}

func TestLoginAndAuthenticate(t *testing.T) {
	svc, u := seededService(t, user.RoleAdmin)

	token, got, err := svc.Login(context.Background(), "amy@example.com", "hunter2")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)
	require.NotEmpty(t, token)

	principal, err := svc.Authenticate(token)
	require.NoError(t, err)
	assert.Equal(t, u.ID, principal.ID)
	assert.Equal(t, "amy@example.com", principal.Email)
	assert.Equal(t, "Amy", principal.Name)
	assert.Equal(t, user.RoleAdmin, principal.Role)
	assert.True(t, principal.IsAdmin())
}

func TestLoginInvalidCredentials(t *testing.T) {
	svc, _ := seededService(t, user.RoleUser)
	ctx := context.Background()

	_, _, err := svc.Login(ctx, "amy@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	// An unknown email produces the same error as a bad password.
	_, _, err = svc.Login(ctx, "nobody@example.com", "hunter2")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthenticateRejectsTamperedToken(t *testing.T) {
	svc, _ := seededService(t, user.RoleUser)

	token, _, err := svc.Login(context.Background(), "amy@example.com", "hunter2")
	require.NoError(t, err)

	_, err = svc.Authenticate(token + "x")
	assert.Error(t, err)

	_, err = svc.Authenticate("not-a-token")
	assert.Error(t, err)
}
